package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ayoubkh/noorinv-api/internal/infrastructure/metrics"
)

// MetricsMiddleware cuenta y cronometra cada petición atendida.
// Usa la plantilla de la ruta (c.Route().Path) y no la URL concreta para
// mantener acotada la cardinalidad de las etiquetas.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		method := c.Method()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		metrics.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}
