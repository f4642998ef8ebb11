package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ayoubkh/noorinv-api/internal/application/usecase"
)

// OutputHandler consulta del libro de salidas (protegido).
type OutputHandler struct {
	uc *usecase.OutputUseCase
}

// NewOutputHandler construye el handler.
func NewOutputHandler(uc *usecase.OutputUseCase) *OutputHandler {
	return &OutputHandler{uc: uc}
}

// List godoc
// @Summary      Histórico de salidas de stock
// @Description  Libro completo, los registros más recientes primero.
// @Tags         outputs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.OutputRecord
// @Router       /api/outputs [get]
func (h *OutputHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}
