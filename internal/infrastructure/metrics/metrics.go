// Package metrics expone los contadores Prometheus del servicio.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Mutations mutaciones de estado aplicadas, por tipo de operación.
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "noorinv",
		Name:      "state_mutations_total",
		Help:      "Mutaciones aplicadas al estado de la aplicación.",
	}, []string{"operation"})

	// AICalls llamadas al proveedor de IA, por operación y resultado
	// (ok, fallback).
	AICalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "noorinv",
		Name:      "ai_calls_total",
		Help:      "Llamadas al asesor de IA y su resultado.",
	}, []string{"operation", "result"})

	// HTTPRequests peticiones HTTP atendidas, por método, ruta y código.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "noorinv",
		Name:      "http_requests_total",
		Help:      "Peticiones HTTP atendidas.",
	}, []string{"method", "path", "status"})

	// HTTPDuration latencia de las peticiones HTTP en segundos.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "noorinv",
		Name:      "http_request_duration_seconds",
		Help:      "Duración de las peticiones HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)
