package system

import (
	"go-fieldops/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

type MetricsApi struct {
	metrics *metrics.Service
}

func NewMetricsApi(m *metrics.Service) *MetricsApi {
	return &MetricsApi{metrics: m}
}

func (h *MetricsApi) Setup(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(h.metrics.Handler()))
}
