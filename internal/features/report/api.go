package report

import (
	"go-fieldops/internal/config"
	"go-fieldops/internal/middleware"
	"go-fieldops/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ReportApi struct {
	ReportController *ReportController
	Config           *config.Config
	JWT              *utils.JWTManager
}

func NewReportApi(reportController *ReportController, config *config.Config, jwt *utils.JWTManager) *ReportApi {
	return &ReportApi{
		ReportController: reportController,
		Config:           config,
		JWT:              jwt,
	}
}

func (api *ReportApi) Setup(app *fiber.App) {
	group := app.Group("/api/reportes", middleware.AuthMiddleware(api.JWT, api.Config.SkipAuth))

	// static segments first so they are not captured by /:id and /:ci
	group.Get("/horas-trabajadas/export", api.ReportController.ExportHours)
	group.Get("/horas-trabajadas/:ci", api.ReportController.HoursForWorker)
	group.Get("/horas-trabajadas", api.ReportController.HoursForAllWorkers)

	group.Get("/materiales/export", api.ReportController.ExportMaterials)
	group.Get("/materiales/:lider_ci", api.ReportController.MaterialsForBrigade)
	group.Get("/materiales", api.ReportController.MaterialsForAllBrigades)

	group.Get("/resumen", api.ReportController.Summary)

	group.Post("/", api.ReportController.Create)
	group.Get("/", api.ReportController.List)
	group.Get("/:id", api.ReportController.Get)
}
