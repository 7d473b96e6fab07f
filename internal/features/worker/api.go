package worker

import (
	"go-fieldops/internal/config"
	"go-fieldops/internal/middleware"
	"go-fieldops/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type WorkerApi struct {
	WorkerController *WorkerController
	Config           *config.Config
	JWT              *utils.JWTManager
}

func NewWorkerApi(workerController *WorkerController, config *config.Config, jwt *utils.JWTManager) *WorkerApi {
	return &WorkerApi{
		WorkerController: workerController,
		Config:           config,
		JWT:              jwt,
	}
}

func (api *WorkerApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(api.JWT, api.Config.SkipAuth)
	admin := middleware.RequireRole("admin")

	workers := app.Group("/api/trabajadores", auth)
	workers.Get("/buscar", api.WorkerController.SearchWorkers)
	workers.Get("/", api.WorkerController.ListWorkers)
	workers.Post("/", admin, api.WorkerController.CreateWorker)

	brigades := app.Group("/api/brigadas", auth)
	brigades.Get("/", api.WorkerController.ListBrigades)
	brigades.Get("/:lider_ci", api.WorkerController.GetBrigade)
	brigades.Post("/", admin, api.WorkerController.CreateBrigade)
	brigades.Delete("/:lider_ci", admin, api.WorkerController.DeleteBrigade)
	brigades.Post("/:lider_ci/trabajadores", admin, api.WorkerController.AddMember)
	brigades.Delete("/:lider_ci/trabajadores/:ci", admin, api.WorkerController.RemoveMember)
}
