package offer

import (
	"go-fieldops/internal/config"
	"go-fieldops/internal/middleware"
	"go-fieldops/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// roles allowed to change offers
var writerRoles = []string{"admin", "comercial"}

type OfferApi struct {
	OfferController *OfferController
	Config          *config.Config
	JWT             *utils.JWTManager
}

func NewOfferApi(offerController *OfferController, config *config.Config, jwt *utils.JWTManager) *OfferApi {
	return &OfferApi{
		OfferController: offerController,
		Config:          config,
		JWT:             jwt,
	}
}

func (api *OfferApi) Setup(app *fiber.App) {
	group := app.Group("/api/ofertas", middleware.AuthMiddleware(api.JWT, api.Config.SkipAuth))
	write := middleware.RequireRole(writerRoles...)

	group.Get("/simplified", api.OfferController.ListSimplified)
	group.Get("/", api.OfferController.List)
	group.Get("/:id", api.OfferController.Get)
	group.Post("/", write, api.OfferController.Create)
	group.Put("/:id", write, api.OfferController.Update)
	group.Delete("/:id", write, api.OfferController.Delete)

	group.Post("/:id/elementos", write, api.OfferController.AddElement)
	group.Put("/:id/elementos/id/:element_id", write, api.OfferController.UpdateElementByID)
	group.Delete("/:id/elementos/id/:element_id", write, api.OfferController.RemoveElementByID)
	group.Put("/:id/elementos/:index", write, api.OfferController.UpdateElement)
	group.Delete("/:id/elementos/:index", write, api.OfferController.RemoveElement)
}
