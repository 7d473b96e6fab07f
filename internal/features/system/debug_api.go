package system

import (
	"go-fieldops/internal/config"
	"go-fieldops/internal/middleware"
	"go-fieldops/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type DebugApi struct {
	controller *DebugController
	config     *config.Config
	jwt        *utils.JWTManager
}

func NewDebugApi(controller *DebugController, cfg *config.Config, jwt *utils.JWTManager) *DebugApi {
	return &DebugApi{
		controller: controller,
		config:     cfg,
		jwt:        jwt,
	}
}

// Setup registers debug routes
func (h *DebugApi) Setup(app *fiber.App) {
	debug := app.Group("/api/debug", middleware.AuthMiddleware(h.jwt, h.config.SkipAuth))
	debug.Get("/me", h.controller.GetCurrentUser)
}
