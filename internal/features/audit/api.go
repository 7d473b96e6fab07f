package audit

import (
	"go-fieldops/internal/config"
	"go-fieldops/internal/middleware"
	"go-fieldops/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AuditApi struct {
	controller *AuditController
	config     *config.Config
	jwt        *utils.JWTManager
}

func NewAuditApi(controller *AuditController, config *config.Config, jwt *utils.JWTManager) *AuditApi {
	return &AuditApi{
		controller: controller,
		config:     config,
		jwt:        jwt,
	}
}

func (h *AuditApi) Setup(app *fiber.App) {
	audit := app.Group("/api/audit", middleware.AuthMiddleware(h.jwt, h.config.SkipAuth))

	audit.Get("/", middleware.RequireRole("admin"), h.controller.ListLogs)
}
