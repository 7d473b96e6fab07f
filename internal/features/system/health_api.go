package system

import (
	"context"

	"go-fieldops/internal/config"
	"go-fieldops/internal/database"
	"go-fieldops/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthApi struct {
	db  *database.MongodbDB
	cfg *config.Config
}

func NewHealthApi(db *database.MongodbDB, cfg *config.Config) *HealthApi {
	return &HealthApi{db: db, cfg: cfg}
}

// Setup registers health check routes
func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/health", h.HealthCheck)
	app.Get("/health/ready", h.Ready)
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Check if the server is up
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "OK"
// @Router       /health [get]
func (h *HealthApi) HealthCheck(c *fiber.Ctx) error {
	return c.SendString("OK")
}

// Ready reports whether the document store answers a ping.
func (h *HealthApi) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.cfg.StoreTimeout)
	defer cancel()

	if err := h.db.Client.Ping(ctx, readpref.Primary()); err != nil {
		return apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	return c.SendString("OK")
}
