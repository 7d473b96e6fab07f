package system

import (
	"go-fieldops/pkg/apperrors"
	"go-fieldops/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type DebugController struct{}

func NewDebugController() *DebugController {
	return &DebugController{}
}

// GetCurrentUser returns the claims of the calling token.
func (c *DebugController) GetCurrentUser(ctx *fiber.Ctx) error {
	claims, ok := ctx.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	return ctx.JSON(fiber.Map{
		"user_id": claims.UserID,
		"ci":      claims.CI,
		"roles":   claims.Roles,
	})
}
