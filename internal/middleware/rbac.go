package middleware

import (
	"slices"

	"go-fieldops/pkg/apperrors"
	"go-fieldops/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireRole lets the request through when the caller holds any of roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok {
			return apperrors.ErrUnauthorized
		}

		for _, role := range claims.Roles {
			if slices.Contains(roles, role) {
				return c.Next()
			}
		}

		return fiber.NewError(fiber.StatusForbidden, "Forbidden: insufficient role")
	}
}
