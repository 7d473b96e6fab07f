package middleware

import (
	"strings"

	"go-fieldops/pkg/apperrors"
	"go-fieldops/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates bearer tokens and stores the claims in Locals.
func AuthMiddleware(jwt *utils.JWTManager, skipAuth bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skipAuth {
			c.Locals(utils.UserClaimsKey, &utils.UserClaims{
				UserID: "dev-admin-id",
				Roles:  []string{"admin"},
			})
			return c.Next()
		}

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return apperrors.Clone(apperrors.ErrUnauthorized, "Authorization header required")
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			return apperrors.Clone(apperrors.ErrUnauthorized, "Invalid authorization header format")
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			return apperrors.Clone(apperrors.ErrUnauthorized, "Invalid token")
		}

		c.Locals(utils.UserClaimsKey, claims)
		return c.Next()
	}
}
