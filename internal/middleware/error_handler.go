package middleware

import (
	"errors"

	"go-fieldops/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestIDKey is the Locals key set by the requestid middleware.
const RequestIDKey = "request_id"

// ErrorHandler renders every returned error as {"error": {code, message}}.
// Server-side failures hide their cause from the client and are logged.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(apperrors.Response{
				Error: &apperrors.Error{Code: "HTTP_ERROR", Message: fe.Message},
			})
		}

		appErr := apperrors.FromError(err)
		message := appErr.Error()
		if appErr.Status >= fiber.StatusInternalServerError {
			message = appErr.Message
			log.Error("request failed",
				zap.String("request_id", requestID(c)),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		return c.Status(appErr.Status).JSON(apperrors.Response{
			Error: &apperrors.Error{Code: appErr.Code, Message: message},
		})
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
