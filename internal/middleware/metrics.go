package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestObserver records one finished HTTP request.
type RequestObserver interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Metrics reports every request to the observer under its route pattern.
// Chain errors are rendered here so the recorded status is the one sent.
func Metrics(observer RequestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		route := c.Route().Path
		if route == "" {
			route = c.Path()
		}
		observer.ObserveHTTPRequest(c.Method(), route, c.Response().StatusCode(), time.Since(start))
		return nil
	}
}
