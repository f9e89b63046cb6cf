package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request ID on requests and responses.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the context-locals key for the request ID.
	RequestIDLocalKey = "request_id"
)

// RequestID tags every request with an ID: an incoming X-Request-ID is
// propagated, a missing one is replaced with a fresh UUID. The ID is placed
// in context locals for the access log and echoed on the response header.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
