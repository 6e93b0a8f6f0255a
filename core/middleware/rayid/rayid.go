package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the RayID.
const Header = "X-Ray-ID"

// LocalsKey is the fiber.Ctx locals key under which the RayID is stored.
const LocalsKey = "ray_id"

// New returns a middleware that assigns a RayID to every request.
// An incoming X-Ray-ID header is kept so that callers can correlate across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}

// FromCtx returns the RayID of the request, or an empty string when none is set.
func FromCtx(c *fiber.Ctx) string {
	if rid, ok := c.Locals(LocalsKey).(string); ok {
		return rid
	}
	return ""
}
