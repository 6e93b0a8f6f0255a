package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

const bearerScheme = "Bearer "

// LocalsKey is the fiber.Ctx locals key holding the accepted Authorization header.
const LocalsKey = "auth_header"

// New returns a middleware enforcing "Authorization: Bearer <token>".
// The scheme is matched case-insensitively. When no token is configured every
// request passes through.
func New(cfg Config) fiber.Handler {
	expected := []byte(cfg.Token)

	return keyauth.New(keyauth.Config{
		Next: func(*fiber.Ctx) bool {
			return len(expected) == 0
		},
		// An empty AuthScheme hands over the whole header; the scheme is checked below.
		KeyLookup:  "header:" + fiber.HeaderAuthorization,
		AuthScheme: "",
		Validator: func(_ *fiber.Ctx, header string) (bool, error) {
			if len(header) < len(bearerScheme) || !strings.EqualFold(header[:len(bearerScheme)], bearerScheme) {
				return false, nil
			}
			token := []byte(strings.TrimSpace(header[len(bearerScheme):]))
			return subtle.ConstantTimeCompare(token, expected) == 1, nil
		},
		ErrorHandler: unauthorized,
		ContextKey:   LocalsKey,
	})
}

func unauthorized(c *fiber.Ctx, _ error) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"statusCode": fiber.StatusUnauthorized,
		"message":    "Unauthorized",
	})
}
