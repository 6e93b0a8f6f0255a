package server

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// ErrInvalidOrigin is returned when the configured CORS origin is not a single
// well-formed scheme://host[:port] origin.
var ErrInvalidOrigin = errors.New("invalid CORS origin")

// CORSConfig holds the cross-origin policy.
// Exactly one origin is allowed and credentialed requests are always permitted.
type CORSConfig struct {
	// Origin is the sole origin allowed to call the API from a browser.
	Origin string `mapstructure:"origin" default:"http://localhost:3000" validate:"required,origin"`
}

// ValidateOrigin checks that origin is a single origin fiber's CORS middleware accepts
// together with credentials. Wildcards and comma separated lists are rejected.
func ValidateOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return fmt.Errorf("%w: origin is empty", ErrInvalidOrigin)
	}
	if strings.Contains(origin, "*") {
		return fmt.Errorf("%w: wildcard %q cannot be combined with credentials", ErrInvalidOrigin, origin)
	}
	if strings.Contains(origin, ",") {
		return fmt.Errorf("%w: %q lists more than one origin", ErrInvalidOrigin, origin)
	}
	if !isValidOrigin(origin) {
		return fmt.Errorf("%w: %q is not a scheme://host[:port] origin", ErrInvalidOrigin, origin)
	}
	return nil
}

// isValidOrigin checks whether a string is a well-formed origin (RFC 6454):
// scheme and host present, no path, query, fragment or userinfo.
func isValidOrigin(origin string) bool {
	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return false
	}

	if parsed.Path != "" && parsed.Path != "/" {
		return false
	}

	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return false
	}

	return parsed.User == nil
}

// newCORS builds the CORS middleware for a validated origin.
func newCORS(origin string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     strings.TrimSuffix(strings.TrimSpace(origin), "/"),
		AllowCredentials: true,
	})
}
