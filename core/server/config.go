package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Prefix is the global route prefix applied to every feature route.
	Prefix string `mapstructure:"prefix" env:"API_PREFIX" default:"api"`
	// Port is the port where the server will listen.
	Port int `mapstructure:"port" env:"PORT" default:"8000" validate:"min=1,max=65535"`
	// Environment is the deployment tag; "production" disables the API documentation.
	Environment string `mapstructure:"environment" env:"NODE_ENV" default:""`
	// ShutdownTimeoutSeconds bounds the graceful shutdown once a stop signal arrives.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"10" validate:"min=0"`
}

// EnvironmentProduction is the environment tag that suppresses development-only surfaces.
const EnvironmentProduction = "production"

// IsProduction reports whether the server runs with the production environment tag.
func (c Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// NormalizePath trims surrounding whitespace and slashes from a route path segment.
// An empty result means "mounted at the root".
func NormalizePath(p string) string {
	return strings.Trim(strings.TrimSpace(p), "/")
}
