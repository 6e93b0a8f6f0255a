package auth

// Config holds configuration for bearer token authentication.
type Config struct {
	// Token is the bearer token required on prefixed API routes.
	// An empty token disables the check.
	Token string `mapstructure:"token" default:""`
}
