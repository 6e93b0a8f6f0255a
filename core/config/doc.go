// Package config provides configuration management for the InsightFlow API.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file, and go-playground/validator for validating the result once.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: global prefix (API_PREFIX), port (PORT), environment tag (NODE_ENV)
//   - CORS: the single allowed origin (CORS_ORIGIN)
//   - Swagger: documentation title, description, version and path (SWAGGER_*)
//   - Log: Logging level and format (LOG_*)
//   - Database: connection details (DATABASE_URL or DATABASE_*)
//   - Auth: optional bearer token (AUTH_TOKEN)
//
// Keys map to SECTION_KEY environment variables unless the field carries an explicit
// `env` tag, in which case only that name is read. Empty variables fall back to the default.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
