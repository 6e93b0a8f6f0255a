package config

import (
	"fmt"
	"reflect"
	"strings"

	"insightflow-api/core/apidocs"
	"insightflow-api/core/database"
	"insightflow-api/core/logger"
	"insightflow-api/core/middleware/auth"
	"insightflow-api/core/server"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// CORS holds the cross-origin policy.
	CORS server.CORSConfig `mapstructure:"cors"`
	// Swagger holds configuration for the API documentation.
	Swagger apidocs.Config `mapstructure:"swagger"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Auth holds configuration for bearer token authentication.
	Auth auth.Config `mapstructure:"auth"`
}

// LoadConfig loads configuration from environment variables and .env file,
// then validates it. The returned snapshot is read once and never reloaded.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values and bind exactly one
	// environment variable per key
	if err := bindValues(v, Config{}, ""); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and register every key in Viper
// with the 'default' tag value. Each key is bound to a single environment variable: the
// 'env' tag when present (e.g. PORT, never SERVER_PORT), otherwise SECTION_KEY
// (e.g. swagger.title -> SWAGGER_TITLE).
func bindValues(v *viper.Viper, iface any, prefix string) error {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			if err := bindValues(v, reflect.New(field.Type).Elem().Interface(), key); err != nil {
				return err
			}
			continue
		}

		// Always set default (even if empty) so Unmarshal sees the key
		v.SetDefault(key, field.Tag.Get("default"))

		env := field.Tag.Get("env")
		if env == "" {
			env = envName(key)
		}
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s to %s: %w", key, env, err)
		}
	}
	return nil
}

// envName derives the conventional variable name of a nested key.
func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
