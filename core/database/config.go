package database

// Config holds configuration for the database connection.
type Config struct {
	// URL is a complete connection string. When set it takes precedence over the discrete fields.
	URL string `mapstructure:"url" default:""`
	// Driver is the database driver (postgres, mysql, sqlite).
	Driver string `mapstructure:"driver" default:"postgres" validate:"oneof=postgres mysql sqlite"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"5432"`
	// User is the database user.
	User string `mapstructure:"user" default:"postgres"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name (the file path for sqlite).
	Name string `mapstructure:"name" default:"insightflow"`
	// SSLMode is the postgres sslmode parameter.
	SSLMode string `mapstructure:"ssl_mode" default:"disable"`
	// TimeoutSeconds bounds connection setup and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)
