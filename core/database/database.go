package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNoConnection is returned by data access when the service started without a database.
var ErrNoConnection = errors.New("database connection is not available")

// Connect establishes a connection to the configured database.
// It returns a *gorm.DB connection or an error if the connection or the initial ping fails.
func Connect(cfg Config) (*gorm.DB, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	dialector, err := Dialector(cfg, timeout)
	if err != nil {
		return nil, err
	}

	// Suppress GORM logging; callers log connection outcomes with the main logger
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Close releases the connection pool behind db. A nil db is a no-op.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Dialector returns the gorm dialector for the configured driver.
func Dialector(cfg Config, timeoutSeconds int) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverPostgres, "":
		return postgres.Open(DSN(cfg, timeoutSeconds)), nil
	case DriverMySQL:
		return mysql.Open(DSN(cfg, timeoutSeconds)), nil
	case DriverSQLite:
		return sqlite.Open(DSN(cfg, timeoutSeconds)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// DSN builds the driver specific connection string. cfg.URL wins when set.
func DSN(cfg Config, timeoutSeconds int) string {
	if cfg.URL != "" {
		return cfg.URL
	}

	switch cfg.Driver {
	case DriverMySQL:
		// Special characters in the password must be URL encoded for the mysql driver.
		userInfo := url.UserPassword(cfg.User, cfg.Password).String()
		return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
			userInfo, cfg.Host, cfg.Port, cfg.Name, timeoutSeconds, timeoutSeconds, timeoutSeconds)
	case DriverSQLite:
		return cfg.Name
	default:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(cfg.User, cfg.Password),
			Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Path:   "/" + cfg.Name,
		}
		q := url.Values{}
		q.Set("sslmode", cfg.SSLMode)
		q.Set("connect_timeout", fmt.Sprint(timeoutSeconds))
		u.RawQuery = q.Encode()
		return u.String()
	}
}
