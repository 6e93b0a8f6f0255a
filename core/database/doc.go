// Package database handles database connections, the user model and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// PostgreSQL (default), MySQL or SQLite connections from the application's configuration.
//
// # Connect
//
// Connect builds the DSN (DATABASE_URL wins over the discrete fields), opens the pool and
// pings the server within the configured timeout.
//
// # Users
//
// UserRepository lists the records of the users table. A repository built without a
// connection fails every call with ErrNoConnection.
//
// # Schema Inspection
//
// Migrate creates the tables of every model; GetTableColumns reports what the database
// actually holds.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	users, err := database.NewUserRepository(db).FindAll(ctx)
package database
