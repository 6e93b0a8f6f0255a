package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateAndGetTableColumns(t *testing.T) {
	cfg := Config{
		Driver: DriverSQLite,
		Name:   filepath.Join(t.TempDir(), "insightflow.db"),
	}
	db, err := Connect(cfg)
	require.NoError(t, err)
	defer Close(db)

	// Missing table yields no columns
	cols, err := GetTableColumns(db, "users")
	assert.NoError(t, err)
	assert.Empty(t, cols)

	require.NoError(t, Migrate(db))

	columns, err := GetTableColumns(db, "users")
	require.NoError(t, err)

	fields := make([]string, 0, len(columns))
	for _, col := range columns {
		fields = append(fields, col.Field)
	}
	assert.ElementsMatch(t, []string{"id", "email", "name", "created_at", "updated_at"}, fields)
}

func TestUser_Schema(t *testing.T) {
	assert.Equal(t, "users", User{}.TableName())

	cfg := Config{
		Driver: DriverSQLite,
		Name:   filepath.Join(t.TempDir(), "schema.db"),
	}
	db, err := Connect(cfg)
	require.NoError(t, err)
	defer Close(db)
	require.NoError(t, Migrate(db))

	migrator := db.Migrator()
	assert.True(t, migrator.HasTable("users"))
	assert.True(t, migrator.HasColumn(&User{}, "created_at"))
	assert.True(t, migrator.HasColumn(&User{}, "updated_at"))
	assert.False(t, migrator.HasColumn(&User{}, "createdAt"))
}

func TestGetTableColumns_NoConnection(t *testing.T) {
	_, err := GetTableColumns(nil, "users")
	assert.ErrorIs(t, err, ErrNoConnection)
	assert.ErrorIs(t, Migrate(nil), ErrNoConnection)
}
