package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo represents a column of a table.
type ColumnInfo struct {
	Field    string
	Type     string
	Nullable bool
}

// GetTableColumns retrieves the column information for a specific table.
// A missing table yields an empty result.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	if db == nil {
		return nil, ErrNoConnection
	}

	migrator := db.Migrator()
	if !migrator.HasTable(tableName) {
		return []ColumnInfo{}, nil
	}

	types, err := migrator.ColumnTypes(tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	columns := make([]ColumnInfo, 0, len(types))
	for _, ct := range types {
		nullable, _ := ct.Nullable()
		columns = append(columns, ColumnInfo{
			Field:    strings.ToLower(ct.Name()),
			Type:     strings.ToLower(ct.DatabaseTypeName()),
			Nullable: nullable,
		})
	}
	return columns, nil
}
