package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account of the InsightFlow application.
type User struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName pins the table name; columns use gorm's snake_case names.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID when none is set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Models lists every model managed by Migrate.
func Models() []any {
	return []any{&User{}}
}

// Migrate creates or updates the tables of all models.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return ErrNoConnection
	}
	return db.AutoMigrate(Models()...)
}
