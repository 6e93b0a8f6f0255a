package database

import (
	"context"

	"gorm.io/gorm"
)

// UserRepository reads user records.
type UserRepository interface {
	// FindAll returns every user, unfiltered and unpaged.
	FindAll(ctx context.Context) ([]User, error)
}

type gormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a gorm backed repository. A nil db yields a repository
// whose calls fail with ErrNoConnection.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) FindAll(ctx context.Context) ([]User, error) {
	if r.db == nil {
		return nil, ErrNoConnection
	}

	users := make([]User, 0)
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
