package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/camden-git/starwarsapi/models"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// ListAll retrieves every user with their favorites, ordered by id
func (r *GormUserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := withFavorites(r.db.WithContext(ctx)).Order("id ASC").Find(&users).Error
	if err != nil {
		return nil, storageError("users", "list", err)
	}
	return users, nil
}

func (r *GormUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := withFavorites(r.db.WithContext(ctx)).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageError("user", "get", err)
	}
	return &user, nil
}

func (r *GormUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ok, err := rowExists(r.db.WithContext(ctx), &models.User{}, id)
	if err != nil {
		return false, storageError("user", "check", err)
	}
	return ok, nil
}
