package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/camden-git/starwarsapi/models"
)

// GormPersonRepository handles database operations for Person entities
type GormPersonRepository struct {
	db *gorm.DB
}

// NewGormPersonRepository creates a new instance of GormPersonRepository
func NewGormPersonRepository(db *gorm.DB) PersonRepository {
	return &GormPersonRepository{db: db}
}

// ListAll retrieves all people, ordered by id, preloading Favorites
func (r *GormPersonRepository) ListAll(ctx context.Context) ([]models.Person, error) {
	var people []models.Person
	err := withFavorites(r.db.WithContext(ctx)).Order("id ASC").Find(&people).Error
	if err != nil {
		return nil, storageError("people", "list", err)
	}
	return people, nil
}

// GetByID retrieves a person by their ID, preloading Favorites
func (r *GormPersonRepository) GetByID(ctx context.Context, id uint) (*models.Person, error) {
	var person models.Person
	err := withFavorites(r.db.WithContext(ctx)).First(&person, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, storageError("person", "get", err)
	}
	return &person, nil
}

// Exists reports whether a person with the given ID is stored
func (r *GormPersonRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ok, err := rowExists(r.db.WithContext(ctx), &models.Person{}, id)
	if err != nil {
		return false, storageError("person", "check", err)
	}
	return ok, nil
}
