package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/camden-git/starwarsapi/models"
)

type GormPlanetRepository struct {
	db *gorm.DB
}

func NewGormPlanetRepository(db *gorm.DB) PlanetRepository {
	return &GormPlanetRepository{db: db}
}

func (r *GormPlanetRepository) ListAll(ctx context.Context) ([]models.Planet, error) {
	var planets []models.Planet
	err := withFavorites(r.db.WithContext(ctx)).Order("id ASC").Find(&planets).Error
	if err != nil {
		return nil, storageError("planets", "list", err)
	}
	return planets, nil
}

func (r *GormPlanetRepository) GetByID(ctx context.Context, id uint) (*models.Planet, error) {
	var planet models.Planet
	err := withFavorites(r.db.WithContext(ctx)).First(&planet, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanetNotFound
		}
		return nil, storageError("planet", "get", err)
	}
	return &planet, nil
}

func (r *GormPlanetRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ok, err := rowExists(r.db.WithContext(ctx), &models.Planet{}, id)
	if err != nil {
		return false, storageError("planet", "check", err)
	}
	return ok, nil
}
