package repository

import (
	"context"

	"github.com/camden-git/starwarsapi/models"
)

// UserRepository defines the methods for user data operations
type UserRepository interface {
	ListAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// PersonRepository defines the methods for person data operations
type PersonRepository interface {
	ListAll(ctx context.Context) ([]models.Person, error)
	GetByID(ctx context.Context, id uint) (*models.Person, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// PlanetRepository defines the methods for planet data operations
type PlanetRepository interface {
	ListAll(ctx context.Context) ([]models.Planet, error)
	GetByID(ctx context.Context, id uint) (*models.Planet, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// FavoriteRepository defines the methods for favorite data operations.
// Add and Remove are the only writes the API performs.
type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error)
	Add(ctx context.Context, userID uint, target models.FavoriteTarget) (*models.Favorite, error)
	Remove(ctx context.Context, userID uint, target models.FavoriteTarget) error
}
