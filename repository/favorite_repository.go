package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"github.com/camden-git/starwarsapi/models"
)

// GORM rewrites ? into the dialect's own placeholder when executing.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type GormFavoriteRepository struct {
	db *gorm.DB
}

func NewGormFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// ListByUser retrieves the favorites of a user, oldest first
func (r *GormFavoriteRepository) ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&favorites).Error
	if err != nil {
		return nil, storageError("favorites", "list", err)
	}
	return favorites, nil
}

func targetModel(target models.FavoriteTarget) (interface{}, error) {
	switch target.Kind {
	case models.TargetPerson:
		return &models.Person{}, ErrPersonNotFound
	case models.TargetPlanet:
		return &models.Planet{}, ErrPlanetNotFound
	default:
		return nil, fmt.Errorf("unknown favorite target kind %q", target.Kind)
	}
}

func nullable(id *uint) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

// insertFavoriteSQL builds a single insert that the composite unique indexes
// turn into a no-op when the pair is already bookmarked.
func insertFavoriteSQL(fav models.Favorite) (string, []interface{}, error) {
	return psql.Insert("favorites").
		Columns("user_id", "people_id", "planets_id").
		Values(fav.UserID, nullable(fav.PeopleID), nullable(fav.PlanetsID)).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
}

// Add bookmarks target for userID. The existence checks and the conditional
// insert share one transaction; a duplicate is detected by the insert itself,
// so concurrent identical requests cannot both succeed.
func (r *GormFavoriteRepository) Add(ctx context.Context, userID uint, target models.FavoriteTarget) (*models.Favorite, error) {
	model, targetNotFound := targetModel(target)
	if model == nil {
		return nil, targetNotFound
	}

	fav := models.NewFavorite(userID, target)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := rowExists(tx, &models.User{}, userID)
		if err != nil {
			return storageError("user", "check", err)
		}
		if !ok {
			return ErrUserNotFound
		}

		ok, err = rowExists(tx, model, target.ID)
		if err != nil {
			return storageError(string(target.Kind), "check", err)
		}
		if !ok {
			return targetNotFound
		}

		sqlStr, args, err := insertFavoriteSQL(fav)
		if err != nil {
			return fmt.Errorf("failed to build SQL query for favorite insert: %w", err)
		}

		res := tx.Exec(sqlStr, args...)
		if res.Error != nil {
			switch {
			case errors.Is(res.Error, gorm.ErrDuplicatedKey):
				return ErrFavoriteExists
			case errors.Is(res.Error, gorm.ErrForeignKeyViolated):
				// user or target removed between the check and the insert
				return fmt.Errorf("%w: %s", ErrNotFound, target)
			}
			return storageError("favorite", "create", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrFavoriteExists
		}

		err = tx.Where("user_id = ?", userID).
			Where(target.Column()+" = ?", target.ID).
			First(&fav).Error
		if err != nil {
			return storageError("favorite", "reload", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

// Remove deletes the favorite linking userID to target
func (r *GormFavoriteRepository) Remove(ctx context.Context, userID uint, target models.FavoriteTarget) error {
	if !target.Valid() {
		return fmt.Errorf("unknown favorite target kind %q", target.Kind)
	}

	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(target.Column()+" = ?", target.ID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return storageError("favorite", "delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
