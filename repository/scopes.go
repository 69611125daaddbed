package repository

import "gorm.io/gorm"

// withFavorites preloads the favorite rows of a user, person or planet in id order.
func withFavorites(db *gorm.DB) *gorm.DB {
	return db.Preload("Favorites", func(db *gorm.DB) *gorm.DB {
		return db.Order("favorites.id ASC")
	})
}

// rowExists tests whether any row of model has the given primary key.
func rowExists(db *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
