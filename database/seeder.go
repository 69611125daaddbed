package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/camden-git/starwarsapi/models"
)

// SeedResult reports how many rows each seeder inserted.
type SeedResult struct {
	Users   int
	People  int
	Planets int
}

var seedUsers = []models.User{
	{Username: "luke"},
	{Username: "leia"},
	{Username: "han"},
}

var seedPeople = []models.Person{
	{Name: "Luke Skywalker", Gender: "male", EyeColor: "blue", SkinColor: "fair"},
	{Name: "C-3PO", Gender: "n/a", EyeColor: "yellow", SkinColor: "gold"},
	{Name: "R2-D2", Gender: "n/a", EyeColor: "red", SkinColor: "white, blue"},
	{Name: "Darth Vader", Gender: "male", EyeColor: "yellow", SkinColor: "white"},
	{Name: "Leia Organa", Gender: "female", EyeColor: "brown", SkinColor: "light"},
}

var seedPlanets = []models.Planet{
	{Name: "Tatooine", Population: "200000", Terrain: "desert", Climate: "arid"},
	{Name: "Alderaan", Population: "2000000000", Terrain: "grasslands, mountains", Climate: "temperate"},
	{Name: "Yavin IV", Population: "1000", Terrain: "jungle, rainforests", Climate: "temperate, tropical"},
	{Name: "Hoth", Population: "unknown", Terrain: "tundra, ice caves, mountain ranges", Climate: "frozen"},
	{Name: "Dagobah", Population: "unknown", Terrain: "swamp, jungles", Climate: "murky"},
}

// seedTable inserts rows only when the table behind model is empty.
func seedTable[T any](tx *gorm.DB, rows []T) (int, error) {
	var model T
	var count int64
	if err := tx.Model(&model).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	batch := make([]T, len(rows))
	copy(batch, rows)
	if err := tx.Create(&batch).Error; err != nil {
		return 0, err
	}
	return len(batch), nil
}

// Seed fills empty users, people and planets tables with sample records.
// Tables that already hold rows are left alone, so it is safe to rerun.
func Seed(ctx context.Context, db *gorm.DB) (SeedResult, error) {
	var res SeedResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if res.Users, err = seedTable(tx, seedUsers); err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		if res.People, err = seedTable(tx, seedPeople); err != nil {
			return fmt.Errorf("failed to seed people: %w", err)
		}
		if res.Planets, err = seedTable(tx, seedPlanets); err != nil {
			return fmt.Errorf("failed to seed planets: %w", err)
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	return res, nil
}
