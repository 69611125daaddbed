package models

import "fmt"

// TargetKind names what a favorite points at.
type TargetKind string

const (
	TargetPerson TargetKind = "people"
	TargetPlanet TargetKind = "planets"
)

// FavoriteTarget is the bookmarked record: exactly one person or one planet.
type FavoriteTarget struct {
	Kind TargetKind
	ID   uint
}

func PersonTarget(id uint) FavoriteTarget {
	return FavoriteTarget{Kind: TargetPerson, ID: id}
}

func PlanetTarget(id uint) FavoriteTarget {
	return FavoriteTarget{Kind: TargetPlanet, ID: id}
}

// Column returns the favorites column that references the target.
func (t FavoriteTarget) Column() string {
	switch t.Kind {
	case TargetPerson:
		return "people_id"
	case TargetPlanet:
		return "planets_id"
	default:
		return ""
	}
}

// Valid reports whether the target has a known kind.
func (t FavoriteTarget) Valid() bool {
	return t.Column() != ""
}

func (t FavoriteTarget) String() string {
	return fmt.Sprintf("%s/%d", t.Kind, t.ID)
}

// Favorite links a user to exactly one person or planet.
// It corresponds to the 'favorites' table. The two composite unique indexes
// make (user, person) and (user, planet) pairs unique; NULLs never collide.
type Favorite struct {
	ID        uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint  `gorm:"not null;uniqueIndex:idx_favorites_user_people;uniqueIndex:idx_favorites_user_planets" json:"user_id"`
	PeopleID  *uint `gorm:"uniqueIndex:idx_favorites_user_people;index" json:"people_id"`
	PlanetsID *uint `gorm:"uniqueIndex:idx_favorites_user_planets;index;check:chk_favorites_single_target,(people_id IS NULL) <> (planets_id IS NULL)" json:"planets_id"`
}

// TableName explicitly sets the table name for GORM.
func (Favorite) TableName() string {
	return "favorites"
}

// NewFavorite builds a favorite row with only the target's column set.
func NewFavorite(userID uint, target FavoriteTarget) Favorite {
	fav := Favorite{UserID: userID}
	id := target.ID
	switch target.Kind {
	case TargetPerson:
		fav.PeopleID = &id
	case TargetPlanet:
		fav.PlanetsID = &id
	}
	return fav
}

// Target recovers the bookmarked record from the nullable columns.
// ok is false for a row that references neither or both.
func (f Favorite) Target() (target FavoriteTarget, ok bool) {
	switch {
	case f.PeopleID != nil && f.PlanetsID == nil:
		return PersonTarget(*f.PeopleID), true
	case f.PlanetsID != nil && f.PeopleID == nil:
		return PlanetTarget(*f.PlanetsID), true
	default:
		return FavoriteTarget{}, false
	}
}

func (f Favorite) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":         f.ID,
		"user_id":    f.UserID,
		"people_id":  f.PeopleID,
		"planets_id": f.PlanetsID,
	}
}

// SerializeFavorites always returns a non-nil slice so the JSON is an array.
func SerializeFavorites(favorites []Favorite) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(favorites))
	for _, fav := range favorites {
		out = append(out, fav.Serialize())
	}
	return out
}
