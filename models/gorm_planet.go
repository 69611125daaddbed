package models

// Planet represents a planet that can be bookmarked.
// It corresponds to the 'planets' table.
type Planet struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	Population string `gorm:"not null" json:"population"` // kept as text, source data has values like "unknown"
	Terrain    string `gorm:"not null" json:"terrain"`
	Climate    string `gorm:"not null" json:"climate"`

	// Relationships
	Favorites []Favorite `gorm:"foreignKey:PlanetsID;constraint:OnDelete:CASCADE" json:"favorite"`
}

// TableName explicitly sets the table name for GORM.
func (Planet) TableName() string {
	return "planets"
}

func (p Planet) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":         p.ID,
		"name":       p.Name,
		"population": p.Population,
		"terrain":    p.Terrain,
		"climate":    p.Climate,
		"favorite":   SerializeFavorites(p.Favorites),
	}
}
