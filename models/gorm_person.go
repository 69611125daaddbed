package models

// Person represents a character that can be bookmarked.
// It corresponds to the 'people' table.
type Person struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Gender    string `gorm:"not null" json:"gender"`
	EyeColor  string `gorm:"not null" json:"eye_color"`
	SkinColor string `gorm:"not null" json:"skin_color"`

	// Relationships
	Favorites []Favorite `gorm:"foreignKey:PeopleID;constraint:OnDelete:CASCADE" json:"favorite"`
}

// TableName explicitly sets the table name for GORM.
func (Person) TableName() string {
	return "people"
}

// Serialize flattens the person and the favorites pointing at it.
func (p Person) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":         p.ID,
		"name":       p.Name,
		"gender":     p.Gender,
		"eye_color":  p.EyeColor,
		"skin_color": p.SkinColor,
		"favorite":   SerializeFavorites(p.Favorites),
	}
}
