package models

// User is an account that bookmarks people and planets.
// It corresponds to the 'user' table.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"not null;uniqueIndex" json:"username"`

	// Relationships
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorite"`
}

// TableName explicitly sets the table name for GORM.
func (User) TableName() string {
	return "user"
}

// Serialize flattens the user and its favorites into a JSON-ready map.
func (u User) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":       u.ID,
		"username": u.Username,
		"favorite": SerializeFavorites(u.Favorites),
	}
}
