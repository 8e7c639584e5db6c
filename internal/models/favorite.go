package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite joins a user to an artist. The (user, artist) pair is unique at
// the storage level so concurrent toggles cannot produce duplicate rows.
type Favorite struct {
	gorm.Model
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_artist" json:"user_id"`
	ArtistID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_artist" json:"artist_id"`
	Favorite bool      `gorm:"not null;default:false" json:"favorite"`
	User     User      `json:"-"`
	Artist   Artist    `json:"artist,omitempty"`
}

func (favorite *Favorite) BeforeCreate(tx *gorm.DB) (err error) {
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	return
}
