package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Artist struct {
	gorm.Model
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Hometown  string    `json:"hometown"`
	About     string    `json:"about"`
	Photo     string    `json:"photo"`
	Spotify   string    `json:"spotify"`
	Website   string    `json:"website"`
	Facebook  string    `json:"facebook"`
	Twitter   string    `json:"twitter"`
	Instagram string    `json:"instagram"`
	Merch     string    `json:"merch"`
	Slug      string    `gorm:"column:url_slug;uniqueIndex" json:"slug"`
	Genres    []Genre   `gorm:"many2many:artist_genres;" json:"genres,omitempty"`
}

func (artist *Artist) BeforeCreate(tx *gorm.DB) (err error) {
	if artist.ID == uuid.Nil {
		artist.ID = uuid.New()
	}
	return
}
