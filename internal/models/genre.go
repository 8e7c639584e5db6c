package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Genre struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Slug      string         `gorm:"column:url_slug;uniqueIndex" json:"slug"`
	Artists   []Artist       `gorm:"many2many:artist_genres;" json:"artists,omitempty"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (genre *Genre) BeforeCreate(tx *gorm.DB) (err error) {
	if genre.ID == uuid.Nil {
		genre.ID = uuid.New()
	}
	return
}
