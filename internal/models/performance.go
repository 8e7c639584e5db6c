package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Performance schedules an artist on a porch at a given time. An artist
// cannot play two porches at once and a porch cannot host two artists at
// once; both rules are backed by unique indexes rather than application
// scans alone.
type Performance struct {
	gorm.Model
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ArtistID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_artist_time" json:"artist_id"`
	PorchID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_porch_time" json:"porch_id"`
	Time     time.Time `gorm:"not null;uniqueIndex:idx_artist_time;uniqueIndex:idx_porch_time" json:"time"`
	Artist   Artist    `json:"artist,omitempty"`
	Porch    Porch     `json:"porch,omitempty"`
}

func (performance *Performance) BeforeCreate(tx *gorm.DB) (err error) {
	if performance.ID == uuid.Nil {
		performance.ID = uuid.New()
	}
	return
}
