package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Porch struct {
	gorm.Model
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Address string    `gorm:"unique;not null" json:"address"`
}

func (porch *Porch) BeforeCreate(tx *gorm.DB) (err error) {
	if porch.ID == uuid.Nil {
		porch.ID = uuid.New()
	}
	return
}
