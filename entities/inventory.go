package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultDangerLevel = 5.0

type InventoryLevel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Item        string    `gorm:"size:64;uniqueIndex;not null" json:"item"`
	Qty         float64   `gorm:"not null;default:0" json:"qty"`
	DangerLevel float64   `gorm:"not null" json:"danger_level"`
	Timestamp
}

func (i *InventoryLevel) BeforeCreate(tx *gorm.DB) error {
	ensureID(&i.ID)
	return nil
}
