package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeftoverRecord is unused stock at the end of Day (YYYY-MM-DD).
type LeftoverRecord struct {
	ID   uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Day  string    `gorm:"size:10;not null;uniqueIndex:uq_leftovers_day_item" json:"day"`
	Item string    `gorm:"size:64;not null;uniqueIndex:uq_leftovers_day_item" json:"item"`
	Qty  float64   `gorm:"not null;default:0" json:"qty"`
	Timestamp
}

func (l *LeftoverRecord) BeforeCreate(tx *gorm.DB) error {
	ensureID(&l.ID)
	return nil
}
