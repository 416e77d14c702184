package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryPlan struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Day        string    `gorm:"size:10;not null;uniqueIndex:uq_plan_day_item" json:"day"`
	Item       string    `gorm:"size:64;not null;uniqueIndex:uq_plan_day_item" json:"item"`
	PlannedQty float64   `gorm:"not null;default:0" json:"planned_qty"`
	Confirmed  bool      `gorm:"not null;default:false" json:"confirmed"`
	Timestamp
}

func (d *DeliveryPlan) BeforeCreate(tx *gorm.DB) error {
	ensureID(&d.ID)
	return nil
}
