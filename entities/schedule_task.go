package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TaskActionCompleted = "completed"
	TaskActionCancelled = "cancelled"
)

type ScheduleTask struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Weekday  string    `gorm:"size:16;index" json:"weekday"`
	Task     string    `gorm:"size:128" json:"task"`
	Item     string    `gorm:"size:64;index" json:"item"`
	Qty      float64   `gorm:"not null;default:0" json:"qty"`
	Done     bool      `gorm:"not null;default:false;index" json:"done"`
	// Position orders tasks by creation across generation runs.
	Position int64     `gorm:"not null;default:0;index" json:"position"`
	Timestamp
}

func (t *ScheduleTask) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

// TaskEvent is the append-only history of tasks removed from the schedule.
type TaskEvent struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	TaskID    uuid.UUID `gorm:"type:char(36);index" json:"task_id"`
	Weekday   string    `gorm:"size:16" json:"weekday"`
	Task      string    `gorm:"size:128" json:"task"`
	Item      string    `gorm:"size:64" json:"item"`
	Qty       float64   `json:"qty"`
	Action    string    `gorm:"size:16;index" json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *TaskEvent) BeforeCreate(tx *gorm.DB) error {
	ensureID(&e.ID)
	return nil
}
