package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetSchedule    = "schedule retrieved successfully"
	MessageSuccessCompleteTask   = "task completed"
	MessageSuccessDeleteTask     = "task deleted"
	MessageSuccessMoveTask       = "task moved"
	MessageSuccessUpdateTaskQty  = "task quantity updated"
	MessageSuccessGetTaskHistory = "task history retrieved successfully"

	MessageFailedGetSchedule    = "failed to retrieve schedule"
	MessageFailedExportSchedule = "failed to export schedule"
	MessageFailedCompleteTask   = "failed to complete task"
	MessageFailedDeleteTask     = "failed to delete task"
	MessageFailedMoveTask       = "failed to move task"
	MessageFailedUpdateTaskQty  = "failed to update task quantity"
	MessageFailedGetTaskHistory = "failed to retrieve task history"

	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidWeekday = errors.New("invalid weekday, must be one of Monday..Sunday")
)

type (
	ScheduleTask struct {
		ID      string  `json:"id"`
		Weekday string  `json:"weekday"`
		Task    string  `json:"task"`
		Item    string  `json:"item"`
		Qty     float64 `json:"qty"`
		Done    bool    `json:"done"`
	}

	TaskEvent struct {
		ID        string    `json:"id"`
		TaskID    string    `json:"task_id"`
		Weekday   string    `json:"weekday"`
		Task      string    `json:"task"`
		Item      string    `json:"item"`
		Qty       float64   `json:"qty"`
		Action    string    `json:"action"`
		CreatedAt time.Time `json:"created_at"`
	}

	CompleteTaskResponse struct {
		Task    ScheduleTask       `json:"task"`
		Applied map[string]float64 `json:"applied"`
	}

	MoveTaskRequest struct {
		NewWeekday string `json:"new_weekday" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	}

	MoveTaskResponse struct {
		OldWeekday string `json:"old_weekday"`
		NewWeekday string `json:"new_weekday"`
	}

	UpdateTaskQtyRequest struct {
		NewQty *float64 `json:"new_qty" validate:"required"`
	}

	UpdateTaskQtyResponse struct {
		OldQty float64 `json:"old_qty"`
		NewQty float64 `json:"new_qty"`
	}
)
