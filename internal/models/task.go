package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStage string

const (
	TaskStageTodo       TaskStage = "todo"
	TaskStageInProgress TaskStage = "in progress"
	TaskStageCompleted  TaskStage = "completed"
)

// Task carries the minimum the notification ledger needs: notices link back
// to the task whose lifecycle produced them. Task management itself lives in
// another service.
type Task struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Stage     TaskStage      `gorm:"type:varchar(20);not null;default:'todo'" json:"stage"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
