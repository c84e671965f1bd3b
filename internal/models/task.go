package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusBlocked    TaskStatus = "BLOCKED"
	TaskStatusDone       TaskStatus = "DONE"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

type Task struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	BusinessID  uint           `json:"businessId" gorm:"not null;index"`
	ProjectID   uint           `json:"projectId" gorm:"not null;index"`
	Project     Project        `json:"project" gorm:"foreignKey:ProjectID"`
	CrewID      *uint          `json:"crewId"`
	Crew        *Crew          `json:"crew,omitempty" gorm:"foreignKey:CrewID"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Status      TaskStatus     `json:"status" gorm:"default:'TODO'"`
	Priority    TaskPriority   `json:"priority" gorm:"default:'MEDIUM'"`
	DueDate     *time.Time     `json:"dueDate"`
	CompletedAt *time.Time     `json:"completedAt"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Task) TableName() string {
	return "tasks"
}
