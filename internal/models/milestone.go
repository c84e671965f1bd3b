package models

import (
	"time"

	"gorm.io/gorm"
)

type MilestoneStatus string

const (
	MilestoneStatusPending   MilestoneStatus = "PENDING"
	MilestoneStatusCompleted MilestoneStatus = "COMPLETED"
	MilestoneStatusMissed    MilestoneStatus = "MISSED"
)

type Milestone struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	BusinessID  uint            `json:"businessId" gorm:"not null;index"`
	ProjectID   uint            `json:"projectId" gorm:"not null;index"`
	Project     Project         `json:"project" gorm:"foreignKey:ProjectID"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description" gorm:"type:text"`
	Status      MilestoneStatus `json:"status" gorm:"default:'PENDING'"`
	DueDate     *time.Time      `json:"dueDate"`
	CompletedAt *time.Time      `json:"completedAt"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`
}

func (Milestone) TableName() string {
	return "milestones"
}
