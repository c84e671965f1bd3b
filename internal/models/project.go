package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "PLANNING"
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusOnHold    ProjectStatus = "ON_HOLD"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusCancelled ProjectStatus = "CANCELLED"
)

type Project struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	BusinessID  uint           `json:"businessId" gorm:"not null;index"`
	ClientID    *uint          `json:"clientId"`
	Client      *Client        `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Address     string         `json:"address"`
	Status      ProjectStatus  `json:"status" gorm:"default:'PLANNING'"`
	StartDate   *time.Time     `json:"startDate"`
	EndDate     *time.Time     `json:"endDate"`
	Budget      float64        `json:"budget" gorm:"default:0"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Tasks      []Task      `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
	Milestones []Milestone `json:"milestones,omitempty" gorm:"foreignKey:ProjectID"`
	Issues     []Issue     `json:"issues,omitempty" gorm:"foreignKey:ProjectID"`
	DailyLogs  []DailyLog  `json:"dailyLogs,omitempty" gorm:"foreignKey:ProjectID"`
}

func (Project) TableName() string {
	return "projects"
}
