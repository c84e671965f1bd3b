package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyLog records one crew/project day: time range, computed hours, and the
// narrative fields filled either from the manual entry form or by the AI
// assistant. HoursWorked and Overtime are always present (zero when unknown).
type DailyLog struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	BusinessID  uint           `json:"businessId" gorm:"not null;index"`
	ProjectID   uint           `json:"projectId" gorm:"not null;index"`
	Project     Project        `json:"project" gorm:"foreignKey:ProjectID"`
	CrewID      *uint          `json:"crewId"`
	Crew        *Crew          `json:"crew,omitempty" gorm:"foreignKey:CrewID"`
	LogDate     time.Time      `json:"logDate" gorm:"not null;index"`
	StartTime   string         `json:"startTime"` // HH:MM
	EndTime     string         `json:"endTime"`   // HH:MM
	HoursWorked float64        `json:"hoursWorked" gorm:"default:0"`
	Overtime    float64        `json:"overtime" gorm:"default:0"`

	WorkCompleted string `json:"workCompleted" gorm:"type:text"`
	WorkPlanned   string `json:"workPlanned" gorm:"type:text"`
	Weather       string `json:"weather"`
	Safety        string `json:"safety" gorm:"type:text"`
	Quality       string `json:"quality" gorm:"type:text"`
	Delays        string `json:"delays" gorm:"type:text"`
	Notes         string `json:"notes" gorm:"type:text"`

	CreatedBy uint           `json:"createdBy" gorm:"not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Materials []DailyLogMaterial  `json:"materials,omitempty" gorm:"foreignKey:DailyLogID"`
	Equipment []DailyLogEquipment `json:"equipment,omitempty" gorm:"foreignKey:DailyLogID"`
}

type DailyLogMaterial struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	DailyLogID uint           `json:"dailyLogId" gorm:"not null;index"`
	Name       string         `json:"name" gorm:"not null"`
	Quantity   string         `json:"quantity"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

type DailyLogEquipment struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	DailyLogID uint           `json:"dailyLogId" gorm:"not null;index"`
	Name       string         `json:"name" gorm:"not null"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

func (DailyLog) TableName() string {
	return "daily_logs"
}

func (DailyLogMaterial) TableName() string {
	return "daily_log_materials"
}

func (DailyLogEquipment) TableName() string {
	return "daily_log_equipment"
}
