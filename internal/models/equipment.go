package models

import (
	"time"

	"gorm.io/gorm"
)

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentStatusInUse       EquipmentStatus = "IN_USE"
	EquipmentStatusMaintenance EquipmentStatus = "MAINTENANCE"
	EquipmentStatusRetired     EquipmentStatus = "RETIRED"
)

type Equipment struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	BusinessID   uint            `json:"businessId" gorm:"not null;index"`
	Name         string          `json:"name" gorm:"not null"`
	Type         string          `json:"type"`
	SerialNumber string          `json:"serialNumber"`
	Status       EquipmentStatus `json:"status" gorm:"default:'AVAILABLE'"`
	PurchaseDate *time.Time      `json:"purchaseDate"`
	PurchaseCost float64         `json:"purchaseCost" gorm:"default:0"`
	Notes        string          `json:"notes" gorm:"type:text"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relationships
	Assignments []EquipmentAssignment `json:"assignments,omitempty" gorm:"foreignKey:EquipmentID"`
}

// EquipmentAssignment places a piece of equipment on a project for a date
// range. An open assignment has no end date.
type EquipmentAssignment struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	EquipmentID uint           `json:"equipmentId" gorm:"not null;index"`
	ProjectID   uint           `json:"projectId" gorm:"not null;index"`
	Project     Project        `json:"project" gorm:"foreignKey:ProjectID"`
	StartDate   time.Time      `json:"startDate" gorm:"not null"`
	EndDate     *time.Time     `json:"endDate"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Equipment) TableName() string {
	return "equipment"
}

func (EquipmentAssignment) TableName() string {
	return "equipment_assignments"
}
