package models

import (
	"time"

	"gorm.io/gorm"
)

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "ACTIVE"
	ClientStatusInactive ClientStatus = "INACTIVE"
	ClientStatusArchived ClientStatus = "ARCHIVED"
)

type Client struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	BusinessID  uint           `json:"businessId" gorm:"not null;index"`
	Name        string         `json:"name" gorm:"not null"`
	ContactName string         `json:"contactName"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	Status      ClientStatus   `json:"status" gorm:"default:'ACTIVE'"`
	Notes       string         `json:"notes" gorm:"type:text"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:ClientID"`
}

func (Client) TableName() string {
	return "clients"
}
