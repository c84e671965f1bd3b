package models

import (
	"time"

	"gorm.io/gorm"
)

type Crew struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	BusinessID uint           `json:"businessId" gorm:"not null;index"`
	Name       string         `json:"name" gorm:"not null"`
	Specialty  string         `json:"specialty"`
	LeaderName string         `json:"leaderName"`
	Notes      string         `json:"notes" gorm:"type:text"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Members []CrewMember `json:"members,omitempty" gorm:"foreignKey:CrewID"`
}

type CrewMember struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CrewID    uint           `json:"crewId" gorm:"not null;index"`
	Name      string         `json:"name" gorm:"not null"`
	Role      string         `json:"role"`
	Phone     string         `json:"phone"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Crew) TableName() string {
	return "crews"
}

func (CrewMember) TableName() string {
	return "crew_members"
}
