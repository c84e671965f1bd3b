package models

import (
	"time"

	"gorm.io/gorm"
)

type MemberRole string

const (
	MemberRoleOwner   MemberRole = "OWNER"
	MemberRoleAdmin   MemberRole = "ADMIN"
	MemberRoleManager MemberRole = "MANAGER"
	MemberRoleWorker  MemberRole = "WORKER"
)

// Business is the tenant boundary. Every domain record hangs off a business
// and queries are always scoped by business id.
type Business struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Industry  string         `json:"industry"`
	Phone     string         `json:"phone"`
	Address   string         `json:"address"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BusinessMember links a user to a business with a role. A user without a
// membership has no tenant context and is rejected by the tenant middleware.
type BusinessMember struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	BusinessID uint           `json:"businessId" gorm:"not null;index"`
	Business   Business       `json:"business" gorm:"foreignKey:BusinessID"`
	UserID     uint           `json:"userId" gorm:"not null;uniqueIndex"`
	User       User           `json:"user" gorm:"foreignKey:UserID"`
	Role       MemberRole     `json:"role" gorm:"not null;default:'WORKER'"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Business) TableName() string {
	return "businesses"
}

func (BusinessMember) TableName() string {
	return "business_members"
}
