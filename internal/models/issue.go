package models

import (
	"time"

	"gorm.io/gorm"
)

type IssueSeverity string

const (
	IssueSeverityLow      IssueSeverity = "LOW"
	IssueSeverityMedium   IssueSeverity = "MEDIUM"
	IssueSeverityHigh     IssueSeverity = "HIGH"
	IssueSeverityCritical IssueSeverity = "CRITICAL"
)

type IssueStatus string

const (
	IssueStatusOpen       IssueStatus = "OPEN"
	IssueStatusInProgress IssueStatus = "IN_PROGRESS"
	IssueStatusResolved   IssueStatus = "RESOLVED"
	IssueStatusClosed     IssueStatus = "CLOSED"
)

type Issue struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	BusinessID  uint           `json:"businessId" gorm:"not null;index"`
	ProjectID   uint           `json:"projectId" gorm:"not null;index"`
	Project     Project        `json:"project" gorm:"foreignKey:ProjectID"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Severity    IssueSeverity  `json:"severity" gorm:"default:'MEDIUM'"`
	Status      IssueStatus    `json:"status" gorm:"default:'OPEN'"`
	ReportedBy  uint           `json:"reportedBy" gorm:"not null"`
	ResolvedAt  *time.Time     `json:"resolvedAt"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Issue) TableName() string {
	return "issues"
}
