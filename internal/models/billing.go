package models

import (
	"time"

	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPartial   InvoiceStatus = "PARTIAL"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

type Invoice struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	BusinessID uint           `json:"businessId" gorm:"not null;index"`
	ClientID   uint           `json:"clientId" gorm:"not null;index"`
	Client     Client         `json:"client" gorm:"foreignKey:ClientID"`
	ProjectID  *uint          `json:"projectId"`
	Project    *Project       `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Number     string         `json:"number" gorm:"uniqueIndex;not null"`
	Amount     float64        `json:"amount" gorm:"not null"`
	Status     InvoiceStatus  `json:"status" gorm:"default:'DRAFT'"`
	IssuedAt   *time.Time     `json:"issuedAt"`
	DueDate    *time.Time     `json:"dueDate"`
	Notes      string         `json:"notes" gorm:"type:text"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:InvoiceID"`
}

type Payment struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	InvoiceID uint           `json:"invoiceId" gorm:"not null;index"`
	Amount    float64        `json:"amount" gorm:"not null"`
	Method    string         `json:"method"`
	PaidAt    time.Time      `json:"paidAt"`
	Reference string         `json:"reference"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Invoice) TableName() string {
	return "invoices"
}

func (Payment) TableName() string {
	return "payments"
}
