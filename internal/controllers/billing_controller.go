package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jobsight/backend/internal/middleware"
	"github.com/jobsight/backend/internal/models"
	"gorm.io/gorm"
)

type BillingController struct {
	db *gorm.DB
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{db: db}
}

type InvoiceRequest struct {
	ClientID  uint       `json:"clientId" binding:"required"`
	ProjectID *uint      `json:"projectId"`
	Amount    float64    `json:"amount" binding:"required,gt=0"`
	DueDate   *time.Time `json:"dueDate"`
	Notes     string     `json:"notes"`
}

type PaymentRequest struct {
	Amount    float64    `json:"amount" binding:"required,gt=0"`
	Method    string     `json:"method"`
	Reference string     `json:"reference"`
	PaidAt    *time.Time `json:"paidAt"`
}

func (bc *BillingController) GetInvoices(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var invoices []models.Invoice
	query := bc.db.Preload("Client").Preload("Payments").Where("business_id = ?", businessID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if clientID := c.Query("clientId"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if err := query.Order("created_at desc").Find(&invoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices, "count": len(invoices)})
}

func (bc *BillingController) GetInvoice(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var invoice models.Invoice
	if err := bc.db.Preload("Client").Preload("Project").Preload("Payments").
		Where("business_id = ?", businessID).First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	paid := paidTotal(invoice.Payments)

	c.JSON(http.StatusOK, gin.H{
		"invoice": invoice,
		"paid":    paid,
		"balance": invoice.Amount - paid,
	})
}

func (bc *BillingController) CreateInvoice(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var client models.Client
	if err := bc.db.Where("business_id = ?", businessID).First(&client, req.ClientID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client not found"})
		return
	}
	if req.ProjectID != nil {
		var project models.Project
		if err := bc.db.Where("business_id = ?", businessID).First(&project, *req.ProjectID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Project not found"})
			return
		}
	}

	invoice := models.Invoice{
		BusinessID: businessID,
		ClientID:   client.ID,
		ProjectID:  req.ProjectID,
		Number:     newInvoiceNumber(),
		Amount:     req.Amount,
		DueDate:    req.DueDate,
		Notes:      req.Notes,
	}

	if err := bc.db.Create(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

func (bc *BillingController) SendInvoice(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var invoice models.Invoice
	if err := bc.db.Where("business_id = ?", businessID).First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	if invoice.Status != models.InvoiceStatusDraft {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only draft invoices can be sent"})
		return
	}

	now := time.Now()
	invoice.Status = models.InvoiceStatusSent
	invoice.IssuedAt = &now
	if err := bc.db.Save(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// RecordPayment appends a payment and rolls the invoice status forward to
// PARTIAL or PAID based on the running total.
func (bc *BillingController) RecordPayment(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var invoice models.Invoice
	if err := bc.db.Preload("Payments").Where("business_id = ?", businessID).First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	paidAt := time.Now()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	payment := models.Payment{
		InvoiceID: invoice.ID,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		PaidAt:    paidAt,
	}

	if err := bc.db.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	paid := paidTotal(invoice.Payments) + payment.Amount
	if paid >= invoice.Amount {
		invoice.Status = models.InvoiceStatusPaid
	} else {
		invoice.Status = models.InvoiceStatusPartial
	}
	bc.db.Save(&invoice)

	c.JSON(http.StatusCreated, gin.H{
		"payment": payment,
		"paid":    paid,
		"balance": invoice.Amount - paid,
		"status":  invoice.Status,
	})
}

func (bc *BillingController) CancelInvoice(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var invoice models.Invoice
	if err := bc.db.Where("business_id = ?", businessID).First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	if invoice.Status == models.InvoiceStatusPaid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paid invoices cannot be cancelled"})
		return
	}

	invoice.Status = models.InvoiceStatusCancelled
	if err := bc.db.Save(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel invoice"})
		return
	}

	c.JSON(http.StatusOK, invoice)
}

func paidTotal(payments []models.Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

func newInvoiceNumber() string {
	suffix := strings.ToUpper(strings.Split(uuid.NewString(), "-")[0])
	return fmt.Sprintf("INV-%s-%s", time.Now().Format("200601"), suffix)
}
