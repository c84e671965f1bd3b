package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobsight/backend/internal/middleware"
	"github.com/jobsight/backend/internal/models"
	"gorm.io/gorm"
)

type EquipmentController struct {
	db *gorm.DB
}

func NewEquipmentController(db *gorm.DB) *EquipmentController {
	return &EquipmentController{db: db}
}

type EquipmentRequest struct {
	Name         string     `json:"name" binding:"required"`
	Type         string     `json:"type"`
	SerialNumber string     `json:"serialNumber"`
	Status       string     `json:"status"`
	PurchaseDate *time.Time `json:"purchaseDate"`
	PurchaseCost float64    `json:"purchaseCost"`
	Notes        string     `json:"notes"`
}

type AssignEquipmentRequest struct {
	ProjectID uint       `json:"projectId" binding:"required"`
	StartDate time.Time  `json:"startDate" binding:"required"`
	EndDate   *time.Time `json:"endDate"`
}

func (ec *EquipmentController) GetEquipment(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var equipment []models.Equipment
	query := ec.db.Where("business_id = ?", businessID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("name asc").Find(&equipment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch equipment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"equipment": equipment, "count": len(equipment)})
}

func (ec *EquipmentController) GetEquipmentItem(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var item models.Equipment
	if err := ec.db.Preload("Assignments").Preload("Assignments.Project").
		Where("business_id = ?", businessID).First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (ec *EquipmentController) CreateEquipment(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var req EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.Equipment{
		BusinessID:   businessID,
		Name:         req.Name,
		Type:         req.Type,
		SerialNumber: req.SerialNumber,
		PurchaseDate: req.PurchaseDate,
		PurchaseCost: req.PurchaseCost,
		Notes:        req.Notes,
	}
	if req.Status != "" {
		item.Status = models.EquipmentStatus(req.Status)
	}

	if err := ec.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create equipment"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (ec *EquipmentController) UpdateEquipment(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var item models.Equipment
	if err := ec.db.Where("business_id = ?", businessID).First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		return
	}

	var req EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.Name = req.Name
	item.Type = req.Type
	item.SerialNumber = req.SerialNumber
	item.PurchaseDate = req.PurchaseDate
	item.PurchaseCost = req.PurchaseCost
	item.Notes = req.Notes
	if req.Status != "" {
		item.Status = models.EquipmentStatus(req.Status)
	}

	if err := ec.db.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update equipment"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (ec *EquipmentController) DeleteEquipment(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var item models.Equipment
	if err := ec.db.Where("business_id = ?", businessID).First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		return
	}

	if err := ec.db.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete equipment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Equipment deleted"})
}

// AssignEquipment places equipment on a project and flips its status to
// IN_USE while the assignment is open.
func (ec *EquipmentController) AssignEquipment(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var item models.Equipment
	if err := ec.db.Where("business_id = ?", businessID).First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		return
	}

	var req AssignEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project models.Project
	if err := ec.db.Where("business_id = ?", businessID).First(&project, req.ProjectID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project not found"})
		return
	}

	assignment := models.EquipmentAssignment{
		EquipmentID: item.ID,
		ProjectID:   project.ID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := ec.db.Create(&assignment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign equipment"})
		return
	}

	if assignment.EndDate == nil {
		item.Status = models.EquipmentStatusInUse
		ec.db.Save(&item)
	}

	c.JSON(http.StatusCreated, assignment)
}

func (ec *EquipmentController) UnassignEquipment(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var item models.Equipment
	if err := ec.db.Where("business_id = ?", businessID).First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		return
	}

	var assignment models.EquipmentAssignment
	if err := ec.db.Where("equipment_id = ?", item.ID).First(&assignment, c.Param("assignmentId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		return
	}

	now := time.Now()
	assignment.EndDate = &now
	if err := ec.db.Save(&assignment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close assignment"})
		return
	}

	item.Status = models.EquipmentStatusAvailable
	ec.db.Save(&item)

	c.JSON(http.StatusOK, assignment)
}
