package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobsight/backend/internal/middleware"
	"github.com/jobsight/backend/internal/models"
	"gorm.io/gorm"
)

type MilestoneController struct {
	db *gorm.DB
}

func NewMilestoneController(db *gorm.DB) *MilestoneController {
	return &MilestoneController{db: db}
}

type MilestoneRequest struct {
	ProjectID   uint       `json:"projectId" binding:"required"`
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
}

func (mc *MilestoneController) GetMilestones(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var milestones []models.Milestone
	query := mc.db.Where("business_id = ?", businessID)
	if projectID := c.Query("projectId"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if err := query.Order("due_date asc").Find(&milestones).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch milestones"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"milestones": milestones, "count": len(milestones)})
}

func (mc *MilestoneController) CreateMilestone(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var req MilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project models.Project
	if err := mc.db.Where("business_id = ?", businessID).First(&project, req.ProjectID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project not found"})
		return
	}

	milestone := models.Milestone{
		BusinessID:  businessID,
		ProjectID:   project.ID,
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.Status != "" {
		milestone.Status = models.MilestoneStatus(req.Status)
	}

	if err := mc.db.Create(&milestone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create milestone"})
		return
	}

	c.JSON(http.StatusCreated, milestone)
}

func (mc *MilestoneController) UpdateMilestone(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var milestone models.Milestone
	if err := mc.db.Where("business_id = ?", businessID).First(&milestone, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}

	var req MilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	milestone.Name = req.Name
	milestone.Description = req.Description
	milestone.DueDate = req.DueDate
	if req.Status != "" {
		newStatus := models.MilestoneStatus(req.Status)
		if newStatus == models.MilestoneStatusCompleted && milestone.Status != models.MilestoneStatusCompleted {
			now := time.Now()
			milestone.CompletedAt = &now
		}
		milestone.Status = newStatus
	}

	if err := mc.db.Save(&milestone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update milestone"})
		return
	}

	c.JSON(http.StatusOK, milestone)
}

func (mc *MilestoneController) DeleteMilestone(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var milestone models.Milestone
	if err := mc.db.Where("business_id = ?", businessID).First(&milestone, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}

	if err := mc.db.Delete(&milestone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete milestone"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Milestone deleted"})
}
