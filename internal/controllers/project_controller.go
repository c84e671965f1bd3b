package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobsight/backend/internal/middleware"
	"github.com/jobsight/backend/internal/models"
	"gorm.io/gorm"
)

type ProjectController struct {
	db *gorm.DB
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{db: db}
}

type ProjectRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	ClientID    *uint      `json:"clientId"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Budget      float64    `json:"budget"`
}

func (pc *ProjectController) GetProjects(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var projects []models.Project
	query := pc.db.Where("business_id = ?", businessID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if clientID := c.Query("clientId"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if err := query.Order("created_at asc").Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects, "count": len(projects)})
}

func (pc *ProjectController) GetProject(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var project models.Project
	if err := pc.db.Preload("Client").Preload("Tasks").Preload("Milestones").Preload("Issues").
		Where("business_id = ?", businessID).First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, project)
}

func (pc *ProjectController) CreateProject(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A client reference must stay inside the tenant.
	if req.ClientID != nil {
		var client models.Client
		if err := pc.db.Where("business_id = ?", businessID).First(&client, *req.ClientID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Client not found"})
			return
		}
	}

	project := models.Project{
		BusinessID:  businessID,
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
	}
	if req.Status != "" {
		project.Status = models.ProjectStatus(req.Status)
	}

	if err := pc.db.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (pc *ProjectController) UpdateProject(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var project models.Project
	if err := pc.db.Where("business_id = ?", businessID).First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ClientID != nil {
		var client models.Client
		if err := pc.db.Where("business_id = ?", businessID).First(&client, *req.ClientID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Client not found"})
			return
		}
	}

	project.Name = req.Name
	project.Description = req.Description
	project.Address = req.Address
	project.ClientID = req.ClientID
	project.StartDate = req.StartDate
	project.EndDate = req.EndDate
	project.Budget = req.Budget
	if req.Status != "" {
		project.Status = models.ProjectStatus(req.Status)
	}

	if err := pc.db.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

func (pc *ProjectController) DeleteProject(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var project models.Project
	if err := pc.db.Where("business_id = ?", businessID).First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if err := pc.db.Delete(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted"})
}
