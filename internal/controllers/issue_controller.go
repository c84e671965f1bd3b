package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobsight/backend/internal/middleware"
	"github.com/jobsight/backend/internal/models"
	"gorm.io/gorm"
)

type IssueController struct {
	db *gorm.DB
}

func NewIssueController(db *gorm.DB) *IssueController {
	return &IssueController{db: db}
}

type IssueRequest struct {
	ProjectID   uint   `json:"projectId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Status      string `json:"status"`
}

func (ic *IssueController) GetIssues(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var issues []models.Issue
	query := ic.db.Where("business_id = ?", businessID)
	if projectID := c.Query("projectId"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if severity := c.Query("severity"); severity != "" {
		query = query.Where("severity = ?", severity)
	}
	if err := query.Order("created_at desc").Find(&issues).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch issues"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"issues": issues, "count": len(issues)})
}

func (ic *IssueController) GetIssue(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var issue models.Issue
	if err := ic.db.Preload("Project").Where("business_id = ?", businessID).First(&issue, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	c.JSON(http.StatusOK, issue)
}

func (ic *IssueController) CreateIssue(c *gin.Context) {
	businessID := middleware.BusinessID(c)
	userID := middleware.UserID(c)

	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project models.Project
	if err := ic.db.Where("business_id = ?", businessID).First(&project, req.ProjectID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project not found"})
		return
	}

	issue := models.Issue{
		BusinessID:  businessID,
		ProjectID:   project.ID,
		Title:       req.Title,
		Description: req.Description,
		ReportedBy:  userID,
	}
	if req.Severity != "" {
		issue.Severity = models.IssueSeverity(req.Severity)
	}
	if req.Status != "" {
		issue.Status = models.IssueStatus(req.Status)
	}

	if err := ic.db.Create(&issue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	c.JSON(http.StatusCreated, issue)
}

func (ic *IssueController) UpdateIssue(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var issue models.Issue
	if err := ic.db.Where("business_id = ?", businessID).First(&issue, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue.Title = req.Title
	issue.Description = req.Description
	if req.Severity != "" {
		issue.Severity = models.IssueSeverity(req.Severity)
	}
	if req.Status != "" {
		newStatus := models.IssueStatus(req.Status)
		if newStatus == models.IssueStatusResolved && issue.Status != models.IssueStatusResolved {
			now := time.Now()
			issue.ResolvedAt = &now
		}
		issue.Status = newStatus
	}

	if err := ic.db.Save(&issue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		return
	}

	c.JSON(http.StatusOK, issue)
}

func (ic *IssueController) DeleteIssue(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var issue models.Issue
	if err := ic.db.Where("business_id = ?", businessID).First(&issue, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	if err := ic.db.Delete(&issue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete issue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Issue deleted"})
}
