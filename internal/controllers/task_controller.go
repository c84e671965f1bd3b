package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobsight/backend/internal/middleware"
	"github.com/jobsight/backend/internal/models"
	"gorm.io/gorm"
)

type TaskController struct {
	db *gorm.DB
}

func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{db: db}
}

type TaskRequest struct {
	ProjectID   uint       `json:"projectId" binding:"required"`
	CrewID      *uint      `json:"crewId"`
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

func (tc *TaskController) GetTasks(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var tasks []models.Task
	query := tc.db.Where("business_id = ?", businessID)
	if projectID := c.Query("projectId"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("due_date asc").Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

func (tc *TaskController) GetTask(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var task models.Task
	if err := tc.db.Preload("Project").Preload("Crew").Where("business_id = ?", businessID).First(&task, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) CreateTask(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project models.Project
	if err := tc.db.Where("business_id = ?", businessID).First(&project, req.ProjectID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project not found"})
		return
	}

	task := models.Task{
		BusinessID:  businessID,
		ProjectID:   project.ID,
		CrewID:      req.CrewID,
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.Status != "" {
		task.Status = models.TaskStatus(req.Status)
	}
	if req.Priority != "" {
		task.Priority = models.TaskPriority(req.Priority)
	}

	if err := tc.db.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (tc *TaskController) UpdateTask(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var task models.Task
	if err := tc.db.Where("business_id = ?", businessID).First(&task, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task.Name = req.Name
	task.Description = req.Description
	task.CrewID = req.CrewID
	task.DueDate = req.DueDate
	if req.Status != "" {
		newStatus := models.TaskStatus(req.Status)
		if newStatus == models.TaskStatusDone && task.Status != models.TaskStatusDone {
			now := time.Now()
			task.CompletedAt = &now
		}
		task.Status = newStatus
	}
	if req.Priority != "" {
		task.Priority = models.TaskPriority(req.Priority)
	}

	if err := tc.db.Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) DeleteTask(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var task models.Task
	if err := tc.db.Where("business_id = ?", businessID).First(&task, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if err := tc.db.Delete(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Task deleted"})
}
