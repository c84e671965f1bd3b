package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobsight/backend/internal/middleware"
	"github.com/jobsight/backend/internal/models"
	"github.com/jobsight/backend/internal/services"
	"gorm.io/gorm"
)

type DailyLogController struct {
	db *gorm.DB
}

func NewDailyLogController(db *gorm.DB) *DailyLogController {
	return &DailyLogController{db: db}
}

type DailyLogRequest struct {
	ProjectID     uint     `json:"projectId" binding:"required"`
	CrewID        *uint    `json:"crewId"`
	LogDate       string   `json:"logDate" binding:"required"` // YYYY-MM-DD
	StartTime     string   `json:"startTime"`                  // HH:MM
	EndTime       string   `json:"endTime"`                    // HH:MM
	HoursWorked   *float64 `json:"hoursWorked"`
	Overtime      *float64 `json:"overtime"`
	WorkCompleted string   `json:"workCompleted"`
	WorkPlanned   string   `json:"workPlanned"`
	Weather       string   `json:"weather"`
	Safety        string   `json:"safety"`
	Quality       string   `json:"quality"`
	Delays        string   `json:"delays"`
	Notes         string   `json:"notes"`
	Materials     []string `json:"materials"`
	Equipment     []string `json:"equipment"`
}

func (dc *DailyLogController) GetDailyLogs(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var logs []models.DailyLog
	query := dc.db.Preload("Project").Preload("Crew").Where("business_id = ?", businessID)
	if projectID := c.Query("projectId"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("log_date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("log_date <= ?", to)
	}
	if err := query.Order("log_date desc").Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch daily logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dailyLogs": logs, "count": len(logs)})
}

func (dc *DailyLogController) GetDailyLog(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var entry models.DailyLog
	if err := dc.db.Preload("Project").Preload("Crew").Preload("Materials").Preload("Equipment").
		Where("business_id = ?", businessID).First(&entry, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Daily log not found"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// CreateDailyLog is the manual entry path. Hours are derived from the time
// range when not supplied; an end time before the start rolls over midnight.
func (dc *DailyLogController) CreateDailyLog(c *gin.Context) {
	businessID := middleware.BusinessID(c)
	userID := middleware.UserID(c)

	var req DailyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project models.Project
	if err := dc.db.Where("business_id = ?", businessID).First(&project, req.ProjectID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project not found"})
		return
	}

	logDate, err := time.Parse("2006-01-02", req.LogDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid log date, expected YYYY-MM-DD"})
		return
	}

	fields := services.ExtractedWorkLog{
		HoursWorked: req.HoursWorked,
		Overtime:    req.Overtime,
	}
	if req.StartTime != "" {
		fields.StartTime = &req.StartTime
	}
	if req.EndTime != "" {
		fields.EndTime = &req.EndTime
	}
	hours, overtime := services.DeriveHours(&fields)

	entry := models.DailyLog{
		BusinessID:    businessID,
		ProjectID:     project.ID,
		CrewID:        req.CrewID,
		LogDate:       logDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		HoursWorked:   hours,
		Overtime:      overtime,
		WorkCompleted: req.WorkCompleted,
		WorkPlanned:   req.WorkPlanned,
		Weather:       req.Weather,
		Safety:        req.Safety,
		Quality:       req.Quality,
		Delays:        req.Delays,
		Notes:         req.Notes,
		CreatedBy:     userID,
	}

	if err := dc.db.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create daily log"})
		return
	}

	for _, name := range req.Materials {
		dc.db.Create(&models.DailyLogMaterial{DailyLogID: entry.ID, Name: name})
	}
	for _, name := range req.Equipment {
		dc.db.Create(&models.DailyLogEquipment{DailyLogID: entry.ID, Name: name})
	}

	c.JSON(http.StatusCreated, entry)
}

func (dc *DailyLogController) UpdateDailyLog(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var entry models.DailyLog
	if err := dc.db.Where("business_id = ?", businessID).First(&entry, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Daily log not found"})
		return
	}

	var req DailyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.LogDate != "" {
		logDate, err := time.Parse("2006-01-02", req.LogDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid log date, expected YYYY-MM-DD"})
			return
		}
		entry.LogDate = logDate
	}

	fields := services.ExtractedWorkLog{
		HoursWorked: req.HoursWorked,
		Overtime:    req.Overtime,
	}
	if req.StartTime != "" {
		fields.StartTime = &req.StartTime
	}
	if req.EndTime != "" {
		fields.EndTime = &req.EndTime
	}
	hours, overtime := services.DeriveHours(&fields)

	entry.CrewID = req.CrewID
	entry.StartTime = req.StartTime
	entry.EndTime = req.EndTime
	entry.HoursWorked = hours
	entry.Overtime = overtime
	entry.WorkCompleted = req.WorkCompleted
	entry.WorkPlanned = req.WorkPlanned
	entry.Weather = req.Weather
	entry.Safety = req.Safety
	entry.Quality = req.Quality
	entry.Delays = req.Delays
	entry.Notes = req.Notes

	if err := dc.db.Save(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update daily log"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (dc *DailyLogController) DeleteDailyLog(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var entry models.DailyLog
	if err := dc.db.Where("business_id = ?", businessID).First(&entry, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Daily log not found"})
		return
	}

	if err := dc.db.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete daily log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Daily log deleted"})
}
