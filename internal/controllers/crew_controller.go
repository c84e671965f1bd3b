package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobsight/backend/internal/middleware"
	"github.com/jobsight/backend/internal/models"
	"gorm.io/gorm"
)

type CrewController struct {
	db *gorm.DB
}

func NewCrewController(db *gorm.DB) *CrewController {
	return &CrewController{db: db}
}

type CrewRequest struct {
	Name       string `json:"name" binding:"required"`
	Specialty  string `json:"specialty"`
	LeaderName string `json:"leaderName"`
	Notes      string `json:"notes"`
}

type CrewMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

func (cc *CrewController) GetCrews(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var crews []models.Crew
	if err := cc.db.Preload("Members").Where("business_id = ?", businessID).Order("name asc").Find(&crews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch crews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"crews": crews, "count": len(crews)})
}

func (cc *CrewController) GetCrew(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var crew models.Crew
	if err := cc.db.Preload("Members").Where("business_id = ?", businessID).First(&crew, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crew not found"})
		return
	}

	c.JSON(http.StatusOK, crew)
}

func (cc *CrewController) CreateCrew(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var req CrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	crew := models.Crew{
		BusinessID: businessID,
		Name:       req.Name,
		Specialty:  req.Specialty,
		LeaderName: req.LeaderName,
		Notes:      req.Notes,
	}

	if err := cc.db.Create(&crew).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create crew"})
		return
	}

	c.JSON(http.StatusCreated, crew)
}

func (cc *CrewController) UpdateCrew(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var crew models.Crew
	if err := cc.db.Where("business_id = ?", businessID).First(&crew, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crew not found"})
		return
	}

	var req CrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	crew.Name = req.Name
	crew.Specialty = req.Specialty
	crew.LeaderName = req.LeaderName
	crew.Notes = req.Notes

	if err := cc.db.Save(&crew).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update crew"})
		return
	}

	c.JSON(http.StatusOK, crew)
}

func (cc *CrewController) DeleteCrew(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var crew models.Crew
	if err := cc.db.Where("business_id = ?", businessID).First(&crew, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crew not found"})
		return
	}

	if err := cc.db.Delete(&crew).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete crew"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Crew deleted"})
}

func (cc *CrewController) AddMember(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var crew models.Crew
	if err := cc.db.Where("business_id = ?", businessID).First(&crew, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crew not found"})
		return
	}

	var req CrewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member := models.CrewMember{
		CrewID: crew.ID,
		Name:   req.Name,
		Role:   req.Role,
		Phone:  req.Phone,
	}

	if err := cc.db.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add crew member"})
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (cc *CrewController) RemoveMember(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var crew models.Crew
	if err := cc.db.Where("business_id = ?", businessID).First(&crew, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crew not found"})
		return
	}

	var member models.CrewMember
	if err := cc.db.Where("crew_id = ?", crew.ID).First(&member, c.Param("memberId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crew member not found"})
		return
	}

	if err := cc.db.Delete(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove crew member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Crew member removed"})
}
