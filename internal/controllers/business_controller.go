package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobsight/backend/internal/middleware"
	"github.com/jobsight/backend/internal/models"
	"gorm.io/gorm"
)

type BusinessController struct {
	db *gorm.DB
}

func NewBusinessController(db *gorm.DB) *BusinessController {
	return &BusinessController{db: db}
}

type UpdateBusinessRequest struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (bc *BusinessController) GetCurrentBusiness(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var business models.Business
	if err := bc.db.First(&business, businessID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	c.JSON(http.StatusOK, business)
}

func (bc *BusinessController) UpdateBusiness(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var business models.Business
	if err := bc.db.First(&business, businessID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	if req.Name != "" {
		business.Name = req.Name
	}
	business.Industry = req.Industry
	business.Phone = req.Phone
	business.Address = req.Address

	if err := bc.db.Save(&business).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update business"})
		return
	}

	c.JSON(http.StatusOK, business)
}

func (bc *BusinessController) GetMembers(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var members []models.BusinessMember
	if err := bc.db.Preload("User").Where("business_id = ?", businessID).Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}

	for i := range members {
		members[i].User.Password = ""
	}

	c.JSON(http.StatusOK, gin.H{"members": members, "count": len(members)})
}
