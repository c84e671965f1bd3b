package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobsight/backend/internal/middleware"
	"github.com/jobsight/backend/internal/models"
	"gorm.io/gorm"
)

type ClientController struct {
	db *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{db: db}
}

type ClientRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

func (cc *ClientController) GetClients(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var clients []models.Client
	query := cc.db.Where("business_id = ?", businessID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("name asc").Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clients": clients, "count": len(clients)})
}

func (cc *ClientController) GetClient(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var client models.Client
	if err := cc.db.Preload("Projects").Where("business_id = ?", businessID).First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	c.JSON(http.StatusOK, client)
}

func (cc *ClientController) CreateClient(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := models.Client{
		BusinessID:  businessID,
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Notes:       req.Notes,
	}
	if req.Status != "" {
		client.Status = models.ClientStatus(req.Status)
	}

	if err := cc.db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (cc *ClientController) UpdateClient(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var client models.Client
	if err := cc.db.Where("business_id = ?", businessID).First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client.Name = req.Name
	client.ContactName = req.ContactName
	client.Email = req.Email
	client.Phone = req.Phone
	client.Address = req.Address
	client.Notes = req.Notes
	if req.Status != "" {
		client.Status = models.ClientStatus(req.Status)
	}

	if err := cc.db.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}

	c.JSON(http.StatusOK, client)
}

func (cc *ClientController) DeleteClient(c *gin.Context) {
	businessID := middleware.BusinessID(c)

	var client models.Client
	if err := cc.db.Where("business_id = ?", businessID).First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	if err := cc.db.Delete(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Client deleted"})
}
