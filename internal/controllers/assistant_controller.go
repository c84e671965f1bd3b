package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobsight/backend/internal/middleware"
	"github.com/jobsight/backend/internal/services"
)

type AssistantController struct {
	assistant  *services.AssistantService
	llmService *services.LLMService
}

func NewAssistantController(assistant *services.AssistantService, llmService *services.LLMService) *AssistantController {
	return &AssistantController{assistant: assistant, llmService: llmService}
}

type AssistantQueryRequest struct {
	Message string                 `json:"message" binding:"required"`
	History []services.ChatMessage `json:"history"`
}

type TranscribeResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// Query runs one user message through the assistant pipeline.
func (ac *AssistantController) Query(c *gin.Context) {
	businessID := middleware.BusinessID(c)
	userID := middleware.UserID(c)

	var req AssistantQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ac.assistant.ProcessQuery(c.Request.Context(), businessID, userID, req.Message, req.History)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Assistant request failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Transcribe converts an uploaded audio file to text. A backend failure maps
// to an empty transcript with a plain-language error, never a 5xx.
func (ac *AssistantController) Transcribe(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Audio file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read audio file"})
		return
	}
	defer file.Close()

	text, err := ac.llmService.Transcribe(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusOK, TranscribeResponse{
			Text:  "",
			Error: "Failed to transcribe audio. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, TranscribeResponse{Text: text})
}

// GetAPICalls exposes the LLM call diagnostics ring.
func (ac *AssistantController) GetAPICalls(c *gin.Context) {
	calls := ac.llmService.GetAPICalls()
	c.JSON(http.StatusOK, gin.H{"apiCalls": calls, "count": len(calls)})
}

// ClearAPICalls resets the LLM call diagnostics ring.
func (ac *AssistantController) ClearAPICalls(c *gin.Context) {
	ac.llmService.ClearAPICalls()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "API call history cleared"})
}

// GetStatus reports completion backend reachability.
func (ac *AssistantController) GetStatus(c *gin.Context) {
	if err := ac.llmService.CheckBackendHealth(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
