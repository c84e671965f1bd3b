package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jobsight/backend/internal/logger"
	"github.com/jobsight/backend/internal/models"
	"gorm.io/gorm"
)

// Query result actions returned to the UI layer.
const (
	ActionNone           = "none"
	ActionCreateDailyLog = "create_daily_log"
	ActionClarifyProject = "clarify_project"
	ActionError          = "error"
)

// maxHistoryMessages bounds how much prior conversation is sent to the
// completion backend for general questions.
const maxHistoryMessages = 5

// QueryResult is the response shape handed back to the caller for every
// assistant query.
type QueryResult struct {
	Response string      `json:"response"`
	Action   string      `json:"action,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Path     string      `json:"path,omitempty"`
}

// CreateLogResult reports the outcome of an assistant-driven log creation.
type CreateLogResult struct {
	Success bool   `json:"success"`
	LogID   uint   `json:"logId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AssistantService runs the conversational work-log pipeline: intent
// classification, project resolution, structured extraction, hour derivation
// and log materialization. Non-log messages go straight to the completion
// backend as a conversation.
type AssistantService struct {
	db      *gorm.DB
	backend ChatBackend
}

func NewAssistantService(db *gorm.DB, backend ChatBackend) *AssistantService {
	return &AssistantService{db: db, backend: backend}
}

var dailyLogTriggers = []string{"daily log", "work today", "completed today"}

// isDailyLogIntent reports whether the message looks like a daily log
// submission. Deliberately crude: a false negative routes to the general
// conversation branch and a false positive still fails safely at project
// resolution.
func isDailyLogIntent(message string) bool {
	lower := strings.ToLower(message)
	for _, trigger := range dailyLogTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}

// matchProject finds the first project whose name appears in the message,
// case-insensitively, tried verbatim and with internal whitespace stripped.
// Ties resolve to list order.
func matchProject(message string, projects []models.Project) *models.Project {
	lower := strings.ToLower(message)
	collapsed := strings.ReplaceAll(lower, " ", "")

	for i := range projects {
		name := strings.ToLower(projects[i].Name)
		collapsedName := strings.ReplaceAll(name, " ", "")
		// A blank name would substring-match everything.
		if collapsedName == "" {
			continue
		}
		if strings.Contains(lower, name) || strings.Contains(collapsed, collapsedName) {
			return &projects[i]
		}
	}
	return nil
}

// matchCrew binds extracted crew info to one of the business's crews by
// case-insensitive substring match, so crew references always come from the
// crews table rather than free text.
func matchCrew(crewInfo string, crews []models.Crew) *uint {
	lower := strings.ToLower(crewInfo)
	for i := range crews {
		name := strings.ToLower(crews[i].Name)
		if name != "" && strings.Contains(lower, name) {
			return &crews[i].ID
		}
	}
	return nil
}

// ProcessQuery handles one user message, either creating a daily log or
// answering conversationally. All failures resolve to a plain-language
// response; internal errors are never surfaced.
func (as *AssistantService) ProcessQuery(ctx context.Context, businessID, userID uint, message string, history []ChatMessage) (*QueryResult, error) {
	if !isDailyLogIntent(message) {
		return as.answerConversationally(ctx, message, history)
	}

	var projects []models.Project
	if err := as.db.Where("business_id = ?", businessID).Order("created_at asc").Find(&projects).Error; err != nil {
		logger.WithError(err, "assistant").Error("Failed to load projects for resolution")
		return &QueryResult{
			Response: "Something went wrong looking up your projects. Please try again.",
			Action:   ActionError,
		}, nil
	}

	project := matchProject(message, projects)
	if project == nil {
		return clarifyProjects(projects), nil
	}

	result := as.CreateDailyLogFromText(ctx, businessID, userID, project.ID, message)
	if !result.Success {
		return &QueryResult{
			Response: "I couldn't save that daily log right now. Please try again in a moment.",
			Action:   ActionError,
		}, nil
	}

	return &QueryResult{
		Response: fmt.Sprintf("Daily log created for %s. You can review it on the daily logs page.", project.Name),
		Action:   ActionCreateDailyLog,
		Data:     result,
		Path:     "/dashboard/daily-logs",
	}, nil
}

// clarifyProjects asks the user which project the log belongs to, listing
// every project the business has. A business with no projects yet gets
// pointed at project creation instead of an empty list.
func clarifyProjects(projects []models.Project) *QueryResult {
	if len(projects) == 0 {
		return &QueryResult{
			Response: "You don't have any projects yet. Create a project first, then send me your daily log.",
			Action:   ActionClarifyProject,
		}
	}

	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}
	return &QueryResult{
		Response: fmt.Sprintf("Which project is this for? Your projects are: %s", strings.Join(names, ", ")),
		Action:   ActionClarifyProject,
	}
}

func (as *AssistantService) answerConversationally(ctx context.Context, message string, history []ChatMessage) (*QueryResult, error) {
	messages := []ChatMessage{{Role: "system", Content: ASSISTANT_SYSTEM_PROMPT}}

	// Only the tail of the conversation is kept as context.
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{Role: "user", Content: message})

	response, err := as.backend.ChatCompletion(ctx, messages, 0.7, 500)
	if err != nil {
		logger.WithError(err, "assistant").Error("Conversational completion failed")
		return &QueryResult{
			Response: "I'm having trouble reaching the assistant right now. Please try again.",
			Action:   ActionError,
		}, nil
	}

	return &QueryResult{
		Response: response,
		Action:   ActionNone,
	}, nil
}

// CreateDailyLogFromText runs extraction, derivation and materialization for
// a work summary already bound to a project. A degraded extraction still
// creates a log; only a hard backend failure or a failed persist aborts.
func (as *AssistantService) CreateDailyLogFromText(ctx context.Context, businessID, userID, projectID uint, rawText string) *CreateLogResult {
	fields, err := ExtractWorkLog(ctx, as.backend, rawText)
	if err != nil {
		if errors.Is(err, ErrBackendUnavailable) {
			logger.WithError(err, "assistant").Error("Extraction backend unavailable, aborting log creation")
			return &CreateLogResult{Success: false, Error: "Assistant is temporarily unavailable"}
		}
		// Degraded extraction: continue with the fallback fields.
		logger.WithAssistant(businessID, "extract").Warn("Continuing with degraded extraction")
	}

	hours, overtime := DeriveHours(fields)

	var crewID *uint
	if fields.CrewInfo != nil && *fields.CrewInfo != "" {
		var crews []models.Crew
		if err := as.db.Where("business_id = ?", businessID).Find(&crews).Error; err == nil {
			crewID = matchCrew(*fields.CrewInfo, crews)
		}
	}

	entry := BuildDailyLog(businessID, userID, projectID, crewID, rawText, fields, hours, overtime, time.Now().UTC().Truncate(24*time.Hour))

	if err := persistDailyLog(as.db, &entry, fields); err != nil {
		logger.WithError(err, "assistant").Error("Failed to persist daily log")
		return &CreateLogResult{Success: false, Error: "Failed to create daily log"}
	}

	logger.WithAssistant(businessID, "materialize").Infof("Created daily log %d for project %d", entry.ID, projectID)
	return &CreateLogResult{Success: true, LogID: entry.ID}
}
