package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jobsight/backend/internal/logger"
)

// ErrBackendUnavailable marks a hard completion-backend failure
// (network/auth/quota). Log creation is aborted when this is returned.
var ErrBackendUnavailable = errors.New("completion backend unavailable")

// ErrExtractionDegraded marks a parse failure of the backend output. The
// returned fields still carry the raw text as work_completed and log creation
// proceeds with reduced detail.
var ErrExtractionDegraded = errors.New("extraction degraded to raw text")

// ExtractedWorkLog is the structured field set pulled out of a free-text work
// summary. Every field is optional; nil means the text did not evidence it.
type ExtractedWorkLog struct {
	WorkCompleted *string  `json:"work_completed"`
	WorkPlanned   *string  `json:"work_planned"`
	StartTime     *string  `json:"start_time"` // HH:MM
	EndTime       *string  `json:"end_time"`   // HH:MM
	HoursWorked   *float64 `json:"hours_worked"`
	Overtime      *float64 `json:"overtime"`
	Weather       *string  `json:"weather"`
	Safety        *string  `json:"safety"`
	Quality       *string  `json:"quality"`
	Delays        *string  `json:"delays"`
	CrewInfo      *string  `json:"crew_info"`
	Materials     []string `json:"materials"`
	Equipment     []string `json:"equipment"`
}

// ExtractWorkLog asks the completion backend to structure the raw summary.
//
// Failure modes are deliberately distinct: a backend error returns nil fields
// wrapped with ErrBackendUnavailable and the caller aborts; malformed backend
// output returns a minimal fallback containing only the raw text, wrapped
// with ErrExtractionDegraded, and the caller continues.
func ExtractWorkLog(ctx context.Context, backend ChatBackend, rawText string) (*ExtractedWorkLog, error) {
	prompt := fmt.Sprintf(WORK_LOG_EXTRACTION_PROMPT, rawText)

	messages := []ChatMessage{
		{Role: "user", Content: prompt},
	}

	response, err := backend.ChatCompletion(ctx, messages, 0.2, 1000)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	fields, err := parseExtractedWorkLog(response)
	if err != nil {
		logger.WithError(err, "extractor").Warn("Failed to parse extraction response, degrading to raw text")
		return &ExtractedWorkLog{WorkCompleted: &rawText}, ErrExtractionDegraded
	}

	return fields, nil
}

// parseExtractedWorkLog decodes the backend output, tolerating markdown code
// fences around the JSON body.
func parseExtractedWorkLog(response string) (*ExtractedWorkLog, error) {
	clean := stripCodeFences(response)

	if !strings.HasPrefix(clean, "{") {
		return nil, fmt.Errorf("backend did not return a JSON object: %q", clean)
	}

	var fields ExtractedWorkLog
	if err := json.Unmarshal([]byte(clean), &fields); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if fields.Materials == nil {
		fields.Materials = []string{}
	}
	if fields.Equipment == nil {
		fields.Equipment = []string{}
	}

	return &fields, nil
}

func stripCodeFences(response string) string {
	clean := strings.TrimSpace(response)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	}
	if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	if strings.HasSuffix(clean, "```") {
		clean = strings.TrimSuffix(clean, "```")
	}

	return strings.TrimSpace(clean)
}
