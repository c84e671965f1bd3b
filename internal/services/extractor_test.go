package services

import (
	"context"
	"errors"
	"testing"
)

// stubBackend returns canned responses in order, recording what it was asked.
type stubBackend struct {
	responses []string
	err       error
	calls     [][]ChatMessage
}

func (s *stubBackend) ChatCompletion(ctx context.Context, messages []ChatMessage, temperature float64, maxTokens int) (string, error) {
	s.calls = append(s.calls, messages)
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) == 0 {
		return "", nil
	}
	response := s.responses[0]
	if len(s.responses) > 1 {
		s.responses = s.responses[1:]
	}
	return response, nil
}

func TestExtractWorkLogParsesFields(t *testing.T) {
	backend := &stubBackend{responses: []string{
		`{"work_completed": "Poured the foundation", "start_time": "08:00", "end_time": "17:00", "hours_worked": null, "overtime": null, "weather": "Sunny", "materials": ["concrete"], "equipment": ["pump truck"], "crew_info": "concrete crew"}`,
	}}

	fields, err := ExtractWorkLog(context.Background(), backend, "We poured the foundation, worked 8 to 5")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if fields.WorkCompleted == nil || *fields.WorkCompleted != "Poured the foundation" {
		t.Errorf("Unexpected work_completed: %v", fields.WorkCompleted)
	}
	if fields.StartTime == nil || *fields.StartTime != "08:00" {
		t.Errorf("Unexpected start_time: %v", fields.StartTime)
	}
	if fields.HoursWorked != nil {
		t.Errorf("Expected nil hours_worked for null, got %v", *fields.HoursWorked)
	}
	if len(fields.Materials) != 1 || fields.Materials[0] != "concrete" {
		t.Errorf("Unexpected materials: %v", fields.Materials)
	}
	if len(backend.calls) != 1 {
		t.Errorf("Expected exactly one backend call, got %d", len(backend.calls))
	}
}

func TestExtractWorkLogStripsCodeFences(t *testing.T) {
	backend := &stubBackend{responses: []string{
		"```json\n{\"work_completed\": \"Framed the second floor\", \"materials\": null, \"equipment\": null}\n```",
	}}

	fields, err := ExtractWorkLog(context.Background(), backend, "framing today")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if fields.WorkCompleted == nil || *fields.WorkCompleted != "Framed the second floor" {
		t.Errorf("Unexpected work_completed: %v", fields.WorkCompleted)
	}

	// Null arrays normalize to empty slices.
	if fields.Materials == nil || len(fields.Materials) != 0 {
		t.Errorf("Expected empty materials slice, got %v", fields.Materials)
	}
	if fields.Equipment == nil || len(fields.Equipment) != 0 {
		t.Errorf("Expected empty equipment slice, got %v", fields.Equipment)
	}
}

func TestExtractWorkLogDegradesOnBadJSON(t *testing.T) {
	rawText := "We hung drywall all day on the east wing"
	backend := &stubBackend{responses: []string{
		"Sure! Here is a summary of the work: drywall was hung.",
	}}

	fields, err := ExtractWorkLog(context.Background(), backend, rawText)

	if !errors.Is(err, ErrExtractionDegraded) {
		t.Errorf("Expected ErrExtractionDegraded, got %v", err)
	}
	if fields == nil {
		t.Fatal("Expected fallback fields, got nil")
	}
	if fields.WorkCompleted == nil || *fields.WorkCompleted != rawText {
		t.Errorf("Expected raw text as work_completed fallback, got %v", fields.WorkCompleted)
	}
	if fields.StartTime != nil || fields.HoursWorked != nil {
		t.Error("Expected all other fields nil in fallback")
	}
}

func TestExtractWorkLogBackendFailure(t *testing.T) {
	backend := &stubBackend{err: errors.New("connection refused")}

	fields, err := ExtractWorkLog(context.Background(), backend, "daily log for oak ridge")

	if !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("Expected ErrBackendUnavailable, got %v", err)
	}
	if fields != nil {
		t.Errorf("Expected nil fields on hard failure, got %+v", fields)
	}
}

func TestParseExtractedWorkLogRejectsNonObject(t *testing.T) {
	inputs := []string{
		"",
		"not json at all",
		"[1, 2, 3]",
		"```\nplain fenced text\n```",
	}

	for _, input := range inputs {
		if _, err := parseExtractedWorkLog(input); err == nil {
			t.Errorf("Expected parse error for %q", input)
		}
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"{\"a\": 1}", "{\"a\": 1}"},
		{"```json\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"```\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"  {\"a\": 1}  ", "{\"a\": 1}"},
	}

	for _, tt := range tests {
		if got := stripCodeFences(tt.input); got != tt.expected {
			t.Errorf("stripCodeFences(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
