package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jobsight/backend/internal/models"
)

func TestIsDailyLogIntent(t *testing.T) {
	tests := []struct {
		message string
		intent  bool
	}{
		{"Here's my daily log for Main Street", true},
		{"DAILY LOG: poured footings", true},
		{"What did we work today on?", true},
		{"We completed today the framing at Oak Ridge", true},
		{"here is what i Completed Today", true},
		{"How many projects do I have?", false},
		{"What's the weather tomorrow?", false},
		{"log me out", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isDailyLogIntent(tt.message); got != tt.intent {
			t.Errorf("isDailyLogIntent(%q) = %v, expected %v", tt.message, got, tt.intent)
		}
	}
}

func TestMatchProject(t *testing.T) {
	projects := []models.Project{
		{ID: 1, Name: "Main Street Development"},
		{ID: 2, Name: "Oak Ridge Remodel"},
		{ID: 3, Name: ""},
		{ID: 4, Name: "Main Street"},
	}

	tests := []struct {
		name     string
		message  string
		expected uint // 0 means no match
	}{
		{
			name:     "verbatim match",
			message:  "daily log for Main Street Development today",
			expected: 1,
		},
		{
			name:     "case insensitive",
			message:  "work today at MAIN STREET DEVELOPMENT",
			expected: 1,
		},
		{
			name:     "whitespace stripped in message",
			message:  "daily log for MainStreetDevelopment",
			expected: 1,
		},
		{
			name:     "first in list order wins",
			message:  "worked at main street today",
			expected: 4,
		},
		{
			name:     "second project",
			message:  "completed today: demoed the kitchen at oak ridge remodel",
			expected: 2,
		},
		{
			name:     "no match",
			message:  "daily log for the riverside site",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := matchProject(tt.message, projects)
			if tt.expected == 0 {
				if match != nil {
					t.Errorf("Expected no match, got project %d", match.ID)
				}
				return
			}
			if match == nil {
				t.Fatalf("Expected project %d, got no match", tt.expected)
			}
			if match.ID != tt.expected {
				t.Errorf("Expected project %d, got %d", tt.expected, match.ID)
			}
		})
	}
}

func TestMatchProjectEmptyNameNeverMatches(t *testing.T) {
	projects := []models.Project{
		{ID: 1, Name: ""},
		{ID: 9, Name: "   "},
	}
	if match := matchProject("any message at all", projects); match != nil {
		t.Errorf("Blank project name should never match, got project %d", match.ID)
	}
	if match := matchProject("daily log for the riverside site", projects); match != nil {
		t.Errorf("Whitespace-only project name should never match, got project %d", match.ID)
	}
}

func TestClarifyProjectsListsEveryName(t *testing.T) {
	projects := []models.Project{
		{ID: 1, Name: "Main Street Development"},
		{ID: 2, Name: "Oak Ridge Remodel"},
		{ID: 3, Name: "Riverside Office Park"},
	}

	result := clarifyProjects(projects)

	if result.Action != ActionClarifyProject {
		t.Errorf("Expected action %q, got %q", ActionClarifyProject, result.Action)
	}
	for _, p := range projects {
		if got := strings.Count(result.Response, p.Name); got != 1 {
			t.Errorf("Expected %q exactly once in response, found %d times: %q", p.Name, got, result.Response)
		}
	}
}

func TestClarifyProjectsEmptyList(t *testing.T) {
	result := clarifyProjects(nil)

	if result.Action != ActionClarifyProject {
		t.Errorf("Expected action %q, got %q", ActionClarifyProject, result.Action)
	}
	if strings.Contains(result.Response, "Your projects are:") {
		t.Errorf("Expected no dangling project list for empty business, got %q", result.Response)
	}
	if !strings.Contains(result.Response, "Create a project") {
		t.Errorf("Expected guidance to create a project, got %q", result.Response)
	}
}

func TestMatchCrew(t *testing.T) {
	crews := []models.Crew{
		{ID: 10, Name: "Framing Crew"},
		{ID: 11, Name: "Concrete Crew"},
	}

	if id := matchCrew("the concrete crew was on site", crews); id == nil || *id != 11 {
		t.Errorf("Expected crew 11, got %v", id)
	}
	if id := matchCrew("FRAMING CREW of four", crews); id == nil || *id != 10 {
		t.Errorf("Expected crew 10, got %v", id)
	}
	if id := matchCrew("the plumbers", crews); id != nil {
		t.Errorf("Expected no crew match, got %d", *id)
	}
}

func TestProcessQueryConversational(t *testing.T) {
	backend := &stubBackend{responses: []string{"You have three active projects."}}
	service := NewAssistantService(nil, backend)

	result, err := service.ProcessQuery(context.Background(), 1, 2, "How many projects do I have?", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Action != ActionNone {
		t.Errorf("Expected action %q for conversational query, got %q", ActionNone, result.Action)
	}
	if result.Response != "You have three active projects." {
		t.Errorf("Unexpected response: %q", result.Response)
	}
	if result.Action == ActionCreateDailyLog || result.Action == ActionClarifyProject {
		t.Error("Non-trigger messages must never reach the daily log pipeline")
	}
}

func TestProcessQueryTruncatesHistory(t *testing.T) {
	backend := &stubBackend{responses: []string{"ok"}}
	service := NewAssistantService(nil, backend)

	history := []ChatMessage{
		{Role: "user", Content: "one"},
		{Role: "assistant", Content: "two"},
		{Role: "user", Content: "three"},
		{Role: "assistant", Content: "four"},
		{Role: "user", Content: "five"},
		{Role: "assistant", Content: "six"},
		{Role: "user", Content: "seven"},
	}

	if _, err := service.ProcessQuery(context.Background(), 1, 2, "anything else?", history); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(backend.calls) != 1 {
		t.Fatalf("Expected one backend call, got %d", len(backend.calls))
	}
	messages := backend.calls[0]

	// system prompt + last 5 history turns + the new user message
	if len(messages) != 7 {
		t.Fatalf("Expected 7 messages, got %d", len(messages))
	}
	if messages[0].Role != "system" {
		t.Errorf("Expected system prompt first, got role %q", messages[0].Role)
	}
	if messages[1].Content != "three" {
		t.Errorf("Expected history to start at %q, got %q", "three", messages[1].Content)
	}
	if messages[6].Role != "user" || messages[6].Content != "anything else?" {
		t.Errorf("Expected new message last, got %+v", messages[6])
	}
}

func TestProcessQueryConversationalBackendFailure(t *testing.T) {
	backend := &stubBackend{err: errors.New("connection refused")}
	service := NewAssistantService(nil, backend)

	result, err := service.ProcessQuery(context.Background(), 1, 2, "hello there", nil)
	if err != nil {
		t.Fatalf("Expected no error surfaced to caller, got %v", err)
	}

	if result.Action != ActionError {
		t.Errorf("Expected action %q, got %q", ActionError, result.Action)
	}
	if strings.Contains(result.Response, "connection refused") {
		t.Errorf("Internal error leaked into response: %q", result.Response)
	}
	if result.Response == "" {
		t.Error("Expected a plain-language error response")
	}
}
