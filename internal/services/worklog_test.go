package services

import (
	"strings"
	"testing"
	"time"
)

func floatPtr(f float64) *float64 {
	return &f
}

func strPtr(s string) *string {
	return &s
}

func TestDeriveHoursFromTimes(t *testing.T) {
	fields := &ExtractedWorkLog{
		StartTime: strPtr("08:00"),
		EndTime:   strPtr("17:00"),
	}

	hours, overtime := DeriveHours(fields)

	if hours != 9 {
		t.Errorf("Expected 9 hours from 08:00-17:00, got %v", hours)
	}
	if overtime != 1 {
		t.Errorf("Expected 1 hour overtime, got %v", overtime)
	}
}

func TestDeriveHoursExplicitWins(t *testing.T) {
	// Explicit hours take precedence over start/end times.
	fields := &ExtractedWorkLog{
		HoursWorked: floatPtr(6),
		StartTime:   strPtr("08:00"),
		EndTime:     strPtr("17:00"),
	}

	hours, overtime := DeriveHours(fields)

	if hours != 6 {
		t.Errorf("Expected explicit 6 hours, got %v", hours)
	}
	if overtime != 0 {
		t.Errorf("Expected 0 overtime for 6 hours, got %v", overtime)
	}
}

func TestDeriveHoursExplicitOvertime(t *testing.T) {
	fields := &ExtractedWorkLog{
		HoursWorked: floatPtr(10),
		Overtime:    floatPtr(3),
	}

	hours, overtime := DeriveHours(fields)

	if hours != 10 {
		t.Errorf("Expected 10 hours, got %v", hours)
	}
	if overtime != 3 {
		t.Errorf("Expected explicit 3 hours overtime, got %v", overtime)
	}
}

func TestDeriveHoursTable(t *testing.T) {
	tests := []struct {
		name     string
		fields   *ExtractedWorkLog
		hours    float64
		overtime float64
	}{
		{
			name:     "nothing extracted",
			fields:   &ExtractedWorkLog{},
			hours:    0,
			overtime: 0,
		},
		{
			name:     "zero hours ignored, times used",
			fields:   &ExtractedWorkLog{HoursWorked: floatPtr(0), StartTime: strPtr("07:00"), EndTime: strPtr("15:30")},
			hours:    8.5,
			overtime: 0.5,
		},
		{
			name:     "overnight shift rolls over midnight",
			fields:   &ExtractedWorkLog{StartTime: strPtr("22:00"), EndTime: strPtr("06:00")},
			hours:    8,
			overtime: 0,
		},
		{
			name:     "start time only",
			fields:   &ExtractedWorkLog{StartTime: strPtr("08:00")},
			hours:    0,
			overtime: 0,
		},
		{
			name:     "malformed times leave hours at zero",
			fields:   &ExtractedWorkLog{StartTime: strPtr("8am"), EndTime: strPtr("5pm")},
			hours:    0,
			overtime: 0,
		},
		{
			name:     "exactly eight hours is no overtime",
			fields:   &ExtractedWorkLog{StartTime: strPtr("08:00"), EndTime: strPtr("16:00")},
			hours:    8,
			overtime: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, overtime := DeriveHours(tt.fields)
			if hours != tt.hours {
				t.Errorf("Expected %v hours, got %v", tt.hours, hours)
			}
			if overtime != tt.overtime {
				t.Errorf("Expected %v overtime, got %v", tt.overtime, overtime)
			}
		})
	}
}

func TestElapsedHoursInvalid(t *testing.T) {
	if _, err := elapsedHours("bogus", "17:00"); err == nil {
		t.Error("Expected error for invalid start time")
	}
	if _, err := elapsedHours("08:00", "bogus"); err == nil {
		t.Error("Expected error for invalid end time")
	}
}

func TestBuildDailyLogMergesFields(t *testing.T) {
	crewID := uint(7)
	logDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	fields := &ExtractedWorkLog{
		WorkCompleted: strPtr("Poured footings on the north wing"),
		StartTime:     strPtr("08:00"),
		EndTime:       strPtr("17:00"),
		Weather:       strPtr("Clear, 70F"),
		Materials:     []string{"rebar", "concrete"},
		Equipment:     []string{"pump truck"},
		CrewInfo:      strPtr("concrete crew of 5"),
	}

	entry := BuildDailyLog(1, 2, 3, &crewID, "raw summary text", fields, 9, 1, logDate)

	if entry.BusinessID != 1 || entry.ProjectID != 3 || entry.CreatedBy != 2 {
		t.Errorf("Unexpected ids: business=%d project=%d createdBy=%d", entry.BusinessID, entry.ProjectID, entry.CreatedBy)
	}
	if entry.CrewID == nil || *entry.CrewID != 7 {
		t.Error("Expected crew id 7 to be carried through")
	}
	if entry.WorkCompleted != "Poured footings on the north wing" {
		t.Errorf("Expected extracted work_completed, got %q", entry.WorkCompleted)
	}
	if entry.HoursWorked != 9 || entry.Overtime != 1 {
		t.Errorf("Expected 9h/1ot, got %v/%v", entry.HoursWorked, entry.Overtime)
	}
	if !entry.LogDate.Equal(logDate) {
		t.Errorf("Expected log date %v, got %v", logDate, entry.LogDate)
	}

	if !strings.Contains(entry.Notes, "Created via AI Assistant from: raw summary text") {
		t.Errorf("Expected provenance line in notes, got %q", entry.Notes)
	}
	if !strings.Contains(entry.Notes, "Materials mentioned: rebar, concrete") {
		t.Errorf("Expected materials line in notes, got %q", entry.Notes)
	}
	if !strings.Contains(entry.Notes, "Equipment mentioned: pump truck") {
		t.Errorf("Expected equipment line in notes, got %q", entry.Notes)
	}
	if !strings.Contains(entry.Notes, "Crew: concrete crew of 5") {
		t.Errorf("Expected crew line in notes, got %q", entry.Notes)
	}
}

func TestBuildDailyLogFallbacks(t *testing.T) {
	// Empty extraction falls back to the raw text and zero values.
	fields := &ExtractedWorkLog{}
	entry := BuildDailyLog(1, 2, 3, nil, "we did some work", fields, 0, 0, time.Now())

	if entry.WorkCompleted != "we did some work" {
		t.Errorf("Expected raw text fallback for work_completed, got %q", entry.WorkCompleted)
	}
	if entry.StartTime != "" || entry.EndTime != "" {
		t.Errorf("Expected empty times, got %q/%q", entry.StartTime, entry.EndTime)
	}
	if entry.HoursWorked != 0 || entry.Overtime != 0 {
		t.Errorf("Expected zero hours, got %v/%v", entry.HoursWorked, entry.Overtime)
	}
	if entry.CrewID != nil {
		t.Error("Expected nil crew id")
	}
	if strings.Contains(entry.Notes, "Materials mentioned") || strings.Contains(entry.Notes, "Equipment mentioned") {
		t.Errorf("Expected no material/equipment lines for empty extraction, got %q", entry.Notes)
	}
}
