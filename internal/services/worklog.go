package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/jobsight/backend/internal/logger"
	"github.com/jobsight/backend/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const overtimeBaselineHours = 8.0

// DeriveHours normalizes the numeric work-time fields. An explicitly
// extracted non-zero value wins; otherwise hours come from the start/end
// times and overtime is the excess over the 8-hour baseline. Malformed time
// strings are logged and leave hours at 0, never an error.
func DeriveHours(fields *ExtractedWorkLog) (hours, overtime float64) {
	if fields.HoursWorked != nil && *fields.HoursWorked != 0 {
		hours = *fields.HoursWorked
	} else if fields.StartTime != nil && fields.EndTime != nil {
		elapsed, err := elapsedHours(*fields.StartTime, *fields.EndTime)
		if err != nil {
			logger.WithError(err, "assistant").Warn("Could not derive hours from extracted times")
		} else {
			hours = elapsed
		}
	}

	if fields.Overtime != nil && *fields.Overtime != 0 {
		overtime = *fields.Overtime
	} else if hours > overtimeBaselineHours {
		overtime = hours - overtimeBaselineHours
	}

	return hours, overtime
}

// elapsedHours computes the hours between two HH:MM times on a common
// reference date. An end time earlier than the start rolls over midnight,
// matching the manual entry form.
func elapsedHours(startTime, endTime string) (float64, error) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q: %w", startTime, err)
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q: %w", endTime, err)
	}

	elapsed := end.Sub(start)
	if elapsed < 0 {
		elapsed += 24 * time.Hour
	}
	return elapsed.Hours(), nil
}

// BuildDailyLog merges extracted fields, derived numbers and literal
// fallbacks into the record shape the persistence layer expects. The notes
// field carries provenance: the original raw input plus any materials,
// equipment and crew info the extractor surfaced.
func BuildDailyLog(businessID, userID, projectID uint, crewID *uint, rawText string, fields *ExtractedWorkLog, hours, overtime float64, logDate time.Time) models.DailyLog {
	entry := models.DailyLog{
		BusinessID:    businessID,
		ProjectID:     projectID,
		CrewID:        crewID,
		LogDate:       logDate,
		StartTime:     stringOr(fields.StartTime, ""),
		EndTime:       stringOr(fields.EndTime, ""),
		HoursWorked:   hours,
		Overtime:      overtime,
		WorkCompleted: stringOr(fields.WorkCompleted, rawText),
		WorkPlanned:   stringOr(fields.WorkPlanned, ""),
		Weather:       stringOr(fields.Weather, ""),
		Safety:        stringOr(fields.Safety, ""),
		Quality:       stringOr(fields.Quality, ""),
		Delays:        stringOr(fields.Delays, ""),
		Notes:         buildProvenanceNotes(rawText, fields),
		CreatedBy:     userID,
	}
	return entry
}

func buildProvenanceNotes(rawText string, fields *ExtractedWorkLog) string {
	notes := "Created via AI Assistant from: " + rawText
	if len(fields.Materials) > 0 {
		notes += "\nMaterials mentioned: " + strings.Join(fields.Materials, ", ")
	}
	if len(fields.Equipment) > 0 {
		notes += "\nEquipment mentioned: " + strings.Join(fields.Equipment, ", ")
	}
	if fields.CrewInfo != nil && *fields.CrewInfo != "" {
		notes += "\nCrew: " + *fields.CrewInfo
	}
	return notes
}

func stringOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}

// persistDailyLog writes the assembled record and its material/equipment
// child rows. The two child batches are independent writes issued
// concurrently and jointly awaited; a partial child failure is logged but
// does not fail the log.
func persistDailyLog(db *gorm.DB, entry *models.DailyLog, fields *ExtractedWorkLog) error {
	if err := db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create daily log: %w", err)
	}
	if entry.ID == 0 {
		return fmt.Errorf("daily log create returned no id")
	}

	var g errgroup.Group
	g.Go(func() error {
		for _, name := range fields.Materials {
			material := models.DailyLogMaterial{DailyLogID: entry.ID, Name: name}
			if err := db.Create(&material).Error; err != nil {
				return fmt.Errorf("failed to create material %q: %w", name, err)
			}
		}
		return nil
	})
	g.Go(func() error {
		for _, name := range fields.Equipment {
			equipment := models.DailyLogEquipment{DailyLogID: entry.ID, Name: name}
			if err := db.Create(&equipment).Error; err != nil {
				return fmt.Errorf("failed to create equipment %q: %w", name, err)
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.WithError(err, "assistant").Warn("Daily log child rows partially failed")
	}

	return nil
}
