package providers

import (
	"fmt"
	"os"

	"github.com/nschoena/golf-tracker/internal/models"
)

// ParseCourse builds a validated Course from raw JSON.
func ParseCourse(data []byte) (*models.Course, error) {
	var record CourseRecord
	if err := decodeRecord(data, &record); err != nil {
		return nil, err
	}

	holes := make([]models.Hole, 0, len(record.Holes))
	for _, hr := range record.Holes {
		hole, err := models.NewHole(hr.HoleNumber, hr.Yardage, hr.Par, hr.Handicap)
		if err != nil {
			return nil, fmt.Errorf("hole %d: %w", hr.HoleNumber, err)
		}
		holes = append(holes, hole)
	}

	return models.NewCourse(models.CourseParams{
		ID:       record.CourseID,
		Name:     record.CourseName,
		Tees:     record.Tees,
		Side:     record.CourseSide,
		Location: record.Location,
		Rating:   record.Rating,
		Slope:    record.Slope,
		Holes:    holes,
	})
}

// ParseScore builds a validated Score from raw JSON.
func ParseScore(data []byte) (*models.Score, error) {
	var record ScoreRecord
	if err := decodeRecord(data, &record); err != nil {
		return nil, err
	}

	datePlayed, err := models.ParseRoundDate(record.DatePlayed)
	if err != nil {
		return nil, err
	}

	holes := make([]models.ScoreHole, 0, len(record.HolesPlayed))
	for _, hr := range record.HolesPlayed {
		hole, err := models.NewScoreHole(models.ScoreHoleParams{
			HoleNumber: hr.HoleNumber,
			Strokes:    hr.Strokes,
			Putts:      hr.Putts,
			Drive:      hr.DriveResult,
			GIR:        hr.GIR,
		})
		if err != nil {
			return nil, fmt.Errorf("hole %d: %w", hr.HoleNumber, err)
		}
		holes = append(holes, hole)
	}

	return models.NewScore(models.ScoreParams{
		ID:         record.ScoreID,
		CourseID:   record.CourseID,
		CourseName: record.CourseName,
		Tees:       record.Tees,
		Side:       record.CourseSide,
		DatePlayed: datePlayed,
		Holes:      holes,
	})
}

// LoadCourse reads and parses a course JSON file.
func LoadCourse(path string) (*models.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read course file: %w", err)
	}
	course, err := ParseCourse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return course, nil
}

// LoadScore reads and parses a score JSON file.
func LoadScore(path string) (*models.Score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read score file: %w", err)
	}
	score, err := ParseScore(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return score, nil
}
