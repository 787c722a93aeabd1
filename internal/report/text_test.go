package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nschoena/golf-tracker/internal/models"
)

func ptr[T any](v T) *T { return &v }

func buildScoreCard(t *testing.T) *models.ScoreCard {
	t.Helper()

	holes := make([]models.Hole, 0, 18)
	played := make([]models.ScoreHole, 0, 18)
	for i := 1; i <= 18; i++ {
		h, err := models.NewHole(i, 380, 4, ((i-1)%18)+1)
		require.NoError(t, err)
		holes = append(holes, h)

		sh, err := models.NewScoreHole(models.ScoreHoleParams{
			HoleNumber: i,
			Strokes:    5,
			Putts:      ptr(2),
			Drive:      ptr("Fairway"),
			GIR:        ptr(i%2 == 0),
		})
		require.NoError(t, err)
		played = append(played, sh)
	}

	course, err := models.NewCourse(models.CourseParams{
		ID: 1, Name: "Village Green", Tees: "White", Side: "All",
		Location: "Moorhead, MN", Rating: 70.2, Slope: 120, Holes: holes,
	})
	require.NoError(t, err)

	score, err := models.NewScore(models.ScoreParams{
		ID: 1, CourseID: 1, CourseName: "Village Green", Tees: "White", Side: "All",
		DatePlayed: time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC),
		Holes:      played,
	})
	require.NoError(t, err)

	sc, err := models.NewScoreCard(course, score)
	require.NoError(t, err)
	return sc
}

func TestWriteScoreCard(t *testing.T) {
	sc := buildScoreCard(t)

	var b strings.Builder
	require.NoError(t, WriteScoreCard(&b, sc))
	out := b.String()

	// header block
	assert.Contains(t, out, "Village Green")
	assert.Contains(t, out, "Moorhead, MN")
	assert.Contains(t, out, "Played:  2025-10-04")
	assert.Contains(t, out, "Rating:  70.2")
	assert.Contains(t, out, "Slope:   120")
	assert.Contains(t, out, "Yardage: 6840")
	assert.Contains(t, out, "Par:     72")

	// grid rows
	assert.Contains(t, out, "HOLE")
	assert.Contains(t, out, "White")
	assert.Contains(t, out, "HCP")
	assert.Contains(t, out, "PAR")
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "PUTTS")

	// OUT/IN/TOT for the score row: 9x5 | 9x5 | 90
	assert.Contains(t, out, "   45 |")
	assert.Contains(t, out, "   90 |")

	// stats block
	assert.Contains(t, out, "Round score:    90 (+18)")
	assert.Contains(t, out, "Round putts:    36")
	assert.Contains(t, out, "GIR:            50.0%")
	assert.Contains(t, out, "Drive accuracy: L 0.0% / F 100.0% / R 0.0%")
	assert.Contains(t, out, "Par 4 average:  5.00")
	assert.Contains(t, out, "Par 3 average:  N/A")
	assert.Contains(t, out, "Par 5 average:  N/A")
}

func TestWriteScoreCardBasicRoundOmitsDetailedStats(t *testing.T) {
	holes := []models.Hole{}
	played := []models.ScoreHole{}
	for i := 1; i <= 9; i++ {
		h, err := models.NewHole(i, 300, 4, i)
		require.NoError(t, err)
		holes = append(holes, h)

		sh, err := models.NewScoreHole(models.ScoreHoleParams{HoleNumber: i, Strokes: 4})
		require.NoError(t, err)
		played = append(played, sh)
	}

	course, err := models.NewCourse(models.CourseParams{
		ID: 1, Name: "Village Green", Tees: "White", Side: "Front",
		Rating: 68.0, Slope: 110, Holes: holes,
	})
	require.NoError(t, err)
	score, err := models.NewScore(models.ScoreParams{
		ID: 1, CourseID: 1, CourseName: "Village Green", Tees: "White", Side: "Front",
		DatePlayed: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		Holes:      played,
	})
	require.NoError(t, err)
	sc, err := models.NewScoreCard(course, score)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, WriteScoreCard(&b, sc))
	out := b.String()

	assert.Contains(t, out, "Round score:    36 (E)")
	assert.NotContains(t, out, "PUTTS")
	assert.NotContains(t, out, "GIR:")
	assert.NotContains(t, out, "Drive accuracy:")
}
