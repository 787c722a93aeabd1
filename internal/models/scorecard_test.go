package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nschoena/golf-tracker/pkg/utils"
)

func scoreForHoles(t *testing.T, holes []ScoreHole) *Score {
	t.Helper()
	score, err := NewScore(validScoreParams(holes))
	require.NoError(t, err)
	return score
}

func TestNewScoreCardContract(t *testing.T) {
	course, err := NewCourse(validCourseParams(t, nineHoles(t, 400, 4)))
	require.NoError(t, err)
	score := scoreForHoles(t, []ScoreHole{detailedScoreHole(t, 1, 5, 2, "Fairway", true)})

	_, err = NewScoreCard(nil, score)
	assertAppCode(t, err, utils.ErrCodeContractViolation)

	_, err = NewScoreCard(course, nil)
	assertAppCode(t, err, utils.ErrCodeContractViolation)

	sc, err := NewScoreCard(course, score)
	require.NoError(t, err)
	assert.Len(t, sc.Pairings(), 1)
}

func TestScoreCardRejectsUnknownHole(t *testing.T) {
	// course has holes 1-9, score references hole 12
	course, err := NewCourse(validCourseParams(t, nineHoles(t, 400, 4)))
	require.NoError(t, err)
	score := scoreForHoles(t, []ScoreHole{detailedScoreHole(t, 12, 5, 2, "Fairway", true)})

	_, err = NewScoreCard(course, score)
	assertAppCode(t, err, utils.ErrCodeContractViolation)
}

func TestScoreCardPairsByHoleNumber(t *testing.T) {
	course, err := NewCourse(validCourseParams(t, []Hole{
		mustHole(t, 1, 160, 3, 9),
		mustHole(t, 2, 410, 4, 1),
		mustHole(t, 3, 520, 5, 5),
	}))
	require.NoError(t, err)

	// played out of course order; pairing must follow hole numbers
	score := scoreForHoles(t, []ScoreHole{
		detailedScoreHole(t, 3, 6, 2, "Fairway", true),
		detailedScoreHole(t, 1, 3, 1, "Par3", true),
	})

	sc, err := NewScoreCard(course, score)
	require.NoError(t, err)

	pairings := sc.Pairings()
	require.Len(t, pairings, 2)
	assert.Equal(t, 5, pairings[0].Hole.Par())
	assert.Equal(t, 6, pairings[0].Played.Strokes())
	assert.Equal(t, 3, pairings[1].Hole.Par())
}

func TestParAverages(t *testing.T) {
	course, err := NewCourse(validCourseParams(t, []Hole{
		mustHole(t, 1, 410, 4, 1),
		mustHole(t, 2, 390, 4, 3),
		mustHole(t, 3, 160, 3, 9),
	}))
	require.NoError(t, err)

	score := scoreForHoles(t, []ScoreHole{
		detailedScoreHole(t, 1, 5, 2, "Fairway", true),
		detailedScoreHole(t, 2, 7, 3, "Left", false),
		detailedScoreHole(t, 3, 4, 2, "Par3", false),
	})

	sc, err := NewScoreCard(course, score)
	require.NoError(t, err)

	averages := sc.ParAverages()
	assert.InDelta(t, 6.00, averages[4], 1e-9)
	assert.InDelta(t, 4.00, averages[3], 1e-9)

	// pars with no scored holes are absent, never zero
	_, ok := averages[5]
	assert.False(t, ok)
	_, ok = averages[6]
	assert.False(t, ok)
}

func TestParAveragesRounding(t *testing.T) {
	course, err := NewCourse(validCourseParams(t, []Hole{
		mustHole(t, 1, 410, 4, 1),
		mustHole(t, 2, 390, 4, 3),
		mustHole(t, 3, 380, 4, 5),
	}))
	require.NoError(t, err)

	score := scoreForHoles(t, []ScoreHole{
		detailedScoreHole(t, 1, 4, 2, "Fairway", true),
		detailedScoreHole(t, 2, 5, 2, "Left", false),
		detailedScoreHole(t, 3, 5, 2, "Right", false),
	})

	sc, err := NewScoreCard(course, score)
	require.NoError(t, err)

	// 14/3 rounds to 4.67
	assert.InDelta(t, 4.67, sc.ParAverages()[4], 1e-9)
}

func TestScoreCardIncludesParSixBucket(t *testing.T) {
	course, err := NewCourse(validCourseParams(t, []Hole{
		mustHole(t, 1, 650, 6, 1),
	}))
	require.NoError(t, err)

	score := scoreForHoles(t, []ScoreHole{
		detailedScoreHole(t, 1, 7, 2, "Fairway", true),
	})

	sc, err := NewScoreCard(course, score)
	require.NoError(t, err)
	assert.InDelta(t, 7.00, sc.ParAverages()[6], 1e-9)
}

func TestToPar(t *testing.T) {
	course, err := NewCourse(validCourseParams(t, nineHoles(t, 400, 4)))
	require.NoError(t, err)

	holes := make([]ScoreHole, 0, 9)
	for i := 1; i <= 9; i++ {
		holes = append(holes, detailedScoreHole(t, i, 5, 2, "Fairway", false))
	}
	sc, err := NewScoreCard(course, scoreForHoles(t, holes))
	require.NoError(t, err)

	assert.Equal(t, 9, sc.ToPar())
}
