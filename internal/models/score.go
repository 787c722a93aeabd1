package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/nschoena/golf-tracker/pkg/utils"
)

const roundDateLayout = "2006-01-02"

// ParseRoundDate parses a strict ISO-8601 YYYY-MM-DD string into the
// normalized internal date representation.
func ParseRoundDate(value string) (time.Time, error) {
	t, err := time.Parse(roundDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, utils.NewMalformedDate(value)
	}
	return t, nil
}

// normalizeRoundDate drops any time-of-day and zone so that a parsed string
// and a caller-built time.Time for the same calendar day compare equal.
func normalizeRoundDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ScoreParams carries the raw inputs for NewScore. Side accepts any casing.
type ScoreParams struct {
	ID         int
	CourseID   int
	CourseName string
	Tees       string
	Side       string
	DatePlayed time.Time
	Holes      []ScoreHole
}

// Score records exactly one round at one course on one date. All derived
// statistics are computed on demand from the hole list, never cached.
type Score struct {
	id         int
	courseID   int
	courseName string
	tees       string
	side       CourseSide
	datePlayed time.Time
	holes      []ScoreHole
}

func NewScore(p ScoreParams) (*Score, error) {
	if p.ID < 0 {
		return nil, utils.NewAppError(utils.ErrCodeOutOfRange,
			"score id must be a non-negative integer",
			fmt.Sprintf("received %d", p.ID))
	}
	if p.CourseID < 0 {
		return nil, utils.NewAppError(utils.ErrCodeOutOfRange,
			"course id must be a non-negative integer",
			fmt.Sprintf("received %d", p.CourseID))
	}

	name := strings.TrimSpace(p.CourseName)
	if len(name) < minCourseNameLen {
		return nil, utils.NewAppError(utils.ErrCodeOutOfRange,
			fmt.Sprintf("course name must be at least %d characters", minCourseNameLen),
			fmt.Sprintf("received %q", p.CourseName))
	}

	tees, err := validateTees(p.Tees)
	if err != nil {
		return nil, err
	}

	side, err := ParseCourseSide(p.Side)
	if err != nil {
		return nil, err
	}

	if p.DatePlayed.IsZero() {
		return nil, utils.NewMalformedDate("zero date")
	}

	for _, sh := range p.Holes {
		if sh == (ScoreHole{}) {
			return nil, utils.NewContractViolation("holes played must be constructed with NewScoreHole")
		}
	}

	return &Score{
		id:         p.ID,
		courseID:   p.CourseID,
		courseName: name,
		tees:       tees,
		side:       side,
		datePlayed: normalizeRoundDate(p.DatePlayed),
		holes:      append([]ScoreHole(nil), p.Holes...),
	}, nil
}

func (s *Score) ID() int { return s.id }
func (s *Score) CourseID() int { return s.courseID }
func (s *Score) CourseName() string { return s.courseName }
func (s *Score) Tees() string { return s.tees }
func (s *Score) Side() CourseSide { return s.side }
func (s *Score) DatePlayed() time.Time { return s.datePlayed }

// HolesPlayed returns the ordered hole list. The slice is a copy so callers
// cannot mutate score state.
func (s *Score) HolesPlayed() []ScoreHole {
	return append([]ScoreHole(nil), s.holes...)
}

// IsDetailed reports whether every hole played has putts, drive result and
// GIR tracked.
func (s *Score) IsDetailed() bool {
	for _, sh := range s.holes {
		if !sh.IsDetailed() {
			return false
		}
	}
	return true
}

// RoundScore is the total strokes for the round. Always computable.
func (s *Score) RoundScore() int {
	total := 0
	for _, sh := range s.holes {
		total += sh.Strokes()
	}
	return total
}

// RoundPutts is the total putts for the round, or 0 when the round is not
// fully detailed.
func (s *Score) RoundPutts() int {
	if !s.IsDetailed() {
		return 0
	}
	total := 0
	for _, sh := range s.holes {
		putts, _ := sh.Putts()
		total += putts
	}
	return total
}

// GIRPercent is the fraction of holes played with the green hit in
// regulation, in [0,1]. The denominator is every hole played, Par3 holes
// included. Returns 0 when the round is not fully detailed.
func (s *Score) GIRPercent() float64 {
	if !s.IsDetailed() || len(s.holes) == 0 {
		return 0.0
	}
	hit := 0
	for _, sh := range s.holes {
		if gir, _ := sh.GIR(); gir {
			hit++
		}
	}
	return float64(hit) / float64(len(s.holes))
}

// DriveAccuracy is the [left, fairway, right] ratio over holes with a
// recorded drive other than Par3 (no fairway to miss on a Par3). Returns
// [0,0,0] when the round is not fully detailed or no drives qualify.
func (s *Score) DriveAccuracy() [3]float64 {
	var accuracy [3]float64
	if !s.IsDetailed() {
		return accuracy
	}

	var left, fairway, right, total int
	for _, sh := range s.holes {
		drive, ok := sh.Drive()
		if !ok || drive == DrivePar3 {
			continue
		}
		total++
		switch drive {
		case DriveLeft:
			left++
		case DriveFairway:
			fairway++
		case DriveRight:
			right++
		}
	}
	if total == 0 {
		return accuracy
	}

	accuracy[0] = float64(left) / float64(total)
	accuracy[1] = float64(fairway) / float64(total)
	accuracy[2] = float64(right) / float64(total)
	return accuracy
}
