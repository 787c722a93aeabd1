package models

import (
	"fmt"
	"strings"

	"github.com/nschoena/golf-tracker/pkg/utils"
)

// CourseSide identifies which part of the course a scorecard covers.
type CourseSide string

const (
	SideFront CourseSide = "Front"
	SideBack  CourseSide = "Back"
	SideAll   CourseSide = "All"
)

// ParseCourseSide accepts any casing and returns the canonical form.
func ParseCourseSide(value string) (CourseSide, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "front":
		return SideFront, nil
	case "back":
		return SideBack, nil
	case "all":
		return SideAll, nil
	default:
		return "", utils.NewInvalidEnum("course side", value,
			string(SideFront), string(SideBack), string(SideAll))
	}
}

// USGA bounds for course difficulty metrics.
const (
	MinRating = 60.0
	MaxRating = 85.0
	MinSlope  = 55
	MaxSlope  = 155
)

const (
	minCourseNameLen = 3
	minTeesLen       = 2
)

// CourseParams carries the raw inputs for NewCourse. Side accepts any casing.
type CourseParams struct {
	ID       int
	Name     string
	Tees     string
	Side     string
	Location string
	Rating   float64
	Slope    int
	Holes    []Hole
}

// Course aggregates 9 or 18 holes plus course metadata. Yardage and par are
// always recomputed from the hole list, never stored.
type Course struct {
	id       int
	name     string
	tees     string
	side     CourseSide
	location string
	rating   float64
	slope    int
	holes    []Hole
}

// NewCourse validates every field and returns a fully built course or an
// *utils.AppError. Hole ordering is significant: the front nine are the first
// nine elements.
func NewCourse(p CourseParams) (*Course, error) {
	if p.ID < 0 {
		return nil, utils.NewAppError(utils.ErrCodeOutOfRange,
			"course id must be a non-negative integer",
			fmt.Sprintf("received %d", p.ID))
	}

	name := strings.TrimSpace(p.Name)
	if len(name) < minCourseNameLen {
		return nil, utils.NewAppError(utils.ErrCodeOutOfRange,
			fmt.Sprintf("course name must be at least %d characters", minCourseNameLen),
			fmt.Sprintf("received %q", p.Name))
	}

	tees, err := validateTees(p.Tees)
	if err != nil {
		return nil, err
	}

	side, err := ParseCourseSide(p.Side)
	if err != nil {
		return nil, err
	}

	if p.Rating < MinRating || p.Rating > MaxRating {
		return nil, utils.NewOutOfRange("rating", MinRating, MaxRating, p.Rating)
	}
	if p.Slope < MinSlope || p.Slope > MaxSlope {
		return nil, utils.NewOutOfRange("slope", MinSlope, MaxSlope, p.Slope)
	}

	seen := make(map[int]bool, len(p.Holes))
	for _, h := range p.Holes {
		if h == (Hole{}) {
			return nil, utils.NewContractViolation("holes must be constructed with NewHole")
		}
		if seen[h.Number()] {
			return nil, utils.NewContractViolation(
				fmt.Sprintf("duplicate hole number %d on course", h.Number()))
		}
		seen[h.Number()] = true
	}

	return &Course{
		id:       p.ID,
		name:     name,
		tees:     tees,
		side:     side,
		location: strings.TrimSpace(p.Location),
		rating:   p.Rating,
		slope:    p.Slope,
		holes:    append([]Hole(nil), p.Holes...),
	}, nil
}

func validateTees(value string) (string, error) {
	tees := strings.TrimSpace(value)
	if len(tees) < minTeesLen {
		return "", utils.NewAppError(utils.ErrCodeOutOfRange,
			fmt.Sprintf("tees must be at least %d characters", minTeesLen),
			fmt.Sprintf("received %q", value))
	}
	return tees, nil
}

func (c *Course) ID() int { return c.id }
func (c *Course) Name() string { return c.name }
func (c *Course) Tees() string { return c.tees }
func (c *Course) Side() CourseSide { return c.side }
func (c *Course) Location() string { return c.location }
func (c *Course) Rating() float64 { return c.rating }
func (c *Course) Slope() int { return c.slope }

// Holes returns the ordered hole list. The slice is a copy so callers cannot
// mutate course state.
func (c *Course) Holes() []Hole {
	return append([]Hole(nil), c.holes...)
}

// FrontNine returns holes 1-9 of the scorecard layout (the OUT row).
func (c *Course) FrontNine() []Hole {
	n := len(c.holes)
	if n > 9 {
		n = 9
	}
	return append([]Hole(nil), c.holes[:n]...)
}

// BackNine returns holes 10-18 of the scorecard layout (the IN row).
func (c *Course) BackNine() []Hole {
	if len(c.holes) <= 9 {
		return nil
	}
	n := len(c.holes)
	if n > 18 {
		n = 18
	}
	return append([]Hole(nil), c.holes[9:n]...)
}

// Yardage is the total course yardage, recomputed from the holes.
func (c *Course) Yardage() int {
	total := 0
	for _, h := range c.holes {
		total += h.Yardage()
	}
	return total
}

// Par is the total course par, recomputed from the holes.
func (c *Course) Par() int {
	total := 0
	for _, h := range c.holes {
		total += h.Par()
	}
	return total
}

func (c *Course) String() string {
	return fmt.Sprintf("%s is a Par %d course in %s and is %d yards long.",
		c.name, c.Par(), c.location, c.Yardage())
}
