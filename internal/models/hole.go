package models

import (
	"github.com/nschoena/golf-tracker/pkg/utils"
)

// Field bounds for a course hole. Handicap ranks difficulty; lower is harder.
const (
	MinHoleNumber = 1
	MaxHoleNumber = 18
	MinYardage    = 50
	MaxYardage    = 700
	MinPar        = 3
	MaxPar        = 6
	MinHandicap   = 1
	MaxHandicap   = 18
)

// Hole represents one hole as printed on a course scorecard. It is write-once:
// every field is validated in NewHole and never changes afterward.
type Hole struct {
	number   int
	yardage  int
	par      int
	handicap int
}

// NewHole validates all four fields atomically. A Hole is never observable in
// a partially valid state.
func NewHole(number, yardage, par, handicap int) (Hole, error) {
	if number < MinHoleNumber || number > MaxHoleNumber {
		return Hole{}, utils.NewOutOfRange("hole number", MinHoleNumber, MaxHoleNumber, number)
	}
	if yardage < MinYardage || yardage > MaxYardage {
		return Hole{}, utils.NewOutOfRange("yardage", MinYardage, MaxYardage, yardage)
	}
	if par < MinPar || par > MaxPar {
		return Hole{}, utils.NewOutOfRange("par", MinPar, MaxPar, par)
	}
	if handicap < MinHandicap || handicap > MaxHandicap {
		return Hole{}, utils.NewOutOfRange("handicap", MinHandicap, MaxHandicap, handicap)
	}

	return Hole{
		number:   number,
		yardage:  yardage,
		par:      par,
		handicap: handicap,
	}, nil
}

func (h Hole) Number() int { return h.number }
func (h Hole) Yardage() int { return h.yardage }
func (h Hole) Par() int { return h.par }
func (h Hole) Handicap() int { return h.handicap }
