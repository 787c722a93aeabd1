package models

import (
	"fmt"
	"strings"

	"github.com/nschoena/golf-tracker/pkg/utils"
)

// DriveResult classifies a tee shot. Par3 marks holes with no fairway target.
type DriveResult string

const (
	DriveLeft    DriveResult = "LEFT"
	DriveFairway DriveResult = "FAIRWAY"
	DriveRight   DriveResult = "RIGHT"
	DrivePar3    DriveResult = "PAR3"
)

// ParseDriveResult accepts any casing and normalizes to uppercase.
func ParseDriveResult(value string) (DriveResult, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(DriveLeft):
		return DriveLeft, nil
	case string(DriveFairway):
		return DriveFairway, nil
	case string(DriveRight):
		return DriveRight, nil
	case string(DrivePar3):
		return DrivePar3, nil
	default:
		return "", utils.NewInvalidEnum("drive result", value,
			string(DriveLeft), string(DriveFairway), string(DriveRight), string(DrivePar3))
	}
}

const (
	MinStrokes = 1
	MaxStrokes = 15
	MinPutts   = 0
	MaxPutts   = 10
)

// ScoreHoleParams carries the raw inputs for NewScoreHole. Putts, Drive and
// GIR are the detailed fields; nil means the stat was not tracked.
type ScoreHoleParams struct {
	HoleNumber int
	Strokes    int
	Putts      *int
	Drive      *string
	GIR        *bool
}

// ScoreHole records how one hole was played. Write-once: the complete record
// is validated atomically in NewScoreHole, including the strokes/putts
// cross-field check, so there is no assignment-order sensitivity.
type ScoreHole struct {
	number   int
	strokes  int
	putts    int
	hasPutts bool
	drive    DriveResult
	gir      bool
	hasGIR   bool
}

func NewScoreHole(p ScoreHoleParams) (ScoreHole, error) {
	if p.HoleNumber < MinHoleNumber || p.HoleNumber > MaxHoleNumber {
		return ScoreHole{}, utils.NewOutOfRange("hole number", MinHoleNumber, MaxHoleNumber, p.HoleNumber)
	}
	if p.Strokes < MinStrokes || p.Strokes > MaxStrokes {
		return ScoreHole{}, utils.NewOutOfRange("strokes", MinStrokes, MaxStrokes, p.Strokes)
	}

	sh := ScoreHole{
		number:  p.HoleNumber,
		strokes: p.Strokes,
	}

	if p.Putts != nil {
		putts := *p.Putts
		if putts < MinPutts || putts > MaxPutts {
			return ScoreHole{}, utils.NewOutOfRange("putts", MinPutts, MaxPutts, putts)
		}
		if p.Strokes <= putts {
			return ScoreHole{}, utils.NewCrossField("strokes must be greater than putts",
				fmt.Sprintf("strokes %d, putts %d", p.Strokes, putts))
		}
		sh.putts = putts
		sh.hasPutts = true
	}

	if p.Drive != nil {
		drive, err := ParseDriveResult(*p.Drive)
		if err != nil {
			return ScoreHole{}, err
		}
		sh.drive = drive
	}

	if p.GIR != nil {
		sh.gir = *p.GIR
		sh.hasGIR = true
	}

	return sh, nil
}

func (sh ScoreHole) Number() int { return sh.number }
func (sh ScoreHole) Strokes() int { return sh.strokes }

// Putts reports the tracked putt count; ok is false when untracked.
func (sh ScoreHole) Putts() (int, bool) {
	return sh.putts, sh.hasPutts
}

// Drive reports the tee shot result; ok is false when untracked.
func (sh ScoreHole) Drive() (DriveResult, bool) {
	return sh.drive, sh.drive != ""
}

// GIR reports whether the green was hit in regulation; ok is false when
// untracked.
func (sh ScoreHole) GIR() (bool, bool) {
	return sh.gir, sh.hasGIR
}

// IsDetailed reports whether putts, drive result and GIR were all tracked.
func (sh ScoreHole) IsDetailed() bool {
	return sh.hasPutts && sh.drive != "" && sh.hasGIR
}
