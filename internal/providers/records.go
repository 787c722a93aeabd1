// Package providers loads course and score records from flat JSON files and
// turns them into validated domain models. It is the only place raw input
// exists; nothing escapes this package unvalidated.
package providers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/nschoena/golf-tracker/pkg/utils"
)

// CourseRecord mirrors course.schema.json.
type CourseRecord struct {
	CourseID   int                `json:"courseId"`
	CourseName string             `json:"courseName" validate:"required"`
	Tees       string             `json:"tees" validate:"required"`
	CourseSide string             `json:"courseSide" validate:"required"`
	Location   string             `json:"location"`
	Rating     float64            `json:"rating" validate:"required"`
	Slope      int                `json:"slope" validate:"required"`
	Holes      []CourseHoleRecord `json:"holes" validate:"required,min=1,dive"`
}

type CourseHoleRecord struct {
	HoleNumber int `json:"holeNumber" validate:"required"`
	Yardage    int `json:"yardage" validate:"required"`
	Par        int `json:"par" validate:"required"`
	Handicap   int `json:"handicap" validate:"required"`
}

// ScoreRecord mirrors score.schema.json. The detailed per-hole fields are
// nullable in the schema, hence the pointers.
type ScoreRecord struct {
	ScoreID     int               `json:"scoreId"`
	CourseID    int               `json:"courseId"`
	CourseName  string            `json:"courseName" validate:"required"`
	Tees        string            `json:"tees" validate:"required"`
	CourseSide  string            `json:"courseSide" validate:"required"`
	DatePlayed  string            `json:"datePlayed" validate:"required"`
	HolesPlayed []ScoreHoleRecord `json:"holesPlayed" validate:"required,min=1,dive"`
}

type ScoreHoleRecord struct {
	HoleNumber  int     `json:"holeNumber" validate:"required"`
	Strokes     int     `json:"strokes" validate:"required"`
	Putts       *int    `json:"putts"`
	DriveResult *string `json:"driveResult"`
	GIR         *bool   `json:"gir"`
}

var validate = validator.New()

// decodeRecord unmarshals raw JSON into a record and checks that every
// required field is present. Wrong-kind JSON values surface here as
// TYPE_MISMATCH; the domain constructors are statically typed so this is the
// only boundary where kind errors can occur.
func decodeRecord(data []byte, record interface{}) error {
	if err := json.Unmarshal(data, record); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return utils.NewTypeMismatch(
				fmt.Sprintf("field %q must be of type %s", typeErr.Field, typeErr.Type),
				fmt.Sprintf("received %s", typeErr.Value))
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := validate.Struct(record); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return utils.NewTypeMismatch(
				fmt.Sprintf("field %q is missing or empty", fe.Field()),
				fmt.Sprintf("failed %q constraint", fe.Tag()))
		}
		return err
	}
	return nil
}
