package session

import (
	"fmt"

	"github.com/ironlog/ironlog/internal/models"
)

// Field names a mutable SetEntry column. Values are free-form strings; unit
// suffixes like "kg" are tolerated, no numeric validation happens here.
type Field string

const (
	FieldActualReps Field = "actualReps"
	FieldWeight     Field = "weight"
)

// SetField replaces one field of one set. Indices are 0-based.
func SetField(s *models.Session, exerciseIndex, setIndex int, field Field, value string) error {
	set, err := setAt(s, exerciseIndex, setIndex)
	if err != nil {
		return err
	}

	switch field {
	case FieldActualReps:
		set.ActualReps = value
	case FieldWeight:
		set.Weight = value
	default:
		return fmt.Errorf("unknown set field %q", field)
	}
	return nil
}

// ToggleCompleted flips a set's completion flag and returns the new state,
// so the caller can start the rest timer only on the false -> true edge.
func ToggleCompleted(s *models.Session, exerciseIndex, setIndex int) (bool, error) {
	set, err := setAt(s, exerciseIndex, setIndex)
	if err != nil {
		return false, err
	}

	set.Completed = !set.Completed
	return set.Completed, nil
}

func setAt(s *models.Session, exerciseIndex, setIndex int) (*models.SetEntry, error) {
	if exerciseIndex < 0 || exerciseIndex >= len(s.Exercises) {
		return nil, fmt.Errorf("exercise index %d out of range", exerciseIndex+1)
	}
	ex := &s.Exercises[exerciseIndex]
	if setIndex < 0 || setIndex >= len(ex.Sets) {
		return nil, fmt.Errorf("set index %d out of range for %s", setIndex+1, ex.Name)
	}
	return &ex.Sets[setIndex], nil
}
