package session

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ironlog/ironlog/internal/models"
)

// Build expands a training-day template into a trackable session for the
// given date. Pure construction: the caller must persist the result.
// Main lift comes first, then accessories in template order; each exercise
// gets one SetEntry per configured set.
func Build(tpl *models.TrainingDayTemplate, date string, now time.Time) *models.Session {
	exercises := make([]models.TrackedExercise, 0, 1+len(tpl.Accessories))

	exercises = append(exercises, buildExercise(tpl.MainLift))
	for _, acc := range tpl.Accessories {
		exercises = append(exercises, buildExercise(acc))
	}

	return &models.Session{
		ID:              uuid.New().String(),
		Date:            date,
		TrainingDayID:   tpl.ID,
		TrainingDayName: tpl.Name,
		Exercises:       exercises,
		CreatedAt:       now.UTC(),
	}
}

func buildExercise(ex models.ExerciseTemplate) models.TrackedExercise {
	sets := make([]models.SetEntry, 0, ex.Sets)
	for i := 0; i < ex.Sets; i++ {
		sets = append(sets, models.SetEntry{
			Index:      i,
			TargetReps: ex.Reps,
			ActualReps: InitialReps(ex.Reps),
			Weight:     "",
			Completed:  false,
		})
	}

	return models.TrackedExercise{
		ExerciseID:  ex.ExerciseID,
		Name:        ex.Name,
		RestSeconds: ex.RestSeconds,
		Note:        ex.IntensityNote,
		Sets:        sets,
	}
}

// InitialReps seeds the actual-rep count from a target-rep string by
// keeping its digits: "8" -> "8", "10 each leg" -> "10", "AMRAP" -> "0".
func InitialReps(target string) string {
	var b strings.Builder
	for _, r := range target {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
