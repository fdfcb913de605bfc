package models

import "time"

// SetEntry is one trackable working set. Entries are created once when a
// session is built and never reordered or deleted afterwards; Index is the
// dense 0-based position inside its exercise.
type SetEntry struct {
	Index      int    `json:"index" toml:"index"`
	TargetReps string `json:"targetReps" toml:"target_reps"`
	ActualReps string `json:"actualReps" toml:"actual_reps"`
	Weight     string `json:"weight" toml:"weight"`
	Completed  bool   `json:"completed" toml:"completed"`
}

type TrackedExercise struct {
	ExerciseID  string     `json:"exercise_id" toml:"exercise_id"`
	Name        string     `json:"name" toml:"name"`
	RestSeconds int        `json:"rest_seconds" toml:"rest_seconds"`
	Note        string     `json:"note" toml:"note"`
	Sets        []SetEntry `json:"sets" toml:"set"`
}

// Session is one calendar day's mutable record of performed sets.
// Date ("2006-01-02") is the storage primary key: a second save for the
// same date overwrites the first.
type Session struct {
	ID              string            `json:"id" toml:"id"`
	Date            string            `json:"date" toml:"date"`
	TrainingDayID   string            `json:"training_day_id" toml:"training_day_id"`
	TrainingDayName string            `json:"training_day_name" toml:"training_day_name"`
	Exercises       []TrackedExercise `json:"exercises" toml:"exercise"`
	CreatedAt       time.Time         `json:"createdAt" toml:"created_at"`
	UpdatedAt       time.Time         `json:"updatedAt" toml:"updated_at"`
}

// TotalSets counts every set entry across all exercises.
func (s *Session) TotalSets() int {
	total := 0
	for _, ex := range s.Exercises {
		total += len(ex.Sets)
	}
	return total
}

// CompletedSets counts the entries marked done.
func (s *Session) CompletedSets() int {
	done := 0
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			if set.Completed {
				done++
			}
		}
	}
	return done
}
