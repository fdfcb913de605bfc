package catalog

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ironlog/ironlog/internal/config"
	"github.com/ironlog/ironlog/internal/models"
)

// Default returns the built-in training days. These ship with the binary
// and are never persisted; user-defined days can extend or replace them
// via training_days.toml in the config dir.
func Default() []models.TrainingDayTemplate {
	return []models.TrainingDayTemplate{
		{
			ID:   "squat_day",
			Name: "Squat Day",
			MainLift: models.ExerciseTemplate{
				ExerciseID: "back_squat", Name: "Back Squat",
				Sets: 5, Reps: "5", RestSeconds: 120,
				IntensityNote: "Heavy (75–85% 1RM)",
			},
			Accessories: []models.ExerciseTemplate{
				{ExerciseID: "romanian_deadlift", Name: "Romanian Deadlift", Sets: 4, Reps: "8", RestSeconds: 90},
				{ExerciseID: "walking_lunges", Name: "Walking Lunges", Sets: 3, Reps: "10 each leg", RestSeconds: 60},
				{ExerciseID: "leg_press", Name: "Leg Press", Sets: 3, Reps: "12", RestSeconds: 60},
				{ExerciseID: "calf_raises", Name: "Calf Raises", Sets: 4, Reps: "12", RestSeconds: 45},
				{ExerciseID: "barbell_row", Name: "Barbell Row", Sets: 4, Reps: "8", RestSeconds: 90},
				{ExerciseID: "face_pulls", Name: "Face Pulls", Sets: 3, Reps: "15", RestSeconds: 45},
				{ExerciseID: "hanging_leg_raises", Name: "Hanging Leg Raises", Sets: 3, Reps: "10", RestSeconds: 45},
			},
		},
		{
			ID:   "bench_day",
			Name: "Bench Day",
			MainLift: models.ExerciseTemplate{
				ExerciseID: "bench_press", Name: "Bench Press",
				Sets: 5, Reps: "5", RestSeconds: 120,
				IntensityNote: "Heavy (75–85% 1RM)",
			},
			Accessories: []models.ExerciseTemplate{
				{ExerciseID: "overhead_press", Name: "Overhead Press", Sets: 4, Reps: "6", RestSeconds: 90},
				{ExerciseID: "lat_pulldown", Name: "Lat Pulldown or Pull-Ups", Sets: 3, Reps: "8", RestSeconds: 90},
				{ExerciseID: "incline_dumbbell_press", Name: "Incline Dumbbell Press", Sets: 3, Reps: "10", RestSeconds: 75},
				{ExerciseID: "lateral_raises", Name: "Dumbbell Lateral Raises", Sets: 3, Reps: "12", RestSeconds: 45},
				{ExerciseID: "triceps_pushdowns", Name: "Triceps Pushdowns", Sets: 3, Reps: "12", RestSeconds: 45},
				{ExerciseID: "bicep_curls", Name: "Bicep Curls", Sets: 3, Reps: "10", RestSeconds: 45},
				{ExerciseID: "rear_delt_flyes", Name: "Rear Delt Flyes", Sets: 3, Reps: "15", RestSeconds: 45},
			},
		},
		{
			ID:   "deadlift_day",
			Name: "Deadlift Day",
			MainLift: models.ExerciseTemplate{
				ExerciseID: "deadlift", Name: "Deadlift",
				Sets: 5, Reps: "3", RestSeconds: 150,
				IntensityNote: "Heavy (80–90% 1RM)",
			},
			Accessories: []models.ExerciseTemplate{
				{ExerciseID: "seated_cable_row", Name: "Seated Cable Row", Sets: 4, Reps: "10", RestSeconds: 90},
				{ExerciseID: "hip_thrusts", Name: "Hip Thrusts", Sets: 3, Reps: "8", RestSeconds: 90},
				{ExerciseID: "hamstring_curls", Name: "Hamstring Curls", Sets: 3, Reps: "12", RestSeconds: 60},
				{ExerciseID: "shrugs", Name: "Shrugs", Sets: 3, Reps: "12", RestSeconds: 60},
				{ExerciseID: "hammer_curls", Name: "Hammer Curls", Sets: 3, Reps: "10", RestSeconds: 45},
				{ExerciseID: "triceps_rope_extensions", Name: "Triceps Rope Extensions", Sets: 3, Reps: "12", RestSeconds: 45},
				{ExerciseID: "cable_crunch", Name: "Cable Crunch", Sets: 3, Reps: "12", RestSeconds: 45},
			},
		},
	}
}

// Load returns the full catalog: built-in days plus any user days from
// training_days.toml. A user day with the same id replaces the built-in
// one; new ids are appended in file order.
func Load() ([]models.TrainingDayTemplate, error) {
	days := Default()

	path, err := config.CatalogPath()
	if err != nil {
		return days, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return days, nil
	}

	user, err := ParseCatalogTOML(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	for _, day := range user {
		replaced := false
		for i := range days {
			if days[i].ID == day.ID {
				days[i] = day
				replaced = true
				break
			}
		}
		if !replaced {
			days = append(days, day)
		}
	}
	return days, nil
}

// ParseCatalogTOML reads user training days from a TOML file.
func ParseCatalogTOML(path string) ([]models.TrainingDayTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw models.CatalogTOML
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	days := make([]models.TrainingDayTemplate, 0, len(raw.TrainingDays))
	for _, d := range raw.TrainingDays {
		days = append(days, models.TrainingDayTemplate{
			ID:          d.ID,
			Name:        d.Name,
			MainLift:    fromExerciseTOML(d.MainLift),
			Accessories: fromExerciseTOMLs(d.Accessories),
		})
	}
	return days, nil
}

func fromExerciseTOML(e models.ExerciseTOML) models.ExerciseTemplate {
	return models.ExerciseTemplate{
		ExerciseID:    e.ExerciseID,
		Name:          e.Name,
		Sets:          e.Sets,
		Reps:          e.Reps,
		RestSeconds:   e.RestSeconds,
		IntensityNote: e.IntensityNote,
	}
}

func fromExerciseTOMLs(es []models.ExerciseTOML) []models.ExerciseTemplate {
	out := make([]models.ExerciseTemplate, 0, len(es))
	for _, e := range es {
		out = append(out, fromExerciseTOML(e))
	}
	return out
}

// Find looks a day up by id.
func Find(days []models.TrainingDayTemplate, id string) (*models.TrainingDayTemplate, bool) {
	for i := range days {
		if days[i].ID == id {
			return &days[i], true
		}
	}
	return nil, false
}
