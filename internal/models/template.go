package models

// ExerciseTemplate is one prescribed exercise inside a training day.
// Reps is free-form: "5", "12", but also "10 each leg" or "AMRAP".
type ExerciseTemplate struct {
	ExerciseID    string `json:"exercise_id"`
	Name          string `json:"name"`
	Sets          int    `json:"sets"`
	Reps          string `json:"reps"`
	RestSeconds   int    `json:"rest_seconds"`
	IntensityNote string `json:"intensity_note,omitempty"`
}

type TrainingDayTemplate struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	MainLift    ExerciseTemplate   `json:"main_lift"`
	Accessories []ExerciseTemplate `json:"accessories"`
}

//
// For TOML parsing only
//

type CatalogTOML struct {
	TrainingDays []TrainingDayTOML `toml:"training_day"`
}

type TrainingDayTOML struct {
	ID          string         `toml:"id"`
	Name        string         `toml:"name"`
	MainLift    ExerciseTOML   `toml:"main_lift"`
	Accessories []ExerciseTOML `toml:"accessory"`
}

type ExerciseTOML struct {
	ExerciseID    string `toml:"exercise_id"`
	Name          string `toml:"name"`
	Sets          int    `toml:"sets"`
	Reps          string `toml:"reps"`
	RestSeconds   int    `toml:"rest_seconds"`
	IntensityNote string `toml:"intensity_note,omitempty"`
}
