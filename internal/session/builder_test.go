package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironlog/ironlog/internal/catalog"
	"github.com/ironlog/ironlog/internal/models"
)

var buildTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestBuildShape(t *testing.T) {
	for _, tpl := range catalog.Default() {
		t.Run(tpl.ID, func(t *testing.T) {
			s := Build(&tpl, "2026-03-14", buildTime)

			require.Len(t, s.Exercises, 1+len(tpl.Accessories))
			assert.Equal(t, tpl.MainLift.ExerciseID, s.Exercises[0].ExerciseID, "main lift comes first")
			assert.Equal(t, tpl.ID, s.TrainingDayID)
			assert.Equal(t, tpl.Name, s.TrainingDayName)
			assert.Equal(t, "2026-03-14", s.Date)
			assert.Equal(t, buildTime, s.CreatedAt)
			assert.NotEmpty(t, s.ID)

			assert.Len(t, s.Exercises[0].Sets, tpl.MainLift.Sets)
			for i, acc := range tpl.Accessories {
				assert.Len(t, s.Exercises[i+1].Sets, acc.Sets)
			}

			for _, ex := range s.Exercises {
				for i, set := range ex.Sets {
					assert.Equal(t, i, set.Index, "set indices are the dense range [0, n)")
					assert.Empty(t, set.Weight)
					assert.False(t, set.Completed)
				}
			}
		})
	}
}

func TestBuildKeepsTargetRepsVerbatim(t *testing.T) {
	tpl := &models.TrainingDayTemplate{
		ID:   "test_day",
		Name: "Test Day",
		MainLift: models.ExerciseTemplate{
			ExerciseID: "lunge", Name: "Lunge", Sets: 2, Reps: "10 each leg", RestSeconds: 60,
		},
	}

	s := Build(tpl, "2026-03-14", buildTime)
	require.Len(t, s.Exercises, 1)
	for _, set := range s.Exercises[0].Sets {
		assert.Equal(t, "10 each leg", set.TargetReps)
		assert.Equal(t, "10", set.ActualReps)
	}
}

func TestBuildCarriesIntensityNote(t *testing.T) {
	days := catalog.Default()
	s := Build(&days[0], "2026-03-14", buildTime)
	assert.Equal(t, "Heavy (75–85% 1RM)", s.Exercises[0].Note)
	assert.Empty(t, s.Exercises[1].Note)
}

func TestInitialReps(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"8", "8"},
		{"12", "12"},
		{"10 each leg", "10"},
		{"AMRAP", "0"},
		{"", "0"},
		{"3-5", "35"}, // every digit is kept, not just the first run
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, InitialReps(tc.target), "target %q", tc.target)
	}
}
