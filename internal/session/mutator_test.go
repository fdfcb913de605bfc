package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironlog/ironlog/internal/catalog"
	"github.com/ironlog/ironlog/internal/models"
)

func testSession(t *testing.T) *models.Session {
	t.Helper()
	days := catalog.Default()
	return Build(&days[0], "2026-03-14", buildTime)
}

func TestSetField(t *testing.T) {
	s := testSession(t)

	require.NoError(t, SetField(s, 0, 2, FieldActualReps, "4"))
	assert.Equal(t, "4", s.Exercises[0].Sets[2].ActualReps)

	// Weight is free-form, unit suffixes included.
	require.NoError(t, SetField(s, 1, 0, FieldWeight, "80kg"))
	assert.Equal(t, "80kg", s.Exercises[1].Sets[0].Weight)
}

func TestSetFieldUnknownField(t *testing.T) {
	s := testSession(t)
	assert.Error(t, SetField(s, 0, 0, Field("completed"), "true"))
}

func TestSetFieldOutOfRange(t *testing.T) {
	s := testSession(t)

	assert.Error(t, SetField(s, len(s.Exercises), 0, FieldWeight, "80"))
	assert.Error(t, SetField(s, -1, 0, FieldWeight, "80"))
	assert.Error(t, SetField(s, 0, len(s.Exercises[0].Sets), FieldWeight, "80"))
	assert.Error(t, SetField(s, 0, -1, FieldWeight, "80"))

	// Failed edits leave the session untouched.
	for _, set := range s.Exercises[0].Sets {
		assert.Empty(t, set.Weight)
	}
}

func TestToggleCompletedInvolution(t *testing.T) {
	s := testSession(t)

	done, err := ToggleCompleted(s, 0, 0)
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, s.Exercises[0].Sets[0].Completed)

	done, err = ToggleCompleted(s, 0, 0)
	require.NoError(t, err)
	assert.False(t, done)
	assert.False(t, s.Exercises[0].Sets[0].Completed)
}

func TestToggleCompletedOutOfRange(t *testing.T) {
	s := testSession(t)

	_, err := ToggleCompleted(s, 42, 0)
	assert.Error(t, err)
	_, err = ToggleCompleted(s, 0, 42)
	assert.Error(t, err)
}
