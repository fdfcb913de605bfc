package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileEngine(t *testing.T) *FileEngine {
	t.Helper()
	return NewFileEngine(filepath.Join(t.TempDir(), "fallback_session.toml"))
}

func TestFileEngineRoundTrip(t *testing.T) {
	eng := newTestFileEngine(t)

	s := sampleSession("2026-03-14")
	require.NoError(t, eng.Put(s))

	got := eng.Get("2026-03-14")
	require.NotNil(t, got)
	assert.Equal(t, "squat_day", got.TrainingDayID)
	require.Len(t, got.Exercises, 1)
	assert.Equal(t, s.Exercises[0].Sets, got.Exercises[0].Sets)
}

func TestFileEngineHoldsOneRecord(t *testing.T) {
	eng := newTestFileEngine(t)

	require.NoError(t, eng.Put(sampleSession("2026-03-13")))
	require.NoError(t, eng.Put(sampleSession("2026-03-14")))

	// The newer record evicted the older one.
	assert.Nil(t, eng.Get("2026-03-13"))
	assert.NotNil(t, eng.Get("2026-03-14"))
}

// Listing is unavailable in degraded mode: empty, not an error.
func TestFileEngineListAllIsEmpty(t *testing.T) {
	eng := newTestFileEngine(t)
	require.NoError(t, eng.Put(sampleSession("2026-03-14")))

	all, err := eng.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFileEngineGetMiss(t *testing.T) {
	eng := newTestFileEngine(t)
	assert.Nil(t, eng.Get("2026-03-14"), "no file yet reads as absent")

	require.NoError(t, eng.Put(sampleSession("2026-03-14")))
	assert.Nil(t, eng.Get("2026-03-15"), "stored date differs")
}

func TestFileEngineClear(t *testing.T) {
	eng := newTestFileEngine(t)

	require.NoError(t, eng.Clear(), "clearing an empty store is fine")

	require.NoError(t, eng.Put(sampleSession("2026-03-14")))
	require.NoError(t, eng.Clear())
	assert.Nil(t, eng.Get("2026-03-14"))
}
