package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestEngine(t)

	a := sampleSession("2026-03-13")
	b := sampleSession("2026-03-14")
	b.TrainingDayID = "bench_day"
	b.Exercises[0].Sets[1].Completed = true
	require.NoError(t, src.Put(a))
	require.NoError(t, src.Put(b))

	var buf bytes.Buffer
	require.NoError(t, Export(src, &buf))

	dst := newTestEngine(t)
	count, err := Import(dst, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	gotA := dst.Get("2026-03-13")
	gotB := dst.Get("2026-03-14")
	require.NotNil(t, gotA)
	require.NotNil(t, gotB)
	assert.Equal(t, "bench_day", gotB.TrainingDayID)
	assert.Equal(t, a.Exercises[0].Sets, gotA.Exercises[0].Sets)
	assert.Equal(t, b.Exercises[0].Sets, gotB.Exercises[0].Sets)
}

func TestExportEmptyStore(t *testing.T) {
	eng := newTestEngine(t)

	var buf bytes.Buffer
	require.NoError(t, Export(eng, &buf))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestImportRejectsMalformedPayload(t *testing.T) {
	eng := newTestEngine(t)

	for name, payload := range map[string]string{
		"not json":       "definitely not json",
		"not an array":   `{"date": "2026-03-14"}`,
		"wrong elements": `[42, "x"]`,
		"missing dates":  `[{"training_day_id": "squat_day"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			count, err := Import(eng, strings.NewReader(payload))
			assert.ErrorIs(t, err, ErrInvalidFile)
			assert.Zero(t, count)
		})
	}

	all, err := eng.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all, "rejected payloads write nothing")
}

func TestImportUpsertsByDate(t *testing.T) {
	eng := newTestEngine(t)
	require.NoError(t, eng.Put(sampleSession("2026-03-14")))

	var buf bytes.Buffer
	replacement := sampleSession("2026-03-14")
	replacement.TrainingDayID = "deadlift_day"
	src := newTestEngine(t)
	require.NoError(t, src.Put(replacement))
	require.NoError(t, Export(src, &buf))

	count, err := Import(eng, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got := eng.Get("2026-03-14")
	require.NotNil(t, got)
	assert.Equal(t, "deadlift_day", got.TrainingDayID)
}
