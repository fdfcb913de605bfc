package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ironlog/ironlog/internal/models"
)

// ErrInvalidFile marks an import payload that is not a JSON array of
// session records.
var ErrInvalidFile = errors.New("invalid file")

// Export writes every stored session as an indented JSON array, the same
// shape Import accepts.
func Export(eng Engine, w io.Writer) error {
	sessions, err := eng.ListAll()
	if err != nil {
		return fmt.Errorf("failed to read sessions for export: %w", err)
	}
	if sessions == nil {
		sessions = []models.Session{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sessions)
}

// Import parses a JSON array of sessions and upserts each one under its
// own date. The operation is not transactional: records written before a
// later Put failure stay written. Returns the number of imported sessions.
func Import(eng Engine, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read import payload: %w", err)
	}

	var sessions []models.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return 0, ErrInvalidFile
	}
	for _, s := range sessions {
		if s.Date == "" {
			return 0, ErrInvalidFile
		}
	}

	count := 0
	for i := range sessions {
		if err := eng.Put(&sessions[i]); err != nil {
			return count, fmt.Errorf("failed to import session %s: %w", sessions[i].Date, err)
		}
		count++
	}
	return count, nil
}
