package storage

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ironlog/ironlog/internal/models"
)

// FileEngine is the degraded-mode store: one TOML file holding at most one
// session. Get only answers for the stored date and ListAll is always
// empty, so history browsing is unavailable until the primary database
// comes back. That capability loss is deliberate, not a bug.
type FileEngine struct {
	path string
	now  func() time.Time
}

func NewFileEngine(path string) *FileEngine {
	return &FileEngine{path: path, now: time.Now}
}

func (e *FileEngine) Get(date string) *models.Session {
	var s models.Session
	if _, err := toml.DecodeFile(e.path, &s); err != nil {
		return nil
	}
	if s.Date != date {
		return nil
	}
	return &s
}

func (e *FileEngine) Put(s *models.Session) error {
	s.UpdatedAt = e.now().UTC()

	f, err := os.Create(e.path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(s)
}

// ListAll returns nothing in degraded mode.
func (e *FileEngine) ListAll() ([]models.Session, error) {
	return nil, nil
}

func (e *FileEngine) Clear() error {
	err := os.Remove(e.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

var _ Engine = (*FileEngine)(nil)
