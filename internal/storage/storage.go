// Package storage persists sessions keyed by calendar date. Two engines
// implement the same contract: a durable SQL engine and a degraded
// single-record file engine used when the database cannot be opened.
package storage

import (
	"github.com/ironlog/ironlog/internal/config"
	"github.com/ironlog/ironlog/internal/models"
)

// Engine is the session store contract.
//
// Get never returns an error: a miss and a storage failure both read as
// "no session for that date". Put stamps UpdatedAt and overwrites the
// whole record for its date. ListAll order is unspecified; the degraded
// engine always lists empty (known limitation, single-record capability).
type Engine interface {
	Get(date string) *models.Session
	Put(s *models.Session) error
	ListAll() ([]models.Session, error)
	Clear() error
}

// Open selects the engine once at startup. If the primary database cannot
// be initialized the degraded file engine takes over transparently; the
// capability loss is not reported, day-to-day logging keeps working.
func Open(cfg *config.Config) Engine {
	eng, err := OpenSQL(cfg.DB.ConnectionString)
	if err == nil {
		return eng
	}

	path, pathErr := config.FallbackSessionPath()
	if pathErr != nil {
		path = "fallback_session.toml"
	}
	return NewFileEngine(path)
}
