package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ironlog/ironlog/internal/models"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// SQLEngine stores one JSON-encoded session row per date.
type SQLEngine struct {
	DB  *sql.DB
	now func() time.Time
}

// OpenSQL opens and initializes the primary engine. Plain paths use the
// embedded sqlite driver; URLs (libsql://, wss://, https://) go through
// the libsql client so the database can live on a remote sqlite host.
func OpenSQL(conn string) (*SQLEngine, error) {
	driver := "sqlite"
	if strings.Contains(conn, "://") {
		driver = "libsql"
	}

	db, err := sql.Open(driver, conn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", conn, err)
	}

	if err := initializeDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &SQLEngine{DB: db, now: time.Now}, nil
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS sessions (
            date TEXT PRIMARY KEY,
            training_day_id TEXT NOT NULL,
            updated_at TEXT NOT NULL,
            data TEXT NOT NULL
        );
    `)
	return err
}

func (e *SQLEngine) Get(date string) *models.Session {
	var data string
	err := e.DB.QueryRow(
		`SELECT data FROM sessions WHERE date = ?`, date,
	).Scan(&data)
	if err != nil {
		// Miss and failure both read as absent.
		return nil
	}

	var s models.Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil
	}
	return &s
}

func (e *SQLEngine) Put(s *models.Session) error {
	s.UpdatedAt = e.now().UTC()

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	_, err = e.DB.Exec(
		`INSERT OR REPLACE INTO sessions (date, training_day_id, updated_at, data)
         VALUES (?, ?, ?, ?)`,
		s.Date, s.TrainingDayID, s.UpdatedAt.Format(time.RFC3339), string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (e *SQLEngine) ListAll() ([]models.Session, error) {
	rows, err := e.DB.Query(`SELECT data FROM sessions`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			continue
		}
		var s models.Session
		if err := json.Unmarshal([]byte(data), &s); err != nil {
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (e *SQLEngine) Clear() error {
	if _, err := e.DB.Exec(`DELETE FROM sessions`); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}
	return nil
}

var _ Engine = (*SQLEngine)(nil)
