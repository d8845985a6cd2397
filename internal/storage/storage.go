package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"wekker/internal/alarm"
)

// Storage is the SQLite persistence layer for alarms.
type Storage struct {
	db *sql.DB
}

// New opens (and if needed initializes) the alarm database.
func New(dbPath string) (*Storage, error) {
	log.Debug().Str("path", dbPath).Msg("Opening database")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Storage{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS alarms (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		ring_at DATETIME NOT NULL,
		status TEXT NOT NULL DEFAULT 'dormant',
		active BOOLEAN NOT NULL DEFAULT 1,
		snooze_seconds INTEGER NOT NULL DEFAULT 540,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_alarms_ring_at ON alarms(ring_at);
	CREATE INDEX IF NOT EXISTS idx_alarms_active ON alarms(active);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Add inserts a new alarm and fills in its ID.
func (s *Storage) Add(a *alarm.Alarm) error {
	log.Debug().
		Str("name", a.Name).
		Time("ring_at", a.At).
		Msg("Adding alarm")

	query := `
		INSERT INTO alarms (name, ring_at, status, active, snooze_seconds, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	result, err := s.db.Exec(
		query,
		a.Name,
		a.At,
		string(a.Status),
		a.Active,
		int(a.SnoozeDuration.Seconds()),
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert alarm: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}
	a.ID = id

	log.Info().Int64("id", id).Str("name", a.Name).Msg("Alarm saved")
	return nil
}

// Update persists the mutable alarm fields.
func (s *Storage) Update(a *alarm.Alarm) error {
	log.Debug().Int64("id", a.ID).Msg("Updating alarm")

	query := `
		UPDATE alarms SET
			ring_at = ?,
			status = ?,
			active = ?,
			snooze_seconds = ?
		WHERE id = ?
	`

	_, err := s.db.Exec(
		query,
		a.At,
		string(a.Status),
		a.Active,
		int(a.SnoozeDuration.Seconds()),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update alarm: %w", err)
	}
	return nil
}

// Get fetches one alarm by name.
func (s *Storage) Get(name string) (*alarm.Alarm, error) {
	row := s.db.QueryRow(`
		SELECT id, name, ring_at, status, active, snooze_seconds, created_at
		FROM alarms
		WHERE name = ?
	`, name)

	a, err := scanAlarm(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("alarm %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch alarm: %w", err)
	}
	return a, nil
}

// List returns all alarms ordered by next ring time.
func (s *Storage) List() ([]*alarm.Alarm, error) {
	rows, err := s.db.Query(`
		SELECT id, name, ring_at, status, active, snooze_seconds, created_at
		FROM alarms
		ORDER BY ring_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query alarms: %w", err)
	}
	defer rows.Close()

	var alarms []*alarm.Alarm
	for rows.Next() {
		a, err := scanAlarm(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alarm: %w", err)
		}
		alarms = append(alarms, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alarms: %w", err)
	}

	log.Debug().Int("count", len(alarms)).Msg("Retrieved alarms")
	return alarms, nil
}

// Due returns armed alarms whose ring time has passed and that aren't
// already ringing.
func (s *Storage) Due(now time.Time) ([]*alarm.Alarm, error) {
	rows, err := s.db.Query(`
		SELECT id, name, ring_at, status, active, snooze_seconds, created_at
		FROM alarms
		WHERE active = 1 AND status != 'triggered' AND ring_at <= ?
		ORDER BY ring_at ASC
	`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query due alarms: %w", err)
	}
	defer rows.Close()

	var alarms []*alarm.Alarm
	for rows.Next() {
		a, err := scanAlarm(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alarm: %w", err)
		}
		alarms = append(alarms, a)
	}
	return alarms, rows.Err()
}

// Delete removes an alarm by name.
func (s *Storage) Delete(name string) error {
	result, err := s.db.Exec(`DELETE FROM alarms WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete alarm: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("alarm %q not found", name)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAlarm(row scanner) (*alarm.Alarm, error) {
	var (
		a             alarm.Alarm
		status        string
		snoozeSeconds int
	)
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.At,
		&status,
		&a.Active,
		&snoozeSeconds,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Status = alarm.Status(status)
	a.SnoozeDuration = time.Duration(snoozeSeconds) * time.Second
	return &a, nil
}
