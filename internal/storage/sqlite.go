// Package storage provides SQLite-based persistence for crawl session history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a session does not exist.
var ErrNotFound = errors.New("storage: session not found")

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Session is the record of one finished crawl.
type Session struct {
	ID        string // UUID, also used as the journal file name
	Scenario  string
	Origin    string // "local" or "ssh"
	Player    string // SSH user, empty for local play
	Seed      int64
	Ticks     int64
	Commands  int
	Champions int
	FinalX    int
	FinalY    int
	FinalDir  string
	Journal   string // Path of the input journal, if one was written
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns how long the session ran.
func (s Session) Duration() time.Duration {
	if s.EndedAt.Before(s.StartedAt) {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// NewSessionID returns a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions finish concurrently; one connection serialises the writes.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			scenario TEXT NOT NULL,
			origin TEXT NOT NULL DEFAULT 'local',
			player TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			commands INTEGER NOT NULL DEFAULT 0,
			champions INTEGER NOT NULL DEFAULT 0,
			final_x INTEGER NOT NULL DEFAULT 0,
			final_y INTEGER NOT NULL DEFAULT 0,
			final_dir TEXT NOT NULL DEFAULT '',
			journal TEXT NOT NULL DEFAULT '',
			started_at DATETIME NOT NULL,
			ended_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_scenario ON sessions(scenario);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(ended_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session and returns its ID. A session
// without an ID gets a new one.
func (s *Store) SaveSession(sess Session) (string, error) {
	if sess.ID == "" {
		sess.ID = NewSessionID()
	}
	if sess.Origin == "" {
		sess.Origin = "local"
	}
	if sess.EndedAt.IsZero() {
		sess.EndedAt = time.Now()
	}
	if sess.StartedAt.IsZero() {
		sess.StartedAt = sess.EndedAt
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions
		 (id, scenario, origin, player, seed, ticks, commands, champions, final_x, final_y, final_dir, journal, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.Scenario, sess.Origin, sess.Player, sess.Seed, sess.Ticks, sess.Commands,
		sess.Champions, sess.FinalX, sess.FinalY, sess.FinalDir, sess.Journal,
		formatTime(sess.StartedAt), formatTime(sess.EndedAt),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return sess.ID, nil
}

const sessionColumns = `id, scenario, origin, player, seed, ticks, commands, champions,
	final_x, final_y, final_dir, journal, started_at, ended_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (Session, error) {
	var sess Session
	var startedAt, endedAt any
	err := row.Scan(&sess.ID, &sess.Scenario, &sess.Origin, &sess.Player, &sess.Seed, &sess.Ticks,
		&sess.Commands, &sess.Champions, &sess.FinalX, &sess.FinalY, &sess.FinalDir, &sess.Journal,
		&startedAt, &endedAt)
	if err != nil {
		return sess, err
	}
	sess.StartedAt = parseTime(startedAt)
	sess.EndedAt = parseTime(endedAt)
	return sess, nil
}

// SessionByID retrieves a session by its ID.
func (s *Store) SessionByID(id string) (*Session, error) {
	row := s.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return &sess, nil
}

// RecentSessions retrieves the most recent sessions, newest first. An empty
// scenario matches every scenario.
func (s *Store) RecentSessions(scenario string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows *sql.Rows
	var err error
	if scenario == "" {
		rows, err = s.db.Query(
			`SELECT `+sessionColumns+` FROM sessions ORDER BY ended_at DESC, id LIMIT ?`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT `+sessionColumns+` FROM sessions WHERE scenario = ? ORDER BY ended_at DESC, id LIMIT ?`,
			scenario, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// ClearSessions deletes all sessions of the given scenario.
func (s *Store) ClearSessions(scenario string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE scenario = ?", scenario)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// ScenarioStats contains aggregated statistics for a scenario.
type ScenarioStats struct {
	Scenario    string
	Sessions    int
	TotalTicks  int64
	LongestRun  int64
	AvgCommands float64
	LastPlayed  time.Time
}

// AllScenarioStats retrieves statistics for every scenario that has been
// played.
func (s *Store) AllScenarioStats() (map[string]*ScenarioStats, error) {
	rows, err := s.db.Query(
		`SELECT scenario, COUNT(*), SUM(ticks), MAX(ticks), AVG(commands), MAX(ended_at)
		 FROM sessions
		 GROUP BY scenario`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scenario stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ScenarioStats)
	for rows.Next() {
		var st ScenarioStats
		var lastPlayed any
		if err := rows.Scan(&st.Scenario, &st.Sessions, &st.TotalTicks, &st.LongestRun, &st.AvgCommands, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Scenario] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

const timeLayout = "2006-01-02 15:04:05"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime handles both time.Time and string column values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
