// Package storage keeps a history of climb sessions in SQLite.
// It uses the pure-Go modernc.org/sqlite driver so the game builds without CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var ErrUnknownSession = errors.New("storage: unknown session")

// Store manages the SQLite connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Session is one attempt at a level, from spawn until the goal, a restart or
// the game closing.
type Session struct {
	ID          string
	Level       string
	StartedAt   time.Time
	FinishedAt  time.Time
	Finished    bool
	ReachedGoal bool
	StaminaLeft float64
	Moves       int
	Jumps       int
}

// MoveRecord is a single completed move.
type MoveRecord struct {
	Direction string
	Jump      bool
	Steps     int
	Quality   int
	Stamina   float64
}

// LevelStats aggregates every recorded session of a level.
type LevelStats struct {
	Level     string
	Sessions  int
	Completed int
	BestMoves int
	AvgMoves  float64
}

// Open creates or opens the database at dbPath, creating parent directories
// and running migrations. A leading ~ expands to the home directory.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			level TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			finished_at INTEGER NOT NULL DEFAULT 0,
			reached_goal INTEGER NOT NULL DEFAULT 0,
			stamina_left REAL NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_level ON sessions(level, started_at DESC);

		CREATE TABLE IF NOT EXISTS moves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			seq INTEGER NOT NULL,
			direction TEXT NOT NULL,
			jump INTEGER NOT NULL DEFAULT 0,
			steps INTEGER NOT NULL DEFAULT 0,
			quality INTEGER NOT NULL,
			stamina REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_moves_session ON moves(session_id, seq);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// StartSession opens a new session for level and returns its id.
func (s *Store) StartSession(level string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, level, started_at) VALUES (?, ?, ?)",
		id, level, s.now().UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot start session: %w", err)
	}
	return id, nil
}

// RecordMove appends a move to an open session.
func (s *Store) RecordMove(sessionID string, m MoveRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin: %w", err)
	}
	defer tx.Rollback()

	var seq int
	err = tx.QueryRow(
		`SELECT (SELECT COUNT(*) FROM moves WHERE session_id = ?)
		 FROM sessions WHERE id = ?`,
		sessionID, sessionID,
	).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w %q", ErrUnknownSession, sessionID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot count moves: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO moves (session_id, seq, direction, jump, steps, quality, stamina)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID, seq, m.Direction, m.Jump, m.Steps, m.Quality, m.Stamina,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record move: %w", err)
	}
	return tx.Commit()
}

// FinishSession closes a session. Finishing twice keeps the first result.
func (s *Store) FinishSession(sessionID string, reachedGoal bool, staminaLeft float64) error {
	res, err := s.db.Exec(
		`UPDATE sessions SET finished_at = ?, reached_goal = ?, stamina_left = ?
		 WHERE id = ? AND finished_at = 0`,
		s.now().UnixMilli(), reachedGoal, staminaLeft, sessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM sessions WHERE id = ?", sessionID).Scan(&exists); err == nil && exists == 0 {
			return fmt.Errorf("%w %q", ErrUnknownSession, sessionID)
		}
	}
	return nil
}

// Sessions lists the most recent sessions, newest first. An empty level
// lists every level.
func (s *Store) Sessions(level string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT s.id, s.level, s.started_at, s.finished_at, s.reached_goal, s.stamina_left,
		        COUNT(m.id), COALESCE(SUM(m.jump), 0)
		 FROM sessions s
		 LEFT JOIN moves m ON m.session_id = s.id
		 WHERE ? = '' OR s.level = ?
		 GROUP BY s.id
		 ORDER BY s.started_at DESC, s.rowid DESC
		 LIMIT ?`,
		level, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var (
			sess              Session
			started, finished int64
		)
		if err := rows.Scan(&sess.ID, &sess.Level, &started, &finished, &sess.ReachedGoal,
			&sess.StaminaLeft, &sess.Moves, &sess.Jumps); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.StartedAt = time.UnixMilli(started)
		if finished > 0 {
			sess.Finished = true
			sess.FinishedAt = time.UnixMilli(finished)
		}
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// LevelStats summarises a level. BestMoves counts only sessions that reached
// the goal and is zero when none did.
func (s *Store) LevelStats(level string) (LevelStats, error) {
	stats := LevelStats{Level: level}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(reached_goal), 0)
		 FROM sessions WHERE level = ?`,
		level,
	).Scan(&stats.Sessions, &stats.Completed)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	if stats.Sessions == 0 {
		return stats, nil
	}

	err = s.db.QueryRow(
		`SELECT COALESCE(MIN(CASE WHEN reached_goal = 1 THEN n END), 0), AVG(n)
		 FROM (
			SELECT s.reached_goal AS reached_goal, COUNT(m.id) AS n
			FROM sessions s LEFT JOIN moves m ON m.session_id = s.id
			WHERE s.level = ?
			GROUP BY s.id
		 )`,
		level,
	).Scan(&stats.BestMoves, &stats.AvgMoves)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query move counts: %w", err)
	}
	return stats, nil
}
