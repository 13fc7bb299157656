// Package transcript records REPL sessions in a sqlite database: one row
// per session and one row per evaluated input with its printed result or
// diagnostic code.
package transcript

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	started_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS entries (
	session_id TEXT    NOT NULL REFERENCES sessions(id),
	seq        INTEGER NOT NULL,
	input      TEXT    NOT NULL,
	output     TEXT    NOT NULL,
	error_code TEXT    NOT NULL,
	created_at INTEGER NOT NULL,
	PRIMARY KEY (session_id, seq)
);
`

type Store struct {
	db  *sql.DB
	now func() time.Time
}

type Session struct {
	ID        string
	StartedAt time.Time
	Entries   int
}

type Entry struct {
	SessionID string
	Seq       int
	Input     string
	Output    string
	// ErrorCode is the diagnostic code of a failed input, empty on success.
	ErrorCode string
	CreatedAt time.Time
}

// Open opens (creating if needed) the transcript database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("transcript: open %s: %w", path, err)
	}
	// The REPL is single-threaded; one connection also keeps ":memory:"
	// databases alive across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("transcript: migrate %s: %w", path, err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Begin starts a new session.
func (s *Store) Begin(ctx context.Context) (*Recorder, error) {
	id := uuid.New()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, started_at) VALUES (?, ?)`,
		id.String(), s.now().UnixNano())
	if err != nil {
		return nil, fmt.Errorf("transcript: begin session: %w", err)
	}
	return &Recorder{store: s, id: id}, nil
}

// Sessions lists sessions, most recent first.
func (s *Store) Sessions(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.started_at, COUNT(e.seq)
		FROM sessions s LEFT JOIN entries e ON e.session_id = s.id
		GROUP BY s.id, s.started_at
		ORDER BY s.started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("transcript: list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var started int64
		if err := rows.Scan(&sess.ID, &started, &sess.Entries); err != nil {
			return nil, fmt.Errorf("transcript: scan session: %w", err)
		}
		sess.StartedAt = time.Unix(0, started)
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// Entries returns the inputs of one session in order.
func (s *Store) Entries(ctx context.Context, sessionID string) ([]Entry, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, fmt.Errorf("transcript: invalid session id %q: %w", sessionID, err)
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, input, output, error_code, created_at
		FROM entries WHERE session_id = ? ORDER BY seq`, id.String())
	if err != nil {
		return nil, fmt.Errorf("transcript: list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e := Entry{SessionID: id.String()}
		var created int64
		if err := rows.Scan(&e.Seq, &e.Input, &e.Output, &e.ErrorCode, &created); err != nil {
			return nil, fmt.Errorf("transcript: scan entry: %w", err)
		}
		e.CreatedAt = time.Unix(0, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Recorder appends entries to one session.
type Recorder struct {
	store *Store
	id    uuid.UUID
	seq   int
}

func (r *Recorder) ID() string { return r.id.String() }

// Record stores one evaluated input. output is the printed value or the
// diagnostic message; errorCode is empty on success.
func (r *Recorder) Record(ctx context.Context, input, output, errorCode string) error {
	r.seq++
	_, err := r.store.db.ExecContext(ctx,
		`INSERT INTO entries (session_id, seq, input, output, error_code, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.id.String(), r.seq, input, output, errorCode, r.store.now().UnixNano())
	if err != nil {
		return fmt.Errorf("transcript: record entry %d: %w", r.seq, err)
	}
	return nil
}
