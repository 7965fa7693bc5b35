package client_identity

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store remembers which participant this device is in each session,
// across restarts. One identity per session key; the server's
// participant record is the entity of record, so losing a row only
// means re-joining, never a deleted participant.
type Store struct {
	db *sqlx.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS identities (
    session_id TEXT PRIMARY KEY,
    participant_id TEXT NOT NULL
);
`

// DefaultPath puts the identity file under the user's config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "social-dining", "identities.db"), nil
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the participant id stored for the session, or empty when
// this device never joined it.
func (s *Store) Get(ctx context.Context, sessionID string) (string, error) {
	var participantID string

	query := `SELECT participant_id FROM identities WHERE session_id = $1`

	err := s.db.GetContext(ctx, &participantID, query, sessionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return participantID, nil
}

func (s *Store) Set(ctx context.Context, sessionID, participantID string) error {
	query := `
		INSERT INTO identities (session_id, participant_id)
		VALUES ($1, $2)
		ON CONFLICT(session_id) DO UPDATE SET participant_id = excluded.participant_id
	`

	_, err := s.db.ExecContext(ctx, query, sessionID, participantID)
	return err
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	query := `DELETE FROM identities WHERE session_id = $1`

	_, err := s.db.ExecContext(ctx, query, sessionID)
	return err
}
