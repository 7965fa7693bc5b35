package infra_pg_init

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates all tables the service needs.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id UUID PRIMARY KEY,
    host_name TEXT NOT NULL,
    location TEXT NOT NULL,
    scheduled_time TIMESTAMPTZ,
    status TEXT NOT NULL DEFAULT 'created',
    created_at TIMESTAMPTZ NOT NULL,
    expires_at TIMESTAMPTZ NOT NULL,
    invite_link TEXT NOT NULL DEFAULT '',
    has_conflicts BOOLEAN,
    conflicts TEXT[],
    conflict_resolution TEXT,
    booking_status TEXT NOT NULL DEFAULT 'none',
    booking_reference TEXT,
    booking_message TEXT
);

CREATE TABLE IF NOT EXISTS participants (
    id UUID PRIMARY KEY,
    session_id UUID NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    dietary_restrictions TEXT NOT NULL DEFAULT '',
    cuisine_preferences TEXT NOT NULL DEFAULT '',
    budget_tier TEXT NOT NULL DEFAULT '',
    vibe TEXT NOT NULL DEFAULT '',
    is_host BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_participants_session ON participants(session_id);

CREATE TABLE IF NOT EXISTS recommendations (
    id UUID PRIMARY KEY,
    session_id UUID NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    business_id TEXT NOT NULL,
    name TEXT NOT NULL,
    image_url TEXT,
    rating DOUBLE PRECISION NOT NULL DEFAULT 0,
    price TEXT NOT NULL DEFAULT '$$',
    categories TEXT[],
    ai_reasoning TEXT NOT NULL DEFAULT '',
    why_picked TEXT,
    trade_offs TEXT[]
);

CREATE INDEX IF NOT EXISTS idx_recommendations_session ON recommendations(session_id);

CREATE TABLE IF NOT EXISTS votes (
    session_id UUID NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    participant_id UUID NOT NULL,
    venue_id TEXT NOT NULL,
    score SMALLINT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_votes_session ON votes(session_id);
`
