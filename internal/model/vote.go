package model

import (
	"time"

	"github.com/google/uuid"
)

type VoteScore = int

const (
	ScoreApprove    VoteScore = 1
	ScoreDisapprove VoteScore = -1
)

// Vote is one signed unit vote event. Re-votes accumulate.
type Vote struct {
	SessionID     uuid.UUID
	ParticipantID uuid.UUID
	VenueID       string
	Score         VoteScore
	CreatedAt     time.Time
}
