package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus = string

const (
	StatusCreated    SessionStatus = "created"
	StatusGenerating SessionStatus = "generating"
	StatusCompleted  SessionStatus = "completed"
)

type BookingStatus = string

const (
	BookingNone   BookingStatus = "none"
	BookingBooked BookingStatus = "booked"
	BookingBusy   BookingStatus = "busy"
)

// Session lives for 24 hours after creation.
const SessionTTL = 24 * time.Hour

// Max participants per session.
const ParticipantCap = 10

type Session struct {
	ID            uuid.UUID
	HostName      string
	Location      string
	ScheduledTime *time.Time
	Status        SessionStatus
	CreatedAt     time.Time
	ExpiresAt     time.Time
	InviteLink    string

	ConflictAnalysis *ConflictAnalysis

	BookingStatus    BookingStatus
	BookingReference *string
	BookingMessage   *string
}

type ConflictAnalysis struct {
	HasConflicts bool
	Conflicts    []string
	Resolution   string
}

// BookingResult is what the reservation agent reports back.
type BookingResult struct {
	Status    BookingStatus
	Reference *string
	Message   string
}

// Snapshot is the full read view of one session, as served by a single
// GET. Vote tallies are already folded into the recommendations.
type Snapshot struct {
	Session         Session
	Participants    []Participant
	Recommendations []Recommendation
}
