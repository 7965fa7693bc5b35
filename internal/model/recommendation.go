package model

import "github.com/google/uuid"

type Recommendation struct {
	ID         uuid.UUID
	SessionID  uuid.UUID
	BusinessID string
	Name       string
	ImageURL   *string
	Rating     float64
	Price      string
	Categories []string

	AIReasoning string
	WhyPicked   *string
	TradeOffs   []string

	// Read-time tallies, never stored.
	Score     int
	VoteCount int
}
