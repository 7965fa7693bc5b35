package model

import "github.com/google/uuid"

type Participant struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Name      string
	IsHost    bool

	Profile Profile
}

// Profile is the free-form preference block a participant joins with.
// All fields are optional.
type Profile struct {
	DietaryRestrictions string
	CuisinePreferences  string
	BudgetTier          string
	Vibe                string
}
