package client_api

import "time"

// Wire projections of server-owned records. The client never mutates
// these; it renders whatever the latest snapshot says.

type Session struct {
	ID               string            `json:"id"`
	HostName         string            `json:"host_name"`
	Location         string            `json:"location"`
	ScheduledTime    *time.Time        `json:"scheduled_time,omitempty"`
	Status           string            `json:"status"`
	InviteLink       string            `json:"invite_link"`
	ConflictAnalysis *ConflictAnalysis `json:"conflict_analysis,omitempty"`
	BookingStatus    string            `json:"booking_status"`
	BookingReference *string           `json:"booking_reference,omitempty"`
	BookingMessage   *string           `json:"booking_message,omitempty"`
}

type ConflictAnalysis struct {
	HasConflicts bool     `json:"has_conflicts"`
	Conflicts    []string `json:"conflicts"`
	Resolution   string   `json:"resolution"`
}

type Participant struct {
	ID                  string `json:"id"`
	SessionID           string `json:"session_id"`
	Name                string `json:"name"`
	DietaryRestrictions string `json:"dietary_restrictions,omitempty"`
	CuisinePreferences  string `json:"cuisine_preferences,omitempty"`
	BudgetTier          string `json:"budget_tier,omitempty"`
	Vibe                string `json:"vibe,omitempty"`
	IsHost              bool   `json:"is_host"`
}

type Recommendation struct {
	ID          string   `json:"id"`
	BusinessID  string   `json:"business_id"`
	Name        string   `json:"name"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Rating      float64  `json:"rating"`
	Price       string   `json:"price"`
	Categories  []string `json:"categories"`
	AIReasoning string   `json:"ai_reasoning"`
	WhyPicked   *string  `json:"why_picked,omitempty"`
	TradeOffs   []string `json:"trade_offs,omitempty"`
	Score       int      `json:"score"`
	VoteCount   int      `json:"vote_count"`
}

type Snapshot struct {
	Session         Session          `json:"session"`
	Participants    []Participant    `json:"participants"`
	Recommendations []Recommendation `json:"recommendations"`
}

type BookResult struct {
	Status    string  `json:"status"`
	Reference *string `json:"reference,omitempty"`
	Message   string  `json:"message"`
}

const (
	ScoreLoveIt = 1
	ScoreNah    = -1
)
