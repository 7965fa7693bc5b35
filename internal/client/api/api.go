package client_api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultBaseURL = "http://localhost:8000"

// Error is a rejected request: the server answered, and said no.
// Transport failures come back as plain errors instead.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("request rejected: %d - %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type CreateSessionRequest struct {
	HostName      string  `json:"host_name"`
	Location      string  `json:"location"`
	ScheduledTime *string `json:"scheduled_time,omitempty"`
}

type JoinRequest struct {
	Name                string `json:"name"`
	DietaryRestrictions string `json:"dietary_restrictions,omitempty"`
	CuisinePreferences  string `json:"cuisine_preferences,omitempty"`
	BudgetTier          string `json:"budget_tier,omitempty"`
	Vibe                string `json:"vibe,omitempty"`
}

type voteRequest struct {
	ParticipantID string `json:"participant_id"`
	VenueID       string `json:"venue_id"`
	Score         int    `json:"score"`
}

type bookRequest struct {
	BusinessID string `json:"business_id"`
}

// CreateSession starts a new session. A scheduled time, when present,
// is normalized to an absolute UTC instant before transmission.
func (c *Client) CreateSession(ctx context.Context, hostName, location string, scheduledTime *time.Time) (Session, error) {
	req := CreateSessionRequest{
		HostName: hostName,
		Location: location,
	}
	if scheduledTime != nil {
		iso := scheduledTime.UTC().Format(time.RFC3339)
		req.ScheduledTime = &iso
	}

	var session Session
	if err := c.do(ctx, http.MethodPost, "/sessions", req, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (Snapshot, error) {
	var snapshot Snapshot
	if err := c.do(ctx, http.MethodGet, "/sessions/"+sessionID, nil, &snapshot); err != nil {
		return Snapshot{}, err
	}
	return snapshot, nil
}

func (c *Client) JoinSession(ctx context.Context, sessionID string, req JoinRequest) (Participant, error) {
	var participant Participant
	if err := c.do(ctx, http.MethodPost, "/sessions/"+sessionID+"/join", req, &participant); err != nil {
		return Participant{}, err
	}
	return participant, nil
}

func (c *Client) GenerateRecommendations(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodPost, "/sessions/"+sessionID+"/generate", nil, nil)
}

func (c *Client) CastVote(ctx context.Context, sessionID, participantID, venueID string, score int) error {
	return c.do(ctx, http.MethodPost, "/sessions/"+sessionID+"/vote", voteRequest{
		ParticipantID: participantID,
		VenueID:       venueID,
		Score:         score,
	}, nil)
}

func (c *Client) BookReservation(ctx context.Context, sessionID, businessID string) (BookResult, error) {
	var result BookResult
	if err := c.do(ctx, http.MethodPost, "/sessions/"+sessionID+"/book", bookRequest{BusinessID: businessID}, &result); err != nil {
		return BookResult{}, err
	}
	return result, nil
}

// do shapes one request and decodes one response. No retries: failures
// propagate to the caller as-is.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &Error{
			StatusCode: resp.StatusCode,
			Message:    rejectionMessage(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func rejectionMessage(body io.Reader) string {
	raw, err := io.ReadAll(body)
	if err != nil || len(raw) == 0 {
		return "no error detail"
	}

	var detail struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &detail); err == nil && detail.Message != "" {
		return detail.Message
	}
	return string(raw)
}
