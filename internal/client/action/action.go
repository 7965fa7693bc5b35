package client_action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	client_api "github.com/abhinav1singhal/social-dining/internal/client/api"
)

var (
	// ErrBusy means the same action is still in flight; the trigger
	// control should have been disabled.
	ErrBusy = errors.New("action already in flight")

	ErrNoIdentity   = errors.New("no identity for this session")
	ErrNotConfirmed = errors.New("booking requires explicit confirmation")
)

type action string

const (
	actionCreate   action = "create"
	actionJoin     action = "join"
	actionGenerate action = "generate"
	actionVote     action = "vote"
	actionBook     action = "book"
)

//go:generate mockery --name=API --output=./mocks --filename=api.go
type API interface {
	CreateSession(ctx context.Context, hostName, location string, scheduledTime *time.Time) (client_api.Session, error)
	JoinSession(ctx context.Context, sessionID string, req client_api.JoinRequest) (client_api.Participant, error)
	GenerateRecommendations(ctx context.Context, sessionID string) error
	CastVote(ctx context.Context, sessionID, participantID, venueID string, score int) error
	BookReservation(ctx context.Context, sessionID, businessID string) (client_api.BookResult, error)
}

//go:generate mockery --name=IdentityStore --output=./mocks --filename=identity.go
type IdentityStore interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID, participantID string) error
	Clear(ctx context.Context, sessionID string) error
}

// Refresher is the synchronizer's forced re-fetch hook.
type Refresher interface {
	Refresh()
}

// Dispatcher wraps each user-triggered command: one API call, a
// per-action in-flight guard, and the defined follow-up on success.
// A failed action leaves local state untouched.
type Dispatcher struct {
	api        API
	identities IdentityStore
	refresher  Refresher
	logger     *slog.Logger

	mu       sync.Mutex
	inFlight map[action]bool
}

type DispatcherOption func(*Dispatcher)

func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithRefresher attaches the mounted session view's synchronizer.
// Without one, follow-up refreshes are skipped (nothing is polling).
func WithRefresher(refresher Refresher) DispatcherOption {
	return func(d *Dispatcher) {
		d.refresher = refresher
	}
}

func New(api API, identities IdentityStore, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		api:        api,
		identities: identities,
		logger:     slog.Default(),
		inFlight:   make(map[action]bool),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) begin(a action) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inFlight[a] {
		return ErrBusy
	}
	d.inFlight[a] = true
	return nil
}

func (d *Dispatcher) end(a action) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.inFlight, a)
}

func (d *Dispatcher) refresh() {
	if d.refresher != nil {
		d.refresher.Refresh()
	}
}

func (d *Dispatcher) CreateSession(ctx context.Context, hostName, location string, scheduledTime *time.Time) (client_api.Session, error) {
	if err := d.begin(actionCreate); err != nil {
		return client_api.Session{}, err
	}
	defer d.end(actionCreate)

	session, err := d.api.CreateSession(ctx, hostName, location, scheduledTime)
	if err != nil {
		return client_api.Session{}, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// Join persists the returned identity locally and forces a re-fetch;
// the state machine re-renders off the next snapshot, there is no
// navigation.
func (d *Dispatcher) Join(ctx context.Context, sessionID string, req client_api.JoinRequest) (client_api.Participant, error) {
	if err := d.begin(actionJoin); err != nil {
		return client_api.Participant{}, err
	}
	defer d.end(actionJoin)

	participant, err := d.api.JoinSession(ctx, sessionID, req)
	if err != nil {
		return client_api.Participant{}, fmt.Errorf("join session: %w", err)
	}

	if err := d.identities.Set(ctx, sessionID, participant.ID); err != nil {
		// The join succeeded server-side; a reload will land on the
		// Join screen again, nothing worse.
		d.logger.Warn("failed to persist identity", slog.String("error", err.Error()))
	}

	d.refresh()
	return participant, nil
}

func (d *Dispatcher) Generate(ctx context.Context, sessionID string) error {
	if err := d.begin(actionGenerate); err != nil {
		return err
	}
	defer d.end(actionGenerate)

	if err := d.api.GenerateRecommendations(ctx, sessionID); err != nil {
		return fmt.Errorf("generate recommendations: %w", err)
	}

	d.refresh()
	return nil
}

func (d *Dispatcher) Vote(ctx context.Context, sessionID, venueID string, score int) error {
	if err := d.begin(actionVote); err != nil {
		return err
	}
	defer d.end(actionVote)

	participantID, err := d.identities.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("vote: %w", err)
	}
	if participantID == "" {
		return ErrNoIdentity
	}

	if err := d.api.CastVote(ctx, sessionID, participantID, venueID, score); err != nil {
		return fmt.Errorf("vote: %w", err)
	}

	d.refresh()
	return nil
}

// Book requires the caller to have walked the user through an explicit
// confirmation step first.
func (d *Dispatcher) Book(ctx context.Context, sessionID, businessID string, confirmed bool) (client_api.BookResult, error) {
	if !confirmed {
		return client_api.BookResult{}, ErrNotConfirmed
	}
	if err := d.begin(actionBook); err != nil {
		return client_api.BookResult{}, err
	}
	defer d.end(actionBook)

	result, err := d.api.BookReservation(ctx, sessionID, businessID)
	if err != nil {
		return client_api.BookResult{}, fmt.Errorf("book reservation: %w", err)
	}

	d.refresh()
	return result, nil
}

// Leave drops only the local identity; the server-side participant
// record stays.
func (d *Dispatcher) Leave(ctx context.Context, sessionID string) error {
	return d.identities.Clear(ctx, sessionID)
}
