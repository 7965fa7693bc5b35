package client_sync

import (
	"context"
	"log/slog"
	"reflect"
	"sync"
	"time"

	client_api "github.com/abhinav1singhal/social-dining/internal/client/api"
)

// How often the server is asked for a fresh snapshot. The server is the
// sole source of truth; a short fixed poll is the consistency
// mechanism, trading freshness latency for simplicity.
const DefaultInterval = 3 * time.Second

//go:generate mockery --name=Fetcher --output=./mocks --filename=fetcher.go
type Fetcher interface {
	GetSession(ctx context.Context, sessionID string) (client_api.Snapshot, error)
}

// Synchronizer keeps the read view of one session fresh so the UI
// never manages polling itself. The loop fetches serially: a tick that
// fires while a fetch is outstanding is simply absorbed, so there is
// never more than one in-flight request per session and snapshots are
// applied in request order. The latest snapshot always replaces the
// prior one; nothing is reconciled.
type Synchronizer struct {
	fetcher   Fetcher
	sessionID string
	interval  time.Duration
	logger    *slog.Logger

	mu       sync.Mutex
	snapshot *client_api.Snapshot
	fetchErr error
	loaded   bool

	refresh chan struct{}
	updates chan struct{}

	cancel context.CancelFunc
	done   chan struct{}
}

type SynchronizerOption func(*Synchronizer)

func WithInterval(interval time.Duration) SynchronizerOption {
	return func(s *Synchronizer) {
		s.interval = interval
	}
}

func WithLogger(logger *slog.Logger) SynchronizerOption {
	return func(s *Synchronizer) {
		s.logger = logger
	}
}

func New(fetcher Fetcher, sessionID string, opts ...SynchronizerOption) *Synchronizer {
	s := &Synchronizer{
		fetcher:   fetcher,
		sessionID: sessionID,
		interval:  DefaultInterval,
		logger:    slog.Default(),
		refresh:   make(chan struct{}, 1),
		updates:   make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the polling loop. With an empty session id the loop
// is inert: it issues no requests and only waits for teardown.
func (s *Synchronizer) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	go s.loop(ctx)
}

// Stop tears the loop down and waits for it to exit. No timer fires
// and no request is issued afterwards.
func (s *Synchronizer) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

// Refresh requests an immediate re-fetch outside the regular interval,
// typically right after a write action. Requests are coalesced: asking
// while one is already pending is a no-op.
func (s *Synchronizer) Refresh() {
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

// State returns the latest snapshot, whether the initial fetch is
// still pending, and the last fetch error. A fetch error never blanks
// the snapshot; the last known good one stays visible.
func (s *Synchronizer) State() (snapshot *client_api.Snapshot, loading bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot, !s.loaded, s.fetchErr
}

// Updates signals whenever the visible state changed. Identical
// consecutive snapshots are swallowed. The channel is coalescing;
// consumers re-read State after each signal.
func (s *Synchronizer) Updates() <-chan struct{} {
	return s.updates
}

func (s *Synchronizer) loop(ctx context.Context) {
	defer close(s.done)

	if s.sessionID == "" {
		<-ctx.Done()
		return
	}

	s.fetch(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fetch(ctx)
		case <-s.refresh:
			s.fetch(ctx)
		}
	}
}

func (s *Synchronizer) fetch(ctx context.Context) {
	snapshot, err := s.fetcher.GetSession(ctx, s.sessionID)

	s.mu.Lock()
	changed := !s.loaded
	s.loaded = true
	if err != nil {
		if s.fetchErr == nil {
			changed = true
		}
		s.fetchErr = err
	} else {
		if s.fetchErr != nil || !reflect.DeepEqual(s.snapshot, &snapshot) {
			changed = true
		}
		s.fetchErr = nil
		s.snapshot = &snapshot
	}
	s.mu.Unlock()

	if err != nil && ctx.Err() == nil {
		s.logger.Warn("session fetch failed", slog.String("error", err.Error()))
	}
	if changed {
		s.notify()
	}
}

func (s *Synchronizer) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}
