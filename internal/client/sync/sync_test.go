package client_sync

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	client_api "github.com/abhinav1singhal/social-dining/internal/client/api"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type SyncUnitSuite struct {
	suite.Suite
}

// fakeFetcher scripts snapshot/error answers per call and records how
// many fetches ran concurrently.
type fakeFetcher struct {
	mu      sync.Mutex
	answers []fetchAnswer
	calls   int

	delay      time.Duration
	inFlight   atomic.Int32
	maxFlight  atomic.Int32
	totalCalls atomic.Int32
}

type fetchAnswer struct {
	snapshot client_api.Snapshot
	err      error
}

func (f *fakeFetcher) GetSession(ctx context.Context, sessionID string) (client_api.Snapshot, error) {
	cur := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		peak := f.maxFlight.Load()
		if cur <= peak || f.maxFlight.CompareAndSwap(peak, cur) {
			break
		}
	}
	f.totalCalls.Add(1)

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return client_api.Snapshot{}, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	answer := f.answers[len(f.answers)-1]
	if f.calls < len(f.answers) {
		answer = f.answers[f.calls]
	}
	f.calls++
	return answer.snapshot, answer.err
}

func snapshotNamed(name string) client_api.Snapshot {
	return client_api.Snapshot{
		Session: client_api.Session{ID: "session-1", HostName: name, Status: "created"},
	}
}

func waitForUpdate(t provider.T, s *Synchronizer) {
	t.Helper()
	select {
	case <-s.Updates():
	case <-time.After(2 * time.Second):
		t.Fatal("no update signal in time")
	}
}

func (s *SyncUnitSuite) TestPolling(t provider.T) {
	t.Run("Should fetch immediately on start", func(t provider.T) {
		fetcher := &fakeFetcher{answers: []fetchAnswer{{snapshot: snapshotNamed("Sarah")}}}
		sync := New(fetcher, "session-1", WithInterval(time.Hour))
		sync.Start(context.Background())
		defer sync.Stop()

		waitForUpdate(t, sync)

		snapshot, loading, err := sync.State()
		assert.NoError(t, err)
		assert.False(t, loading)
		assert.Equal(t, "Sarah", snapshot.Session.HostName)
	})

	t.Run("Should keep fetching on the interval", func(t provider.T) {
		fetcher := &fakeFetcher{answers: []fetchAnswer{
			{snapshot: snapshotNamed("Sarah")},
			{snapshot: snapshotNamed("Mike")},
		}}
		sync := New(fetcher, "session-1", WithInterval(20*time.Millisecond))
		sync.Start(context.Background())
		defer sync.Stop()

		waitForUpdate(t, sync)
		waitForUpdate(t, sync)

		snapshot, _, _ := sync.State()
		assert.Equal(t, "Mike", snapshot.Session.HostName)
		assert.GreaterOrEqual(t, fetcher.totalCalls.Load(), int32(2))
	})

	t.Run("Should stay quiet while snapshots repeat unchanged", func(t provider.T) {
		fetcher := &fakeFetcher{answers: []fetchAnswer{{snapshot: snapshotNamed("Sarah")}}}
		sync := New(fetcher, "session-1", WithInterval(10*time.Millisecond))
		sync.Start(context.Background())
		defer sync.Stop()

		waitForUpdate(t, sync)

		deadline := time.Now().Add(2 * time.Second)
		for fetcher.totalCalls.Load() < 3 {
			if time.Now().After(deadline) {
				t.Fatal("polling stalled")
			}
			time.Sleep(5 * time.Millisecond)
		}

		select {
		case <-sync.Updates():
			t.Fatal("update signal for an unchanged snapshot")
		default:
		}

		snapshot, loading, err := sync.State()
		assert.NoError(t, err)
		assert.False(t, loading)
		assert.Equal(t, "Sarah", snapshot.Session.HostName)
	})

	t.Run("Should never overlap fetches", func(t provider.T) {
		fetcher := &fakeFetcher{
			answers: []fetchAnswer{{snapshot: snapshotNamed("Sarah")}},
			delay:   30 * time.Millisecond,
		}
		sync := New(fetcher, "session-1", WithInterval(5*time.Millisecond))
		sync.Start(context.Background())

		for i := 0; i < 5; i++ {
			sync.Refresh()
			time.Sleep(10 * time.Millisecond)
		}
		sync.Stop()

		assert.Equal(t, int32(1), fetcher.maxFlight.Load())
	})

	t.Run("Should issue no requests for an empty session id", func(t provider.T) {
		fetcher := &fakeFetcher{answers: []fetchAnswer{{snapshot: snapshotNamed("Sarah")}}}
		sync := New(fetcher, "", WithInterval(5*time.Millisecond))
		sync.Start(context.Background())

		time.Sleep(30 * time.Millisecond)
		sync.Stop()

		assert.Equal(t, int32(0), fetcher.totalCalls.Load())
	})
}

func (s *SyncUnitSuite) TestRefresh(t provider.T) {
	t.Run("Should fetch outside the interval on demand", func(t provider.T) {
		fetcher := &fakeFetcher{answers: []fetchAnswer{
			{snapshot: snapshotNamed("Sarah")},
			{snapshot: snapshotNamed("Mike")},
		}}
		sync := New(fetcher, "session-1", WithInterval(time.Hour))
		sync.Start(context.Background())
		defer sync.Stop()

		waitForUpdate(t, sync)
		sync.Refresh()
		waitForUpdate(t, sync)

		snapshot, _, _ := sync.State()
		assert.Equal(t, "Mike", snapshot.Session.HostName)
	})
}

func (s *SyncUnitSuite) TestFetchErrors(t provider.T) {
	t.Run("Should keep the last known snapshot on failure", func(t provider.T) {
		fetcher := &fakeFetcher{answers: []fetchAnswer{
			{snapshot: snapshotNamed("Sarah")},
			{err: errors.New("connection refused")},
		}}
		sync := New(fetcher, "session-1", WithInterval(time.Hour))
		sync.Start(context.Background())
		defer sync.Stop()

		waitForUpdate(t, sync)
		sync.Refresh()
		waitForUpdate(t, sync)

		snapshot, loading, err := sync.State()
		assert.Error(t, err)
		assert.False(t, loading)
		assert.NotNil(t, snapshot)
		assert.Equal(t, "Sarah", snapshot.Session.HostName)
	})

	t.Run("Should clear the error once a fetch succeeds again", func(t provider.T) {
		fetcher := &fakeFetcher{answers: []fetchAnswer{
			{err: errors.New("connection refused")},
			{snapshot: snapshotNamed("Sarah")},
		}}
		sync := New(fetcher, "session-1", WithInterval(time.Hour))
		sync.Start(context.Background())
		defer sync.Stop()

		waitForUpdate(t, sync)
		_, _, err := sync.State()
		assert.Error(t, err)

		sync.Refresh()
		waitForUpdate(t, sync)

		snapshot, _, err := sync.State()
		assert.NoError(t, err)
		assert.Equal(t, "Sarah", snapshot.Session.HostName)
	})
}

func (s *SyncUnitSuite) TestStop(t provider.T) {
	t.Run("Should issue no fetches after stop", func(t provider.T) {
		fetcher := &fakeFetcher{answers: []fetchAnswer{{snapshot: snapshotNamed("Sarah")}}}
		sync := New(fetcher, "session-1", WithInterval(5*time.Millisecond))
		sync.Start(context.Background())

		waitForUpdate(t, sync)
		sync.Stop()

		settled := fetcher.totalCalls.Load()
		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, settled, fetcher.totalCalls.Load())
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(SyncUnitSuite))
}
