package client_api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type APIClientUnitSuite struct {
	suite.Suite

	ctx context.Context
}

func (s *APIClientUnitSuite) BeforeEach(t provider.T) {
	s.ctx = context.Background()
}

func (s *APIClientUnitSuite) TestCreateSession(t provider.T) {
	t.Run("Should post the session and decode the response", func(t provider.T) {
		var got CreateSessionRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/sessions", r.URL.Path)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			json.NewEncoder(w).Encode(Session{
				ID:         "session-1",
				HostName:   got.HostName,
				InviteLink: "http://localhost:3000/session/session-1",
			})
		}))
		defer server.Close()

		session, err := New(server.URL).CreateSession(s.ctx, "Sarah", "San Francisco, CA", nil)

		assert.NoError(t, err)
		assert.Equal(t, "session-1", session.ID)
		assert.Equal(t, "Sarah", got.HostName)
		assert.Equal(t, "San Francisco, CA", got.Location)
		assert.Nil(t, got.ScheduledTime)
	})

	t.Run("Should normalize the scheduled time to UTC", func(t provider.T) {
		var got CreateSessionRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			json.NewEncoder(w).Encode(Session{ID: "session-1"})
		}))
		defer server.Close()

		loc := time.FixedZone("PDT", -7*3600)
		scheduled := time.Date(2026, time.September, 4, 19, 30, 0, 0, loc)

		_, err := New(server.URL).CreateSession(s.ctx, "Sarah", "San Francisco, CA", &scheduled)

		assert.NoError(t, err)
		assert.NotNil(t, got.ScheduledTime)
		assert.Equal(t, "2026-09-05T02:30:00Z", *got.ScheduledTime)
	})
}

func (s *APIClientUnitSuite) TestGetSession(t provider.T) {
	t.Run("Should decode the full snapshot", func(t provider.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sessions/session-1", r.URL.Path)
			json.NewEncoder(w).Encode(Snapshot{
				Session:      Session{ID: "session-1", Status: "completed"},
				Participants: []Participant{{ID: "p-1", Name: "Sarah", IsHost: true}},
				Recommendations: []Recommendation{
					{BusinessID: "biz-a", Name: "Blue Plate", Score: 2, VoteCount: 4},
				},
			})
		}))
		defer server.Close()

		snapshot, err := New(server.URL).GetSession(s.ctx, "session-1")

		assert.NoError(t, err)
		assert.Equal(t, "completed", snapshot.Session.Status)
		assert.Len(t, snapshot.Participants, 1)
		assert.True(t, snapshot.Participants[0].IsHost)
		assert.Equal(t, 2, snapshot.Recommendations[0].Score)
	})

	t.Run("Should surface a rejection with its message", func(t provider.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "no such resource"})
		}))
		defer server.Close()

		_, err := New(server.URL).GetSession(s.ctx, "gone")

		var apiErr *Error
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "no such resource", apiErr.Message)
	})

	t.Run("Should keep transport failures distinct from rejections", func(t provider.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := New(server.URL).GetSession(s.ctx, "session-1")

		assert.Error(t, err)
		var apiErr *Error
		assert.False(t, errors.As(err, &apiErr))
	})
}

func (s *APIClientUnitSuite) TestCastVote(t provider.T) {
	t.Run("Should post the vote body", func(t provider.T) {
		var got voteRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sessions/session-1/vote", r.URL.Path)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			json.NewEncoder(w).Encode(map[string]string{"status": "voted"})
		}))
		defer server.Close()

		err := New(server.URL).CastVote(s.ctx, "session-1", "p-1", "biz-a", ScoreNah)

		assert.NoError(t, err)
		assert.Equal(t, "p-1", got.ParticipantID)
		assert.Equal(t, "biz-a", got.VenueID)
		assert.Equal(t, ScoreNah, got.Score)
	})
}

func (s *APIClientUnitSuite) TestBookReservation(t provider.T) {
	t.Run("Should decode the booking outcome", func(t provider.T) {
		ref := "YELP-1A2B"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sessions/session-1/book", r.URL.Path)
			json.NewEncoder(w).Encode(BookResult{
				Status:    "booked",
				Reference: &ref,
				Message:   "Confirmed!",
			})
		}))
		defer server.Close()

		result, err := New(server.URL).BookReservation(s.ctx, "session-1", "biz-a")

		assert.NoError(t, err)
		assert.Equal(t, "booked", result.Status)
		assert.Equal(t, &ref, result.Reference)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(APIClientUnitSuite))
}
