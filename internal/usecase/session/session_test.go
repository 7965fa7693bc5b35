package usecase_session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/abhinav1singhal/social-dining/internal/model"
	mocks "github.com/abhinav1singhal/social-dining/internal/usecase/session/mocks"
	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseSessionUnitSuite struct {
	suite.Suite

	mockSessions *mocks.SessionRepository
	mockRecs     *mocks.RecommendationReader
	mockVotes    *mocks.VoteReader
	usecase      *Usecase
	ctx          context.Context
}

const inviteBase = "http://localhost:3000/session"

/*
'Object Mother' pattern example
aka cooks specific objects.
*/
func validSession(id uuid.UUID) model.Session {
	return model.Session{
		ID:            id,
		HostName:      "Sarah",
		Location:      "San Francisco, CA",
		Status:        model.StatusCreated,
		BookingStatus: model.BookingNone,
	}
}

func validParticipants(sessionID uuid.UUID, n int) []model.Participant {
	ps := make([]model.Participant, n)
	for i := 0; i < n; i++ {
		ps[i] = model.Participant{
			ID:        uuid.New(),
			SessionID: sessionID,
			Name:      fmt.Sprintf("guest-%d", i),
			IsHost:    i == 0,
		}
	}
	return ps
}

func (s *UsecaseSessionUnitSuite) BeforeEach(t provider.T) {
	s.mockSessions = mocks.NewSessionRepository(t)
	s.mockRecs = mocks.NewRecommendationReader(t)
	s.mockVotes = mocks.NewVoteReader(t)
	s.usecase = New(s.mockSessions, s.mockRecs, s.mockVotes, inviteBase)
	s.ctx = context.Background()
}

func (s *UsecaseSessionUnitSuite) TestCreate(t provider.T) {
	t.Run("Should create session with invite link and expiry", func(t provider.T) {
		s.mockSessions.On("CreateSession", s.ctx, mock.AnythingOfType("model.Session")).
			Return(nil).Once()

		session, err := s.usecase.Create(s.ctx, "Sarah", "San Francisco, CA", nil)

		assert.NoError(t, err)
		assert.Equal(t, "Sarah", session.HostName)
		assert.Equal(t, model.StatusCreated, session.Status)
		assert.Equal(t, model.BookingNone, session.BookingStatus)
		assert.Equal(t, fmt.Sprintf("%s/%s", inviteBase, session.ID), session.InviteLink)
		assert.Equal(t, session.CreatedAt.Add(model.SessionTTL), session.ExpiresAt)
		s.mockSessions.AssertExpectations(t)
	})

	t.Run("Should return error when repository fails", func(t provider.T) {
		s.mockSessions.On("CreateSession", s.ctx, mock.AnythingOfType("model.Session")).
			Return(errors.New("connection refused")).Once()

		_, err := s.usecase.Create(s.ctx, "Sarah", "San Francisco, CA", nil)

		assert.ErrorIs(t, err, ErrInternal)
		s.mockSessions.AssertExpectations(t)
	})
}

func (s *UsecaseSessionUnitSuite) TestJoin(t provider.T) {
	t.Run("Should make the first joiner the host", func(t provider.T) {
		sessionID := uuid.New()

		s.mockSessions.On("SessionByID", s.ctx, sessionID).
			Return(validSession(sessionID), nil).Once()
		s.mockSessions.On("ParticipantsBySession", s.ctx, sessionID).
			Return(nil, nil).Once()
		s.mockSessions.On("AddParticipant", s.ctx, mock.AnythingOfType("model.Participant")).
			Return(nil).Once()

		participant, err := s.usecase.Join(s.ctx, sessionID, "Sarah", model.Profile{})

		assert.NoError(t, err)
		assert.True(t, participant.IsHost)
		assert.Equal(t, sessionID, participant.SessionID)
		s.mockSessions.AssertExpectations(t)
	})

	t.Run("Should not make later joiners hosts", func(t provider.T) {
		sessionID := uuid.New()

		s.mockSessions.On("SessionByID", s.ctx, sessionID).
			Return(validSession(sessionID), nil).Once()
		s.mockSessions.On("ParticipantsBySession", s.ctx, sessionID).
			Return(validParticipants(sessionID, 2), nil).Once()
		s.mockSessions.On("AddParticipant", s.ctx, mock.AnythingOfType("model.Participant")).
			Return(nil).Once()

		participant, err := s.usecase.Join(s.ctx, sessionID, "Mike", model.Profile{})

		assert.NoError(t, err)
		assert.False(t, participant.IsHost)
		s.mockSessions.AssertExpectations(t)
	})

	t.Run("Should reject joining a full session", func(t provider.T) {
		sessionID := uuid.New()

		s.mockSessions.On("SessionByID", s.ctx, sessionID).
			Return(validSession(sessionID), nil).Once()
		s.mockSessions.On("ParticipantsBySession", s.ctx, sessionID).
			Return(validParticipants(sessionID, model.ParticipantCap), nil).Once()

		_, err := s.usecase.Join(s.ctx, sessionID, "Mike", model.Profile{})

		assert.ErrorIs(t, err, ErrSessionFull)
		s.mockSessions.AssertExpectations(t)
	})

	t.Run("Should return not found for unknown session", func(t provider.T) {
		sessionID := uuid.New()

		s.mockSessions.On("SessionByID", s.ctx, sessionID).
			Return(model.Session{}, ErrResourceNotFound).Once()

		_, err := s.usecase.Join(s.ctx, sessionID, "Mike", model.Profile{})

		assert.ErrorIs(t, err, ErrResourceNotFound)
		s.mockSessions.AssertExpectations(t)
	})
}

func (s *UsecaseSessionUnitSuite) TestSnapshot(t provider.T) {
	t.Run("Should fold vote tallies into recommendations", func(t provider.T) {
		sessionID := uuid.New()
		participants := validParticipants(sessionID, 3)
		recs := []model.Recommendation{
			{ID: uuid.New(), SessionID: sessionID, BusinessID: "biz-a", Name: "A"},
			{ID: uuid.New(), SessionID: sessionID, BusinessID: "biz-b", Name: "B"},
		}
		votes := []model.Vote{
			{SessionID: sessionID, VenueID: "biz-a", Score: model.ScoreApprove},
			{SessionID: sessionID, VenueID: "biz-a", Score: model.ScoreApprove},
			{SessionID: sessionID, VenueID: "biz-a", Score: model.ScoreDisapprove},
		}

		s.mockSessions.On("SessionByID", s.ctx, sessionID).
			Return(validSession(sessionID), nil).Once()
		s.mockSessions.On("ParticipantsBySession", s.ctx, sessionID).
			Return(participants, nil).Once()
		s.mockRecs.On("RecommendationsBySession", s.ctx, sessionID).
			Return(recs, nil).Once()
		s.mockVotes.On("VotesBySession", s.ctx, sessionID).
			Return(votes, nil).Once()

		snapshot, err := s.usecase.Snapshot(s.ctx, sessionID)

		assert.NoError(t, err)
		assert.Len(t, snapshot.Recommendations, 2)
		assert.Equal(t, 1, snapshot.Recommendations[0].Score)
		assert.Equal(t, 3, snapshot.Recommendations[0].VoteCount)
		assert.Equal(t, 0, snapshot.Recommendations[1].Score)
		assert.Equal(t, 0, snapshot.Recommendations[1].VoteCount)
		assert.Len(t, snapshot.Participants, 3)
		s.mockSessions.AssertExpectations(t)
		s.mockRecs.AssertExpectations(t)
		s.mockVotes.AssertExpectations(t)
	})

	t.Run("Should return not found for unknown session", func(t provider.T) {
		sessionID := uuid.New()

		s.mockSessions.On("SessionByID", s.ctx, sessionID).
			Return(model.Session{}, ErrResourceNotFound).Once()

		_, err := s.usecase.Snapshot(s.ctx, sessionID)

		assert.ErrorIs(t, err, ErrResourceNotFound)
		s.mockSessions.AssertExpectations(t)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseSessionUnitSuite))
}
