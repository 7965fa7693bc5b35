package usecase_booking

import (
	"context"
	"testing"
	"time"

	"github.com/abhinav1singhal/social-dining/internal/model"
	mocks "github.com/abhinav1singhal/social-dining/internal/usecase/booking/mocks"
	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type UsecaseBookingUnitSuite struct {
	suite.Suite

	mockAgent    *mocks.Agent
	mockSessions *mocks.SessionRepository
	mockRecs     *mocks.RecommendationReader
	usecase      *Usecase
	ctx          context.Context
}

func validSession(id uuid.UUID, scheduledTime *time.Time) model.Session {
	return model.Session{
		ID:            id,
		HostName:      "Sarah",
		Location:      "San Francisco, CA",
		ScheduledTime: scheduledTime,
		Status:        model.StatusCompleted,
	}
}

func validRecommendation(businessID string) model.Recommendation {
	return model.Recommendation{
		ID:         uuid.New(),
		BusinessID: businessID,
		Name:       "Blue Plate",
		Rating:     4.5,
		Price:      "$$",
	}
}

func validParticipants(sessionID uuid.UUID, n int) []model.Participant {
	ps := make([]model.Participant, n)
	for i := 0; i < n; i++ {
		ps[i] = model.Participant{ID: uuid.New(), SessionID: sessionID, IsHost: i == 0}
	}
	return ps
}

func (s *UsecaseBookingUnitSuite) BeforeEach(t provider.T) {
	s.mockAgent = mocks.NewAgent(t)
	s.mockSessions = mocks.NewSessionRepository(t)
	s.mockRecs = mocks.NewRecommendationReader(t)
	s.usecase = New(s.mockAgent, s.mockSessions, s.mockRecs)
	s.ctx = context.Background()
}

func (s *UsecaseBookingUnitSuite) TestBook(t provider.T) {
	t.Run("Should book for the whole group and persist the result", func(t provider.T) {
		sessionID := uuid.New()
		scheduled := time.Date(2026, time.September, 4, 19, 30, 0, 0, time.Local)
		ref := "YELP-1A2B"
		booked := model.BookingResult{
			Status:    model.BookingBooked,
			Reference: &ref,
			Message:   "Confirmed! Table for 3 at Blue Plate referenced under #YELP-1A2B.",
		}

		s.mockSessions.On("SessionByID", s.ctx, sessionID).
			Return(validSession(sessionID, &scheduled), nil).Once()
		s.mockRecs.On("RecommendationBySessionAndBusiness", s.ctx, sessionID, "biz-a").
			Return(validRecommendation("biz-a"), nil).Once()
		s.mockSessions.On("ParticipantsBySession", s.ctx, sessionID).
			Return(validParticipants(sessionID, 3), nil).Once()
		s.mockAgent.On("BookReservation", s.ctx, "Blue Plate", "7:30PM", 3).
			Return(booked, nil).Once()
		s.mockSessions.On("SetBooking", s.ctx, sessionID, booked).
			Return(nil).Once()

		result, err := s.usecase.Book(s.ctx, sessionID, "biz-a")

		assert.NoError(t, err)
		assert.Equal(t, model.BookingBooked, result.Status)
		assert.Equal(t, &ref, result.Reference)
		s.mockAgent.AssertExpectations(t)
		s.mockSessions.AssertExpectations(t)
		s.mockRecs.AssertExpectations(t)
	})

	t.Run("Should fall back to the default time and party size", func(t provider.T) {
		sessionID := uuid.New()
		busy := model.BookingResult{
			Status:  model.BookingBusy,
			Message: "I called Blue Plate, but they are fully booked at 7:00 PM. Recommend calling them directly.",
		}

		s.mockSessions.On("SessionByID", s.ctx, sessionID).
			Return(validSession(sessionID, nil), nil).Once()
		s.mockRecs.On("RecommendationBySessionAndBusiness", s.ctx, sessionID, "biz-a").
			Return(validRecommendation("biz-a"), nil).Once()
		s.mockSessions.On("ParticipantsBySession", s.ctx, sessionID).
			Return(nil, nil).Once()
		s.mockAgent.On("BookReservation", s.ctx, "Blue Plate", "7:00 PM", 2).
			Return(busy, nil).Once()
		s.mockSessions.On("SetBooking", s.ctx, sessionID, busy).
			Return(nil).Once()

		result, err := s.usecase.Book(s.ctx, sessionID, "biz-a")

		assert.NoError(t, err)
		assert.Equal(t, model.BookingBusy, result.Status)
		assert.Nil(t, result.Reference)
		s.mockAgent.AssertExpectations(t)
	})

	t.Run("Should return not found for unknown venue", func(t provider.T) {
		sessionID := uuid.New()
		sessions := mocks.NewSessionRepository(t)
		recs := mocks.NewRecommendationReader(t)
		usecase := New(mocks.NewAgent(t), sessions, recs)

		sessions.On("SessionByID", s.ctx, sessionID).
			Return(validSession(sessionID, nil), nil).Once()
		recs.On("RecommendationBySessionAndBusiness", s.ctx, sessionID, "nope").
			Return(model.Recommendation{}, ErrResourceNotFound).Once()

		_, err := usecase.Book(s.ctx, sessionID, "nope")

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("Should return not found for unknown session", func(t provider.T) {
		sessionID := uuid.New()
		sessions := mocks.NewSessionRepository(t)
		usecase := New(mocks.NewAgent(t), sessions, mocks.NewRecommendationReader(t))

		sessions.On("SessionByID", s.ctx, sessionID).
			Return(model.Session{}, ErrResourceNotFound).Once()

		_, err := usecase.Book(s.ctx, sessionID, "biz-a")

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseBookingUnitSuite))
}
