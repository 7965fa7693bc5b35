package usecase_booking

import (
	"context"
	"errors"
	"time"

	"github.com/abhinav1singhal/social-dining/internal/model"
	usecase_session "github.com/abhinav1singhal/social-dining/internal/usecase/session"
	"github.com/google/uuid"
)

var (
	ErrInternal = errors.New("internal error")

	// Shared with the session usecase so repository drivers need a
	// single not-found sentinel.
	ErrResourceNotFound = usecase_session.ErrResourceNotFound
)

// Fallback when the host never picked a time.
const defaultScheduledTime = "7:00 PM"

//go:generate mockery --name=Agent --output=./mocks --filename=agent.go
type Agent interface {
	BookReservation(ctx context.Context, businessName, scheduledTime string, peopleCount int) (model.BookingResult, error)
}

//go:generate mockery --name=SessionRepository --output=./mocks --filename=sessions.go
type SessionRepository interface {
	SessionByID(ctx context.Context, id uuid.UUID) (model.Session, error)
	ParticipantsBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Participant, error)
	SetBooking(ctx context.Context, id uuid.UUID, result model.BookingResult) error
}

//go:generate mockery --name=RecommendationReader --output=./mocks --filename=recommendations.go
type RecommendationReader interface {
	RecommendationBySessionAndBusiness(ctx context.Context, sessionID uuid.UUID, businessID string) (model.Recommendation, error)
}

type Usecase struct {
	agent           Agent
	sessions        SessionRepository
	recommendations RecommendationReader
}

func New(agent Agent, sessions SessionRepository, recommendations RecommendationReader) *Usecase {
	return &Usecase{
		agent:           agent,
		sessions:        sessions,
		recommendations: recommendations,
	}
}

// Book hands the chosen venue to the reservation agent and persists
// whatever the agent reports, busy included.
func (u *Usecase) Book(ctx context.Context, sessionID uuid.UUID, businessID string) (model.BookingResult, error) {
	session, err := u.sessions.SessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.BookingResult{}, ErrResourceNotFound
		}
		return model.BookingResult{}, errors.Join(ErrInternal, err)
	}

	rec, err := u.recommendations.RecommendationBySessionAndBusiness(ctx, sessionID, businessID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.BookingResult{}, ErrResourceNotFound
		}
		return model.BookingResult{}, errors.Join(ErrInternal, err)
	}

	participants, err := u.sessions.ParticipantsBySession(ctx, sessionID)
	if err != nil {
		return model.BookingResult{}, errors.Join(ErrInternal, err)
	}
	count := len(participants)
	if count == 0 {
		count = 2
	}

	result, err := u.agent.BookReservation(ctx, rec.Name, scheduledTimeLabel(session.ScheduledTime), count)
	if err != nil {
		return model.BookingResult{}, errors.Join(ErrInternal, err)
	}

	if err := u.sessions.SetBooking(ctx, sessionID, result); err != nil {
		return model.BookingResult{}, errors.Join(ErrInternal, err)
	}
	return result, nil
}

func scheduledTimeLabel(t *time.Time) string {
	if t == nil {
		return defaultScheduledTime
	}
	return t.Local().Format(time.Kitchen)
}
