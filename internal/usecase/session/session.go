package usecase_session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhinav1singhal/social-dining/internal/model"
	"github.com/google/uuid"
)

var (
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such resource")
	ErrSessionFull      = errors.New("session is full")
)

//go:generate mockery --name=SessionRepository --output=./mocks --filename=sessions.go
type SessionRepository interface {
	CreateSession(ctx context.Context, session model.Session) error
	SessionByID(ctx context.Context, id uuid.UUID) (model.Session, error)
	AddParticipant(ctx context.Context, p model.Participant) error
	ParticipantsBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Participant, error)
}

//go:generate mockery --name=RecommendationReader --output=./mocks --filename=recommendations.go
type RecommendationReader interface {
	RecommendationsBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Recommendation, error)
}

//go:generate mockery --name=VoteReader --output=./mocks --filename=votes.go
type VoteReader interface {
	VotesBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Vote, error)
}

type Usecase struct {
	sessions        SessionRepository
	recommendations RecommendationReader
	votes           VoteReader

	inviteBase string
}

func New(
	sessions SessionRepository,
	recommendations RecommendationReader,
	votes VoteReader,
	inviteBase string,
) *Usecase {
	return &Usecase{
		sessions:        sessions,
		recommendations: recommendations,
		votes:           votes,
		inviteBase:      inviteBase,
	}
}

func (u *Usecase) Create(ctx context.Context, hostName, location string, scheduledTime *time.Time) (model.Session, error) {
	now := time.Now()
	session := model.Session{
		ID:            uuid.New(),
		HostName:      hostName,
		Location:      location,
		ScheduledTime: scheduledTime,
		Status:        model.StatusCreated,
		CreatedAt:     now,
		ExpiresAt:     now.Add(model.SessionTTL),
		BookingStatus: model.BookingNone,
	}
	session.InviteLink = fmt.Sprintf("%s/%s", u.inviteBase, session.ID)

	if err := u.sessions.CreateSession(ctx, session); err != nil {
		return model.Session{}, errors.Join(ErrInternal, err)
	}
	return session, nil
}

// Join adds one participant. The first joiner becomes the host; the
// server never trusts the client to claim that flag.
func (u *Usecase) Join(ctx context.Context, sessionID uuid.UUID, name string, profile model.Profile) (model.Participant, error) {
	if _, err := u.sessions.SessionByID(ctx, sessionID); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Participant{}, ErrResourceNotFound
		}
		return model.Participant{}, errors.Join(ErrInternal, err)
	}

	existing, err := u.sessions.ParticipantsBySession(ctx, sessionID)
	if err != nil {
		return model.Participant{}, errors.Join(ErrInternal, err)
	}
	if len(existing) >= model.ParticipantCap {
		return model.Participant{}, ErrSessionFull
	}

	participant := model.Participant{
		ID:        uuid.New(),
		SessionID: sessionID,
		Name:      name,
		IsHost:    len(existing) == 0,
		Profile:   profile,
	}
	if err := u.sessions.AddParticipant(ctx, participant); err != nil {
		return model.Participant{}, errors.Join(ErrInternal, err)
	}
	return participant, nil
}

// Snapshot assembles the full read view. Vote tallies are folded in
// here rather than stored: score is the signed sum, vote_count the
// number of vote events per venue.
func (u *Usecase) Snapshot(ctx context.Context, sessionID uuid.UUID) (model.Snapshot, error) {
	session, err := u.sessions.SessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Snapshot{}, ErrResourceNotFound
		}
		return model.Snapshot{}, errors.Join(ErrInternal, err)
	}

	participants, err := u.sessions.ParticipantsBySession(ctx, sessionID)
	if err != nil {
		return model.Snapshot{}, errors.Join(ErrInternal, err)
	}

	recommendations, err := u.recommendations.RecommendationsBySession(ctx, sessionID)
	if err != nil {
		return model.Snapshot{}, errors.Join(ErrInternal, err)
	}

	votes, err := u.votes.VotesBySession(ctx, sessionID)
	if err != nil {
		return model.Snapshot{}, errors.Join(ErrInternal, err)
	}

	scores := make(map[string]int, len(recommendations))
	counts := make(map[string]int, len(recommendations))
	for _, v := range votes {
		scores[v.VenueID] += v.Score
		counts[v.VenueID]++
	}
	for i := range recommendations {
		recommendations[i].Score = scores[recommendations[i].BusinessID]
		recommendations[i].VoteCount = counts[recommendations[i].BusinessID]
	}

	return model.Snapshot{
		Session:         session,
		Participants:    participants,
		Recommendations: recommendations,
	}, nil
}
