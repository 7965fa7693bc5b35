package usecase_vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhinav1singhal/social-dining/internal/model"
	"github.com/google/uuid"
)

var (
	ErrUnableToSaveVote = errors.New("unable to vote")
	ErrResourceNotFound = errors.New("no such resource")
	ErrBadScore         = errors.New("score must be +1 or -1")
)

//go:generate mockery --name=VoteRepository --output=./mocks --filename=repository.go
type VoteRepository interface {
	AddVote(ctx context.Context, vote model.Vote) error
}

//go:generate mockery --name=ParticipantChecker --output=./mocks --filename=participants.go
type ParticipantChecker interface {
	IsParticipant(ctx context.Context, sessionID, participantID uuid.UUID) (bool, error)
}

type Usecase struct {
	votes        VoteRepository
	participants ParticipantChecker
}

func New(votes VoteRepository, participants ParticipantChecker) *Usecase {
	return &Usecase{
		votes:        votes,
		participants: participants,
	}
}

// Cast appends one vote event. The tally arithmetic downstream assumes
// unit votes, so anything but +1/-1 is rejected here.
func (u *Usecase) Cast(ctx context.Context, sessionID, participantID uuid.UUID, venueID string, score model.VoteScore) error {
	if score != model.ScoreApprove && score != model.ScoreDisapprove {
		return ErrBadScore
	}

	ok, err := u.participants.IsParticipant(ctx, sessionID, participantID)
	if err != nil {
		return fmt.Errorf("%w : %w", ErrUnableToSaveVote, err)
	}
	if !ok {
		return ErrResourceNotFound
	}

	if err := u.votes.AddVote(ctx, model.Vote{
		SessionID:     sessionID,
		ParticipantID: participantID,
		VenueID:       venueID,
		Score:         score,
	}); err != nil {
		return fmt.Errorf("%w : %w", ErrUnableToSaveVote, err)
	}
	return nil
}
