package infra_postgres_vote

import (
	"context"
	"time"

	"github.com/abhinav1singhal/social-dining/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type voteDTO struct {
	SessionID     uuid.UUID `db:"session_id"`
	ParticipantID uuid.UUID `db:"participant_id"`
	VenueID       string    `db:"venue_id"`
	Score         int       `db:"score"`
	CreatedAt     time.Time `db:"created_at"`
}

func (d *Driver) AddVote(ctx context.Context, vote model.Vote) error {
	query := `
		INSERT INTO votes (session_id, participant_id, venue_id, score)
		VALUES ($1, $2, $3, $4)
	`

	_, err := d.db.ExecContext(ctx, query, vote.SessionID, vote.ParticipantID, vote.VenueID, vote.Score)
	return err
}

func (d *Driver) VotesBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Vote, error) {
	var dtos []voteDTO

	query := `
		SELECT session_id, participant_id, venue_id, score, created_at
		FROM votes
		WHERE session_id = $1
	`

	if err := d.db.SelectContext(ctx, &dtos, query, sessionID); err != nil {
		return nil, err
	}

	votes := make([]model.Vote, 0, len(dtos))
	for _, dto := range dtos {
		votes = append(votes, model.Vote{
			SessionID:     dto.SessionID,
			ParticipantID: dto.ParticipantID,
			VenueID:       dto.VenueID,
			Score:         dto.Score,
			CreatedAt:     dto.CreatedAt,
		})
	}
	return votes, nil
}
