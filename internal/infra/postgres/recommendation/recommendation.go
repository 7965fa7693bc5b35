package infra_postgres_recommendation

import (
	"context"
	"database/sql"

	"github.com/abhinav1singhal/social-dining/internal/model"
	usecase_session "github.com/abhinav1singhal/social-dining/internal/usecase/session"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type recommendationDTO struct {
	ID          uuid.UUID      `db:"id"`
	SessionID   uuid.UUID      `db:"session_id"`
	BusinessID  string         `db:"business_id"`
	Name        string         `db:"name"`
	ImageURL    *string        `db:"image_url"`
	Rating      float64        `db:"rating"`
	Price       string         `db:"price"`
	Categories  pq.StringArray `db:"categories"`
	AIReasoning string         `db:"ai_reasoning"`
	WhyPicked   *string        `db:"why_picked"`
	TradeOffs   pq.StringArray `db:"trade_offs"`
}

func (dto recommendationDTO) toModel() model.Recommendation {
	return model.Recommendation{
		ID:          dto.ID,
		SessionID:   dto.SessionID,
		BusinessID:  dto.BusinessID,
		Name:        dto.Name,
		ImageURL:    dto.ImageURL,
		Rating:      dto.Rating,
		Price:       dto.Price,
		Categories:  dto.Categories,
		AIReasoning: dto.AIReasoning,
		WhyPicked:   dto.WhyPicked,
		TradeOffs:   dto.TradeOffs,
	}
}

// ReplaceBySession writes a fresh generation atomically: the previous
// set (if any) goes away with it.
func (d *Driver) ReplaceBySession(ctx context.Context, sessionID uuid.UUID, recs []model.Recommendation) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recommendations WHERE session_id = $1`, sessionID); err != nil {
		return err
	}

	query := `
		INSERT INTO recommendations (id, session_id, business_id, name, image_url, rating, price, categories, ai_reasoning, why_picked, trade_offs)
		VALUES (:id, :session_id, :business_id, :name, :image_url, :rating, :price, :categories, :ai_reasoning, :why_picked, :trade_offs)
	`
	for _, rec := range recs {
		dto := recommendationDTO{
			ID:          rec.ID,
			SessionID:   rec.SessionID,
			BusinessID:  rec.BusinessID,
			Name:        rec.Name,
			ImageURL:    rec.ImageURL,
			Rating:      rec.Rating,
			Price:       rec.Price,
			Categories:  pq.StringArray(rec.Categories),
			AIReasoning: rec.AIReasoning,
			WhyPicked:   rec.WhyPicked,
			TradeOffs:   pq.StringArray(rec.TradeOffs),
		}
		if _, err := tx.NamedExecContext(ctx, query, dto); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d *Driver) RecommendationsBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Recommendation, error) {
	var dtos []recommendationDTO

	query := `
		SELECT id, session_id, business_id, name, image_url, rating, price, categories, ai_reasoning, why_picked, trade_offs
		FROM recommendations
		WHERE session_id = $1
	`

	if err := d.db.SelectContext(ctx, &dtos, query, sessionID); err != nil {
		return nil, err
	}

	recs := make([]model.Recommendation, 0, len(dtos))
	for _, dto := range dtos {
		recs = append(recs, dto.toModel())
	}
	return recs, nil
}

func (d *Driver) RecommendationBySessionAndBusiness(ctx context.Context, sessionID uuid.UUID, businessID string) (model.Recommendation, error) {
	var dto recommendationDTO

	query := `
		SELECT id, session_id, business_id, name, image_url, rating, price, categories, ai_reasoning, why_picked, trade_offs
		FROM recommendations
		WHERE session_id = $1 AND business_id = $2
	`

	err := d.db.GetContext(ctx, &dto, query, sessionID, businessID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Recommendation{}, usecase_session.ErrResourceNotFound
		}
		return model.Recommendation{}, err
	}
	return dto.toModel(), nil
}
