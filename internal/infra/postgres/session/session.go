package infra_postgres_session

import (
	"context"
	"database/sql"
	"time"

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

type sessionDTO struct {
	ID                 uuid.UUID      `db:"id"`
	HostName           string         `db:"host_name"`
	Location           string         `db:"location"`
	ScheduledTime      *time.Time     `db:"scheduled_time"`
	Status             string         `db:"status"`
	CreatedAt          time.Time      `db:"created_at"`
	ExpiresAt          time.Time      `db:"expires_at"`
	InviteLink         string         `db:"invite_link"`
	HasConflicts       *bool          `db:"has_conflicts"`
	Conflicts          pq.StringArray `db:"conflicts"`
	ConflictResolution *string        `db:"conflict_resolution"`
	BookingStatus      string         `db:"booking_status"`
	BookingReference   *string        `db:"booking_reference"`
	BookingMessage     *string        `db:"booking_message"`
}

func (dto sessionDTO) toModel() model.Session {
	s := model.Session{
		ID:               dto.ID,
		HostName:         dto.HostName,
		Location:         dto.Location,
		ScheduledTime:    dto.ScheduledTime,
		Status:           dto.Status,
		CreatedAt:        dto.CreatedAt,
		ExpiresAt:        dto.ExpiresAt,
		InviteLink:       dto.InviteLink,
		BookingStatus:    dto.BookingStatus,
		BookingReference: dto.BookingReference,
		BookingMessage:   dto.BookingMessage,
	}
	if dto.HasConflicts != nil {
		ca := model.ConflictAnalysis{
			HasConflicts: *dto.HasConflicts,
			Conflicts:    dto.Conflicts,
		}
		if dto.ConflictResolution != nil {
			ca.Resolution = *dto.ConflictResolution
		}
		s.ConflictAnalysis = &ca
	}
	return s
}

type participantDTO struct {
	ID                  uuid.UUID `db:"id"`
	SessionID           uuid.UUID `db:"session_id"`
	Name                string    `db:"name"`
	DietaryRestrictions string    `db:"dietary_restrictions"`
	CuisinePreferences  string    `db:"cuisine_preferences"`
	BudgetTier          string    `db:"budget_tier"`
	Vibe                string    `db:"vibe"`
	IsHost              bool      `db:"is_host"`
}

func (dto participantDTO) toModel() model.Participant {
	return model.Participant{
		ID:        dto.ID,
		SessionID: dto.SessionID,
		Name:      dto.Name,
		IsHost:    dto.IsHost,
		Profile: model.Profile{
			DietaryRestrictions: dto.DietaryRestrictions,
			CuisinePreferences:  dto.CuisinePreferences,
			BudgetTier:          dto.BudgetTier,
			Vibe:                dto.Vibe,
		},
	}
}

func (d *Driver) CreateSession(ctx context.Context, session model.Session) error {
	dto := sessionDTO{
		ID:            session.ID,
		HostName:      session.HostName,
		Location:      session.Location,
		ScheduledTime: session.ScheduledTime,
		Status:        session.Status,
		CreatedAt:     session.CreatedAt,
		ExpiresAt:     session.ExpiresAt,
		InviteLink:    session.InviteLink,
		BookingStatus: session.BookingStatus,
	}

	query := `
		INSERT INTO sessions (id, host_name, location, scheduled_time, status, created_at, expires_at, invite_link, booking_status)
		VALUES (:id, :host_name, :location, :scheduled_time, :status, :created_at, :expires_at, :invite_link, :booking_status)
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	return err
}

func (d *Driver) SessionByID(ctx context.Context, id uuid.UUID) (model.Session, error) {
	var dto sessionDTO

	query := `
		SELECT id, host_name, location, scheduled_time, status, created_at, expires_at, invite_link,
		       has_conflicts, conflicts, conflict_resolution,
		       booking_status, booking_reference, booking_message
		FROM sessions
		WHERE id = $1
	`

	err := d.db.GetContext(ctx, &dto, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Session{}, usecase_session.ErrResourceNotFound
		}
		return model.Session{}, err
	}

	return dto.toModel(), nil
}

func (d *Driver) AddParticipant(ctx context.Context, p model.Participant) error {
	dto := participantDTO{
		ID:                  p.ID,
		SessionID:           p.SessionID,
		Name:                p.Name,
		DietaryRestrictions: p.Profile.DietaryRestrictions,
		CuisinePreferences:  p.Profile.CuisinePreferences,
		BudgetTier:          p.Profile.BudgetTier,
		Vibe:                p.Profile.Vibe,
		IsHost:              p.IsHost,
	}

	query := `
		INSERT INTO participants (id, session_id, name, dietary_restrictions, cuisine_preferences, budget_tier, vibe, is_host)
		VALUES (:id, :session_id, :name, :dietary_restrictions, :cuisine_preferences, :budget_tier, :vibe, :is_host)
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	return err
}

func (d *Driver) ParticipantsBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Participant, error) {
	var dtos []participantDTO

	query := `
		SELECT id, session_id, name, dietary_restrictions, cuisine_preferences, budget_tier, vibe, is_host
		FROM participants
		WHERE session_id = $1
		ORDER BY is_host DESC, name
	`

	if err := d.db.SelectContext(ctx, &dtos, query, sessionID); err != nil {
		return nil, err
	}

	participants := make([]model.Participant, 0, len(dtos))
	for _, dto := range dtos {
		participants = append(participants, dto.toModel())
	}
	return participants, nil
}

func (d *Driver) IsParticipant(ctx context.Context, sessionID, participantID uuid.UUID) (bool, error) {
	var count int

	query := `
		SELECT COUNT(*)
		FROM participants
		WHERE session_id = $1 AND id = $2
	`

	if err := d.db.GetContext(ctx, &count, query, sessionID, participantID); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (d *Driver) SetConflictAnalysis(ctx context.Context, id uuid.UUID, ca model.ConflictAnalysis) error {
	query := `
		UPDATE sessions
		SET has_conflicts = $2, conflicts = $3, conflict_resolution = $4
		WHERE id = $1
	`

	res, err := d.db.ExecContext(ctx, query, id, ca.HasConflicts, pq.StringArray(ca.Conflicts), ca.Resolution)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (d *Driver) SetStatus(ctx context.Context, id uuid.UUID, status model.SessionStatus) error {
	query := `
		UPDATE sessions
		SET status = $2
		WHERE id = $1
	`

	res, err := d.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (d *Driver) SetBooking(ctx context.Context, id uuid.UUID, result model.BookingResult) error {
	query := `
		UPDATE sessions
		SET booking_status = $2, booking_reference = $3, booking_message = $4
		WHERE id = $1
	`

	res, err := d.db.ExecContext(ctx, query, id, result.Status, result.Reference, result.Message)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return usecase_session.ErrResourceNotFound
	}
	return nil
}
