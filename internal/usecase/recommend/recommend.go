package usecase_recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhinav1singhal/social-dining/internal/model"
	usecase_session "github.com/abhinav1singhal/social-dining/internal/usecase/session"
	"github.com/google/uuid"
)

var (
	ErrInternal       = errors.New("internal error")
	ErrNoParticipants = errors.New("no participants in session")

	// Shared with the session usecase so repository drivers need a
	// single not-found sentinel.
	ErrResourceNotFound = usecase_session.ErrResourceNotFound
)

const (
	// How many curated picks survive the cut.
	topPicks = 3

	aiAttempts = 3

	statusGenerating = "generating"
	statusTTL        = 2 * time.Minute
)

//go:generate mockery --name=AI --output=./mocks --filename=ai.go
type AI interface {
	GenerateRecommendations(ctx context.Context, query string) ([]model.Recommendation, error)
	AnalyzeConflicts(ctx context.Context, participants []model.Participant) (model.ConflictAnalysis, error)
}

//go:generate mockery --name=SessionRepository --output=./mocks --filename=sessions.go
type SessionRepository interface {
	SessionByID(ctx context.Context, id uuid.UUID) (model.Session, error)
	ParticipantsBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Participant, error)
	SetConflictAnalysis(ctx context.Context, id uuid.UUID, ca model.ConflictAnalysis) error
	SetStatus(ctx context.Context, id uuid.UUID, status model.SessionStatus) error
}

//go:generate mockery --name=RecommendationRepository --output=./mocks --filename=recommendations.go
type RecommendationRepository interface {
	ReplaceBySession(ctx context.Context, sessionID uuid.UUID, recs []model.Recommendation) error
}

//go:generate mockery --name=StatusCache --output=./mocks --filename=status.go
// StatusCache keeps a short-lived per-session generation marker so
// overlapping generate calls don't fan out duplicate AI requests. The
// marker is claimed atomically and released on completion; the TTL
// releases it if a run dies mid-way.
type StatusCache interface {
	SetIfAbsent(sessionID string, status string, ttl time.Duration) (bool, error)
	Delete(sessionID string) error
}

type Usecase struct {
	ai              AI
	sessions        SessionRepository
	recommendations RecommendationRepository
	status          StatusCache

	logger *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	ai AI,
	sessions SessionRepository,
	recommendations RecommendationRepository,
	status StatusCache,
	opts ...UsecaseOption,
) *Usecase {
	u := &Usecase{
		ai:              ai,
		sessions:        sessions,
		recommendations: recommendations,
		status:          status,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Generate runs the full pipeline: conflict analysis, AI query with
// retries, cut to the curated picks, store. A call that lands while a
// run for the same session is in flight is a no-op. Conflict analysis
// failures never abort the run; recommendations are the thing users
// wait for.
func (u *Usecase) Generate(ctx context.Context, sessionID uuid.UUID) error {
	session, err := u.sessions.SessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrInternal, err)
	}

	participants, err := u.sessions.ParticipantsBySession(ctx, sessionID)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if len(participants) == 0 {
		return ErrNoParticipants
	}

	claimed, err := u.status.SetIfAbsent(sessionID.String(), statusGenerating, statusTTL)
	if err != nil {
		u.logger.Warn("failed to mark generation running", slog.String("error", err.Error()))
	} else if !claimed {
		u.logger.Info("generation already running, skipping",
			slog.String("session_id", sessionID.String()))
		return nil
	}
	if err := u.sessions.SetStatus(ctx, sessionID, model.StatusGenerating); err != nil {
		u.logger.Warn("failed to set session status", slog.String("error", err.Error()))
	}

	ca, err := u.ai.AnalyzeConflicts(ctx, participants)
	if err != nil {
		u.logger.Warn("conflict analysis failed", slog.String("error", err.Error()))
		ca = model.ConflictAnalysis{Resolution: "Analysis failed"}
	}
	if err := u.sessions.SetConflictAnalysis(ctx, sessionID, ca); err != nil {
		// Recommendations must still load.
		u.logger.Warn("failed to save conflict analysis", slog.String("error", err.Error()))
	}

	recs, err := u.generateWithRetry(ctx, buildPrompt(session.Location, participants))
	if err != nil {
		u.logger.Error("all generation attempts failed", slog.String("error", err.Error()))
		recs = nil
	}
	if len(recs) > topPicks {
		recs = recs[:topPicks]
	}
	for i := range recs {
		recs[i].ID = uuid.New()
		recs[i].SessionID = sessionID
	}

	if err := u.recommendations.ReplaceBySession(ctx, sessionID, recs); err != nil {
		return errors.Join(ErrInternal, err)
	}

	if err := u.sessions.SetStatus(ctx, sessionID, model.StatusCompleted); err != nil {
		u.logger.Warn("failed to set session status", slog.String("error", err.Error()))
	}
	if err := u.status.Delete(sessionID.String()); err != nil {
		u.logger.Warn("failed to release generation marker", slog.String("error", err.Error()))
	}
	return nil
}

func (u *Usecase) generateWithRetry(ctx context.Context, query string) ([]model.Recommendation, error) {
	var lastErr error
	for attempt := 1; attempt <= aiAttempts; attempt++ {
		recs, err := u.ai.GenerateRecommendations(ctx, query)
		if err == nil {
			// Empty is a valid answer.
			return recs, nil
		}
		lastErr = err
		u.logger.Warn("generation attempt failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))
	}
	return nil, lastErr
}

func buildPrompt(location string, participants []model.Participant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Find restaurants in %s for a group of %d. ", location, len(participants))

	fmt.Fprintf(&b, "Preferences: %s. ", joinDistinct(participants, func(p model.Participant) string { return p.Profile.CuisinePreferences }))
	fmt.Fprintf(&b, "Dietary Constraints: %s. ", joinDistinct(participants, func(p model.Participant) string { return p.Profile.DietaryRestrictions }))
	fmt.Fprintf(&b, "Vibe: %s. ", joinDistinct(participants, func(p model.Participant) string { return p.Profile.Vibe }))

	b.WriteString("IMPORTANT: For each restaurant, include a summary starting with 'Why Picked:' explaining why it fits the group " +
		"and 'Trade-offs:' listing any downsides (e.g. distance, price). " +
		"Limit to the top 3 best options.")
	return b.String()
}

func joinDistinct(participants []model.Participant, field func(model.Participant) string) string {
	seen := make(map[string]struct{}, len(participants))
	var out []string
	for _, p := range participants {
		v := field(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return strings.Join(out, ", ")
}
