package http_session

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	http_common "github.com/abhinav1singhal/social-dining/internal/delivery/http/common"
	"github.com/abhinav1singhal/social-dining/internal/model"
	usecase_session "github.com/abhinav1singhal/social-dining/internal/usecase/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	usecase *usecase_session.Usecase
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_session.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/sessions")
	{
		sessions.POST("", c.create)
		sessions.GET("/:session_id", c.get)
		sessions.POST("/:session_id/join", c.join)
	}
}

type CreateSessionRequestDTO struct {
	HostName      string     `json:"host_name" binding:"required"`
	Location      string     `json:"location" binding:"required"`
	ScheduledTime *time.Time `json:"scheduled_time"`
}

type SessionDTO struct {
	ID               string               `json:"id"`
	HostName         string               `json:"host_name"`
	Location         string               `json:"location"`
	ScheduledTime    *time.Time           `json:"scheduled_time,omitempty"`
	Status           string               `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
	ExpiresAt        time.Time            `json:"expires_at"`
	InviteLink       string               `json:"invite_link"`
	ConflictAnalysis *ConflictAnalysisDTO `json:"conflict_analysis,omitempty"`
	BookingStatus    string               `json:"booking_status"`
	BookingReference *string              `json:"booking_reference,omitempty"`
	BookingMessage   *string              `json:"booking_message,omitempty"`
}

type ConflictAnalysisDTO struct {
	HasConflicts bool     `json:"has_conflicts"`
	Conflicts    []string `json:"conflicts"`
	Resolution   string   `json:"resolution"`
}

type JoinRequestDTO struct {
	Name                string `json:"name" binding:"required"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	CuisinePreferences  string `json:"cuisine_preferences"`
	BudgetTier          string `json:"budget_tier"`
	Vibe                string `json:"vibe"`
}

type ParticipantDTO struct {
	ID                  string `json:"id"`
	SessionID           string `json:"session_id"`
	Name                string `json:"name"`
	DietaryRestrictions string `json:"dietary_restrictions,omitempty"`
	CuisinePreferences  string `json:"cuisine_preferences,omitempty"`
	BudgetTier          string `json:"budget_tier,omitempty"`
	Vibe                string `json:"vibe,omitempty"`
	IsHost              bool   `json:"is_host"`
}

type RecommendationDTO struct {
	ID          string   `json:"id"`
	BusinessID  string   `json:"business_id"`
	Name        string   `json:"name"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Rating      float64  `json:"rating"`
	Price       string   `json:"price"`
	Categories  []string `json:"categories"`
	AIReasoning string   `json:"ai_reasoning"`
	WhyPicked   *string  `json:"why_picked,omitempty"`
	TradeOffs   []string `json:"trade_offs,omitempty"`
	Score       int      `json:"score"`
	VoteCount   int      `json:"vote_count"`
}

type SnapshotResponseDTO struct {
	Session         SessionDTO          `json:"session"`
	Participants    []ParticipantDTO    `json:"participants"`
	Recommendations []RecommendationDTO `json:"recommendations"`
}

func (c *Controller) create(ctx *gin.Context) {
	var req CreateSessionRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
		return
	}

	session, err := c.usecase.Create(ctx, req.HostName, req.Location, req.ScheduledTime)
	if err != nil {
		c.logger.Error("failed to create session", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}

	ctx.JSON(http.StatusCreated, toSessionDTO(session))
}

func (c *Controller) get(ctx *gin.Context) {
	sessionID, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "bad session id"})
		return
	}

	snapshot, err := c.usecase.Snapshot(ctx, sessionID)
	if err != nil {
		if errors.Is(err, usecase_session.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "Session not found"})
			return
		}
		c.logger.Error("failed to load snapshot", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}

	ctx.JSON(http.StatusOK, toSnapshotDTO(snapshot))
}

func (c *Controller) join(ctx *gin.Context) {
	sessionID, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "bad session id"})
		return
	}

	var req JoinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
		return
	}

	participant, err := c.usecase.Join(ctx, sessionID, req.Name, model.Profile{
		DietaryRestrictions: req.DietaryRestrictions,
		CuisinePreferences:  req.CuisinePreferences,
		BudgetTier:          req.BudgetTier,
		Vibe:                req.Vibe,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase_session.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "Session not found"})
		case errors.Is(err, usecase_session.ErrSessionFull):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "Session is full (max 10 users)"})
		default:
			c.logger.Error("failed to join session", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, toParticipantDTO(participant))
}

func toSessionDTO(s model.Session) SessionDTO {
	dto := SessionDTO{
		ID:               s.ID.String(),
		HostName:         s.HostName,
		Location:         s.Location,
		ScheduledTime:    s.ScheduledTime,
		Status:           s.Status,
		CreatedAt:        s.CreatedAt,
		ExpiresAt:        s.ExpiresAt,
		InviteLink:       s.InviteLink,
		BookingStatus:    s.BookingStatus,
		BookingReference: s.BookingReference,
		BookingMessage:   s.BookingMessage,
	}
	if s.ConflictAnalysis != nil {
		dto.ConflictAnalysis = &ConflictAnalysisDTO{
			HasConflicts: s.ConflictAnalysis.HasConflicts,
			Conflicts:    s.ConflictAnalysis.Conflicts,
			Resolution:   s.ConflictAnalysis.Resolution,
		}
	}
	return dto
}

func toParticipantDTO(p model.Participant) ParticipantDTO {
	return ParticipantDTO{
		ID:                  p.ID.String(),
		SessionID:           p.SessionID.String(),
		Name:                p.Name,
		DietaryRestrictions: p.Profile.DietaryRestrictions,
		CuisinePreferences:  p.Profile.CuisinePreferences,
		BudgetTier:          p.Profile.BudgetTier,
		Vibe:                p.Profile.Vibe,
		IsHost:              p.IsHost,
	}
}

func toSnapshotDTO(snapshot model.Snapshot) SnapshotResponseDTO {
	resp := SnapshotResponseDTO{
		Session:         toSessionDTO(snapshot.Session),
		Participants:    make([]ParticipantDTO, 0, len(snapshot.Participants)),
		Recommendations: make([]RecommendationDTO, 0, len(snapshot.Recommendations)),
	}
	for _, p := range snapshot.Participants {
		resp.Participants = append(resp.Participants, toParticipantDTO(p))
	}
	for _, rec := range snapshot.Recommendations {
		resp.Recommendations = append(resp.Recommendations, RecommendationDTO{
			ID:          rec.ID.String(),
			BusinessID:  rec.BusinessID,
			Name:        rec.Name,
			ImageURL:    rec.ImageURL,
			Rating:      rec.Rating,
			Price:       rec.Price,
			Categories:  rec.Categories,
			AIReasoning: rec.AIReasoning,
			WhyPicked:   rec.WhyPicked,
			TradeOffs:   rec.TradeOffs,
			Score:       rec.Score,
			VoteCount:   rec.VoteCount,
		})
	}
	return resp
}
