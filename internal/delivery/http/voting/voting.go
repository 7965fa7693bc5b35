package http_voting

import (
	"errors"
	"log/slog"
	"net/http"

	http_common "github.com/abhinav1singhal/social-dining/internal/delivery/http/common"
	usecase_recommend "github.com/abhinav1singhal/social-dining/internal/usecase/recommend"
	usecase_vote "github.com/abhinav1singhal/social-dining/internal/usecase/vote"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	votes     *usecase_vote.Usecase
	recommend *usecase_recommend.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(votes *usecase_vote.Usecase, recommend *usecase_recommend.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		votes:     votes,
		recommend: recommend,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/sessions/:session_id")
	{
		sessions.POST("/generate", c.generate)
		sessions.POST("/vote", c.vote)
	}
}

type VoteRequestDTO struct {
	ParticipantID string `json:"participant_id" binding:"required"`
	VenueID       string `json:"venue_id" binding:"required"`
	Score         int    `json:"score" binding:"required"`
}

type AckResponseDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *Controller) generate(ctx *gin.Context) {
	sessionID, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "bad session id"})
		return
	}

	if err := c.recommend.Generate(ctx, sessionID); err != nil {
		switch {
		case errors.Is(err, usecase_recommend.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "Session not found"})
		case errors.Is(err, usecase_recommend.ErrNoParticipants):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "No participants in session"})
		default:
			c.logger.Error("failed to generate recommendations", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, AckResponseDTO{Status: "completed", Message: "Recommendations generated"})
}

func (c *Controller) vote(ctx *gin.Context) {
	sessionID, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "bad session id"})
		return
	}

	var req VoteRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
		return
	}

	participantID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "bad participant id"})
		return
	}

	if err := c.votes.Cast(ctx, sessionID, participantID, req.VenueID, req.Score); err != nil {
		switch {
		case errors.Is(err, usecase_vote.ErrBadScore):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "score must be +1 or -1"})
		case errors.Is(err, usecase_vote.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "Participant not found"})
		default:
			c.logger.Error("failed to cast vote", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, AckResponseDTO{Status: "voted", Message: "Vote recorded"})
}
