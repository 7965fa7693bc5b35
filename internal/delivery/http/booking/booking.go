package http_booking

import (
	"errors"
	"log/slog"
	"net/http"

	http_common "github.com/abhinav1singhal/social-dining/internal/delivery/http/common"
	usecase_booking "github.com/abhinav1singhal/social-dining/internal/usecase/booking"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	usecase *usecase_booking.Usecase
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_booking.Usecase, opts ...ControllerOption) *Controller {
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
	router.POST("/sessions/:session_id/book", c.book)
}

type BookRequestDTO struct {
	BusinessID string `json:"business_id" binding:"required"`
}

type BookResponseDTO struct {
	Status    string  `json:"status"`
	Reference *string `json:"reference,omitempty"`
	Message   string  `json:"message"`
}

func (c *Controller) book(ctx *gin.Context) {
	sessionID, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "bad session id"})
		return
	}

	var req BookRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
		return
	}

	result, err := c.usecase.Book(ctx, sessionID, req.BusinessID)
	if err != nil {
		if errors.Is(err, usecase_booking.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "Restaurant not found in recommendations"})
			return
		}
		c.logger.Error("failed to book reservation", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}

	ctx.JSON(http.StatusOK, BookResponseDTO{
		Status:    result.Status,
		Reference: result.Reference,
		Message:   result.Message,
	})
}
