package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/four-in-a-row-bot/internal/domain"
	"github.com/iamasit07/four-in-a-row-bot/internal/service/move"
)

type MoveService interface {
	DecideMove(ctx context.Context, req move.Request) (*move.Result, error)
}

type MoveHandler struct {
	Service MoveService
}

func NewMoveHandler(service MoveService) *MoveHandler {
	return &MoveHandler{Service: service}
}

// PostMove answers a single move request
func (h *MoveHandler) PostMove(c *gin.Context) {
	var req move.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.Source = move.SourceHTTP

	res, err := h.Service.DecideMove(c.Request.Context(), req)
	if err != nil {
		status := StatusForError(err)
		if status >= http.StatusInternalServerError {
			log.Printf("[HTTP] Move request failed: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

// StatusForError maps move errors to HTTP status codes
func StatusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoValidMove), errors.Is(err, domain.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, domain.ErrMalformedField),
		errors.Is(err, domain.ErrGravityViolation),
		errors.Is(err, domain.ErrInvalidPlayer),
		errors.Is(err, domain.ErrInvalidDimensions),
		errors.Is(err, domain.ErrDimensionMismatch),
		errors.Is(err, domain.ErrInvalidDifficulty):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
