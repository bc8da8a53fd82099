package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/four-in-a-row-bot/internal/domain"
	"github.com/iamasit07/four-in-a-row-bot/internal/service/move"
)

const (
	defaultDecisionLimit = 20
	maxDecisionLimit     = 100
)

type DecisionLister interface {
	RecentDecisions(ctx context.Context, limit int) ([]domain.DecisionRecord, error)
}

type DecisionHandler struct {
	Lister DecisionLister
}

func NewDecisionHandler(lister DecisionLister) *DecisionHandler {
	return &DecisionHandler{Lister: lister}
}

// GetDecisions returns the newest logged decisions
func (h *DecisionHandler) GetDecisions(c *gin.Context) {
	limit := defaultDecisionLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxDecisionLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	records, err := h.Lister.RecentDecisions(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, move.ErrDecisionLogDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[HTTP] Failed to fetch decisions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch decisions"})
		return
	}

	c.JSON(http.StatusOK, records)
}
