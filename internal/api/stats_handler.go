package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"productpulse-backend-go/internal/core"
)

// StatsHandler handles the admin and per-owner dashboard snapshots.
type StatsHandler struct {
	statsService core.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(ss core.StatsService) *StatsHandler {
	return &StatsHandler{statsService: ss}
}

// Site handles GET /stats (admin).
func (h *StatsHandler) Site(c *gin.Context) {
	stats, err := h.statsService.Site(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Mine handles GET /stats/mine — the caller's own product breakdown.
func (h *StatsHandler) Mine(c *gin.Context) {
	stats, err := h.statsService.Owner(c.Request.Context(), c.GetString("userEmail"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
