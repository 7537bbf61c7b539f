package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"productpulse-backend-go/internal/core"
	"productpulse-backend-go/internal/models"
)

// VoteHandler handles vote tally reads and vote submissions.
type VoteHandler struct {
	voteService core.VoteService
}

// NewVoteHandler creates a new VoteHandler.
func NewVoteHandler(vs core.VoteService) *VoteHandler {
	return &VoteHandler{voteService: vs}
}

// Tally handles GET /votes/tally?productId=&userEmail=. An unknown or
// malformed product id yields zero counts, not an error.
func (h *VoteHandler) Tally(c *gin.Context) {
	productID := c.Query("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "productId query parameter is required"})
		return
	}
	tally, err := h.voteService.Tally(c.Request.Context(), productID, c.Query("userEmail"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to count votes"})
		return
	}
	c.JSON(http.StatusOK, tally)
}

func (h *VoteHandler) submit(c *gin.Context, write func(string, models.SubmitVoteRequest) error) {
	var req models.SubmitVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	if err := write(c.GetString("userEmail"), req); err != nil {
		if errors.Is(err, core.ErrInvalidVoteType) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid vote type", Details: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record vote"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "vote recorded"})
}

// Append handles POST /votes — the unconditional append path (no dedup).
func (h *VoteHandler) Append(c *gin.Context) {
	h.submit(c, func(email string, req models.SubmitVoteRequest) error {
		return h.voteService.Append(c.Request.Context(), email, req)
	})
}

// Upsert handles PUT /votes — one vote per (user, product), replacing
// any prior vote type.
func (h *VoteHandler) Upsert(c *gin.Context) {
	h.submit(c, func(email string, req models.SubmitVoteRequest) error {
		return h.voteService.Upsert(c.Request.Context(), email, req)
	})
}
