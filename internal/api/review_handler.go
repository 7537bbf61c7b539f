package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"productpulse-backend-go/internal/core"
	"productpulse-backend-go/internal/models"
)

// ReviewHandler handles review reads and submissions.
type ReviewHandler struct {
	reviewService core.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(rs core.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: rs}
}

// ListByProduct handles GET /reviews?productId=.
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID := c.Query("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "productId query parameter is required"})
		return
	}
	reviews, err := h.reviewService.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Submit handles POST /reviews — upserted per (user, product).
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req models.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	if err := h.reviewService.Submit(c.Request.Context(), c.GetString("userEmail"), req); err != nil {
		if errors.Is(err, core.ErrInvalidRating) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid rating", Details: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save review"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "review saved"})
}
