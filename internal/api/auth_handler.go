package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"productpulse-backend-go/internal/core"
	"productpulse-backend-go/internal/models"
)

// AuthHandler handles token issuance.
type AuthHandler struct {
	tokens core.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tokens core.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// IssueToken handles POST /jwt. The client posts the signed-in user's
// email and receives a bearer token for it.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Token: token})
}
