package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"productpulse-backend-go/internal/core"
	"productpulse-backend-go/internal/models"
)

// SliderHandler handles homepage slider reads and admin mutations.
type SliderHandler struct {
	sliderService core.SliderService
}

// NewSliderHandler creates a new SliderHandler.
func NewSliderHandler(ss core.SliderService) *SliderHandler {
	return &SliderHandler{sliderService: ss}
}

// List handles GET /sliders.
func (h *SliderHandler) List(c *gin.Context) {
	sliders, err := h.sliderService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list sliders"})
		return
	}
	c.JSON(http.StatusOK, sliders)
}

// Create handles POST /sliders (admin).
func (h *SliderHandler) Create(c *gin.Context) {
	var req models.SliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	id, err := h.sliderService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create slider"})
		return
	}
	c.JSON(http.StatusCreated, InsertedResponse{InsertedID: id})
}

// Delete handles DELETE /sliders/:id (admin).
func (h *SliderHandler) Delete(c *gin.Context) {
	if err := h.sliderService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete slider"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "slider deleted"})
}
