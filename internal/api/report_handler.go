package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"productpulse-backend-go/internal/core"
	"productpulse-backend-go/internal/models"
)

// ReportHandler handles product report submissions and the moderator
// report listing.
type ReportHandler struct {
	reportService core.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs core.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// Submit handles POST /reports.
func (h *ReportHandler) Submit(c *gin.Context) {
	var req models.SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	if err := h.reportService.Submit(c.Request.Context(), c.GetString("userEmail"), req); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save report"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "report saved"})
}

// List handles GET /reports (moderator).
func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.reportService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}
