package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"productpulse-backend-go/internal/core"
	"productpulse-backend-go/internal/models"
)

// CouponHandler handles coupon validation, the active listing, and the
// admin CRUD surface.
type CouponHandler struct {
	couponService core.CouponService
}

// NewCouponHandler creates a new CouponHandler.
func NewCouponHandler(cs core.CouponService) *CouponHandler {
	return &CouponHandler{couponService: cs}
}

// Validate handles GET /coupons/validate?code=. Not-found returns an
// empty object; an expired coupon returns an explicit zero discount.
func (h *CouponHandler) Validate(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "code query parameter is required"})
		return
	}
	discount, err := h.couponService.Validate(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, core.ErrCouponNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to validate coupon"})
		return
	}
	c.JSON(http.StatusOK, discount)
}

// Active handles GET /coupons/active — non-expired coupons for display.
func (h *CouponHandler) Active(c *gin.Context) {
	coupons, err := h.couponService.Active(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list coupons"})
		return
	}
	c.JSON(http.StatusOK, coupons)
}

// List handles GET /coupons (admin) — every coupon, expired included.
func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.couponService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list coupons"})
		return
	}
	c.JSON(http.StatusOK, coupons)
}

// Create handles POST /coupons (admin).
func (h *CouponHandler) Create(c *gin.Context) {
	var req models.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	id, err := h.couponService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to create coupon", Details: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, InsertedResponse{InsertedID: id})
}

// Update handles PUT /coupons/:id (admin).
func (h *CouponHandler) Update(c *gin.Context) {
	var req models.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	if err := h.couponService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update coupon", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "coupon updated"})
}

// Delete handles DELETE /coupons/:id (admin).
func (h *CouponHandler) Delete(c *gin.Context) {
	if err := h.couponService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete coupon"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "coupon deleted"})
}
