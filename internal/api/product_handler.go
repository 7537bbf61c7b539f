package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"productpulse-backend-go/internal/core"
	"productpulse-backend-go/internal/models"
)

// ProductHandler handles product listing, submission, and moderation
// endpoints.
type ProductHandler struct {
	productService core.ProductService
	rankingService core.RankingService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(ps core.ProductService, rs core.RankingService) *ProductHandler {
	return &ProductHandler{productService: ps, rankingService: rs}
}

func (h *ProductHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrProductNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
	case errors.Is(err, core.ErrNotOwner):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "You do not own this product"})
	case errors.Is(err, core.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status", Details: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// ListAccepted handles GET /products?search=&page=&size= — the public
// listing of accepted products with tag search and pagination.
func (h *ProductHandler) ListAccepted(c *gin.Context) {
	search := c.Query("search")
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "0"), 10, 64)
	size, _ := strconv.ParseInt(c.DefaultQuery("size", "0"), 10, 64)
	products, err := h.productService.ListAccepted(c.Request.Context(), search, page, size)
	if err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CountAccepted handles GET /products/count?search= for pagination.
func (h *ProductHandler) CountAccepted(c *gin.Context) {
	count, err := h.productService.CountAccepted(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// Trending handles GET /products/trending?limit= — the ranked listing.
func (h *ProductHandler) Trending(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	ranked, err := h.rankingService.Trending(c.Request.Context(), limit)
	if err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranked)
}

// Featured handles GET /products/featured — accepted + featured only.
func (h *ProductHandler) Featured(c *gin.Context) {
	products, err := h.rankingService.Featured(c.Request.Context())
	if err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.productService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Submit handles POST /products — a new listing in pending status.
func (h *ProductHandler) Submit(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	id, err := h.productService.Submit(c.Request.Context(), c.GetString("userEmail"), req)
	if err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusCreated, InsertedResponse{InsertedID: id})
}

// Mine handles GET /products/mine — the caller's own submissions.
func (h *ProductHandler) Mine(c *gin.Context) {
	products, err := h.productService.ListByOwner(c.Request.Context(), c.GetString("userEmail"))
	if err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Update handles PUT /products/:id — the owner editing a submission.
func (h *ProductHandler) Update(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	err := h.productService.UpdateOwn(c.Request.Context(), c.GetString("userEmail"), c.Param("id"), req)
	if err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "product updated"})
}

// Queue handles GET /products/queue (moderator) — pending first.
func (h *ProductHandler) Queue(c *gin.Context) {
	products, err := h.productService.ListQueue(c.Request.Context())
	if err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Reported handles GET /products/reported (moderator).
func (h *ProductHandler) Reported(c *gin.Context) {
	products, err := h.productService.ListReported(c.Request.Context())
	if err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// SetStatus handles PATCH /products/:id/status (moderator).
func (h *ProductHandler) SetStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	if err := h.productService.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "status updated"})
}

// SetFeatured handles PATCH /products/:id/featured (moderator).
func (h *ProductHandler) SetFeatured(c *gin.Context) {
	var req struct {
		Featured string `json:"featured" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	if err := h.productService.SetFeatured(c.Request.Context(), c.Param("id"), req.Featured); err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "featured flag updated"})
}

// MarkReported handles PATCH /products/:id/reported (moderator).
func (h *ProductHandler) MarkReported(c *gin.Context) {
	if err := h.productService.MarkReported(c.Request.Context(), c.Param("id")); err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "product marked reported"})
}

// Delete handles DELETE /products/:id (moderator) — removes the product
// and cascades to its reviews and reports.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "product deleted"})
}
