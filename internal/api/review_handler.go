package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/service"
)

// ReviewHandler exposes the product review endpoints
type ReviewHandler struct {
	svc *service.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// Create handles POST /reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	review, err := h.svc.CreateReview(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Review created successfully", review)
}

// Get handles GET /reviews/:id
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	review, err := h.svc.GetReview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Review retrieved successfully", review)
}

// List handles GET /reviews, optionally filtered by ?product=<id>
func (h *ReviewHandler) List(c *gin.Context) {
	q := listQuery(c)

	var productID *primitive.ObjectID
	if raw := c.Query("product"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			respondBadRequest(c, "invalid product ID format")
			return
		}
		productID = &id
	}

	reviews, total, err := h.svc.ListReviews(c.Request.Context(), productID, q)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, "Reviews retrieved successfully", reviews, total, q.Page, q.Size)
}

// Update handles PUT /reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	review, err := h.svc.UpdateReview(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Review updated successfully", review)
}

// Delete handles DELETE /reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteReview(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Review deleted successfully", nil)
}
