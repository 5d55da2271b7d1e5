package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/service"
)

// CouponHandler exposes the coupon endpoints
type CouponHandler struct {
	svc *service.CouponService
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(svc *service.CouponService) *CouponHandler {
	return &CouponHandler{svc: svc}
}

// Create handles POST /coupons
func (h *CouponHandler) Create(c *gin.Context) {
	var req model.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	coupon, err := h.svc.CreateCoupon(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Coupon created successfully", coupon)
}

// Get handles GET /coupons/:id
func (h *CouponHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	coupon, err := h.svc.GetCoupon(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Coupon retrieved successfully", coupon)
}

// List handles GET /coupons
func (h *CouponHandler) List(c *gin.Context) {
	q, err := parseCouponListQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	coupons, total, err := h.svc.ListCoupons(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, "Coupons retrieved successfully", coupons, total, q.Page, q.PerPage)
}

// Update handles PUT /coupons/:id
func (h *CouponHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	coupon, err := h.svc.UpdateCoupon(c.Request.Context(), id, updates)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Coupon updated successfully", coupon)
}

// Delete handles DELETE /coupons/:id. With ?force=true the document is
// removed permanently; otherwise it is soft-deleted and expired.
func (h *CouponHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	force := c.Query("force") == "true"

	coupon, err := h.svc.DeleteCoupon(c.Request.Context(), id, force)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Coupon deleted successfully", coupon)
}

func parseCouponListQuery(c *gin.Context) (model.CouponListQuery, error) {
	q := model.CouponListQuery{
		Search:  c.Query("search"),
		Code:    c.Query("code"),
		OrderBy: c.DefaultQuery("order_by", "date"),
		Order:   c.DefaultQuery("order", "desc"),
	}

	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "10"))
	q.Offset, _ = strconv.Atoi(c.Query("offset"))

	var err error
	if q.After, err = parseTimeParam(c, "after"); err != nil {
		return q, err
	}
	if q.Before, err = parseTimeParam(c, "before"); err != nil {
		return q, err
	}
	if q.ModifiedAfter, err = parseTimeParam(c, "modified_after"); err != nil {
		return q, err
	}
	if q.ModifiedBefore, err = parseTimeParam(c, "modified_before"); err != nil {
		return q, err
	}

	if q.Include, err = parseIDListParam(c, "include"); err != nil {
		return q, err
	}
	if q.Exclude, err = parseIDListParam(c, "exclude"); err != nil {
		return q, err
	}

	return q, nil
}

func parseTimeParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, badQueryParam(name)
	}
	return &t, nil
}

func parseIDListParam(c *gin.Context, name string) ([]primitive.ObjectID, error) {
	raw := c.QueryArray(name)
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, s := range raw {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, badQueryParam(name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
