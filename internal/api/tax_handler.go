package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/service"
)

// TaxHandler exposes the tax class and tax rate endpoints
type TaxHandler struct {
	svc *service.TaxService
}

// NewTaxHandler creates a new tax handler
func NewTaxHandler(svc *service.TaxService) *TaxHandler {
	return &TaxHandler{svc: svc}
}

// CreateClass handles POST /tax-classes
func (h *TaxHandler) CreateClass(c *gin.Context) {
	var class model.TaxClass
	if err := c.ShouldBindJSON(&class); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	created, err := h.svc.CreateTaxClass(c.Request.Context(), &class)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Tax class created successfully", created)
}

// GetClass handles GET /tax-classes/:id
func (h *TaxHandler) GetClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	class, err := h.svc.GetTaxClass(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Tax class retrieved successfully", class)
}

// ListClasses handles GET /tax-classes
func (h *TaxHandler) ListClasses(c *gin.Context) {
	q := listQuery(c)

	classes, total, err := h.svc.ListTaxClasses(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, "Tax classes retrieved successfully", classes, total, q.Page, q.Size)
}

// UpdateClass handles PUT /tax-classes/:id
func (h *TaxHandler) UpdateClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var class model.TaxClass
	if err := c.ShouldBindJSON(&class); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateTaxClass(c.Request.Context(), id, &class)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Tax class updated successfully", updated)
}

// DeleteClass handles DELETE /tax-classes/:id
func (h *TaxHandler) DeleteClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteTaxClass(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Tax class deleted successfully", nil)
}

// CreateRate handles POST /tax-rates
func (h *TaxHandler) CreateRate(c *gin.Context) {
	var rate model.TaxRate
	if err := c.ShouldBindJSON(&rate); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	created, err := h.svc.CreateTaxRate(c.Request.Context(), &rate)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Tax rate created successfully", created)
}

// GetRate handles GET /tax-rates/:id
func (h *TaxHandler) GetRate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rate, err := h.svc.GetTaxRate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Tax rate retrieved successfully", rate)
}

// ListRates handles GET /tax-rates
func (h *TaxHandler) ListRates(c *gin.Context) {
	q := listQuery(c)

	rates, total, err := h.svc.ListTaxRates(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, "Tax rates retrieved successfully", rates, total, q.Page, q.Size)
}

// UpdateRate handles PUT /tax-rates/:id
func (h *TaxHandler) UpdateRate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var rate model.TaxRate
	if err := c.ShouldBindJSON(&rate); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateTaxRate(c.Request.Context(), id, &rate)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Tax rate updated successfully", updated)
}

// DeleteRate handles DELETE /tax-rates/:id
func (h *TaxHandler) DeleteRate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rate, err := h.svc.DeleteTaxRate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Tax rate deleted successfully", rate)
}
