package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/service"
)

// CustomerHandler exposes the customer endpoints
type CustomerHandler struct {
	svc *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// Create handles POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var customer model.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	created, err := h.svc.CreateCustomer(c.Request.Context(), &customer)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Customer created successfully", created)
}

// Get handles GET /customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	customer, err := h.svc.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Customer retrieved successfully", customer)
}

// List handles GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	q := listQuery(c)

	customers, total, err := h.svc.ListCustomers(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, "Customers retrieved successfully", customers, total, q.Page, q.Size)
}

// Update handles PUT /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var customer model.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateCustomer(c.Request.Context(), id, &customer)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Customer updated successfully", updated)
}

// Delete handles DELETE /customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Customer deleted successfully", nil)
}
