package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/service"
)

// ProductHandler exposes the product endpoints
type ProductHandler struct {
	svc *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	created, err := h.svc.CreateProduct(c.Request.Context(), &product)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Product created successfully", created)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Product retrieved successfully", product)
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	q := listQuery(c)

	products, total, err := h.svc.ListProducts(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, "Products retrieved successfully", products, total, q.Page, q.Size)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateProduct(c.Request.Context(), id, &product)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Product updated successfully", updated)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Product deleted successfully", nil)
}
