package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/service"
)

// CategoryHandler exposes the product category endpoints
type CategoryHandler struct {
	svc *service.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// Create handles POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var category model.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	created, err := h.svc.CreateCategory(c.Request.Context(), &category)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Category created successfully", created)
}

// Get handles GET /categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.svc.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Category retrieved successfully", category)
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	q := listQuery(c)

	categories, total, err := h.svc.ListCategories(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, "Categories retrieved successfully", categories, total, q.Page, q.Size)
}

// Update handles PUT /categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var category model.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateCategory(c.Request.Context(), id, &category)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Category updated successfully", updated)
}

// Delete handles DELETE /categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Category deleted successfully", nil)
}

// TagHandler exposes the product tag endpoints
type TagHandler struct {
	svc *service.TagService
}

// NewTagHandler creates a new tag handler
func NewTagHandler(svc *service.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

// Create handles POST /tags
func (h *TagHandler) Create(c *gin.Context) {
	var tag model.Tag
	if err := c.ShouldBindJSON(&tag); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	created, err := h.svc.CreateTag(c.Request.Context(), &tag)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Tag created successfully", created)
}

// Get handles GET /tags/:id
func (h *TagHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	tag, err := h.svc.GetTag(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Tag retrieved successfully", tag)
}

// List handles GET /tags
func (h *TagHandler) List(c *gin.Context) {
	q := listQuery(c)

	tags, total, err := h.svc.ListTags(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, "Tags retrieved successfully", tags, total, q.Page, q.Size)
}

// Update handles PUT /tags/:id
func (h *TagHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var tag model.Tag
	if err := c.ShouldBindJSON(&tag); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateTag(c.Request.Context(), id, &tag)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Tag updated successfully", updated)
}

// Delete handles DELETE /tags/:id
func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteTag(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Tag deleted successfully", nil)
}
