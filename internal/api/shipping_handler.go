package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/service"
)

// ShippingHandler exposes the shipping class, method, zone and zone
// location endpoints
type ShippingHandler struct {
	svc *service.ShippingService
}

// NewShippingHandler creates a new shipping handler
func NewShippingHandler(svc *service.ShippingService) *ShippingHandler {
	return &ShippingHandler{svc: svc}
}

// CreateClass handles POST /shipping-classes
func (h *ShippingHandler) CreateClass(c *gin.Context) {
	var class model.ShippingClass
	if err := c.ShouldBindJSON(&class); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	created, err := h.svc.CreateShippingClass(c.Request.Context(), &class)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Shipping class created successfully", created)
}

// CreateClasses handles POST /shipping-classes/bulk. Entries without a
// name are skipped and echoed back under invalid.
func (h *ShippingHandler) CreateClasses(c *gin.Context) {
	var classes []*model.ShippingClass
	if err := c.ShouldBindJSON(&classes); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	created, invalid, err := h.svc.CreateShippingClasses(c.Request.Context(), classes)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Shipping classes created successfully", gin.H{
		"created": created,
		"invalid": invalid,
	})
}

// GetClass handles GET /shipping-classes/:id
func (h *ShippingHandler) GetClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	class, err := h.svc.GetShippingClass(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Shipping class retrieved successfully", class)
}

// ListClasses handles GET /shipping-classes
func (h *ShippingHandler) ListClasses(c *gin.Context) {
	q := listQuery(c)

	classes, total, err := h.svc.ListShippingClasses(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, "Shipping classes retrieved successfully", classes, total, q.Page, q.Size)
}

// UpdateClass handles PUT /shipping-classes/:id
func (h *ShippingHandler) UpdateClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var class model.ShippingClass
	if err := c.ShouldBindJSON(&class); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateShippingClass(c.Request.Context(), id, class.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Shipping class updated successfully", updated)
}

// DeleteClass handles DELETE /shipping-classes/:id
func (h *ShippingHandler) DeleteClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	class, err := h.svc.DeleteShippingClass(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Shipping class deleted successfully", class)
}

// CreateMethod handles POST /shipping-methods
func (h *ShippingHandler) CreateMethod(c *gin.Context) {
	var method model.ShippingMethod
	if err := c.ShouldBindJSON(&method); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	created, err := h.svc.CreateShippingMethod(c.Request.Context(), &method)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Shipping method created successfully", created)
}

// GetMethod handles GET /shipping-methods/:id
func (h *ShippingHandler) GetMethod(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	method, err := h.svc.GetShippingMethod(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Shipping method retrieved successfully", method)
}

// ListMethods handles GET /shipping-methods
func (h *ShippingHandler) ListMethods(c *gin.Context) {
	q := listQuery(c)

	methods, total, err := h.svc.ListShippingMethods(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, "Shipping methods retrieved successfully", methods, total, q.Page, q.Size)
}

// UpdateMethod handles PUT /shipping-methods/:id
func (h *ShippingHandler) UpdateMethod(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var method model.ShippingMethod
	if err := c.ShouldBindJSON(&method); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateShippingMethod(c.Request.Context(), id, &method)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Shipping method updated successfully", updated)
}

// DeleteMethod handles DELETE /shipping-methods/:id
func (h *ShippingHandler) DeleteMethod(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	method, err := h.svc.DeleteShippingMethod(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Shipping method deleted successfully", method)
}

// CreateZone handles POST /shipping-zones
func (h *ShippingHandler) CreateZone(c *gin.Context) {
	var zone model.ShippingZone
	if err := c.ShouldBindJSON(&zone); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	created, err := h.svc.CreateShippingZone(c.Request.Context(), &zone)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Shipping zone created successfully", created)
}

// GetZone handles GET /shipping-zones/:id
func (h *ShippingHandler) GetZone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	zone, err := h.svc.GetShippingZone(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Shipping zone retrieved successfully", zone)
}

// ListZones handles GET /shipping-zones
func (h *ShippingHandler) ListZones(c *gin.Context) {
	q := listQuery(c)

	zones, total, err := h.svc.ListShippingZones(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, "Shipping zones retrieved successfully", zones, total, q.Page, q.Size)
}

// UpdateZone handles PUT /shipping-zones/:id
func (h *ShippingHandler) UpdateZone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var zone model.ShippingZone
	if err := c.ShouldBindJSON(&zone); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateShippingZone(c.Request.Context(), id, &zone)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Shipping zone updated successfully", updated)
}

// DeleteZone handles DELETE /shipping-zones/:id
func (h *ShippingHandler) DeleteZone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	zone, err := h.svc.DeleteShippingZone(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Shipping zone deleted successfully", zone)
}

// CreateZoneLocation handles POST /shipping-zones/:id/locations
func (h *ShippingHandler) CreateZoneLocation(c *gin.Context) {
	zoneID, ok := pathID(c)
	if !ok {
		return
	}

	var location model.ShippingZoneLocation
	if err := c.ShouldBindJSON(&location); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	location.ShippingZone = zoneID

	created, err := h.svc.CreateZoneLocation(c.Request.Context(), &location)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Zone location created successfully", created)
}

// ListZoneLocations handles GET /shipping-zones/:id/locations
func (h *ShippingHandler) ListZoneLocations(c *gin.Context) {
	zoneID, ok := pathID(c)
	if !ok {
		return
	}
	q := listQuery(c)

	locations, total, err := h.svc.ListZoneLocations(c.Request.Context(), zoneID, q)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, "Zone locations retrieved successfully", locations, total, q.Page, q.Size)
}

// GetZoneLocation handles GET /zone-locations/:id
func (h *ShippingHandler) GetZoneLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	location, err := h.svc.GetZoneLocation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Zone location retrieved successfully", location)
}

// UpdateZoneLocation handles PUT /zone-locations/:id
func (h *ShippingHandler) UpdateZoneLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var location model.ShippingZoneLocation
	if err := c.ShouldBindJSON(&location); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateZoneLocation(c.Request.Context(), id, &location)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Zone location updated successfully", updated)
}

// DeleteZoneLocation handles DELETE /zone-locations/:id
func (h *ShippingHandler) DeleteZoneLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	location, err := h.svc.DeleteZoneLocation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Zone location deleted successfully", location)
}
