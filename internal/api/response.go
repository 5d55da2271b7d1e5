package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stanleyHayes/stayup-api/internal/repository"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

// respond writes the success envelope shared by every endpoint
func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"message": message,
		"data":    data,
	})
}

// respondList writes the list envelope, which adds pagination fields
func respondList(c *gin.Context, message string, data interface{}, total int64, page, perPage int) {
	c.JSON(http.StatusOK, gin.H{
		"message":  message,
		"data":     data,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

// respondError maps domain errors onto HTTP status codes. Validation and
// reference failures are client errors; unknown errors stay opaque.
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errs.IsValidation(err), errs.IsReference(err):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrCouponCodeExists):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrCouponNotFound), errors.Is(err, errs.ErrNotFound):
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "something went wrong"
	}

	c.JSON(status, gin.H{
		"message": message,
		"data":    nil,
	})
}

func badQueryParam(name string) error {
	return errs.NewValidation("invalid value for query parameter %s", name)
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": message,
		"data":    nil,
	})
}

// pathID parses the :id path parameter, writing a 400 response itself on
// failure
func pathID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid ID format")
		return primitive.NilObjectID, false
	}
	return id, true
}

// listQuery reads the shared pagination and search parameters
func listQuery(c *gin.Context) repository.ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if size < 1 {
		size = 10
	}

	return repository.ListQuery{
		Page:   page,
		Size:   size,
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}
}
