package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/news-cms-api/internal/service"
	"github.com/news-cms-api/internal/validation"
)

// idParam parses the :id path parameter. A non-numeric id is a
// validation failure, reported as 400 naming the field.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be an integer"})
		return 0, false
	}
	return id, true
}

// respondBindError maps a JSON binding failure to a 400 naming the
// first failing field when the decoder can identify it.
func respondBindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": typeErr.Field + " has the wrong type"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
}

// respondServiceError maps service-layer failures onto the error
// taxonomy: validation 400 (naming the first failing field), missing
// entity 404, everything else 500.
func respondServiceError(c *gin.Context, err error, notFoundMessage string) {
	var errs validation.Errors
	if errors.As(err, &errs) {
		c.JSON(http.StatusBadRequest, gin.H{"message": errs.First().Message, "field": errs.First().Field})
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMessage})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
