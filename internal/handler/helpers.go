package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-payment-admin/internal/params"
)

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return "This field exceeds maximum length of " + err.Param()
	case "min":
		return "This field must be at least " + err.Param() + " characters"
	case "email":
		return "This field must be a valid email"
	case "oneof":
		return "This field must be one of: " + err.Param()
	default:
		return "This field is invalid"
	}
}

func writeValidationErrors(c *gin.Context, err error) {
	details := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, verr := range verrs {
			details[verr.Field()] = getValidationErrorMessage(verr)
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  false,
		"message": "Validation failed",
		"errors":  details,
	})
}

func writeInvalidJSON(c *gin.Context, logger *logrus.Logger, err error) {
	logger.WithError(err).Error("Failed to parse request body")
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  false,
		"message": "Invalid JSON format",
	})
}

// parsePageRequest reads the list-screen query string: current, pageSize,
// sortField and sortOrder are paging controls, every other parameter is a
// filter keyed by field name.
func parsePageRequest(c *gin.Context) *params.PageRequest {
	page := &params.PageRequest{
		Current:  1,
		PageSize: 20,
		Filters:  map[string]interface{}{},
	}

	for key, values := range c.Request.URL.Query() {
		if len(values) == 0 {
			continue
		}
		value := values[0]
		switch key {
		case "current":
			if n, err := strconv.Atoi(value); err == nil {
				page.Current = n
			}
		case "pageSize":
			if n, err := strconv.Atoi(value); err == nil {
				page.PageSize = n
			}
		case "sortField":
			page.SortField = value
		case "sortOrder":
			page.SortOrder = value
		default:
			page.Filters[key] = value
		}
	}
	return page
}

func getUserIDFromContext(c *gin.Context, logger *logrus.Logger) (uuid.UUID, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		logger.Error("user_id not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  false,
			"message": "Unauthorized",
		})
		return uuid.Nil, false
	}

	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		logger.Error("user_id in context is not uuid.UUID")
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  false,
			"message": "Unauthorized",
		})
		return uuid.Nil, false
	}

	return userID, true
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  false,
			"message": "Invalid id",
		})
		return uuid.Nil, false
	}
	return id, true
}
