package handlers

import (
	"net/http"
	"strconv"

	"github.com/Dolapo001/SPAS/internal/auth"
	apperrors "github.com/Dolapo001/SPAS/internal/errors"
	"github.com/Dolapo001/SPAS/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// departmentID resolves the requester's department: the token claim wins,
// otherwise the explicit value (only present when auth is disabled).
// It writes a 400 and returns false when neither is usable.
func departmentID(c *gin.Context, explicit string) (uuid.UUID, bool) {
	if id, ok := auth.GetDepartmentID(c); ok {
		return id, true
	}
	if explicit != "" {
		id, err := uuid.Parse(explicit)
		if err == nil {
			return id, true
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department ID"})
		return uuid.Nil, false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrDepartmentRequired.Error()})
	return uuid.Nil, false
}

// respondError maps service errors to status codes. Unexpected errors are
// logged and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c).WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// pagination reads page and page_size, defaulting to 1 and 20
func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}
