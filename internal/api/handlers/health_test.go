package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dolapo001/SPAS/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLive(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health/live", NewHealthHandler(nil).Live)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alive":true`)
}

func TestTableName(t *testing.T) {
	names := make([]string, 0, len(database.Models()))
	for _, m := range database.Models() {
		names = append(names, tableName(m))
	}
	assert.Contains(t, names, "group_students")
	assert.Equal(t, "unknown", tableName(struct{}{}))
}
