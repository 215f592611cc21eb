package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Dolapo001/SPAS/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by /health and set with -ldflags at build time
var Version = "dev"

const pingTimeout = 2 * time.Second

// HealthHandler serves the probe endpoints
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ReadyResponse is the body of GET /health/ready
type ReadyResponse struct {
	Ready         bool      `json:"ready"`
	Timestamp     time.Time `json:"timestamp"`
	Database      string    `json:"database"`
	MissingTables []string  `json:"missing_tables,omitempty"`
}

// Health reports database connectivity
// @Summary Health check
// @Description Reports the service version and whether Postgres answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   Version,
		Services:  map[string]string{"database": "healthy"},
	}

	code := http.StatusOK
	if err := h.ping(c); err != nil {
		resp.Status = "unhealthy"
		resp.Services["database"] = "error: " + err.Error()
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, resp)
}

// Ready reports whether the schema is migrated and reachable
// @Summary Readiness check
// @Description Ready once Postgres answers and every allocation table exists
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	resp := ReadyResponse{Timestamp: time.Now(), Database: "ready"}

	if err := h.ping(c); err != nil {
		resp.Database = "not ready: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	migrator := h.db.WithContext(c).Migrator()
	for _, model := range database.Models() {
		if !migrator.HasTable(model) {
			resp.MissingTables = append(resp.MissingTables, tableName(model))
		}
	}
	if len(resp.MissingTables) > 0 {
		resp.Database = "schema not migrated"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	resp.Ready = true
	c.JSON(http.StatusOK, resp)
}

// Live always answers while the process is up
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true, "timestamp": time.Now()})
}

func (h *HealthHandler) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func tableName(model interface{}) string {
	if t, ok := model.(interface{ TableName() string }); ok {
		return t.TableName()
	}
	return "unknown"
}
