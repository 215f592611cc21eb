package handlers

import (
	"net/http"

	"github.com/Dolapo001/SPAS/internal/service"

	"github.com/gin-gonic/gin"
)

// SupervisorHandler handles HTTP requests for supervisors
type SupervisorHandler struct {
	service service.SupervisorServiceInterface
}

// NewSupervisorHandler creates a new supervisor handler
func NewSupervisorHandler(service service.SupervisorServiceInterface) *SupervisorHandler {
	return &SupervisorHandler{service: service}
}

// ListSupervisors lists the department's supervisors with their loads
// @Summary List supervisors
// @Tags supervisors
// @Produce json
// @Param department_id query string false "Department ID when auth is disabled"
// @Success 200 {array} service.SupervisorResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /supervisors [get]
func (h *SupervisorHandler) ListSupervisors(c *gin.Context) {
	deptID, ok := departmentID(c, c.Query("department_id"))
	if !ok {
		return
	}

	supervisors, err := h.service.ListWithCounts(deptID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, supervisors)
}
