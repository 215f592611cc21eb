package handlers

import (
	"net/http"

	"github.com/Dolapo001/SPAS/internal/auth"
	"github.com/Dolapo001/SPAS/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GroupHandler handles HTTP requests for allocated groups
type GroupHandler struct {
	allocations service.AllocationServiceInterface
	notifier    service.NotificationServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(allocations service.AllocationServiceInterface, notifier service.NotificationServiceInterface) *GroupHandler {
	return &GroupHandler{allocations: allocations, notifier: notifier}
}

// NotifyGroupResponse is returned by POST /groups/notify
type NotifyGroupResponse struct {
	Status  string                           `json:"status" example:"ok"`
	Results *service.GroupNotificationResult `json:"results"`
}

// ListGroups lists groups across the department's allocations
// @Summary List groups
// @Description Groups with supervisor, allocation method, student count and average score, newest allocation first
// @Tags groups
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param department_id query string false "Department ID when auth is disabled"
// @Success 200 {object} service.GroupListResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	deptID, ok := departmentID(c, c.Query("department_id"))
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	resp, err := h.allocations.ListGroups(deptID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// NotifyGroup emails one group's supervisor and students
// @Summary Notify a group
// @Description Send an ad-hoc email to a group's supervisor and every student. The subject defaults to "Group Allocation Info".
// @Tags groups
// @Accept json
// @Produce json
// @Param notification body service.NotifyGroupRequest true "Group and message"
// @Success 200 {object} NotifyGroupResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /groups/notify [post]
func (h *GroupHandler) NotifyGroup(c *gin.Context) {
	var req service.NotifyGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if id, ok := auth.GetDepartmentID(c); ok {
		req.DepartmentID = id
	} else if raw := c.Query("department_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department ID"})
			return
		}
		req.DepartmentID = id
	}

	result, err := h.notifier.NotifyGroup(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NotifyGroupResponse{Status: "ok", Results: result})
}
