package handlers

import (
	"fmt"
	"net/http"

	"github.com/Dolapo001/SPAS/internal/database/models"
	"github.com/Dolapo001/SPAS/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RunAllocationRequest is the body of POST /allocations
type RunAllocationRequest struct {
	NumGroups        int                     `json:"num_groups" example:"5"`
	AllocationMethod models.AllocationMethod `json:"allocation_method" example:"grade_based" enums:"grade_based,random,balanced"`
	// SendNotifications defaults to true when omitted
	SendNotifications *bool `json:"send_notifications,omitempty"`
	// DepartmentID is only read when authentication is disabled
	DepartmentID string `json:"department_id,omitempty"`
}

// AllocationHandler handles HTTP requests for allocation runs and their history
type AllocationHandler struct {
	service service.AllocationServiceInterface
	export  service.ExportServiceInterface
}

// NewAllocationHandler creates a new allocation handler
func NewAllocationHandler(service service.AllocationServiceInterface, export service.ExportServiceInterface) *AllocationHandler {
	return &AllocationHandler{service: service, export: export}
}

// RunAllocation partitions the department's unassigned students into groups
// @Summary Run an allocation
// @Description Partition unassigned students into supervised groups using grade_based, random or balanced allocation, and optionally email every group
// @Tags allocations
// @Accept json
// @Produce json
// @Param allocation body RunAllocationRequest true "Allocation parameters"
// @Success 201 {object} service.RunAllocationResponse "Allocation created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /allocations [post]
func (h *AllocationHandler) RunAllocation(c *gin.Context) {
	var body RunAllocationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deptID, ok := departmentID(c, body.DepartmentID)
	if !ok {
		return
	}

	notify := true
	if body.SendNotifications != nil {
		notify = *body.SendNotifications
	}

	resp, err := h.service.Run(c, &service.RunAllocationRequest{
		DepartmentID:      deptID,
		NumGroups:         body.NumGroups,
		AllocationMethod:  body.AllocationMethod,
		SendNotifications: notify,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListAllocations lists previous allocations of the department
// @Summary List allocations
// @Description List the department's allocation results, newest first
// @Tags allocations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param department_id query string false "Department ID when auth is disabled"
// @Success 200 {object} service.AllocationListResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /allocations [get]
func (h *AllocationHandler) ListAllocations(c *gin.Context) {
	deptID, ok := departmentID(c, c.Query("department_id"))
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	resp, err := h.service.ListAllocations(deptID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetOverview returns the counts shown before running an allocation
// @Summary Allocation overview
// @Description Total and unassigned students, supervisors and the five most recent allocations
// @Tags allocations
// @Produce json
// @Param department_id query string false "Department ID when auth is disabled"
// @Success 200 {object} service.OverviewResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /allocations/overview [get]
func (h *AllocationHandler) GetOverview(c *gin.Context) {
	deptID, ok := departmentID(c, c.Query("department_id"))
	if !ok {
		return
	}

	resp, err := h.service.GetOverview(deptID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAllocation returns one allocation with its groups
// @Summary Get allocation by ID
// @Description Groups ordered by number with supervisor, students and average score
// @Tags allocations
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Param department_id query string false "Department ID when auth is disabled"
// @Success 200 {object} service.AllocationDetailResponse
// @Failure 400 {object} map[string]interface{} "Invalid allocation ID"
// @Failure 404 {object} map[string]interface{} "Allocation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /allocations/{id} [get]
func (h *AllocationHandler) GetAllocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid allocation ID"})
		return
	}
	deptID, ok := departmentID(c, c.Query("department_id"))
	if !ok {
		return
	}

	resp, err := h.service.GetDetail(deptID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ExportAllocation downloads an allocation as CSV
// @Summary Export allocation as CSV
// @Description One row per student per group: Group, Supervisor, Matric No, Student Name
// @Tags allocations
// @Produce text/csv
// @Param id path string true "Allocation ID (UUID)"
// @Param department_id query string false "Department ID when auth is disabled"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} map[string]interface{} "Invalid allocation ID"
// @Failure 404 {object} map[string]interface{} "Allocation not found"
// @Security BearerAuth
// @Router /allocations/{id}/export [get]
func (h *AllocationHandler) ExportAllocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid allocation ID"})
		return
	}
	deptID, ok := departmentID(c, c.Query("department_id"))
	if !ok {
		return
	}

	file, err := h.export.ExportAllocation(deptID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	sendCSV(c, file)
}

// ExportLatest downloads the department's latest allocation as CSV
// @Summary Export latest allocation as CSV
// @Tags allocations
// @Produce text/csv
// @Param department_id query string false "Department ID when auth is disabled"
// @Success 200 {file} file "CSV file"
// @Failure 404 {object} map[string]interface{} "No allocation yet"
// @Security BearerAuth
// @Router /allocations/latest/export [get]
func (h *AllocationHandler) ExportLatest(c *gin.Context) {
	deptID, ok := departmentID(c, c.Query("department_id"))
	if !ok {
		return
	}

	file, err := h.export.ExportLatest(deptID)
	if err != nil {
		respondError(c, err)
		return
	}

	sendCSV(c, file)
}

func sendCSV(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", file.Data)
}
