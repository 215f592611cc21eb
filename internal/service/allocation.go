package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Dolapo001/SPAS/internal/allocation"
	"github.com/Dolapo001/SPAS/internal/database/models"
	apperrors "github.com/Dolapo001/SPAS/internal/errors"
	"github.com/Dolapo001/SPAS/internal/logger"
	"github.com/Dolapo001/SPAS/internal/metrics"
	"github.com/Dolapo001/SPAS/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recentAllocations = 5

// RunAllocationRequest represents the request to run an allocation
type RunAllocationRequest struct {
	DepartmentID      uuid.UUID               `json:"department_id"`
	NumGroups         int                     `json:"num_groups" validate:"required,min=1"`
	AllocationMethod  models.AllocationMethod `json:"allocation_method" validate:"required,oneof=grade_based random balanced"`
	SendNotifications bool                    `json:"send_notifications"`
}

// RunAllocationResponse represents the result of an allocation run
type RunAllocationResponse struct {
	Allocation    *AllocationDetailResponse `json:"allocation"`
	Message       string                    `json:"message"`
	Notifications *NotificationSummary      `json:"notifications,omitempty"`
}

// GroupDetail is one group in an allocation detail
type GroupDetail struct {
	ID           uuid.UUID        `json:"id"`
	Number       int              `json:"number"`
	Supervisor   *SupervisorBrief `json:"supervisor,omitempty"`
	Students     []StudentBrief   `json:"students"`
	StudentCount int              `json:"student_count"`
	AverageScore float64          `json:"average_score"`
}

// SupervisorBrief is the supervisor shown with a group
type SupervisorBrief struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
}

// StudentBrief is a group member
type StudentBrief struct {
	ID             uuid.UUID             `json:"id"`
	MatricNo       string                `json:"matric_no"`
	FullName       string                `json:"full_name"`
	Email          string                `json:"email,omitempty"`
	Score          float64               `json:"score"`
	Classification models.Classification `json:"classification"`
}

// AllocationDetailResponse represents an allocation result with its groups
type AllocationDetailResponse struct {
	ID               uuid.UUID               `json:"id"`
	Method           models.AllocationMethod `json:"method"`
	MethodLabel      string                  `json:"method_label"`
	NumGroups        int                     `json:"num_groups"`
	DepartmentID     *uuid.UUID              `json:"department_id,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	Groups           []GroupDetail           `json:"groups"`
	TotalStudents    int                     `json:"total_students"`
	AverageGroupSize float64                 `json:"average_group_size"`
}

// OverviewResponse holds the counts shown before running an allocation
type OverviewResponse struct {
	TotalStudents      int64                          `json:"total_students"`
	UnassignedStudents int64                          `json:"unassigned_students"`
	Supervisors        int64                          `json:"supervisors"`
	RecentAllocations  []repository.AllocationSummary `json:"recent_allocations"`
}

// AllocationListResponse represents a paginated list of allocation results
type AllocationListResponse struct {
	Allocations []repository.AllocationSummary `json:"allocations"`
	Total       int64                          `json:"total"`
	Page        int                            `json:"page"`
	PageSize    int                            `json:"page_size"`
}

// GroupListResponse represents a paginated list of allocated groups
type GroupListResponse struct {
	Groups   []repository.GroupSummary `json:"groups"`
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
}

// AllocationService runs allocations and serves their history
type AllocationService struct {
	departmentRepo repository.DepartmentRepositoryInterface
	studentRepo    repository.StudentRepositoryInterface
	supervisorRepo repository.SupervisorRepositoryInterface
	groupRepo      repository.GroupRepositoryInterface
	allocationRepo repository.AllocationRepositoryInterface
	notifier       NotificationServiceInterface
	allocator      *allocation.Allocator
	validator      *validator.Validate
}

// NewAllocationService creates a new allocation service
func NewAllocationService(
	departmentRepo repository.DepartmentRepositoryInterface,
	studentRepo repository.StudentRepositoryInterface,
	supervisorRepo repository.SupervisorRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	allocationRepo repository.AllocationRepositoryInterface,
	notifier NotificationServiceInterface,
	allocator *allocation.Allocator,
	validator *validator.Validate,
) *AllocationService {
	return &AllocationService{
		departmentRepo: departmentRepo,
		studentRepo:    studentRepo,
		supervisorRepo: supervisorRepo,
		groupRepo:      groupRepo,
		allocationRepo: allocationRepo,
		notifier:       notifier,
		allocator:      allocator,
		validator:      validator,
	}
}

// Run partitions the department's unassigned students into groups, persists
// the result and optionally notifies every group. The snapshot, the strategy
// and the write happen under the department lock, so two concurrent runs
// never place the same student twice.
func (s *AllocationService) Run(ctx context.Context, req *RunAllocationRequest) (*RunAllocationResponse, error) {
	if req.DepartmentID == uuid.Nil {
		return nil, apperrors.ErrDepartmentRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if _, err := s.departmentRepo.GetByID(req.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"department_id": req.DepartmentID,
		"method":        req.AllocationMethod,
		"num_groups":    req.NumGroups,
	})

	var (
		result *models.AllocationResult
		placed int
	)
	err := s.allocationRepo.WithDepartmentLock(ctx, req.DepartmentID, func(store repository.AllocationStore) error {
		var err error
		result, placed, err = s.allocate(store, req)
		return err
	})
	if err != nil {
		outcome := "error"
		if apperrors.IsValidation(err) {
			outcome = "rejected"
		}
		metrics.AllocationRuns.WithLabelValues(string(req.AllocationMethod), outcome).Inc()
		if outcome == "error" {
			log.WithError(err).Error("Allocation failed")
			return nil, fmt.Errorf("failed to run allocation: %w", err)
		}
		log.WithError(err).Info("Allocation rejected")
		return nil, err
	}

	metrics.AllocationRuns.WithLabelValues(string(req.AllocationMethod), "success").Inc()
	metrics.AllocatedStudents.WithLabelValues(string(req.AllocationMethod)).Add(float64(placed))
	log.WithFields(map[string]interface{}{
		"allocation_id": result.ID,
		"students":      placed,
	}).Info("Allocation completed")

	resp := &RunAllocationResponse{
		Allocation: toDetail(result),
		Message:    fmt.Sprintf("Successfully allocated %d students into %d groups.", placed, len(result.Groups)),
	}

	if req.SendNotifications {
		summary := s.notifier.NotifyGroups(ctx, result.Groups, "", "")
		resp.Notifications = summary
		resp.Message += " " + summary.Message
	}

	return resp, nil
}

func (s *AllocationService) allocate(store repository.AllocationStore, req *RunAllocationRequest) (*models.AllocationResult, int, error) {
	students, err := store.ListUnassignedStudents(req.DepartmentID)
	if err != nil {
		return nil, 0, fmt.Errorf("list unassigned students: %w", err)
	}
	supervisors, err := store.ListSupervisors(req.DepartmentID)
	if err != nil {
		return nil, 0, fmt.Errorf("list supervisors: %w", err)
	}

	if len(students) == 0 {
		return nil, 0, apperrors.ErrNoUnassignedStudents
	}
	if len(supervisors) == 0 {
		return nil, 0, apperrors.ErrNoSupervisors
	}
	if req.NumGroups > len(supervisors) {
		return nil, 0, apperrors.NewTooManyGroupsError(len(supervisors))
	}

	usedIDs, err := store.UsedSupervisorIDs()
	if err != nil {
		return nil, 0, fmt.Errorf("list used supervisors: %w", err)
	}
	ordered := allocation.OrderSupervisors(supervisors, allocation.UsedSet(usedIDs))

	assignments, err := s.allocator.Allocate(req.AllocationMethod, students, ordered, req.NumGroups)
	if err != nil {
		return nil, 0, err
	}

	deptID := req.DepartmentID
	result := &models.AllocationResult{
		Method:       req.AllocationMethod,
		NumGroups:    req.NumGroups,
		DepartmentID: &deptID,
	}
	groups := make([]models.Group, 0, len(assignments))
	placed := 0
	for _, a := range assignments {
		g := models.Group{
			Number:       a.Number,
			DepartmentID: &deptID,
			Students:     a.Students,
		}
		if a.Supervisor != nil {
			g.SupervisorID = &a.Supervisor.ID
			g.Supervisor = a.Supervisor
		}
		groups = append(groups, g)
		placed += len(a.Students)
	}

	if err := store.SaveAllocation(result, groups); err != nil {
		return nil, 0, fmt.Errorf("save allocation: %w", err)
	}
	return result, placed, nil
}

// GetOverview returns the counts shown on the run page
func (s *AllocationService) GetOverview(departmentID uuid.UUID) (*OverviewResponse, error) {
	total, err := s.studentRepo.CountByDepartment(departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}
	unassigned, err := s.studentRepo.CountUnassignedByDepartment(departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unassigned students: %w", err)
	}
	supervisors, err := s.supervisorRepo.CountByDepartment(departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count supervisors: %w", err)
	}
	recent, _, err := s.allocationRepo.ListByDepartment(departmentID, recentAllocations, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}
	if recent == nil {
		recent = []repository.AllocationSummary{}
	}

	return &OverviewResponse{
		TotalStudents:      total,
		UnassignedStudents: unassigned,
		Supervisors:        supervisors,
		RecentAllocations:  recent,
	}, nil
}

// ListAllocations returns the department's allocation results newest first
func (s *AllocationService) ListAllocations(departmentID uuid.UUID, page, pageSize int) (*AllocationListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	rows, total, err := s.allocationRepo.ListByDepartment(departmentID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}
	if rows == nil {
		rows = []repository.AllocationSummary{}
	}

	return &AllocationListResponse{
		Allocations: rows,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// GetDetail returns one of the department's allocation results with its groups
func (s *AllocationService) GetDetail(departmentID, id uuid.UUID) (*AllocationDetailResponse, error) {
	result, err := s.allocationRepo.GetDetail(departmentID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAllocationNotFound
		}
		return nil, fmt.Errorf("failed to get allocation: %w", err)
	}
	return toDetail(result), nil
}

// ListGroups returns the department's groups, newest allocation first
func (s *AllocationService) ListGroups(departmentID uuid.UUID, page, pageSize int) (*GroupListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	rows, total, err := s.groupRepo.ListByDepartment(departmentID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	if rows == nil {
		rows = []repository.GroupSummary{}
	}

	return &GroupListResponse{
		Groups:   rows,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func toDetail(result *models.AllocationResult) *AllocationDetailResponse {
	resp := &AllocationDetailResponse{
		ID:           result.ID,
		Method:       result.Method,
		MethodLabel:  result.Method.Label(),
		NumGroups:    result.NumGroups,
		DepartmentID: result.DepartmentID,
		CreatedAt:    result.CreatedAt,
		Groups:       make([]GroupDetail, 0, len(result.Groups)),
	}

	for _, g := range result.Groups {
		detail := GroupDetail{
			ID:           g.ID,
			Number:       g.Number,
			Students:     make([]StudentBrief, 0, len(g.Students)),
			StudentCount: g.StudentCount(),
			AverageScore: round(g.AverageScore(), 2),
		}
		if g.Supervisor != nil {
			detail.Supervisor = &SupervisorBrief{ID: g.Supervisor.ID, Name: g.Supervisor.Name, Email: g.Supervisor.Email}
		}
		for _, st := range g.Students {
			detail.Students = append(detail.Students, StudentBrief{
				ID:             st.ID,
				MatricNo:       st.MatricNo,
				FullName:       st.FullName,
				Email:          st.Email,
				Score:          st.Score,
				Classification: st.Classification(),
			})
		}
		resp.Groups = append(resp.Groups, detail)
		resp.TotalStudents += detail.StudentCount
	}

	if n := len(resp.Groups); n > 0 {
		resp.AverageGroupSize = round(float64(resp.TotalStudents)/float64(n), 1)
	}
	return resp
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
