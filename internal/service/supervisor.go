package service

import (
	"fmt"

	"github.com/Dolapo001/SPAS/internal/repository"

	"github.com/google/uuid"
)

// SupervisorResponse represents a supervisor with student tallies
type SupervisorResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Name                 string     `json:"name"`
	Email                string     `json:"email,omitempty"`
	DepartmentID         *uuid.UUID `json:"department_id,omitempty"`
	CurrentStudentsCount int64      `json:"current_students_count"`
	GroupedStudentsCount int64      `json:"grouped_students_count"`
	GroupsCount          int64      `json:"groups_count"`
}

// SupervisorService provides supervisor listings
type SupervisorService struct {
	supervisorRepo repository.SupervisorRepositoryInterface
}

// NewSupervisorService creates a new supervisor service
func NewSupervisorService(supervisorRepo repository.SupervisorRepositoryInterface) *SupervisorService {
	return &SupervisorService{supervisorRepo: supervisorRepo}
}

// ListWithCounts returns the department's supervisors with their student counts
func (s *SupervisorService) ListWithCounts(departmentID uuid.UUID) ([]SupervisorResponse, error) {
	rows, err := s.supervisorRepo.ListWithStudentCounts(departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list supervisors: %w", err)
	}

	out := make([]SupervisorResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, SupervisorResponse{
			ID:                   r.ID,
			Name:                 r.Name,
			Email:                r.Email,
			DepartmentID:         r.DepartmentID,
			CurrentStudentsCount: r.CurrentStudentsCount,
			GroupedStudentsCount: r.GroupedStudentsCount,
			GroupsCount:          r.GroupsCount,
		})
	}
	return out, nil
}
