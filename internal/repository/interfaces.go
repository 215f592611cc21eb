package repository

import (
	"context"

	"github.com/Dolapo001/SPAS/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// DepartmentRepositoryInterface defines the interface for department repository operations
type DepartmentRepositoryInterface interface {
	Create(department *models.Department) error
	GetByID(id uuid.UUID) (*models.Department, error)
	GetByName(schoolName, name string) (*models.Department, error)
	GetAll() ([]models.Department, error)
}

// StudentRepositoryInterface defines the interface for student repository operations
type StudentRepositoryInterface interface {
	Create(student *models.Student) error
	GetByID(id uuid.UUID) (*models.Student, error)
	GetByMatricNo(matricNo string) (*models.Student, error)
	ListByDepartment(departmentID uuid.UUID) ([]models.Student, error)
	ListUnassignedByDepartment(departmentID uuid.UUID) ([]models.Student, error)
	CountByDepartment(departmentID uuid.UUID) (int64, error)
	CountUnassignedByDepartment(departmentID uuid.UUID) (int64, error)
}

// SupervisorRepositoryInterface defines the interface for supervisor repository operations
type SupervisorRepositoryInterface interface {
	Create(supervisor *models.Supervisor) error
	GetByID(id uuid.UUID) (*models.Supervisor, error)
	GetByName(departmentID uuid.UUID, name string) (*models.Supervisor, error)
	ListByDepartment(departmentID uuid.UUID) ([]models.Supervisor, error)
	CountByDepartment(departmentID uuid.UUID) (int64, error)
	ListWithStudentCounts(departmentID uuid.UUID) ([]SupervisorStudentCount, error)
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Group, error)
	GetWithMembers(id uuid.UUID) (*models.Group, error)
	ListByDepartment(departmentID uuid.UUID, limit, offset int) ([]GroupSummary, int64, error)
	FindDuplicates(departmentID *uuid.UUID) ([]DuplicateSet, error)
	ResolveDuplicates(set DuplicateSet, keepID uuid.UUID) (*DuplicateResolution, error)
}

// AllocationStore is the view of storage available inside a department lock.
// Every call shares the lock's transaction.
type AllocationStore interface {
	ListUnassignedStudents(departmentID uuid.UUID) ([]models.Student, error)
	ListSupervisors(departmentID uuid.UUID) ([]models.Supervisor, error)
	UsedSupervisorIDs() ([]uuid.UUID, error)
	SaveAllocation(result *models.AllocationResult, groups []models.Group) error
}

// AllocationRepositoryInterface defines the interface for allocation result repository operations
type AllocationRepositoryInterface interface {
	WithDepartmentLock(ctx context.Context, departmentID uuid.UUID, fn func(store AllocationStore) error) error
	Save(ctx context.Context, result *models.AllocationResult, groups []models.Group) error
	GetByID(id uuid.UUID) (*models.AllocationResult, error)
	GetDetail(departmentID, id uuid.UUID) (*models.AllocationResult, error)
	GetLatestByDepartment(departmentID uuid.UUID) (*models.AllocationResult, error)
	ListByDepartment(departmentID uuid.UUID, limit, offset int) ([]AllocationSummary, int64, error)
}
