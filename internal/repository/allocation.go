package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Dolapo001/SPAS/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AllocationSummary is one row of the previous allocations listing
type AllocationSummary struct {
	ID            uuid.UUID               `json:"id"`
	Method        models.AllocationMethod `json:"method"`
	NumGroups     int                     `json:"num_groups"`
	CreatedAt     time.Time               `json:"created_at"`
	TotalStudents int64                   `json:"total_students"`
}

// AllocationRepository handles database operations for allocation results
type AllocationRepository struct {
	db *gorm.DB
}

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db *gorm.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// WithDepartmentLock runs fn in a transaction holding a transaction-scoped
// advisory lock for the department. Concurrent runs for the same department
// wait for each other; the lock is released on commit or rollback.
func (r *AllocationRepository) WithDepartmentLock(ctx context.Context, departmentID uuid.UUID, fn func(store AllocationStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", departmentID.String()).Error; err != nil {
			return fmt.Errorf("acquire department lock: %w", err)
		}
		return fn(&allocationStore{tx: tx})
	})
}

// Save persists an allocation result with its groups and memberships atomically
func (r *AllocationRepository) Save(ctx context.Context, result *models.AllocationResult, groups []models.Group) error {
	return (&allocationStore{tx: r.db.WithContext(ctx)}).SaveAllocation(result, groups)
}

// GetByID retrieves an allocation result by ID
func (r *AllocationRepository) GetByID(id uuid.UUID) (*models.AllocationResult, error) {
	var result models.AllocationResult
	err := r.db.First(&result, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDetail retrieves a department's allocation result with its groups in
// number order, each with supervisor and students
func (r *AllocationRepository) GetDetail(departmentID, id uuid.UUID) (*models.AllocationResult, error) {
	var result models.AllocationResult
	err := r.db.
		Preload("Groups", func(db *gorm.DB) *gorm.DB {
			return db.Where("department_id = ?", departmentID).Order("number")
		}).
		Preload("Groups.Supervisor").
		Preload("Groups.Students", orderStudents).
		First(&result, "id = ? AND department_id = ?", id, departmentID).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetLatestByDepartment retrieves the most recent allocation result of a department
func (r *AllocationRepository) GetLatestByDepartment(departmentID uuid.UUID) (*models.AllocationResult, error) {
	var result models.AllocationResult
	err := r.db.Where("department_id = ?", departmentID).
		Order("created_at DESC").
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListByDepartment retrieves a department's allocation results newest first
func (r *AllocationRepository) ListByDepartment(departmentID uuid.UUID, limit, offset int) ([]AllocationSummary, int64, error) {
	var rows []AllocationSummary
	var total int64

	// Get total count
	if err := r.db.Model(&models.AllocationResult{}).Where("department_id = ?", departmentID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Table("allocation_results AS ar").
		Select(`ar.id, ar.method, ar.num_groups, ar.created_at,
			(SELECT COUNT(*) FROM group_students gs JOIN groups g ON g.id = gs.group_id
			 WHERE g.allocation_result_id = ar.id) AS total_students`).
		Where("ar.department_id = ?", departmentID).
		Order("ar.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// allocationStore implements AllocationStore on top of a transaction
type allocationStore struct {
	tx *gorm.DB
}

func (s *allocationStore) ListUnassignedStudents(departmentID uuid.UUID) ([]models.Student, error) {
	return listUnassigned(s.tx, departmentID)
}

func (s *allocationStore) ListSupervisors(departmentID uuid.UUID) ([]models.Supervisor, error) {
	return listSupervisors(s.tx, departmentID)
}

// UsedSupervisorIDs returns every supervisor that owns a group in any
// allocation result
func (s *allocationStore) UsedSupervisorIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.tx.Model(&models.Group{}).
		Distinct("supervisor_id").
		Where("supervisor_id IS NOT NULL").
		Pluck("supervisor_id", &ids).Error
	return ids, err
}

// SaveAllocation creates the result, its groups and their memberships. Inside
// an outer transaction this runs as a savepoint.
func (s *allocationStore) SaveAllocation(result *models.AllocationResult, groups []models.Group) error {
	return s.tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Groups", "Department").Create(result).Error; err != nil {
			return fmt.Errorf("create allocation result: %w", err)
		}

		for i := range groups {
			g := &groups[i]
			g.AllocationResultID = result.ID
			if g.DepartmentID == nil {
				g.DepartmentID = result.DepartmentID
			}
			if err := tx.Omit("Students", "Supervisor", "Department", "AllocationResult").Create(g).Error; err != nil {
				return fmt.Errorf("create group %d: %w", g.Number, err)
			}
			if len(g.Students) == 0 {
				continue
			}

			members := make([]models.GroupStudent, 0, len(g.Students))
			for _, st := range g.Students {
				members = append(members, models.GroupStudent{GroupID: g.ID, StudentID: st.ID})
			}
			if err := tx.Create(&members).Error; err != nil {
				return fmt.Errorf("attach students to group %d: %w", g.Number, err)
			}
		}

		result.Groups = groups
		return nil
	})
}
