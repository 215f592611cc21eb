package repository

import (
	"time"

	"github.com/Dolapo001/SPAS/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroupSummary is one row of the allocation results listing
type GroupSummary struct {
	GroupID            uuid.UUID               `json:"group_id"`
	Number             int                     `json:"number"`
	SupervisorID       *uuid.UUID              `json:"supervisor_id,omitempty"`
	SupervisorName     string                  `json:"supervisor_name"`
	AllocationResultID uuid.UUID               `json:"allocation_result_id"`
	Method             models.AllocationMethod `json:"method"`
	AllocatedAt        time.Time               `json:"allocated_at"`
	TotalStudents      int64                   `json:"total_students"`
	AverageScore       float64                 `json:"average_score"`
}

// DuplicateSet is a (supervisor, department) pair owning more than one group.
// Groups are ordered oldest first.
type DuplicateSet struct {
	SupervisorID *uuid.UUID    `json:"supervisor_id"`
	DepartmentID *uuid.UUID    `json:"department_id"`
	Groups       []models.Group `json:"groups"`
}

// DuplicateResolution reports what ResolveDuplicates changed
type DuplicateResolution struct {
	KeptGroupID     uuid.UUID   `json:"kept_group_id"`
	DeletedGroupIDs []uuid.UUID `json:"deleted_group_ids"`
	MovedStudents   int64       `json:"moved_students"`
}

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetWithMembers retrieves a group with its supervisor and students
func (r *GroupRepository) GetWithMembers(id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.Preload("Supervisor").
		Preload("Students", orderStudents).
		First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// ListByDepartment retrieves the department's groups, newest allocation first
// then by group number, with member count and average score
func (r *GroupRepository) ListByDepartment(departmentID uuid.UUID, limit, offset int) ([]GroupSummary, int64, error) {
	var rows []GroupSummary
	var total int64

	// Get total count
	if err := r.db.Model(&models.Group{}).Where("department_id = ?", departmentID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Table("groups AS g").
		Select(`g.id AS group_id, g.number, g.supervisor_id,
			COALESCE(s.name, '') AS supervisor_name,
			g.allocation_result_id, ar.method, ar.created_at AS allocated_at,
			COUNT(gs.student_id) AS total_students,
			COALESCE(AVG(st.score), 0)::float8 AS average_score`).
		Joins("JOIN allocation_results ar ON ar.id = g.allocation_result_id").
		Joins("LEFT JOIN supervisors s ON s.id = g.supervisor_id").
		Joins("LEFT JOIN group_students gs ON gs.group_id = g.id").
		Joins("LEFT JOIN students st ON st.id = gs.student_id").
		Where("g.department_id = ?", departmentID).
		Group("g.id, s.name, ar.method, ar.created_at").
		Order("ar.created_at DESC, g.number").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// FindDuplicates lists every (supervisor, department) pair that owns more
// than one group. A nil departmentID searches all departments.
func (r *GroupRepository) FindDuplicates(departmentID *uuid.UUID) ([]DuplicateSet, error) {
	type pair struct {
		SupervisorID *uuid.UUID
		DepartmentID *uuid.UUID
	}
	var pairs []pair

	q := r.db.Model(&models.Group{}).
		Select("supervisor_id, department_id").
		Group("supervisor_id, department_id").
		Having("COUNT(*) > 1").
		Order("department_id, supervisor_id")
	if departmentID != nil {
		q = q.Where("department_id = ?", *departmentID)
	}
	if err := q.Scan(&pairs).Error; err != nil {
		return nil, err
	}

	sets := make([]DuplicateSet, 0, len(pairs))
	for _, p := range pairs {
		var groups []models.Group
		err := r.db.Scopes(matchNullable("supervisor_id", p.SupervisorID), matchNullable("department_id", p.DepartmentID)).
			Preload("Supervisor").
			Preload("Students", orderStudents).
			Order("created_at, id").
			Find(&groups).Error
		if err != nil {
			return nil, err
		}
		sets = append(sets, DuplicateSet{
			SupervisorID: p.SupervisorID,
			DepartmentID: p.DepartmentID,
			Groups:       groups,
		})
	}
	return sets, nil
}

// ResolveDuplicates moves the members of every other group in the set into
// keepID and deletes those groups, in one transaction
func (r *GroupRepository) ResolveDuplicates(set DuplicateSet, keepID uuid.UUID) (*DuplicateResolution, error) {
	res := &DuplicateResolution{KeptGroupID: keepID}
	for _, g := range set.Groups {
		if g.ID != keepID {
			res.DeletedGroupIDs = append(res.DeletedGroupIDs, g.ID)
		}
	}
	if len(res.DeletedGroupIDs) == 0 {
		return res, nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var members []models.GroupStudent
		if err := tx.Where("group_id IN ?", res.DeletedGroupIDs).Find(&members).Error; err != nil {
			return err
		}
		if len(members) > 0 {
			moved := make([]models.GroupStudent, 0, len(members))
			for _, m := range members {
				moved = append(moved, models.GroupStudent{GroupID: keepID, StudentID: m.StudentID})
			}
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&moved)
			if result.Error != nil {
				return result.Error
			}
			res.MovedStudents = result.RowsAffected
		}
		if err := tx.Where("group_id IN ?", res.DeletedGroupIDs).Delete(&models.GroupStudent{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", res.DeletedGroupIDs).Delete(&models.Group{}).Error
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func orderStudents(db *gorm.DB) *gorm.DB {
	return db.Order(studentOrder)
}

func matchNullable(column string, id *uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id == nil {
			return db.Where(column + " IS NULL")
		}
		return db.Where(column+" = ?", *id)
	}
}
