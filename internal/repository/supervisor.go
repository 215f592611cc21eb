package repository

import (
	"github.com/Dolapo001/SPAS/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupervisorStudentCount is a supervisor with its student tallies
type SupervisorStudentCount struct {
	models.Supervisor
	// CurrentStudentsCount counts students directly linked to the supervisor
	CurrentStudentsCount int64 `json:"current_students_count"`
	// GroupedStudentsCount counts members of the groups the supervisor owns
	GroupedStudentsCount int64 `json:"grouped_students_count"`
	GroupsCount          int64 `json:"groups_count"`
}

// SupervisorRepository handles database operations for supervisors
type SupervisorRepository struct {
	db *gorm.DB
}

// NewSupervisorRepository creates a new supervisor repository
func NewSupervisorRepository(db *gorm.DB) *SupervisorRepository {
	return &SupervisorRepository{db: db}
}

// Create creates a new supervisor
func (r *SupervisorRepository) Create(supervisor *models.Supervisor) error {
	return r.db.Create(supervisor).Error
}

// GetByID retrieves a supervisor by ID
func (r *SupervisorRepository) GetByID(id uuid.UUID) (*models.Supervisor, error) {
	var supervisor models.Supervisor
	err := r.db.First(&supervisor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &supervisor, nil
}

// GetByName retrieves a supervisor by name within a department
func (r *SupervisorRepository) GetByName(departmentID uuid.UUID, name string) (*models.Supervisor, error) {
	var supervisor models.Supervisor
	err := r.db.First(&supervisor, "department_id = ? AND name = ?", departmentID, name).Error
	if err != nil {
		return nil, err
	}
	return &supervisor, nil
}

// ListByDepartment retrieves the supervisors of a department ordered by name
func (r *SupervisorRepository) ListByDepartment(departmentID uuid.UUID) ([]models.Supervisor, error) {
	return listSupervisors(r.db, departmentID)
}

// CountByDepartment counts the supervisors of a department
func (r *SupervisorRepository) CountByDepartment(departmentID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.Supervisor{}).Where("department_id = ?", departmentID).Count(&total).Error
	return total, err
}

// ListWithStudentCounts retrieves the department's supervisors with their
// student tallies in a single aggregation query
func (r *SupervisorRepository) ListWithStudentCounts(departmentID uuid.UUID) ([]SupervisorStudentCount, error) {
	var rows []SupervisorStudentCount
	err := r.db.Table("supervisors").
		Select(`supervisors.*,
			(SELECT COUNT(*) FROM students st WHERE st.supervisor_id = supervisors.id) AS current_students_count,
			(SELECT COUNT(*) FROM group_students gs JOIN groups g ON g.id = gs.group_id WHERE g.supervisor_id = supervisors.id) AS grouped_students_count,
			(SELECT COUNT(*) FROM groups g WHERE g.supervisor_id = supervisors.id) AS groups_count`).
		Where("supervisors.department_id = ?", departmentID).
		Order("supervisors.name").
		Scan(&rows).Error
	return rows, err
}

func listSupervisors(db *gorm.DB, departmentID uuid.UUID) ([]models.Supervisor, error) {
	var supervisors []models.Supervisor
	err := db.Where("department_id = ?", departmentID).Order("name, id").Find(&supervisors).Error
	return supervisors, err
}
