package repository

import (
	"github.com/Dolapo001/SPAS/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// notGrouped matches students that are not a member of any group
const notGrouped = "NOT EXISTS (SELECT 1 FROM group_students gs WHERE gs.student_id = students.id)"

// studentOrder is the natural roster order: best score first
const studentOrder = "students.score DESC, students.matric_no"

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create creates a new student
func (r *StudentRepository) Create(student *models.Student) error {
	return r.db.Create(student).Error
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(id uuid.UUID) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByMatricNo retrieves a student by matric number
func (r *StudentRepository) GetByMatricNo(matricNo string) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "matric_no = ?", matricNo).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// ListByDepartment retrieves every student of a department
func (r *StudentRepository) ListByDepartment(departmentID uuid.UUID) ([]models.Student, error) {
	var students []models.Student
	err := r.db.Where("department_id = ?", departmentID).Order(studentOrder).Find(&students).Error
	return students, err
}

// ListUnassignedByDepartment retrieves the department's students not yet in any group
func (r *StudentRepository) ListUnassignedByDepartment(departmentID uuid.UUID) ([]models.Student, error) {
	return listUnassigned(r.db, departmentID)
}

// CountByDepartment counts the students of a department
func (r *StudentRepository) CountByDepartment(departmentID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.Student{}).Where("department_id = ?", departmentID).Count(&total).Error
	return total, err
}

// CountUnassignedByDepartment counts the department's students not yet in any group
func (r *StudentRepository) CountUnassignedByDepartment(departmentID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.Student{}).
		Where("department_id = ?", departmentID).
		Where(notGrouped).
		Count(&total).Error
	return total, err
}

func listUnassigned(db *gorm.DB, departmentID uuid.UUID) ([]models.Student, error) {
	var students []models.Student
	err := db.Where("department_id = ?", departmentID).
		Where(notGrouped).
		Order(studentOrder).
		Find(&students).Error
	return students, err
}
