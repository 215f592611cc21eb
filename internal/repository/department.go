package repository

import (
	"github.com/Dolapo001/SPAS/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department
func (r *DepartmentRepository) Create(department *models.Department) error {
	return r.db.Create(department).Error
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(id uuid.UUID) (*models.Department, error) {
	var department models.Department
	err := r.db.First(&department, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// GetByName retrieves a department by its school and name
func (r *DepartmentRepository) GetByName(schoolName, name string) (*models.Department, error) {
	var department models.Department
	err := r.db.First(&department, "school_name = ? AND name = ?", schoolName, name).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// GetAll retrieves all departments ordered by school and name
func (r *DepartmentRepository) GetAll() ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Order("school_name, name").Find(&departments).Error
	return departments, err
}
