package models

import (
	"github.com/google/uuid"
)

// Supervisor is a staff member who can own project groups
type Supervisor struct {
	BaseModel
	Name         string     `json:"name" gorm:"uniqueIndex:idx_supervisor_department_name,priority:2;not null;size:100" validate:"required,max=100"`
	Email        string     `json:"email,omitempty" gorm:"size:254" validate:"omitempty,email,max=254"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty" gorm:"type:uuid;uniqueIndex:idx_supervisor_department_name,priority:1"`

	// Relationships
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Supervisor
func (Supervisor) TableName() string {
	return "supervisors"
}
