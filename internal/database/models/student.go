package models

import (
	"github.com/google/uuid"
)

// Student is a member of a department's roster
type Student struct {
	BaseModel
	MatricNo     string     `json:"matric_no" gorm:"uniqueIndex;not null;size:20" validate:"required,max=20"`
	FullName     string     `json:"full_name" gorm:"size:255" validate:"max=255"`
	Email        string     `json:"email,omitempty" gorm:"size:254" validate:"omitempty,email,max=254"`
	Score        float64    `json:"score" gorm:"type:numeric(3,2);not null" validate:"gte=0,lte=5"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty" gorm:"type:uuid;index"`
	SupervisorID *uuid.UUID `json:"supervisor_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
	Supervisor *Supervisor `json:"supervisor,omitempty" gorm:"foreignKey:SupervisorID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Student
func (Student) TableName() string {
	return "students"
}

// Classification returns the degree class for the student's score
func (s Student) Classification() Classification {
	return Classify(s.Score)
}

// DisplayName falls back to the matric number when no name is on file
func (s Student) DisplayName() string {
	if s.FullName != "" {
		return s.FullName
	}
	return s.MatricNo
}
