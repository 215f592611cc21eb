package models

import (
	"time"

	"github.com/google/uuid"
)

// Group is one supervised cohort produced by an allocation run
type Group struct {
	BaseModel
	Number             int        `json:"number" gorm:"not null;uniqueIndex:idx_group_number_supervisor_result,priority:1"`
	SupervisorID       *uuid.UUID `json:"supervisor_id,omitempty" gorm:"type:uuid;index;uniqueIndex:idx_group_number_supervisor_result,priority:2"`
	DepartmentID       *uuid.UUID `json:"department_id,omitempty" gorm:"type:uuid;index"`
	AllocationResultID uuid.UUID  `json:"allocation_result_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_group_number_supervisor_result,priority:3"`

	// Relationships
	Supervisor       *Supervisor       `json:"supervisor,omitempty" gorm:"foreignKey:SupervisorID;constraint:OnDelete:CASCADE"`
	Department       *Department       `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
	AllocationResult *AllocationResult `json:"allocation_result,omitempty" gorm:"foreignKey:AllocationResultID;constraint:OnDelete:CASCADE"`
	Students         []Student         `json:"students,omitempty" gorm:"many2many:group_students;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}

// StudentCount returns the number of loaded members
func (g Group) StudentCount() int {
	return len(g.Students)
}

// AverageScore returns the mean score of the loaded members, 0 for an empty group
func (g Group) AverageScore() float64 {
	if len(g.Students) == 0 {
		return 0
	}
	var total float64
	for _, s := range g.Students {
		total += s.Score
	}
	return total / float64(len(g.Students))
}

// GroupStudent is the membership join row between a group and a student.
// Deleting either side removes the row; students are never deleted with a group.
type GroupStudent struct {
	GroupID   uuid.UUID `json:"group_id" gorm:"type:uuid;primaryKey"`
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for GroupStudent
func (GroupStudent) TableName() string {
	return "group_students"
}
