package models

import (
	"github.com/google/uuid"
)

// AllocationResult records one completed allocation run and owns its groups
type AllocationResult struct {
	BaseModel
	Method       AllocationMethod `json:"method" gorm:"type:varchar(50);not null"`
	NumGroups    int              `json:"num_groups" gorm:"not null"`
	DepartmentID *uuid.UUID       `json:"department_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
	Groups     []Group     `json:"groups,omitempty" gorm:"foreignKey:AllocationResultID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AllocationResult
func (AllocationResult) TableName() string {
	return "allocation_results"
}

// TotalStudents sums the members of the loaded groups
func (a AllocationResult) TotalStudents() int {
	total := 0
	for _, g := range a.Groups {
		total += len(g.Students)
	}
	return total
}
