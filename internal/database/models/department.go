package models

// Department is an academic department within a school. Students, supervisors
// and allocation runs are all scoped to one department.
type Department struct {
	BaseModel
	SchoolName string `json:"school_name" gorm:"uniqueIndex:idx_department_school_name,priority:1;not null;size:100" validate:"required,max=100"`
	Name       string `json:"name" gorm:"uniqueIndex:idx_department_school_name,priority:2;not null;size:100" validate:"required,max=100"`
	Code       string `json:"code" gorm:"not null;size:10" validate:"required,max=10"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
