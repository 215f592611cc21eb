package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Dolapo001/SPAS/internal/database/models"

	"github.com/google/uuid"
)

var seq atomic.Int64

func nextSeq() int64 {
	return seq.Add(1)
}

func newBase() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department with default values
func (f *DepartmentFactory) Create() *models.Department {
	n := nextSeq()
	return &models.Department{
		BaseModel:  newBase(),
		SchoolName: "School of Computing",
		Name:       fmt.Sprintf("Computer Science %d", n),
		Code:       fmt.Sprintf("CSC%d", n%1000),
	}
}

// WithName sets a custom name for the department
func (f *DepartmentFactory) WithName(name string) *models.Department {
	d := f.Create()
	d.Name = name
	return d
}

// StudentFactory provides methods to create test Student data
type StudentFactory struct{}

// NewStudentFactory creates a new StudentFactory
func NewStudentFactory() *StudentFactory {
	return &StudentFactory{}
}

// Create creates a test Student with default values
func (f *StudentFactory) Create() *models.Student {
	n := nextSeq()
	return &models.Student{
		BaseModel: newBase(),
		MatricNo:  fmt.Sprintf("MAT/%06d", n),
		FullName:  fmt.Sprintf("Student %d", n),
		Email:     fmt.Sprintf("student%d@uni.test", n),
		Score:     3.00,
	}
}

// WithDepartment creates a student belonging to the department
func (f *StudentFactory) WithDepartment(departmentID uuid.UUID) *models.Student {
	s := f.Create()
	s.DepartmentID = &departmentID
	return s
}

// WithScore creates a student in the department with the given score
func (f *StudentFactory) WithScore(departmentID uuid.UUID, score float64) *models.Student {
	s := f.WithDepartment(departmentID)
	s.Score = score
	return s
}

// WithoutEmail creates a student with no email on file
func (f *StudentFactory) WithoutEmail(departmentID uuid.UUID) *models.Student {
	s := f.WithDepartment(departmentID)
	s.Email = ""
	return s
}

// Scores builds one in-memory student per score, in order
func (f *StudentFactory) Scores(scores ...float64) []models.Student {
	out := make([]models.Student, 0, len(scores))
	for _, score := range scores {
		s := f.Create()
		s.Score = score
		out = append(out, *s)
	}
	return out
}

// SupervisorFactory provides methods to create test Supervisor data
type SupervisorFactory struct{}

// NewSupervisorFactory creates a new SupervisorFactory
func NewSupervisorFactory() *SupervisorFactory {
	return &SupervisorFactory{}
}

// Create creates a test Supervisor with default values
func (f *SupervisorFactory) Create() *models.Supervisor {
	n := nextSeq()
	return &models.Supervisor{
		BaseModel: newBase(),
		Name:      fmt.Sprintf("Dr. Supervisor %d", n),
		Email:     fmt.Sprintf("supervisor%d@uni.test", n),
	}
}

// WithDepartment creates a supervisor belonging to the department
func (f *SupervisorFactory) WithDepartment(departmentID uuid.UUID) *models.Supervisor {
	s := f.Create()
	s.DepartmentID = &departmentID
	return s
}

// Many builds n in-memory supervisors
func (f *SupervisorFactory) Many(n int) []models.Supervisor {
	out := make([]models.Supervisor, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, *f.Create())
	}
	return out
}

// AllocationFactory provides methods to create test AllocationResult and Group data
type AllocationFactory struct{}

// NewAllocationFactory creates a new AllocationFactory
func NewAllocationFactory() *AllocationFactory {
	return &AllocationFactory{}
}

// Result creates an allocation result for the department
func (f *AllocationFactory) Result(departmentID uuid.UUID, method models.AllocationMethod, numGroups int) *models.AllocationResult {
	return &models.AllocationResult{
		BaseModel:    newBase(),
		Method:       method,
		NumGroups:    numGroups,
		DepartmentID: &departmentID,
	}
}

// Group creates an unsaved group with the given supervisor and members
func (f *AllocationFactory) Group(number int, supervisor *models.Supervisor, students ...models.Student) models.Group {
	g := models.Group{
		BaseModel:  newBase(),
		Number:     number,
		Supervisor: supervisor,
		Students:   students,
	}
	if supervisor != nil {
		g.SupervisorID = &supervisor.ID
		g.DepartmentID = supervisor.DepartmentID
	}
	return g
}

// FactorySet provides access to all factories
type FactorySet struct {
	Department *DepartmentFactory
	Student    *StudentFactory
	Supervisor *SupervisorFactory
	Allocation *AllocationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Department: NewDepartmentFactory(),
		Student:    NewStudentFactory(),
		Supervisor: NewSupervisorFactory(),
		Allocation: NewAllocationFactory(),
	}
}
