//go:build integration
// +build integration

package repository

import (
	"github.com/Dolapo001/SPAS/internal/database/models"
	"github.com/Dolapo001/SPAS/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// repositorySuite carries the shared container and fixture helpers
type repositorySuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	db            *gorm.DB
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (s *repositorySuite) SetupSuite() {
	s.baseTestSuite = testutils.SetupTestSuite(s.T())
	s.db = s.baseTestSuite.DB
	s.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (s *repositorySuite) TearDownSuite() {
	s.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (s *repositorySuite) SetupTest() {
	s.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (s *repositorySuite) TearDownTest() {
	s.baseTestSuite.TearDownTest()
}

func (s *repositorySuite) createDepartment() *models.Department {
	dept := s.factories.Department.Create()
	s.Require().NoError(s.db.Create(dept).Error)
	return dept
}

func (s *repositorySuite) createStudent(dept *models.Department, score float64) *models.Student {
	st := s.factories.Student.WithScore(dept.ID, score)
	s.Require().NoError(s.db.Create(st).Error)
	return st
}

func (s *repositorySuite) createSupervisor(dept *models.Department) *models.Supervisor {
	sup := s.factories.Supervisor.WithDepartment(dept.ID)
	s.Require().NoError(s.db.Create(sup).Error)
	return sup
}

// createAllocation persists one allocation with a group per supervisor,
// members dealt in order
func (s *repositorySuite) createAllocation(dept *models.Department, supervisors []*models.Supervisor, members ...[]models.Student) *models.AllocationResult {
	result := s.factories.Allocation.Result(dept.ID, models.AllocationMethodGradeBased, len(supervisors))
	groups := make([]models.Group, len(supervisors))
	for i, sup := range supervisors {
		var students []models.Student
		if i < len(members) {
			students = members[i]
		}
		groups[i] = s.factories.Allocation.Group(i+1, sup, students...)
		groups[i].Supervisor = nil
	}
	s.Require().NoError(NewAllocationRepository(s.db).Save(s.T().Context(), result, groups))
	return result
}

func (s *repositorySuite) count(model interface{}) int64 {
	var n int64
	s.Require().NoError(s.db.Model(model).Count(&n).Error)
	return n
}
