//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Dolapo001/SPAS/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AllocationRepositoryTestSuite tests the AllocationRepository
type AllocationRepositoryTestSuite struct {
	repositorySuite
	repo *AllocationRepository
}

// SetupSuite runs before all tests in the suite
func (suite *AllocationRepositoryTestSuite) SetupSuite() {
	suite.repositorySuite.SetupSuite()
	suite.repo = NewAllocationRepository(suite.db)
}

// TestSave tests persisting an allocation with groups and memberships
func (suite *AllocationRepositoryTestSuite) TestSave() {
	dept := suite.createDepartment()
	supA, supB := suite.createSupervisor(dept), suite.createSupervisor(dept)
	s1, s2, s3 := suite.createStudent(dept, 4.8), suite.createStudent(dept, 3.1), suite.createStudent(dept, 2.2)

	result := suite.createAllocation(dept, []*models.Supervisor{supA, supB},
		[]models.Student{*s1, *s3}, []models.Student{*s2})

	suite.NotEqual(uuid.Nil, result.ID)
	suite.Len(result.Groups, 2)
	suite.Equal(int64(1), suite.count(&models.AllocationResult{}))
	suite.Equal(int64(2), suite.count(&models.Group{}))
	suite.Equal(int64(3), suite.count(&models.GroupStudent{}))

	for _, g := range result.Groups {
		suite.Equal(result.ID, g.AllocationResultID)
		suite.Equal(dept.ID, *g.DepartmentID)
	}
}

// TestSaveRollsBackOnMembershipFailure tests that a failure attaching the
// second group's students leaves nothing behind
func (suite *AllocationRepositoryTestSuite) TestSaveRollsBackOnMembershipFailure() {
	dept := suite.createDepartment()
	supA, supB := suite.createSupervisor(dept), suite.createSupervisor(dept)
	s1, s2 := suite.createStudent(dept, 4.0), suite.createStudent(dept, 3.0)

	const callbackName = "test:fail_second_membership"
	inserts := 0
	err := suite.db.Callback().Create().Before("gorm:create").Register(callbackName, func(tx *gorm.DB) {
		if tx.Statement.Table == "group_students" {
			inserts++
			if inserts == 2 {
				_ = tx.AddError(errors.New("injected membership failure"))
			}
		}
	})
	suite.Require().NoError(err)
	defer func() {
		suite.NoError(suite.db.Callback().Create().Remove(callbackName))
	}()

	result := suite.factories.Allocation.Result(dept.ID, models.AllocationMethodRandom, 2)
	groups := []models.Group{
		{Number: 1, SupervisorID: &supA.ID, Students: []models.Student{*s1}},
		{Number: 2, SupervisorID: &supB.ID, Students: []models.Student{*s2}},
	}

	err = suite.repo.Save(context.Background(), result, groups)

	suite.Error(err)
	suite.Contains(err.Error(), "injected membership failure")
	suite.Equal(2, inserts)
	suite.Equal(int64(0), suite.count(&models.AllocationResult{}))
	suite.Equal(int64(0), suite.count(&models.Group{}))
	suite.Equal(int64(0), suite.count(&models.GroupStudent{}))
}

// TestWithDepartmentLockSnapshot tests the store view used by an allocation run
func (suite *AllocationRepositoryTestSuite) TestWithDepartmentLockSnapshot() {
	dept := suite.createDepartment()
	other := suite.createDepartment()
	supA, supB, supC := suite.createSupervisor(dept), suite.createSupervisor(dept), suite.createSupervisor(dept)
	suite.createSupervisor(other)
	grouped := suite.createStudent(dept, 4.9)
	free1 := suite.createStudent(dept, 2.0)
	free2 := suite.createStudent(dept, 3.5)
	suite.createStudent(other, 4.0)

	suite.createAllocation(dept, []*models.Supervisor{supB}, []models.Student{*grouped})

	err := suite.repo.WithDepartmentLock(context.Background(), dept.ID, func(store AllocationStore) error {
		students, err := store.ListUnassignedStudents(dept.ID)
		suite.Require().NoError(err)
		suite.Require().Len(students, 2)
		suite.Equal(free2.ID, students[0].ID)
		suite.Equal(free1.ID, students[1].ID)

		supervisors, err := store.ListSupervisors(dept.ID)
		suite.Require().NoError(err)
		suite.Len(supervisors, 3)

		used, err := store.UsedSupervisorIDs()
		suite.Require().NoError(err)
		suite.ElementsMatch([]uuid.UUID{supB.ID}, used)
		suite.NotContains(used, supA.ID)
		suite.NotContains(used, supC.ID)
		return nil
	})

	suite.NoError(err)
}

// TestWithDepartmentLockRollsBack tests that an error from the callback discards its writes
func (suite *AllocationRepositoryTestSuite) TestWithDepartmentLockRollsBack() {
	dept := suite.createDepartment()
	sup := suite.createSupervisor(dept)
	st := suite.createStudent(dept, 3.3)
	boom := errors.New("strategy failed")

	err := suite.repo.WithDepartmentLock(context.Background(), dept.ID, func(store AllocationStore) error {
		result := suite.factories.Allocation.Result(dept.ID, models.AllocationMethodBalanced, 1)
		groups := []models.Group{{Number: 1, SupervisorID: &sup.ID, Students: []models.Student{*st}}}
		suite.Require().NoError(store.SaveAllocation(result, groups))
		return boom
	})

	suite.ErrorIs(err, boom)
	suite.Equal(int64(0), suite.count(&models.AllocationResult{}))
	suite.Equal(int64(0), suite.count(&models.GroupStudent{}))
}

// TestWithDepartmentLockSerializesRuns tests that concurrent runs never
// allocate the same student twice
func (suite *AllocationRepositoryTestSuite) TestWithDepartmentLockSerializesRuns() {
	dept := suite.createDepartment()
	sup := suite.createSupervisor(dept)
	for i := 0; i < 5; i++ {
		suite.createStudent(dept, 3.0)
	}

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = suite.repo.WithDepartmentLock(context.Background(), dept.ID, func(store AllocationStore) error {
				students, err := store.ListUnassignedStudents(dept.ID)
				if err != nil || len(students) == 0 {
					return err
				}
				result := &models.AllocationResult{Method: models.AllocationMethodRandom, NumGroups: 1, DepartmentID: &dept.ID}
				return store.SaveAllocation(result, []models.Group{{Number: 1, SupervisorID: &sup.ID, Students: students}})
			})
		}()
	}
	wg.Wait()

	suite.Equal(int64(1), suite.count(&models.AllocationResult{}))
	suite.Equal(int64(5), suite.count(&models.GroupStudent{}))
}

// TestGetDetail tests loading an allocation with ordered groups and members
func (suite *AllocationRepositoryTestSuite) TestGetDetail() {
	dept := suite.createDepartment()
	supA, supB := suite.createSupervisor(dept), suite.createSupervisor(dept)
	low, high := suite.createStudent(dept, 1.5), suite.createStudent(dept, 4.5)
	mid := suite.createStudent(dept, 3.0)

	result := suite.createAllocation(dept, []*models.Supervisor{supA, supB},
		[]models.Student{*low, *high}, []models.Student{*mid})

	detail, err := suite.repo.GetDetail(dept.ID, result.ID)

	suite.Require().NoError(err)
	suite.Require().Len(detail.Groups, 2)
	suite.Equal(1, detail.Groups[0].Number)
	suite.Equal(2, detail.Groups[1].Number)
	suite.Require().NotNil(detail.Groups[0].Supervisor)
	suite.Equal(supA.Name, detail.Groups[0].Supervisor.Name)
	suite.Require().Len(detail.Groups[0].Students, 2)
	suite.Equal(high.ID, detail.Groups[0].Students[0].ID)
	suite.Equal(3, detail.TotalStudents())
}

// TestGetDetailOtherDepartment tests that allocations are scoped to their department
func (suite *AllocationRepositoryTestSuite) TestGetDetailOtherDepartment() {
	dept := suite.createDepartment()
	other := suite.createDepartment()
	result := suite.createAllocation(dept, []*models.Supervisor{suite.createSupervisor(dept)})

	detail, err := suite.repo.GetDetail(other.ID, result.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(detail)
}

// TestGetLatestAndList tests recency ordering of allocation results
func (suite *AllocationRepositoryTestSuite) TestGetLatestAndList() {
	dept := suite.createDepartment()
	sup := suite.createSupervisor(dept)
	st := suite.createStudent(dept, 2.5)

	first := suite.createAllocation(dept, []*models.Supervisor{sup}, []models.Student{*st})
	second := suite.createAllocation(dept, []*models.Supervisor{sup})

	latest, err := suite.repo.GetLatestByDepartment(dept.ID)
	suite.Require().NoError(err)
	suite.Equal(second.ID, latest.ID)

	rows, total, err := suite.repo.ListByDepartment(dept.ID, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(rows, 2)
	suite.Equal(second.ID, rows[0].ID)
	suite.Equal(first.ID, rows[1].ID)
	suite.Equal(int64(1), rows[1].TotalStudents)

	_, err = suite.repo.GetLatestByDepartment(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAllocationRepositoryTestSuite runs the test suite
func TestAllocationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationRepositoryTestSuite))
}
