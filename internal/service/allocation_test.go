package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dolapo001/SPAS/internal/allocation"
	"github.com/Dolapo001/SPAS/internal/database/models"
	apperrors "github.com/Dolapo001/SPAS/internal/errors"
	"github.com/Dolapo001/SPAS/internal/mocks"
	"github.com/Dolapo001/SPAS/internal/repository"
	"github.com/Dolapo001/SPAS/internal/service"
	"github.com/Dolapo001/SPAS/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AllocationServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockDeptRepo   *mocks.MockDepartmentRepositoryInterface
	mockStudents   *mocks.MockStudentRepositoryInterface
	mockSupervisor *mocks.MockSupervisorRepositoryInterface
	mockGroupRepo  *mocks.MockGroupRepositoryInterface
	mockAllocRepo  *mocks.MockAllocationRepositoryInterface
	mockStore      *mocks.MockAllocationStore
	mockNotifier   *mocks.MockNotificationServiceInterface
	factories      *testutils.FactorySet
	service        *service.AllocationService
	deptID         uuid.UUID
}

func (suite *AllocationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDeptRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.mockStudents = mocks.NewMockStudentRepositoryInterface(suite.ctrl)
	suite.mockSupervisor = mocks.NewMockSupervisorRepositoryInterface(suite.ctrl)
	suite.mockGroupRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.mockAllocRepo = mocks.NewMockAllocationRepositoryInterface(suite.ctrl)
	suite.mockStore = mocks.NewMockAllocationStore(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()
	suite.deptID = uuid.New()

	suite.service = service.NewAllocationService(
		suite.mockDeptRepo,
		suite.mockStudents,
		suite.mockSupervisor,
		suite.mockGroupRepo,
		suite.mockAllocRepo,
		suite.mockNotifier,
		allocation.NewAllocator(allocation.WithSeed(1, 2)),
		validator.New(),
	)
}

func (suite *AllocationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectLockedRun wires the department lock to run its callback against the mock store
func (suite *AllocationServiceTestSuite) expectLockedRun() {
	suite.mockDeptRepo.EXPECT().GetByID(suite.deptID).Return(&models.Department{BaseModel: models.BaseModel{ID: suite.deptID}}, nil)
	suite.mockAllocRepo.EXPECT().
		WithDepartmentLock(gomock.Any(), suite.deptID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, fn func(repository.AllocationStore) error) error {
			return fn(suite.mockStore)
		})
}

func (suite *AllocationServiceTestSuite) request(method models.AllocationMethod, n int, notify bool) *service.RunAllocationRequest {
	return &service.RunAllocationRequest{
		DepartmentID:      suite.deptID,
		NumGroups:         n,
		AllocationMethod:  method,
		SendNotifications: notify,
	}
}

func (suite *AllocationServiceTestSuite) TestRun_GradeBasedWithoutNotifications() {
	students := suite.factories.Student.Scores(4.9, 4.8, 4.7, 4.6, 4.5, 4.0, 3.8, 3.0, 2.5, 2.0)
	supervisors := suite.factories.Supervisor.Many(3)
	used := []uuid.UUID{supervisors[0].ID}

	suite.expectLockedRun()
	suite.mockStore.EXPECT().ListUnassignedStudents(suite.deptID).Return(students, nil)
	suite.mockStore.EXPECT().ListSupervisors(suite.deptID).Return(supervisors, nil)
	suite.mockStore.EXPECT().UsedSupervisorIDs().Return(used, nil)

	var saved []models.Group
	suite.mockStore.EXPECT().SaveAllocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(result *models.AllocationResult, groups []models.Group) error {
			suite.Equal(models.AllocationMethodGradeBased, result.Method)
			suite.Equal(2, result.NumGroups)
			suite.Equal(suite.deptID, *result.DepartmentID)
			result.ID = uuid.New()
			result.CreatedAt = time.Now()
			result.Groups = groups
			saved = groups
			return nil
		})

	resp, err := suite.service.Run(context.Background(), suite.request(models.AllocationMethodGradeBased, 2, false))

	suite.Require().NoError(err)
	suite.Equal("Successfully allocated 10 students into 2 groups.", resp.Message)
	suite.Nil(resp.Notifications)
	suite.Require().Len(saved, 2)

	// unused supervisors are taken first
	suite.Equal(supervisors[1].ID, *saved[0].SupervisorID)
	suite.Equal(supervisors[2].ID, *saved[1].SupervisorID)

	suite.Equal(10, resp.Allocation.TotalStudents)
	suite.Equal(5.0, resp.Allocation.AverageGroupSize)
	suite.Require().Len(resp.Allocation.Groups, 2)
	suite.Equal(5, resp.Allocation.Groups[0].StudentCount)
	suite.Equal(5, resp.Allocation.Groups[1].StudentCount)
	suite.Equal(1, resp.Allocation.Groups[0].Number)
	suite.Equal("Grade-Based Allocation", resp.Allocation.MethodLabel)
}

func (suite *AllocationServiceTestSuite) TestRun_SendsNotificationsAfterCommit() {
	students := suite.factories.Student.Scores(3.0, 2.0)
	supervisors := suite.factories.Supervisor.Many(1)

	committed := false
	suite.mockDeptRepo.EXPECT().GetByID(suite.deptID).Return(&models.Department{}, nil)
	suite.mockAllocRepo.EXPECT().
		WithDepartmentLock(gomock.Any(), suite.deptID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, fn func(repository.AllocationStore) error) error {
			err := fn(suite.mockStore)
			committed = true
			return err
		})
	suite.mockStore.EXPECT().ListUnassignedStudents(suite.deptID).Return(students, nil)
	suite.mockStore.EXPECT().ListSupervisors(suite.deptID).Return(supervisors, nil)
	suite.mockStore.EXPECT().UsedSupervisorIDs().Return(nil, nil)
	suite.mockStore.EXPECT().SaveAllocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(result *models.AllocationResult, groups []models.Group) error {
			result.Groups = groups
			return nil
		})
	suite.mockNotifier.EXPECT().NotifyGroups(gomock.Any(), gomock.Len(1), "", "").
		DoAndReturn(func(_ context.Context, groups []models.Group, _, _ string) *service.NotificationSummary {
			suite.True(committed, "notifications must run after the transaction")
			suite.Require().NotNil(groups[0].Supervisor)
			suite.Len(groups[0].Students, 2)
			return &service.NotificationSummary{
				SuccessfulGroups: 1,
				StudentsSent:     2,
				Message:          "Email notifications sent for 1 groups (2 students).",
			}
		})

	resp, err := suite.service.Run(context.Background(), suite.request(models.AllocationMethodRandom, 1, true))

	suite.Require().NoError(err)
	suite.Equal("Successfully allocated 2 students into 1 groups. Email notifications sent for 1 groups (2 students).", resp.Message)
	suite.Require().NotNil(resp.Notifications)
	suite.Equal(2, resp.Notifications.StudentsSent)
}

func (suite *AllocationServiceTestSuite) TestRun_ValidationErrors() {
	tests := []struct {
		name string
		req  *service.RunAllocationRequest
		want error
	}{
		{"missing department", &service.RunAllocationRequest{NumGroups: 1, AllocationMethod: models.AllocationMethodRandom}, apperrors.ErrDepartmentRequired},
		{"zero groups", suite.request(models.AllocationMethodRandom, 0, false), apperrors.ErrInvalidGroupCount},
		{"negative groups", suite.request(models.AllocationMethodRandom, -2, false), apperrors.ErrInvalidGroupCount},
		{"unknown method", suite.request("alphabetical", 2, false), apperrors.ErrInvalidAllocationMethod},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			resp, err := suite.service.Run(context.Background(), tt.req)

			suite.Nil(resp)
			suite.ErrorIs(err, tt.want)
			suite.True(apperrors.IsValidation(err))
		})
	}
}

func (suite *AllocationServiceTestSuite) TestRun_DepartmentNotFound() {
	suite.mockDeptRepo.EXPECT().GetByID(suite.deptID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.Run(context.Background(), suite.request(models.AllocationMethodBalanced, 1, false))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrDepartmentNotFound)
}

func (suite *AllocationServiceTestSuite) TestRun_EmptyPools() {
	suite.Run("no unassigned students", func() {
		suite.expectLockedRun()
		suite.mockStore.EXPECT().ListUnassignedStudents(suite.deptID).Return([]models.Student{}, nil)
		suite.mockStore.EXPECT().ListSupervisors(suite.deptID).Return(suite.factories.Supervisor.Many(2), nil)

		_, err := suite.service.Run(context.Background(), suite.request(models.AllocationMethodRandom, 1, false))

		suite.ErrorIs(err, apperrors.ErrNoUnassignedStudents)
	})

	suite.Run("no supervisors", func() {
		suite.expectLockedRun()
		suite.mockStore.EXPECT().ListUnassignedStudents(suite.deptID).Return(suite.factories.Student.Scores(3.0), nil)
		suite.mockStore.EXPECT().ListSupervisors(suite.deptID).Return(nil, nil)

		_, err := suite.service.Run(context.Background(), suite.request(models.AllocationMethodRandom, 1, false))

		suite.ErrorIs(err, apperrors.ErrNoSupervisors)
	})
}

func (suite *AllocationServiceTestSuite) TestRun_MoreGroupsThanSupervisors() {
	suite.expectLockedRun()
	suite.mockStore.EXPECT().ListUnassignedStudents(suite.deptID).Return(suite.factories.Student.Scores(3.0, 2.0, 1.0), nil)
	suite.mockStore.EXPECT().ListSupervisors(suite.deptID).Return(suite.factories.Supervisor.Many(2), nil)

	_, err := suite.service.Run(context.Background(), suite.request(models.AllocationMethodGradeBased, 3, false))

	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "cannot exceed number of supervisors (2)")
}

func (suite *AllocationServiceTestSuite) TestRun_SaveFailure() {
	suite.expectLockedRun()
	suite.mockStore.EXPECT().ListUnassignedStudents(suite.deptID).Return(suite.factories.Student.Scores(3.0), nil)
	suite.mockStore.EXPECT().ListSupervisors(suite.deptID).Return(suite.factories.Supervisor.Many(1), nil)
	suite.mockStore.EXPECT().UsedSupervisorIDs().Return(nil, nil)
	suite.mockStore.EXPECT().SaveAllocation(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	resp, err := suite.service.Run(context.Background(), suite.request(models.AllocationMethodGradeBased, 1, true))

	suite.Nil(resp)
	suite.Require().Error(err)
	suite.False(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "connection reset")
}

func (suite *AllocationServiceTestSuite) TestGetOverview() {
	recent := []repository.AllocationSummary{{ID: uuid.New(), Method: models.AllocationMethodRandom, NumGroups: 2}}
	suite.mockStudents.EXPECT().CountByDepartment(suite.deptID).Return(int64(40), nil)
	suite.mockStudents.EXPECT().CountUnassignedByDepartment(suite.deptID).Return(int64(12), nil)
	suite.mockSupervisor.EXPECT().CountByDepartment(suite.deptID).Return(int64(6), nil)
	suite.mockAllocRepo.EXPECT().ListByDepartment(suite.deptID, 5, 0).Return(recent, int64(1), nil)

	resp, err := suite.service.GetOverview(suite.deptID)

	suite.Require().NoError(err)
	suite.Equal(int64(40), resp.TotalStudents)
	suite.Equal(int64(12), resp.UnassignedStudents)
	suite.Equal(int64(6), resp.Supervisors)
	suite.Equal(recent, resp.RecentAllocations)
}

func (suite *AllocationServiceTestSuite) TestListAllocations_Pagination() {
	suite.mockAllocRepo.EXPECT().ListByDepartment(suite.deptID, 20, 0).Return(nil, int64(0), nil)

	resp, err := suite.service.ListAllocations(suite.deptID, 0, 0)

	suite.Require().NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
	suite.NotNil(resp.Allocations)
	suite.Empty(resp.Allocations)

	suite.mockAllocRepo.EXPECT().ListByDepartment(suite.deptID, 10, 20).Return(nil, int64(25), nil)
	resp, err = suite.service.ListAllocations(suite.deptID, 3, 10)
	suite.Require().NoError(err)
	suite.Equal(int64(25), resp.Total)
}

func (suite *AllocationServiceTestSuite) TestGetDetail() {
	sup := suite.factories.Supervisor.WithDepartment(suite.deptID)
	students := suite.factories.Student.Scores(4.0, 3.0, 2.0)
	result := suite.factories.Allocation.Result(suite.deptID, models.AllocationMethodBalanced, 2)
	result.Groups = []models.Group{
		suite.factories.Allocation.Group(1, sup, students[0], students[1]),
		suite.factories.Allocation.Group(2, sup, students[2]),
	}
	suite.mockAllocRepo.EXPECT().GetDetail(suite.deptID, result.ID).Return(result, nil)

	resp, err := suite.service.GetDetail(suite.deptID, result.ID)

	suite.Require().NoError(err)
	suite.Equal(3, resp.TotalStudents)
	suite.Equal(1.5, resp.AverageGroupSize)
	suite.Equal(3.5, resp.Groups[0].AverageScore)
	suite.Equal(models.ClassificationSecondUpper, resp.Groups[0].Students[0].Classification)
	suite.Equal(sup.Name, resp.Groups[1].Supervisor.Name)
}

func (suite *AllocationServiceTestSuite) TestGetDetail_NotFound() {
	id := uuid.New()
	suite.mockAllocRepo.EXPECT().GetDetail(suite.deptID, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetDetail(suite.deptID, id)

	suite.ErrorIs(err, apperrors.ErrAllocationNotFound)
}

func (suite *AllocationServiceTestSuite) TestListGroups() {
	rows := []repository.GroupSummary{{GroupID: uuid.New(), Number: 1, TotalStudents: 3, AverageScore: 3.1}}
	suite.mockGroupRepo.EXPECT().ListByDepartment(suite.deptID, 50, 50).Return(rows, int64(51), nil)

	resp, err := suite.service.ListGroups(suite.deptID, 2, 50)

	suite.Require().NoError(err)
	suite.Equal(rows, resp.Groups)
	suite.Equal(int64(51), resp.Total)
	suite.Equal(2, resp.Page)
}

func (suite *AllocationServiceTestSuite) TestListGroups_Error() {
	suite.mockGroupRepo.EXPECT().ListByDepartment(suite.deptID, 20, 0).Return(nil, int64(0), errors.New("db down"))

	resp, err := suite.service.ListGroups(suite.deptID, 1, 20)

	suite.Nil(resp)
	suite.ErrorContains(err, "failed to list groups")
}

func TestAllocationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationServiceTestSuite))
}
