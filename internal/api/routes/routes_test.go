//go:build integration
// +build integration

package routes

import (
	"context"
	"encoding/csv"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Dolapo001/SPAS/internal/api/handlers"
	"github.com/Dolapo001/SPAS/internal/auth"
	"github.com/Dolapo001/SPAS/internal/config"
	"github.com/Dolapo001/SPAS/internal/database/models"
	"github.com/Dolapo001/SPAS/internal/mail"
	"github.com/Dolapo001/SPAS/internal/service"
	"github.com/Dolapo001/SPAS/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// outbox collects every message sent through the router's notifier
type outbox struct {
	mu   sync.Mutex
	sent []mail.Message
}

func (o *outbox) Dial(context.Context) (mail.Session, error) { return o, nil }

func (o *outbox) Send(_ context.Context, msg *mail.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, *msg)
	return nil
}

func (o *outbox) Close() error { return nil }

func (o *outbox) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.sent)
}

// RoutesTestSuite drives the fully wired API against Postgres
type RoutesTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	mail          *outbox
	http          *testutils.HTTPTestSuite
	dept          *models.Department
}

// SetupSuite runs before all tests in the suite
func (s *RoutesTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.baseTestSuite = testutils.SetupTestSuite(s.T())
	s.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (s *RoutesTestSuite) TearDownSuite() {
	s.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds one department and builds the router with auth enabled
func (s *RoutesTestSuite) SetupTest() {
	s.baseTestSuite.SetupTest()
	db := s.baseTestSuite.DB

	cfg := &config.Config{
		JWTSecret:            "routes-integration-secret",
		AllowedOrigins:       []string{"http://localhost:3000"},
		NotifyConcurrency:    2,
		NotifySendTimeoutSec: 5,
	}
	s.mail = &outbox{}

	router, err := SetupRoutes(db, cfg, s.mail)
	s.Require().NoError(err)
	s.http = testutils.SetupHTTPTest(router)

	s.dept = s.factories.Department.Create()
	s.Require().NoError(db.Create(s.dept).Error)
	for i := 0; i < 3; i++ {
		s.Require().NoError(db.Create(s.factories.Supervisor.WithDepartment(s.dept.ID)).Error)
	}
	for _, score := range []float64{4.9, 4.2, 3.8, 3.3, 2.9, 2.4, 1.8, 1.1} {
		s.Require().NoError(db.Create(s.factories.Student.WithScore(s.dept.ID, score)).Error)
	}
	s.Require().NoError(db.Create(s.factories.Student.WithoutEmail(s.dept.ID)).Error)

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	s.Require().NoError(err)
	token, err := tokens.GenerateJWT("hod@uni.edu", s.dept.ID, time.Hour)
	s.Require().NoError(err)
	s.http.Headers["Authorization"] = "Bearer " + token
}

// TearDownTest runs after each test
func (s *RoutesTestSuite) TearDownTest() {
	s.baseTestSuite.TearDownTest()
}

// TestAllocationLifecycle runs, lists, exports and notifies through HTTP
func (s *RoutesTestSuite) TestAllocationLifecycle() {
	t := s.T()

	var overview service.OverviewResponse
	testutils.AssertJSONResponse(t, s.http.MakeRequest(http.MethodGet, "/api/v1/allocations/overview", nil), http.StatusOK, &overview)
	s.Equal(int64(9), overview.UnassignedStudents)
	s.Equal(int64(3), overview.Supervisors)
	s.Empty(overview.RecentAllocations)

	var run service.RunAllocationResponse
	w := s.http.MakeRequest(http.MethodPost, "/api/v1/allocations", map[string]interface{}{
		"num_groups":        3,
		"allocation_method": "grade_based",
	})
	testutils.AssertJSONResponse(t, w, http.StatusCreated, &run)
	s.True(strings.HasPrefix(run.Message, "Successfully allocated 9 students into 3 groups."))
	s.Require().Len(run.Allocation.Groups, 3)
	for _, g := range run.Allocation.Groups {
		s.Len(g.Students, 3)
		s.NotNil(g.Supervisor)
	}
	s.Require().NotNil(run.Notifications)
	s.Len(run.Notifications.Groups, 3)
	// three supervisors and the eight students with an address
	s.Equal(11, s.mail.count())

	testutils.AssertJSONResponse(t, s.http.MakeRequest(http.MethodGet, "/api/v1/allocations/overview", nil), http.StatusOK, &overview)
	s.Equal(int64(0), overview.UnassignedStudents)
	s.Len(overview.RecentAllocations, 1)

	w = s.http.MakeRequest(http.MethodPost, "/api/v1/allocations", map[string]interface{}{
		"num_groups":        1,
		"allocation_method": "random",
	})
	testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "need at least 1 unassigned student")

	w = s.http.MakeRequest(http.MethodGet, "/api/v1/allocations/"+run.Allocation.ID.String()+"/export", nil)
	testutils.AssertStatus(t, w, http.StatusOK)
	s.Contains(w.Header().Get("Content-Disposition"), "attachment;")
	rows, err := csv.NewReader(w.Body).ReadAll()
	s.Require().NoError(err)
	s.Len(rows, 10)
	s.Equal(service.ExportHeader, rows[0])
	s.Equal("Group 1", rows[1][0])

	var groups service.GroupListResponse
	testutils.AssertJSONResponse(t, s.http.MakeRequest(http.MethodGet, "/api/v1/groups", nil), http.StatusOK, &groups)
	s.Require().Len(groups.Groups, 3)

	before := s.mail.count()
	w = s.http.MakeRequest(http.MethodPost, "/api/v1/groups/notify", map[string]interface{}{
		"groupId": groups.Groups[0].GroupID.String(),
		"body":    "Meet in Lab 2 on Friday",
	})
	testutils.AssertStatus(t, w, http.StatusOK)
	s.Contains(w.Body.String(), `"status":"ok"`)
	s.Greater(s.mail.count(), before)

	var supervisors []service.SupervisorResponse
	testutils.AssertJSONResponse(t, s.http.MakeRequest(http.MethodGet, "/api/v1/supervisors", nil), http.StatusOK, &supervisors)
	s.Len(supervisors, 3)
	for _, sup := range supervisors {
		s.Equal(int64(1), sup.GroupsCount)
		s.Equal(int64(3), sup.GroupedStudentsCount)
	}
}

// TestRequiresToken tests that API routes reject anonymous callers
func (s *RoutesTestSuite) TestRequiresToken() {
	delete(s.http.Headers, "Authorization")

	w := s.http.MakeRequest(http.MethodGet, "/api/v1/allocations", nil)
	testutils.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Authorization header is required")

	w = s.http.MakeRequest(http.MethodGet, "/health/live", nil)
	testutils.AssertStatus(s.T(), w, http.StatusOK)
}

// TestHealth tests database connectivity reporting
func (s *RoutesTestSuite) TestHealth() {
	var health map[string]interface{}
	testutils.AssertJSONResponse(s.T(), s.http.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &health)
	s.Equal("healthy", health["status"])

	var ready handlers.ReadyResponse
	testutils.AssertJSONResponse(s.T(), s.http.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusOK, &ready)
	s.True(ready.Ready)
	s.Empty(ready.MissingTables)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
