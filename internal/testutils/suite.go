package testutils

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/Dolapo001/SPAS/internal/database"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	pgImage    = "postgres"
	pgTag      = "15-alpine"
	pgUser     = "spas"
	pgPassword = "spas"
	pgDatabase = "spas_test"
)

// truncateOrder lists tables children first so CASCADE rarely has work to do
var truncateOrder = []string{
	"group_students",
	"groups",
	"allocation_results",
	"students",
	"supervisors",
	"departments",
}

// postgresContainer is one Postgres instance shared by every suite in a test binary
type postgresContainer struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
}

var shared postgresContainer

// BaseTestSuite hands a migrated database to integration suites and wipes it between tests
type BaseTestSuite struct {
	suite.Suite
	DB *gorm.DB
}

// SetupTestSuite starts the shared container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("postgres test container: %v", shared.err)
	}
	return &BaseTestSuite{DB: shared.db}
}

// RunMain runs the package's tests and purges the container afterwards,
// including when the run is interrupted.
func RunMain(m *testing.M) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logrus.Warn("Test run interrupted, purging postgres container")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}

// CleanupSharedContainer closes the pool and removes the container
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}
	if err := shared.pool.Purge(shared.resource); err != nil {
		logrus.WithError(err).Warn("Could not purge postgres container")
	}
	shared.pool, shared.resource = nil, nil
}

func (s *BaseTestSuite) SetupTest()         { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest()      { s.CleanTestDB() }
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every allocation table that exists
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, table := range truncateOrder {
		if m.HasTable(table) {
			s.DB.Exec(fmt.Sprintf(`TRUNCATE TABLE %q RESTART IDENTITY CASCADE`, table))
		}
	}
}

func (c *postgresContainer) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: pgImage,
		Tag:        pgTag,
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	c.pool, c.resource = pool, resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	// Initialize migrates, so a successful retry leaves the schema in place
	err = pool.Retry(func() error {
		db, err := database.Initialize(dsn, &database.Options{LogLevel: gormlogger.Silent})
		if err != nil {
			return err
		}
		c.db = db
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	logrus.WithField("dsn", dsn).Info("Test postgres ready")
	return nil
}
