package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Dolapo001/SPAS/internal/config"
	"github.com/Dolapo001/SPAS/internal/database"
	"github.com/Dolapo001/SPAS/internal/database/models"
	"github.com/Dolapo001/SPAS/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type DepartmentData struct {
	SchoolName  string           `yaml:"school_name"`
	Name        string           `yaml:"name"`
	Code        string           `yaml:"code"`
	Supervisors []SupervisorData `yaml:"supervisors"`
	Students    []StudentData    `yaml:"students"`
}

type SupervisorData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email,omitempty"`
}

type StudentData struct {
	MatricNo string  `yaml:"matric_no"`
	FullName string  `yaml:"full_name"`
	Email    string  `yaml:"email,omitempty"`
	Score    float64 `yaml:"score"`
}

// DepartmentsFile is the layout of every *.yaml file under the data directory
type DepartmentsFile struct {
	Departments []DepartmentData `yaml:"departments"`
}

type seedCounts struct {
	departments, supervisors, students int
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFile)

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	counts, err := loadDataFromYAMLFiles(db, dataDir)
	if err != nil {
		logrus.Fatalf("Failed to load data from YAML files: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"departments": counts.departments,
		"supervisors": counts.supervisors,
		"students":    counts.students,
	}).Info("Initial data loaded")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: gormlogger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) (seedCounts, error) {
	var counts seedCounts

	departments, err := loadDepartments(dataDir)
	if err != nil {
		return counts, fmt.Errorf("failed to load departments: %w", err)
	}

	validate := validator.New()

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, deptData := range departments {
			dept, created, err := createDepartment(tx, validate, deptData)
			if err != nil {
				return fmt.Errorf("failed to create department %s: %w", deptData.Name, err)
			}
			if created {
				counts.departments++
			}

			for _, supData := range deptData.Supervisors {
				created, err := createSupervisor(tx, validate, dept, supData)
				if err != nil {
					return fmt.Errorf("failed to create supervisor %s: %w", supData.Name, err)
				}
				if created {
					counts.supervisors++
				}
			}

			for _, studentData := range deptData.Students {
				created, err := createStudent(tx, validate, dept, studentData)
				if err != nil {
					return fmt.Errorf("failed to create student %s: %w", studentData.MatricNo, err)
				}
				if created {
					counts.students++
				}
			}
		}
		return nil
	})

	return counts, err
}

func loadDepartments(dataDir string) ([]DepartmentData, error) {
	var all []DepartmentData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") {
			var file DepartmentsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, file.Departments...)
		}
		return nil
	})

	return all, err
}

func createDepartment(db *gorm.DB, validate *validator.Validate, data DepartmentData) (*models.Department, bool, error) {
	var dept models.Department
	err := db.Where("school_name = ? AND name = ?", data.SchoolName, data.Name).First(&dept).Error
	if err == nil {
		return &dept, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query department: %w", err)
	}

	dept = models.Department{
		SchoolName: data.SchoolName,
		Name:       data.Name,
		Code:       data.Code,
	}
	if err := validate.Struct(&dept); err != nil {
		return nil, false, err
	}
	if err := db.Create(&dept).Error; err != nil {
		return nil, false, err
	}
	return &dept, true, nil
}

func createSupervisor(db *gorm.DB, validate *validator.Validate, dept *models.Department, data SupervisorData) (bool, error) {
	var existing models.Supervisor
	err := db.Where("department_id = ? AND name = ?", dept.ID, data.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query supervisor: %w", err)
	}

	supervisor := models.Supervisor{
		Name:         data.Name,
		Email:        data.Email,
		DepartmentID: &dept.ID,
	}
	if err := validate.Struct(&supervisor); err != nil {
		return false, err
	}
	return true, db.Create(&supervisor).Error
}

func createStudent(db *gorm.DB, validate *validator.Validate, dept *models.Department, data StudentData) (bool, error) {
	var existing models.Student
	err := db.Where("matric_no = ?", data.MatricNo).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query student: %w", err)
	}

	student := models.Student{
		MatricNo:     data.MatricNo,
		FullName:     data.FullName,
		Email:        data.Email,
		Score:        data.Score,
		DepartmentID: &dept.ID,
	}
	if err := validate.Struct(&student); err != nil {
		return false, err
	}
	return true, db.Create(&student).Error
}
