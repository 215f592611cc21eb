package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/Dolapo001/SPAS/internal/database/models"
	apperrors "github.com/Dolapo001/SPAS/internal/errors"
	"github.com/Dolapo001/SPAS/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExportHeader is the first row of an allocation export
var ExportHeader = []string{"Group", "Supervisor", "Matric No", "Student Name"}

// ExportFile is a rendered CSV download
type ExportFile struct {
	Filename string
	Data     []byte
}

// ExportService renders allocation results as CSV
type ExportService struct {
	allocationRepo repository.AllocationRepositoryInterface
}

// NewExportService creates a new export service
func NewExportService(allocationRepo repository.AllocationRepositoryInterface) *ExportService {
	return &ExportService{allocationRepo: allocationRepo}
}

// ExportAllocation exports one of the department's allocation results
func (s *ExportService) ExportAllocation(departmentID, id uuid.UUID) (*ExportFile, error) {
	result, err := s.allocationRepo.GetDetail(departmentID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAllocationNotFound
		}
		return nil, fmt.Errorf("failed to get allocation: %w", err)
	}
	return renderExport(result)
}

// ExportLatest exports the department's most recent allocation result
func (s *ExportService) ExportLatest(departmentID uuid.UUID) (*ExportFile, error) {
	latest, err := s.allocationRepo.GetLatestByDepartment(departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAllocationNotFound
		}
		return nil, fmt.Errorf("failed to get latest allocation: %w", err)
	}
	return s.ExportAllocation(departmentID, latest.ID)
}

func renderExport(result *models.AllocationResult) (*ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(ExportHeader); err != nil {
		return nil, err
	}

	for _, g := range result.Groups {
		supervisor := ""
		if g.Supervisor != nil {
			supervisor = g.Supervisor.Name
		}
		label := "Group " + strconv.Itoa(g.Number)
		for _, st := range g.Students {
			if err := w.Write([]string{label, supervisor, st.MatricNo, st.FullName}); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}

	return &ExportFile{
		Filename: fmt.Sprintf("allocation_%s_%s.csv", result.ID, result.CreatedAt.Format("20060102_1504")),
		Data:     buf.Bytes(),
	}, nil
}
