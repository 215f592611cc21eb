package service

import (
	"fmt"

	apperrors "github.com/Dolapo001/SPAS/internal/errors"
	"github.com/Dolapo001/SPAS/internal/logger"
	"github.com/Dolapo001/SPAS/internal/repository"

	"github.com/google/uuid"
)

// Keep policies for resolving duplicate groups
const (
	KeepFirst = "first"
	KeepLast  = "last"
)

// DuplicateOptions controls what Check does with the sets it finds
type DuplicateOptions struct {
	Resolve bool
	Keep    string
	// Apply commits the resolution; without it Check only reports the plan
	Apply bool
}

// DuplicateGroup is one group inside a duplicate set
type DuplicateGroup struct {
	ID                 uuid.UUID `json:"id"`
	Number             int       `json:"number"`
	AllocationResultID uuid.UUID `json:"allocation_result_id"`
	Students           int       `json:"students"`
	Keep               bool      `json:"keep,omitempty"`
}

// DuplicateSetReport describes one (supervisor, department) pair owning several groups
type DuplicateSetReport struct {
	SupervisorID   *uuid.UUID                      `json:"supervisor_id"`
	SupervisorName string                          `json:"supervisor_name"`
	DepartmentID   *uuid.UUID                      `json:"department_id"`
	Groups         []DuplicateGroup                `json:"groups"`
	Resolution     *repository.DuplicateResolution `json:"resolution,omitempty"`
}

// DuplicateReport is the outcome of a duplicate check
type DuplicateReport struct {
	Sets    []DuplicateSetReport `json:"sets"`
	Applied bool                 `json:"applied"`
}

// DuplicateService detects and merges groups that share a supervisor within a department
type DuplicateService struct {
	groupRepo repository.GroupRepositoryInterface
}

// NewDuplicateService creates a new duplicate service
func NewDuplicateService(groupRepo repository.GroupRepositoryInterface) *DuplicateService {
	return &DuplicateService{groupRepo: groupRepo}
}

// Check finds duplicate sets. With Resolve it marks the group to keep in
// each set, and with Apply it also moves members and deletes the others.
func (s *DuplicateService) Check(departmentID *uuid.UUID, opts DuplicateOptions) (*DuplicateReport, error) {
	if opts.Keep == "" {
		opts.Keep = KeepFirst
	}
	if opts.Keep != KeepFirst && opts.Keep != KeepLast {
		return nil, apperrors.ErrInvalidKeepPolicy
	}

	sets, err := s.groupRepo.FindDuplicates(departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find duplicate groups: %w", err)
	}

	report := &DuplicateReport{
		Sets:    make([]DuplicateSetReport, 0, len(sets)),
		Applied: opts.Resolve && opts.Apply,
	}
	for _, set := range sets {
		if len(set.Groups) == 0 {
			continue
		}
		keep := set.Groups[0]
		if opts.Keep == KeepLast {
			keep = set.Groups[len(set.Groups)-1]
		}

		entry := DuplicateSetReport{
			SupervisorID: set.SupervisorID,
			DepartmentID: set.DepartmentID,
			Groups:       make([]DuplicateGroup, 0, len(set.Groups)),
		}
		for _, g := range set.Groups {
			if g.Supervisor != nil {
				entry.SupervisorName = g.Supervisor.Name
			}
			entry.Groups = append(entry.Groups, DuplicateGroup{
				ID:                 g.ID,
				Number:             g.Number,
				AllocationResultID: g.AllocationResultID,
				Students:           g.StudentCount(),
				Keep:               opts.Resolve && g.ID == keep.ID,
			})
		}

		if report.Applied {
			res, err := s.groupRepo.ResolveDuplicates(set, keep.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve duplicates for group %s: %w", keep.ID, err)
			}
			entry.Resolution = res
			logger.New().WithFields(map[string]interface{}{
				"kept_group_id":  res.KeptGroupID,
				"deleted_groups": len(res.DeletedGroupIDs),
				"moved_students": res.MovedStudents,
			}).Info("Resolved duplicate groups")
		}
		report.Sets = append(report.Sets, entry)
	}

	return report, nil
}
