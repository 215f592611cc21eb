package service

import (
	"context"

	"github.com/Dolapo001/SPAS/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AllocationServiceInterface defines the interface for allocation service
type AllocationServiceInterface interface {
	Run(ctx context.Context, req *RunAllocationRequest) (*RunAllocationResponse, error)
	GetOverview(departmentID uuid.UUID) (*OverviewResponse, error)
	ListAllocations(departmentID uuid.UUID, page, pageSize int) (*AllocationListResponse, error)
	GetDetail(departmentID, id uuid.UUID) (*AllocationDetailResponse, error)
	ListGroups(departmentID uuid.UUID, page, pageSize int) (*GroupListResponse, error)
}

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	NotifyGroups(ctx context.Context, groups []models.Group, subject, body string) *NotificationSummary
	NotifyGroup(ctx context.Context, req *NotifyGroupRequest) (*GroupNotificationResult, error)
}

// ExportServiceInterface defines the interface for export service
type ExportServiceInterface interface {
	ExportAllocation(departmentID, id uuid.UUID) (*ExportFile, error)
	ExportLatest(departmentID uuid.UUID) (*ExportFile, error)
}

// SupervisorServiceInterface defines the interface for supervisor service
type SupervisorServiceInterface interface {
	ListWithCounts(departmentID uuid.UUID) ([]SupervisorResponse, error)
}

// DuplicateServiceInterface defines the interface for duplicate group tooling
type DuplicateServiceInterface interface {
	Check(departmentID *uuid.UUID, opts DuplicateOptions) (*DuplicateReport, error)
}
