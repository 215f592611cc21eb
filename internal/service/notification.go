package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dolapo001/SPAS/internal/database/models"
	apperrors "github.com/Dolapo001/SPAS/internal/errors"
	"github.com/Dolapo001/SPAS/internal/logger"
	"github.com/Dolapo001/SPAS/internal/mail"
	"github.com/Dolapo001/SPAS/internal/metrics"
	"github.com/Dolapo001/SPAS/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const missingEmail = "missing email"

// NotifyGroupRequest represents the request to notify a single group
type NotifyGroupRequest struct {
	GroupID uuid.UUID `json:"groupId" validate:"required"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	// DepartmentID restricts the lookup to the requester's department when set
	DepartmentID uuid.UUID `json:"-"`
}

// StudentFailure records one student that could not be notified
type StudentFailure struct {
	StudentID uuid.UUID `json:"student_id"`
	Email     string    `json:"email"`
	Error     string    `json:"error"`
}

// GroupNotificationResult is the outcome of notifying one group
type GroupNotificationResult struct {
	GroupID             uuid.UUID        `json:"group_id"`
	GroupNumber         int              `json:"group_number"`
	Success             bool             `json:"success"`
	SupervisorEmailSent bool             `json:"supervisor_email_sent"`
	StudentsSent        int              `json:"students_sent"`
	StudentsFailed      []StudentFailure `json:"students_failed"`
	Errors              []string         `json:"errors"`
}

// NotificationSummary aggregates the results of a fan-out
type NotificationSummary struct {
	Groups           []GroupNotificationResult `json:"groups"`
	SuccessfulGroups int                       `json:"successful_groups"`
	StudentsSent     int                       `json:"students_sent"`
	SupervisorsSent  int                       `json:"supervisors_sent"`
	Message          string                    `json:"message"`
}

// NotificationOptions tunes the fan-out
type NotificationOptions struct {
	// Concurrency bounds how many groups are notified at once
	Concurrency int
	// SendTimeout bounds every dial and every individual send
	SendTimeout time.Duration
}

// NotificationService sends allocation emails to supervisors and students
type NotificationService struct {
	groupRepo repository.GroupRepositoryInterface
	dialer    mail.Dialer
	renderer  *mail.Renderer
	opts      NotificationOptions
}

// NewNotificationService creates a new notification service
func NewNotificationService(groupRepo repository.GroupRepositoryInterface, dialer mail.Dialer, renderer *mail.Renderer, opts NotificationOptions) *NotificationService {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 30 * time.Second
	}
	return &NotificationService{
		groupRepo: groupRepo,
		dialer:    dialer,
		renderer:  renderer,
		opts:      opts,
	}
}

// NotifyGroups notifies every group independently. Groups must carry their
// supervisor and students. Failures are reported in the summary, never returned.
func (s *NotificationService) NotifyGroups(ctx context.Context, groups []models.Group, subject, body string) *NotificationSummary {
	if subject == "" {
		subject = s.renderer.Subject()
	}
	if body == "" {
		body = s.renderer.Body()
	}

	results := make([]GroupNotificationResult, len(groups))
	var eg errgroup.Group
	eg.SetLimit(s.opts.Concurrency)
	for i := range groups {
		eg.Go(func() error {
			results[i] = s.notifyGroup(ctx, &groups[i], subject, body)
			return nil
		})
	}
	_ = eg.Wait()

	return summarize(results)
}

// NotifyGroup loads one group with its members and notifies it
func (s *NotificationService) NotifyGroup(ctx context.Context, req *NotifyGroupRequest) (*GroupNotificationResult, error) {
	if req.GroupID == uuid.Nil {
		return nil, apperrors.NewValidationError("groupId", "missing groupId")
	}

	group, err := s.groupRepo.GetWithMembers(req.GroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to load group: %w", err)
	}
	if req.DepartmentID != uuid.Nil && (group.DepartmentID == nil || *group.DepartmentID != req.DepartmentID) {
		return nil, apperrors.ErrGroupNotFound
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = mail.DefaultAdHocSubject
	}
	body := strings.TrimSpace(req.Body)
	if body == "" {
		body = s.renderer.Body()
	}

	result := s.notifyGroup(ctx, group, subject, body)
	return &result, nil
}

func (s *NotificationService) notifyGroup(ctx context.Context, group *models.Group, subject, body string) (res GroupNotificationResult) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"group_id":     group.ID,
		"group_number": group.Number,
	})
	res = GroupNotificationResult{
		GroupID:        group.ID,
		GroupNumber:    group.Number,
		StudentsFailed: []StudentFailure{},
		Errors:         []string{},
	}
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Notification fan-out panicked")
			res.Success = false
			res.Errors = append(res.Errors, fmt.Sprintf("internal error: %v", r))
		}
	}()

	dialCtx, cancel := context.WithTimeout(ctx, s.opts.SendTimeout)
	session, err := s.dialer.Dial(dialCtx)
	cancel()
	if err != nil {
		log.WithError(err).Error("Failed to open mail session")
		metrics.NotificationsSent.WithLabelValues("group", "dial_error").Inc()
		res.Errors = append(res.Errors, err.Error())
		return res
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.WithError(err).Debug("Mail session close failed")
		}
	}()

	if sup := group.Supervisor; sup != nil && sup.Email != "" {
		msg, err := s.renderer.Supervisor(sup.Email, subject, mail.SupervisorData{
			Group:      *group,
			Supervisor: sup,
			Students:   group.Students,
			Body:       body,
		})
		if err == nil {
			err = s.send(ctx, session, "supervisor", msg)
		}
		if err != nil {
			log.WithError(err).Warn("Supervisor email failed")
			res.Errors = append(res.Errors, "Supervisor send error: "+err.Error())
		} else {
			res.SupervisorEmailSent = true
		}
	}

	for _, st := range group.Students {
		if st.Email == "" {
			metrics.NotificationsSent.WithLabelValues("student", "skipped").Inc()
			res.StudentsFailed = append(res.StudentsFailed, StudentFailure{StudentID: st.ID, Error: missingEmail})
			continue
		}
		msg, err := s.renderer.Student(st.Email, subject, mail.StudentData{
			Group:      *group,
			Supervisor: group.Supervisor,
			Student:    st,
			Body:       body,
		})
		if err == nil {
			err = s.send(ctx, session, "student", msg)
		}
		if err != nil {
			log.WithError(err).WithField("student_id", st.ID).Warn("Student email failed")
			res.StudentsFailed = append(res.StudentsFailed, StudentFailure{StudentID: st.ID, Email: st.Email, Error: err.Error()})
			continue
		}
		res.StudentsSent++
	}

	res.Success = true
	log.WithFields(map[string]interface{}{
		"supervisor_sent": res.SupervisorEmailSent,
		"students_sent":   res.StudentsSent,
		"students_failed": len(res.StudentsFailed),
	}).Info("Group notified")
	return res
}

func (s *NotificationService) send(ctx context.Context, session mail.Session, recipient string, msg *mail.Message) error {
	sendCtx, cancel := context.WithTimeout(ctx, s.opts.SendTimeout)
	defer cancel()

	start := time.Now()
	err := session.Send(sendCtx, msg)
	metrics.NotificationSendDuration.Observe(time.Since(start).Seconds())

	outcome := "sent"
	if err != nil {
		outcome = "error"
	}
	metrics.NotificationsSent.WithLabelValues(recipient, outcome).Inc()
	return err
}

func summarize(results []GroupNotificationResult) *NotificationSummary {
	summary := &NotificationSummary{Groups: results}
	for _, r := range results {
		if r.Success {
			summary.SuccessfulGroups++
		}
		if r.SupervisorEmailSent {
			summary.SupervisorsSent++
		}
		summary.StudentsSent += r.StudentsSent
	}
	summary.Message = fmt.Sprintf("Email notifications sent for %d groups (%d students).", summary.SuccessfulGroups, summary.StudentsSent)
	return summary
}
