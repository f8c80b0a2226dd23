package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Matias7xx/portal-aluno/internal/domain"
	"github.com/Matias7xx/portal-aluno/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EnrollmentService struct {
	enrollmentRepo ports.EnrollmentRepo
	courseRepo     ports.CourseRepo
	userRepo       ports.UserRepo
	authorizer     ports.Authorizer
	notifier       ports.AdmissionNotifier
	audit          ports.AuditRecorder
	logger         logger.Logger
}

func NewEnrollmentService(
	enrollmentRepo ports.EnrollmentRepo,
	courseRepo ports.CourseRepo,
	userRepo ports.UserRepo,
	authorizer ports.Authorizer,
	notifier ports.AdmissionNotifier,
	audit ports.AuditRecorder,
	logger logger.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		authorizer:     authorizer,
		notifier:       notifier,
		audit:          audit,
		logger:         logger,
	}
}

// Submit creates a pending enrollment for userID on courseID. The capacity
// check and the insert happen atomically in the repository; here we gate on
// authorization and course status, then record and notify.
func (s *EnrollmentService) Submit(ctx context.Context, courseID, userID string, formData json.RawMessage) (*domain.Enrollment, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("check course: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	if !s.authorizer.CanSubmit(user) {
		return nil, domain.ErrForbidden
	}

	if course.Status != domain.CourseStatusOpen {
		return nil, fmt.Errorf("%w: course is %s", domain.ErrInvalidState, course.Status)
	}

	if formData == nil {
		formData = json.RawMessage("{}")
	}

	now := time.Now().UTC()
	enrollment := &domain.Enrollment{
		ID:        uuid.New().String(),
		CourseID:  courseID,
		UserID:    userID,
		FormData:  formData,
		Status:    domain.AdmissionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("create enrollment: %w", err)
	}

	s.logger.Info("enrollment requested",
		logger.String("enrollment_id", enrollment.ID),
		logger.String("course_id", courseID),
		logger.String("user_id", userID),
	)

	s.audit.Record(ctx, eventAdmissionRequested, userID, enrollment.ID, map[string]any{
		"course_id": courseID,
	})

	go s.notifier.NotifyEnrollmentReceived(context.WithoutCancel(ctx), user, course)

	return enrollment, nil
}

// Approve transitions a pending enrollment to approved. The repository
// re-validates capacity under the course lock, so concurrent approvals
// cannot admit past max_capacity.
func (s *EnrollmentService) Approve(ctx context.Context, enrollmentID, reviewerID string) (*domain.Enrollment, error) {
	reviewer, err := s.userRepo.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("check reviewer: %w", err)
	}

	if !s.authorizer.CanReview(reviewer) {
		return nil, domain.ErrForbidden
	}

	enrollment, err := s.enrollmentRepo.Approve(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("approve enrollment: %w", err)
	}

	s.logger.Info("enrollment approved",
		logger.String("enrollment_id", enrollment.ID),
		logger.String("reviewer_id", reviewerID),
	)

	s.audit.Record(ctx, eventAdmissionApproved, reviewerID, enrollment.ID, map[string]any{
		"course_id": enrollment.CourseID,
		"user_id":   enrollment.UserID,
	})

	s.notifyOutcome(ctx, enrollment, "")

	return enrollment, nil
}

// Reject transitions a pending enrollment to rejected; reason is required
// and stored with the record.
func (s *EnrollmentService) Reject(ctx context.Context, enrollmentID, reviewerID, reason string) (*domain.Enrollment, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", domain.ErrValidation)
	}

	reviewer, err := s.userRepo.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("check reviewer: %w", err)
	}

	if !s.authorizer.CanReview(reviewer) {
		return nil, domain.ErrForbidden
	}

	enrollment, err := s.enrollmentRepo.Reject(ctx, enrollmentID, reason)
	if err != nil {
		return nil, fmt.Errorf("reject enrollment: %w", err)
	}

	s.logger.Info("enrollment rejected",
		logger.String("enrollment_id", enrollment.ID),
		logger.String("reviewer_id", reviewerID),
	)

	s.audit.Record(ctx, eventAdmissionRejected, reviewerID, enrollment.ID, map[string]any{
		"course_id": enrollment.CourseID,
		"user_id":   enrollment.UserID,
		"reason":    reason,
	})

	s.notifyOutcome(ctx, enrollment, reason)

	return enrollment, nil
}

// notifyOutcome delivers the review outcome to the enrollee. Lookup
// failures are logged only: notification never undoes a committed decision.
func (s *EnrollmentService) notifyOutcome(ctx context.Context, enrollment *domain.Enrollment, reason string) {
	user, err := s.userRepo.GetByID(ctx, enrollment.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", enrollment.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	course, err := s.courseRepo.GetByID(ctx, enrollment.CourseID)
	if err != nil {
		s.logger.Error("failed to get course for notification",
			logger.String("course_id", enrollment.CourseID),
			logger.String("error", err.Error()),
		)
		return
	}

	if enrollment.Status == domain.AdmissionStatusApproved {
		go s.notifier.NotifyEnrollmentApproved(context.WithoutCancel(ctx), user, course)
	} else {
		go s.notifier.NotifyEnrollmentRejected(context.WithoutCancel(ctx), user, course, reason)
	}
}

func (s *EnrollmentService) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	return s.enrollmentRepo.GetByID(ctx, id)
}

func (s *EnrollmentService) ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error) {
	return s.enrollmentRepo.ListByUser(ctx, userID)
}
