package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Matias7xx/portal-aluno/internal/domain"
	"github.com/Matias7xx/portal-aluno/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CourseService struct {
	repo           ports.CourseRepo
	enrollmentRepo ports.EnrollmentRepo
	userRepo       ports.UserRepo
	authorizer     ports.Authorizer
	logger         logger.Logger
}

func NewCourseService(
	repo ports.CourseRepo,
	enrollmentRepo ports.EnrollmentRepo,
	userRepo ports.UserRepo,
	authorizer ports.Authorizer,
	logger logger.Logger,
) *CourseService {
	return &CourseService{
		repo:           repo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		authorizer:     authorizer,
		logger:         logger,
	}
}

func (s *CourseService) Create(ctx context.Context, actorID string, input domain.CreateCourseInput) (*domain.Course, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("check actor: %w", err)
	}

	if !s.authorizer.CanManageCourses(actor) {
		return nil, domain.ErrForbidden
	}

	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.MaxCapacity < 0 {
		return nil, fmt.Errorf("%w: max_capacity must not be negative", domain.ErrValidation)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: end_date is before start_date", domain.ErrInvalidRange)
	}

	now := time.Now().UTC()
	course := &domain.Course{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Description:   input.Description,
		Location:      input.Location,
		WorkloadHours: input.WorkloadHours,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		MaxCapacity:   input.MaxCapacity,
		Status:        domain.CourseStatusOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	s.logger.Info("course created",
		logger.String("course_id", course.ID),
		logger.String("name", course.Name),
		logger.Int("max_capacity", course.MaxCapacity),
	)

	return course, nil
}

func (s *CourseService) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CourseService) GetDetails(ctx context.Context, id string) (*domain.CourseDetails, error) {
	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.ListByCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}

	details.Enrollments = make([]domain.Enrollment, len(enrollments))
	for i, e := range enrollments {
		details.Enrollments[i] = *e
	}

	return details, nil
}

func (s *CourseService) List(ctx context.Context) ([]*domain.Course, error) {
	return s.repo.List(ctx)
}

// CompleteFinished closes out courses whose end date has passed; driven by
// the scheduler.
func (s *CourseService) CompleteFinished(ctx context.Context) ([]*domain.Course, error) {
	completed, err := s.repo.CompleteFinished(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("courses completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}
