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

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	userRepo        ports.UserRepo
	authorizer      ports.Authorizer
	notifier        ports.AdmissionNotifier
	audit           ports.AuditRecorder
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	userRepo ports.UserRepo,
	authorizer ports.Authorizer,
	notifier ports.AdmissionNotifier,
	audit ports.AuditRecorder,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		authorizer:      authorizer,
		notifier:        notifier,
		audit:           audit,
		logger:          logger,
	}
}

// Submit creates a pending lodging reservation for the inclusive
// [dateStart, dateEnd] window. The overlap check against approved
// reservations and the insert happen atomically in the repository.
func (s *ReservationService) Submit(ctx context.Context, userID string, dateStart, dateEnd time.Time, formData json.RawMessage) (*domain.Reservation, error) {
	if dateStart.IsZero() || dateEnd.IsZero() {
		return nil, fmt.Errorf("%w: date_start and date_end are required", domain.ErrValidation)
	}
	if dateEnd.Before(dateStart) {
		return nil, fmt.Errorf("%w: date_end is before date_start", domain.ErrInvalidRange)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	if !s.authorizer.CanSubmit(user) {
		return nil, domain.ErrForbidden
	}

	if formData == nil {
		formData = json.RawMessage("{}")
	}

	now := time.Now().UTC()
	reservation := &domain.Reservation{
		ID:        uuid.New().String(),
		UserID:    userID,
		FormData:  formData,
		DateStart: dateStart,
		DateEnd:   dateEnd,
		Status:    domain.AdmissionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation requested",
		logger.String("reservation_id", reservation.ID),
		logger.String("user_id", userID),
	)

	s.audit.Record(ctx, eventAdmissionRequested, userID, reservation.ID, map[string]any{
		"date_start": dateStart.Format(time.DateOnly),
		"date_end":   dateEnd.Format(time.DateOnly),
	})

	go s.notifier.NotifyReservationReceived(context.WithoutCancel(ctx), user, reservation)

	return reservation, nil
}

// CheckAvailability reports whether the window is free of approved
// reservations. Advisory only: the authoritative check runs inside Submit
// and Approve.
func (s *ReservationService) CheckAvailability(ctx context.Context, dateStart, dateEnd time.Time) (bool, error) {
	if dateEnd.Before(dateStart) {
		return false, fmt.Errorf("%w: date_end is before date_start", domain.ErrInvalidRange)
	}

	conflict, err := s.reservationRepo.HasConflict(ctx, dateStart, dateEnd, "")
	if err != nil {
		return false, fmt.Errorf("check availability: %w", err)
	}

	return !conflict, nil
}

// Approve transitions a pending reservation to approved. The repository
// re-validates the interval under the lodging lock, so two overlapping
// pending reservations cannot both be approved.
func (s *ReservationService) Approve(ctx context.Context, reservationID, reviewerID string) (*domain.Reservation, error) {
	reviewer, err := s.userRepo.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("check reviewer: %w", err)
	}

	if !s.authorizer.CanReview(reviewer) {
		return nil, domain.ErrForbidden
	}

	reservation, err := s.reservationRepo.Approve(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("approve reservation: %w", err)
	}

	s.logger.Info("reservation approved",
		logger.String("reservation_id", reservation.ID),
		logger.String("reviewer_id", reviewerID),
	)

	s.audit.Record(ctx, eventAdmissionApproved, reviewerID, reservation.ID, map[string]any{
		"user_id": reservation.UserID,
	})

	s.notifyOutcome(ctx, reservation, "")

	return reservation, nil
}

// Reject transitions a pending reservation to rejected; reason is required.
func (s *ReservationService) Reject(ctx context.Context, reservationID, reviewerID, reason string) (*domain.Reservation, error) {
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

	reservation, err := s.reservationRepo.Reject(ctx, reservationID, reason)
	if err != nil {
		return nil, fmt.Errorf("reject reservation: %w", err)
	}

	s.logger.Info("reservation rejected",
		logger.String("reservation_id", reservation.ID),
		logger.String("reviewer_id", reviewerID),
	)

	s.audit.Record(ctx, eventAdmissionRejected, reviewerID, reservation.ID, map[string]any{
		"user_id": reservation.UserID,
		"reason":  reason,
	})

	s.notifyOutcome(ctx, reservation, reason)

	return reservation, nil
}

func (s *ReservationService) notifyOutcome(ctx context.Context, reservation *domain.Reservation, reason string) {
	user, err := s.userRepo.GetByID(ctx, reservation.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", reservation.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	if reservation.Status == domain.AdmissionStatusApproved {
		go s.notifier.NotifyReservationApproved(context.WithoutCancel(ctx), user, reservation)
	} else {
		go s.notifier.NotifyReservationRejected(context.WithoutCancel(ctx), user, reservation, reason)
	}
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByUser(ctx, userID)
}
