package service

import (
	"context"
	"testing"
	"time"

	"github.com/Matias7xx/portal-aluno/internal/domain"
	"github.com/Matias7xx/portal-aluno/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReservationService(t *testing.T) (*ReservationService, *mocks.MockReservationRepo, *mocks.MockUserRepo, *mocks.MockAuthorizer, *mocks.MockAdmissionNotifier, *mocks.MockAuditRecorder) {
	t.Helper()
	reservationRepo := mocks.NewMockReservationRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	authorizer := mocks.NewMockAuthorizer(t)
	notifier := mocks.NewMockAdmissionNotifier(t)
	audit := mocks.NewMockAuditRecorder(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, userRepo, authorizer, notifier, audit, log)
	return svc, reservationRepo, userRepo, authorizer, notifier, audit
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReservationService_Submit_Success(t *testing.T) {
	svc, reservationRepo, userRepo, authorizer, notifier, audit := newReservationService(t)

	user := &domain.User{ID: "u1", Name: "Ana", Role: domain.RoleStudent}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	authorizer.EXPECT().CanSubmit(user).Return(true)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	audit.EXPECT().Record(mock.Anything, eventAdmissionRequested, "u1", mock.Anything, mock.Anything).Return()
	notifier.EXPECT().NotifyReservationReceived(mock.Anything, user, mock.Anything).Return()

	reservation, err := svc.Submit(context.Background(), "u1", date(2026, time.March, 10), date(2026, time.March, 14), nil)

	require.NoError(t, err)
	assert.Equal(t, domain.AdmissionStatusPending, reservation.Status)
	assert.Equal(t, "u1", reservation.UserID)
	assert.NotEmpty(t, reservation.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Submit_SingleDayStay(t *testing.T) {
	svc, reservationRepo, userRepo, authorizer, notifier, audit := newReservationService(t)

	user := &domain.User{ID: "u1", Role: domain.RoleStudent}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	authorizer.EXPECT().CanSubmit(user).Return(true)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	audit.EXPECT().Record(mock.Anything, eventAdmissionRequested, "u1", mock.Anything, mock.Anything).Return()
	notifier.EXPECT().NotifyReservationReceived(mock.Anything, user, mock.Anything).Return()

	day := date(2026, time.March, 10)
	reservation, err := svc.Submit(context.Background(), "u1", day, day, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, reservation.Nights())

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Submit_InvalidRange(t *testing.T) {
	svc, _, _, _, _, _ := newReservationService(t)

	_, err := svc.Submit(context.Background(), "u1", date(2026, time.March, 14), date(2026, time.March, 10), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestReservationService_Submit_MissingDates(t *testing.T) {
	svc, _, _, _, _, _ := newReservationService(t)

	_, err := svc.Submit(context.Background(), "u1", time.Time{}, time.Time{}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Submit_UserNotFound(t *testing.T) {
	svc, _, userRepo, _, _, _ := newReservationService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Submit(context.Background(), "missing", date(2026, time.March, 10), date(2026, time.March, 14), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestReservationService_Submit_Forbidden(t *testing.T) {
	svc, _, userRepo, authorizer, _, _ := newReservationService(t)

	user := &domain.User{ID: "u1", Role: ""}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	authorizer.EXPECT().CanSubmit(user).Return(false)

	_, err := svc.Submit(context.Background(), "u1", date(2026, time.March, 10), date(2026, time.March, 14), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReservationService_Submit_DatesConflict(t *testing.T) {
	svc, reservationRepo, userRepo, authorizer, _, _ := newReservationService(t)

	user := &domain.User{ID: "u2", Role: domain.RoleStudent}

	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(user, nil)
	authorizer.EXPECT().CanSubmit(user).Return(true)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCapacityExceeded)

	_, err := svc.Submit(context.Background(), "u2", date(2026, time.March, 12), date(2026, time.March, 16), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestReservationService_CheckAvailability_Free(t *testing.T) {
	svc, reservationRepo, _, _, _, _ := newReservationService(t)

	start := date(2026, time.March, 10)
	end := date(2026, time.March, 14)
	reservationRepo.EXPECT().HasConflict(mock.Anything, start, end, "").Return(false, nil)

	available, err := svc.CheckAvailability(context.Background(), start, end)

	require.NoError(t, err)
	assert.True(t, available)
}

func TestReservationService_CheckAvailability_Taken(t *testing.T) {
	svc, reservationRepo, _, _, _, _ := newReservationService(t)

	start := date(2026, time.March, 10)
	end := date(2026, time.March, 14)
	reservationRepo.EXPECT().HasConflict(mock.Anything, start, end, "").Return(true, nil)

	available, err := svc.CheckAvailability(context.Background(), start, end)

	require.NoError(t, err)
	assert.False(t, available)
}

func TestReservationService_CheckAvailability_InvalidRange(t *testing.T) {
	svc, _, _, _, _, _ := newReservationService(t)

	_, err := svc.CheckAvailability(context.Background(), date(2026, time.March, 14), date(2026, time.March, 10))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestReservationService_Approve_Success(t *testing.T) {
	svc, reservationRepo, userRepo, authorizer, notifier, audit := newReservationService(t)

	reviewer := &domain.User{ID: "r1", Role: domain.RoleStaff}
	requester := &domain.User{ID: "u1", Role: domain.RoleStudent}
	approved := &domain.Reservation{
		ID:        "h1",
		UserID:    "u1",
		DateStart: date(2026, time.March, 10),
		DateEnd:   date(2026, time.March, 14),
		Status:    domain.AdmissionStatusApproved,
	}

	userRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reviewer, nil)
	authorizer.EXPECT().CanReview(reviewer).Return(true)
	reservationRepo.EXPECT().Approve(mock.Anything, "h1").Return(approved, nil)
	audit.EXPECT().Record(mock.Anything, eventAdmissionApproved, "r1", "h1", mock.Anything).Return()
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(requester, nil)
	notifier.EXPECT().NotifyReservationApproved(mock.Anything, requester, approved).Return()

	result, err := svc.Approve(context.Background(), "h1", "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.AdmissionStatusApproved, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Approve_Forbidden(t *testing.T) {
	svc, _, userRepo, authorizer, _, _ := newReservationService(t)

	reviewer := &domain.User{ID: "u2", Role: domain.RoleStudent}

	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(reviewer, nil)
	authorizer.EXPECT().CanReview(reviewer).Return(false)

	_, err := svc.Approve(context.Background(), "h1", "u2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReservationService_Approve_OverlapRecheckFails(t *testing.T) {
	svc, reservationRepo, userRepo, authorizer, _, _ := newReservationService(t)

	reviewer := &domain.User{ID: "r1", Role: domain.RoleAdmin}

	userRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reviewer, nil)
	authorizer.EXPECT().CanReview(reviewer).Return(true)
	reservationRepo.EXPECT().Approve(mock.Anything, "h2").Return(nil, domain.ErrCapacityExceeded)

	_, err := svc.Approve(context.Background(), "h2", "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestReservationService_Approve_NotPending(t *testing.T) {
	svc, reservationRepo, userRepo, authorizer, _, _ := newReservationService(t)

	reviewer := &domain.User{ID: "r1", Role: domain.RoleStaff}

	userRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reviewer, nil)
	authorizer.EXPECT().CanReview(reviewer).Return(true)
	reservationRepo.EXPECT().Approve(mock.Anything, "h1").Return(nil, domain.ErrInvalidState)

	_, err := svc.Approve(context.Background(), "h1", "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReservationService_Reject_Success(t *testing.T) {
	svc, reservationRepo, userRepo, authorizer, notifier, audit := newReservationService(t)

	reviewer := &domain.User{ID: "r1", Role: domain.RoleStaff}
	requester := &domain.User{ID: "u1", Role: domain.RoleStudent}
	rejected := &domain.Reservation{
		ID:              "h1",
		UserID:          "u1",
		Status:          domain.AdmissionStatusRejected,
		RejectionReason: "dates unavailable",
	}

	userRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reviewer, nil)
	authorizer.EXPECT().CanReview(reviewer).Return(true)
	reservationRepo.EXPECT().Reject(mock.Anything, "h1", "dates unavailable").Return(rejected, nil)
	audit.EXPECT().Record(mock.Anything, eventAdmissionRejected, "r1", "h1", mock.Anything).Return()
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(requester, nil)
	notifier.EXPECT().NotifyReservationRejected(mock.Anything, requester, rejected, "dates unavailable").Return()

	result, err := svc.Reject(context.Background(), "h1", "r1", "dates unavailable")

	require.NoError(t, err)
	assert.Equal(t, domain.AdmissionStatusRejected, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Reject_MissingReason(t *testing.T) {
	svc, _, _, _, _, _ := newReservationService(t)

	_, err := svc.Reject(context.Background(), "h1", "r1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_GetByID_NotFound(t *testing.T) {
	svc, reservationRepo, _, _, _, _ := newReservationService(t)

	reservationRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_ListByUser_Success(t *testing.T) {
	svc, reservationRepo, _, _, _, _ := newReservationService(t)

	reservations := []*domain.Reservation{
		{ID: "h1", UserID: "u1", Status: domain.AdmissionStatusPending},
	}
	reservationRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(reservations, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
