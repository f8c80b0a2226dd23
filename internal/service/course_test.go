package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Matias7xx/portal-aluno/internal/domain"
	"github.com/Matias7xx/portal-aluno/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCourseService(t *testing.T) (*CourseService, *mocks.MockCourseRepo, *mocks.MockEnrollmentRepo, *mocks.MockUserRepo, *mocks.MockAuthorizer) {
	t.Helper()
	courseRepo := mocks.NewMockCourseRepo(t)
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	authorizer := mocks.NewMockAuthorizer(t)
	log := newTestLogger(t)

	svc := NewCourseService(courseRepo, enrollmentRepo, userRepo, authorizer, log)
	return svc, courseRepo, enrollmentRepo, userRepo, authorizer
}

func TestCourseService_Create_Success(t *testing.T) {
	svc, courseRepo, _, userRepo, authorizer := newCourseService(t)

	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin}

	userRepo.EXPECT().GetByID(mock.Anything, "a1").Return(admin, nil)
	authorizer.EXPECT().CanManageCourses(admin).Return(true)
	courseRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateCourseInput{
		Name:        "First Aid",
		StartDate:   date(2026, time.April, 1),
		EndDate:     date(2026, time.April, 30),
		MaxCapacity: 30,
	}
	course, err := svc.Create(context.Background(), "a1", input)

	require.NoError(t, err)
	assert.Equal(t, domain.CourseStatusOpen, course.Status)
	assert.Equal(t, 30, course.MaxCapacity)
	assert.NotEmpty(t, course.ID)
	assert.False(t, course.CreatedAt.IsZero())
	assert.False(t, course.UpdatedAt.IsZero())
}

func TestCourseService_Create_Forbidden(t *testing.T) {
	svc, _, _, userRepo, authorizer := newCourseService(t)

	staff := &domain.User{ID: "s1", Role: domain.RoleStaff}

	userRepo.EXPECT().GetByID(mock.Anything, "s1").Return(staff, nil)
	authorizer.EXPECT().CanManageCourses(staff).Return(false)

	_, err := svc.Create(context.Background(), "s1", domain.CreateCourseInput{Name: "First Aid"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCourseService_Create_MissingName(t *testing.T) {
	svc, _, _, userRepo, authorizer := newCourseService(t)

	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin}

	userRepo.EXPECT().GetByID(mock.Anything, "a1").Return(admin, nil)
	authorizer.EXPECT().CanManageCourses(admin).Return(true)

	_, err := svc.Create(context.Background(), "a1", domain.CreateCourseInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCourseService_Create_NegativeCapacity(t *testing.T) {
	svc, _, _, userRepo, authorizer := newCourseService(t)

	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin}

	userRepo.EXPECT().GetByID(mock.Anything, "a1").Return(admin, nil)
	authorizer.EXPECT().CanManageCourses(admin).Return(true)

	input := domain.CreateCourseInput{Name: "First Aid", MaxCapacity: -1}
	_, err := svc.Create(context.Background(), "a1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCourseService_Create_InvalidDates(t *testing.T) {
	svc, _, _, userRepo, authorizer := newCourseService(t)

	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin}

	userRepo.EXPECT().GetByID(mock.Anything, "a1").Return(admin, nil)
	authorizer.EXPECT().CanManageCourses(admin).Return(true)

	input := domain.CreateCourseInput{
		Name:      "First Aid",
		StartDate: date(2026, time.April, 30),
		EndDate:   date(2026, time.April, 1),
	}
	_, err := svc.Create(context.Background(), "a1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestCourseService_GetDetails_Success(t *testing.T) {
	svc, courseRepo, enrollmentRepo, _, _ := newCourseService(t)

	details := &domain.CourseDetails{
		Course:         domain.Course{ID: "c1", Name: "First Aid", MaxCapacity: 30},
		RemainingSeats: 28,
	}
	enrollments := []*domain.Enrollment{
		{ID: "m1", CourseID: "c1", UserID: "u1", Status: domain.AdmissionStatusApproved},
		{ID: "m2", CourseID: "c1", UserID: "u2", Status: domain.AdmissionStatusPending},
	}

	courseRepo.EXPECT().GetDetails(mock.Anything, "c1").Return(details, nil)
	enrollmentRepo.EXPECT().ListByCourse(mock.Anything, "c1").Return(enrollments, nil)

	result, err := svc.GetDetails(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, 28, result.RemainingSeats)
	assert.Len(t, result.Enrollments, 2)
}

func TestCourseService_GetDetails_NotFound(t *testing.T) {
	svc, courseRepo, _, _, _ := newCourseService(t)

	courseRepo.EXPECT().GetDetails(mock.Anything, "missing").Return(nil, domain.ErrCourseNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestCourseService_CompleteFinished_Success(t *testing.T) {
	svc, courseRepo, _, _, _ := newCourseService(t)

	completed := []*domain.Course{
		{ID: "c1", Status: domain.CourseStatusCompleted},
		{ID: "c2", Status: domain.CourseStatusCompleted},
	}
	courseRepo.EXPECT().CompleteFinished(mock.Anything).Return(completed, nil)

	result, err := svc.CompleteFinished(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestCourseService_CompleteFinished_NoneFinished(t *testing.T) {
	svc, courseRepo, _, _, _ := newCourseService(t)

	courseRepo.EXPECT().CompleteFinished(mock.Anything).Return(nil, nil)

	result, err := svc.CompleteFinished(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestCourseService_CompleteFinished_RepoError(t *testing.T) {
	svc, courseRepo, _, _, _ := newCourseService(t)

	courseRepo.EXPECT().CompleteFinished(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.CompleteFinished(context.Background())

	require.Error(t, err)
}

func TestCourseService_List_Success(t *testing.T) {
	svc, courseRepo, _, _, _ := newCourseService(t)

	courses := []*domain.Course{
		{ID: "c1", Name: "First Aid"},
		{ID: "c2", Name: "Defensive Driving"},
	}
	courseRepo.EXPECT().List(mock.Anything).Return(courses, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
