package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Matias7xx/portal-aluno/internal/domain"
	"github.com/Matias7xx/portal-aluno/internal/handler/dto"
	hmocks "github.com/Matias7xx/portal-aluno/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockCourseSvc, *hmocks.MockEnrollmentSvc, *hmocks.MockReservationSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	courseSvc := hmocks.NewMockCourseSvc(t)
	enrollmentSvc := hmocks.NewMockEnrollmentSvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(courseSvc, enrollmentSvc, reservationSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/courses", h.CreateCourse)
		api.GET("/courses", h.ListCourses)
		api.GET("/courses/:id", h.GetCourse)
		api.POST("/courses/:id/enroll", h.EnrollCourse)
		api.POST("/enrollments/:id/approve", h.ApproveEnrollment)
		api.POST("/enrollments/:id/reject", h.RejectEnrollment)
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/availability", h.CheckAvailability)
		api.POST("/reservations/:id/approve", h.ApproveReservation)
		api.POST("/reservations/:id/reject", h.RejectReservation)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/enrollments", h.GetUserEnrollments)
		api.GET("/users/:id/reservations", h.GetUserReservations)
	}

	return courseSvc, enrollmentSvc, reservationSvc, userSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Courses ---

func TestHandler_CreateCourse_Success(t *testing.T) {
	courseSvc, _, _, _, r := setupRouter(t)

	course := &domain.Course{
		ID:          uuid.New().String(),
		Name:        "First Aid",
		StartDate:   time.Now().AddDate(0, 1, 0),
		EndDate:     time.Now().AddDate(0, 2, 0),
		MaxCapacity: 30,
		Status:      domain.CourseStatusOpen,
		CreatedAt:   time.Now(),
	}

	courseSvc.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(course, nil)

	body := dto.CreateCourseRequest{
		ActorID:     uuid.New().String(),
		Name:        "First Aid",
		StartDate:   "2026-04-01",
		EndDate:     "2026-04-30",
		MaxCapacity: 30,
	}
	w := doJSON(t, r, http.MethodPost, "/api/courses", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CourseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "First Aid", resp.Name)
	assert.Equal(t, "open", resp.Status)
}

func TestHandler_CreateCourse_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/courses", map[string]string{"name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateCourse_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := dto.CreateCourseRequest{
		ActorID:   uuid.New().String(),
		Name:      "First Aid",
		StartDate: "not-a-date",
		EndDate:   "2026-04-30",
	}
	w := doJSON(t, r, http.MethodPost, "/api/courses", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateCourse_Forbidden(t *testing.T) {
	courseSvc, _, _, _, r := setupRouter(t)

	courseSvc.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrForbidden)

	body := dto.CreateCourseRequest{
		ActorID:   uuid.New().String(),
		Name:      "First Aid",
		StartDate: "2026-04-01",
		EndDate:   "2026-04-30",
	}
	w := doJSON(t, r, http.MethodPost, "/api/courses", body)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetCourse_Success(t *testing.T) {
	courseSvc, _, _, _, r := setupRouter(t)

	courseID := uuid.New().String()
	details := &domain.CourseDetails{
		Course:         domain.Course{ID: courseID, Name: "First Aid", MaxCapacity: 30, Status: domain.CourseStatusOpen},
		RemainingSeats: 28,
		Enrollments:    []domain.Enrollment{},
	}

	courseSvc.EXPECT().GetDetails(mock.Anything, courseID).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/courses/"+courseID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CourseDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 28, resp.RemainingSeats)
}

func TestHandler_GetCourse_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/courses/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCourse_NotFound(t *testing.T) {
	courseSvc, _, _, _, r := setupRouter(t)

	courseID := uuid.New().String()
	courseSvc.EXPECT().GetDetails(mock.Anything, courseID).Return(nil, domain.ErrCourseNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/courses/"+courseID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Enrollments ---

func TestHandler_EnrollCourse_Success(t *testing.T) {
	_, enrollmentSvc, _, _, r := setupRouter(t)

	courseID := uuid.New().String()
	userID := uuid.New().String()
	enrollment := &domain.Enrollment{
		ID:        uuid.New().String(),
		CourseID:  courseID,
		UserID:    userID,
		Status:    domain.AdmissionStatusPending,
		CreatedAt: time.Now(),
	}

	enrollmentSvc.EXPECT().Submit(mock.Anything, courseID, userID, mock.Anything).Return(enrollment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/courses/"+courseID+"/enroll", dto.EnrollRequest{UserID: userID})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EnrollmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_EnrollCourse_CapacityExceeded(t *testing.T) {
	_, enrollmentSvc, _, _, r := setupRouter(t)

	courseID := uuid.New().String()
	userID := uuid.New().String()

	enrollmentSvc.EXPECT().Submit(mock.Anything, courseID, userID, mock.Anything).Return(nil, domain.ErrCapacityExceeded)

	w := doJSON(t, r, http.MethodPost, "/api/courses/"+courseID+"/enroll", dto.EnrollRequest{UserID: userID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_EnrollCourse_AlreadyRequested(t *testing.T) {
	_, enrollmentSvc, _, _, r := setupRouter(t)

	courseID := uuid.New().String()
	userID := uuid.New().String()

	enrollmentSvc.EXPECT().Submit(mock.Anything, courseID, userID, mock.Anything).Return(nil, domain.ErrAlreadyRequested)

	w := doJSON(t, r, http.MethodPost, "/api/courses/"+courseID+"/enroll", dto.EnrollRequest{UserID: userID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_EnrollCourse_Busy(t *testing.T) {
	_, enrollmentSvc, _, _, r := setupRouter(t)

	courseID := uuid.New().String()
	userID := uuid.New().String()

	enrollmentSvc.EXPECT().Submit(mock.Anything, courseID, userID, mock.Anything).Return(nil, domain.ErrBusy)

	w := doJSON(t, r, http.MethodPost, "/api/courses/"+courseID+"/enroll", dto.EnrollRequest{UserID: userID})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_EnrollCourse_InvalidCourseID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/courses/bad/enroll", dto.EnrollRequest{UserID: uuid.New().String()})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApproveEnrollment_Success(t *testing.T) {
	_, enrollmentSvc, _, _, r := setupRouter(t)

	enrollmentID := uuid.New().String()
	reviewerID := uuid.New().String()
	approved := &domain.Enrollment{
		ID:        enrollmentID,
		CourseID:  uuid.New().String(),
		UserID:    uuid.New().String(),
		Status:    domain.AdmissionStatusApproved,
		CreatedAt: time.Now(),
	}

	enrollmentSvc.EXPECT().Approve(mock.Anything, enrollmentID, reviewerID).Return(approved, nil)

	w := doJSON(t, r, http.MethodPost, "/api/enrollments/"+enrollmentID+"/approve", dto.ApproveRequest{ReviewerID: reviewerID})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EnrollmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
}

func TestHandler_ApproveEnrollment_AlreadyDecided(t *testing.T) {
	_, enrollmentSvc, _, _, r := setupRouter(t)

	enrollmentID := uuid.New().String()
	reviewerID := uuid.New().String()

	enrollmentSvc.EXPECT().Approve(mock.Anything, enrollmentID, reviewerID).Return(nil, domain.ErrInvalidState)

	w := doJSON(t, r, http.MethodPost, "/api/enrollments/"+enrollmentID+"/approve", dto.ApproveRequest{ReviewerID: reviewerID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RejectEnrollment_Success(t *testing.T) {
	_, enrollmentSvc, _, _, r := setupRouter(t)

	enrollmentID := uuid.New().String()
	reviewerID := uuid.New().String()
	rejected := &domain.Enrollment{
		ID:              enrollmentID,
		CourseID:        uuid.New().String(),
		UserID:          uuid.New().String(),
		Status:          domain.AdmissionStatusRejected,
		RejectionReason: "missing documents",
		CreatedAt:       time.Now(),
	}

	enrollmentSvc.EXPECT().Reject(mock.Anything, enrollmentID, reviewerID, "missing documents").Return(rejected, nil)

	w := doJSON(t, r, http.MethodPost, "/api/enrollments/"+enrollmentID+"/reject", dto.RejectRequest{ReviewerID: reviewerID, Reason: "missing documents"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EnrollmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "missing documents", resp.RejectionReason)
}

func TestHandler_RejectEnrollment_MissingReason(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	enrollmentID := uuid.New().String()
	body := map[string]string{"reviewer_id": uuid.New().String()}

	w := doJSON(t, r, http.MethodPost, "/api/enrollments/"+enrollmentID+"/reject", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	_, _, reservationSvc, _, r := setupRouter(t)

	userID := uuid.New().String()
	reservation := &domain.Reservation{
		ID:        uuid.New().String(),
		UserID:    userID,
		DateStart: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		DateEnd:   time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		Status:    domain.AdmissionStatusPending,
		CreatedAt: time.Now(),
	}

	reservationSvc.EXPECT().Submit(mock.Anything, userID, mock.Anything, mock.Anything, mock.Anything).Return(reservation, nil)

	body := dto.CreateReservationRequest{
		UserID:    userID,
		DateStart: "2026-03-10",
		DateEnd:   "2026-03-14",
	}
	w := doJSON(t, r, http.MethodPost, "/api/reservations", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2026-03-10", resp.DateStart)
}

func TestHandler_CreateReservation_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := dto.CreateReservationRequest{
		UserID:    uuid.New().String(),
		DateStart: "10/03/2026",
		DateEnd:   "2026-03-14",
	}
	w := doJSON(t, r, http.MethodPost, "/api/reservations", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_InvalidRange(t *testing.T) {
	_, _, reservationSvc, _, r := setupRouter(t)

	userID := uuid.New().String()
	reservationSvc.EXPECT().Submit(mock.Anything, userID, mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidRange)

	body := dto.CreateReservationRequest{
		UserID:    userID,
		DateStart: "2026-03-14",
		DateEnd:   "2026-03-10",
	}
	w := doJSON(t, r, http.MethodPost, "/api/reservations", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_DatesConflict(t *testing.T) {
	_, _, reservationSvc, _, r := setupRouter(t)

	userID := uuid.New().String()
	reservationSvc.EXPECT().Submit(mock.Anything, userID, mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrCapacityExceeded)

	body := dto.CreateReservationRequest{
		UserID:    userID,
		DateStart: "2026-03-10",
		DateEnd:   "2026-03-14",
	}
	w := doJSON(t, r, http.MethodPost, "/api/reservations", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CheckAvailability_Success(t *testing.T) {
	_, _, reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().CheckAvailability(mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	w := doJSON(t, r, http.MethodGet, "/api/reservations/availability?date_start=2026-03-10&date_end=2026-03-14", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
}

func TestHandler_CheckAvailability_MissingDates(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/reservations/availability", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApproveReservation_Conflict(t *testing.T) {
	_, _, reservationSvc, _, r := setupRouter(t)

	reservationID := uuid.New().String()
	reviewerID := uuid.New().String()

	reservationSvc.EXPECT().Approve(mock.Anything, reservationID, reviewerID).Return(nil, domain.ErrCapacityExceeded)

	w := doJSON(t, r, http.MethodPost, "/api/reservations/"+reservationID+"/approve", dto.ApproveRequest{ReviewerID: reviewerID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RejectReservation_Success(t *testing.T) {
	_, _, reservationSvc, _, r := setupRouter(t)

	reservationID := uuid.New().String()
	reviewerID := uuid.New().String()
	rejected := &domain.Reservation{
		ID:              reservationID,
		UserID:          uuid.New().String(),
		DateStart:       time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		DateEnd:         time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		Status:          domain.AdmissionStatusRejected,
		RejectionReason: "dates unavailable",
		CreatedAt:       time.Now(),
	}

	reservationSvc.EXPECT().Reject(mock.Anything, reservationID, reviewerID, "dates unavailable").Return(rejected, nil)

	w := doJSON(t, r, http.MethodPost, "/api/reservations/"+reservationID+"/reject", dto.RejectRequest{ReviewerID: reviewerID, Reason: "dates unavailable"})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      "Ana Souza",
		Email:     "ana@example.com",
		Role:      domain.RoleStudent,
		CreatedAt: time.Now(),
	}

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body := dto.CreateUserRequest{Name: "Ana Souza", Email: "ana@example.com"}
	w := doJSON(t, r, http.MethodPost, "/api/users", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "student", resp.Role)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	body := dto.CreateUserRequest{Name: "Ana Souza", Email: "ana@example.com"}
	w := doJSON(t, r, http.MethodPost, "/api/users", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserEnrollments_Success(t *testing.T) {
	_, enrollmentSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	enrollments := []*domain.Enrollment{
		{ID: uuid.New().String(), CourseID: uuid.New().String(), UserID: userID, Status: domain.AdmissionStatusApproved, CreatedAt: time.Now()},
	}

	enrollmentSvc.EXPECT().ListByUser(mock.Anything, userID).Return(enrollments, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+userID+"/enrollments", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EnrollmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserReservations_Success(t *testing.T) {
	_, _, reservationSvc, _, r := setupRouter(t)

	userID := uuid.New().String()
	reservations := []*domain.Reservation{
		{
			ID:        uuid.New().String(),
			UserID:    userID,
			DateStart: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			DateEnd:   time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
			Status:    domain.AdmissionStatusPending,
			CreatedAt: time.Now(),
		},
	}

	reservationSvc.EXPECT().ListByUser(mock.Anything, userID).Return(reservations, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+userID+"/reservations", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}
