package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Matias7xx/portal-aluno/internal/domain"
	"github.com/Matias7xx/portal-aluno/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type CourseSvc interface {
	Create(ctx context.Context, actorID string, input domain.CreateCourseInput) (*domain.Course, error)
	GetDetails(ctx context.Context, id string) (*domain.CourseDetails, error)
	List(ctx context.Context) ([]*domain.Course, error)
}

type EnrollmentSvc interface {
	Submit(ctx context.Context, courseID, userID string, formData json.RawMessage) (*domain.Enrollment, error)
	Approve(ctx context.Context, enrollmentID, reviewerID string) (*domain.Enrollment, error)
	Reject(ctx context.Context, enrollmentID, reviewerID, reason string) (*domain.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error)
}

type ReservationSvc interface {
	Submit(ctx context.Context, userID string, dateStart, dateEnd time.Time, formData json.RawMessage) (*domain.Reservation, error)
	CheckAvailability(ctx context.Context, dateStart, dateEnd time.Time) (bool, error)
	Approve(ctx context.Context, reservationID, reviewerID string) (*domain.Reservation, error)
	Reject(ctx context.Context, reservationID, reviewerID, reason string) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	courseService      CourseSvc
	enrollmentService  EnrollmentSvc
	reservationService ReservationSvc
	userService        UserSvc
}

func NewHandler(courseService CourseSvc, enrollmentService EnrollmentSvc, reservationService ReservationSvc, userService UserSvc) *Handler {
	return &Handler{
		courseService:      courseService,
		enrollmentService:  enrollmentService,
		reservationService: reservationService,
		userService:        userService,
	}
}

// Courses

func (h *Handler) CreateCourse(c *ginext.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date format, expected YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date format, expected YYYY-MM-DD"})
		return
	}

	input := domain.CreateCourseInput{
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		WorkloadHours: req.WorkloadHours,
		StartDate:     startDate,
		EndDate:       endDate,
		MaxCapacity:   req.MaxCapacity,
	}

	course, err := h.courseService.Create(c.Request.Context(), req.ActorID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCourseResponse(course))
}

func (h *Handler) GetCourse(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid course id"})
		return
	}

	details, err := h.courseService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseDetailsResponse(details))
}

func (h *Handler) ListCourses(c *ginext.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, dto.ToCourseResponse(course))
	}

	c.JSON(http.StatusOK, resp)
}

// Enrollments

func (h *Handler) EnrollCourse(c *ginext.Context) {
	courseID := c.Param("id")
	if _, err := uuid.Parse(courseID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid course id"})
		return
	}

	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	enrollment, err := h.enrollmentService.Submit(c.Request.Context(), courseID, req.UserID, req.FormData)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEnrollmentResponse(enrollment))
}

func (h *Handler) ApproveEnrollment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid enrollment id"})
		return
	}

	var req dto.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	enrollment, err := h.enrollmentService.Approve(c.Request.Context(), id, req.ReviewerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnrollmentResponse(enrollment))
}

func (h *Handler) RejectEnrollment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid enrollment id"})
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	enrollment, err := h.enrollmentService.Reject(c.Request.Context(), id, req.ReviewerID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnrollmentResponse(enrollment))
}

func (h *Handler) GetUserEnrollments(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	enrollments, err := h.enrollmentService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		resp = append(resp, dto.ToEnrollmentResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	dateStart, err := time.Parse(time.DateOnly, req.DateStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date_start format, expected YYYY-MM-DD"})
		return
	}
	dateEnd, err := time.Parse(time.DateOnly, req.DateEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date_end format, expected YYYY-MM-DD"})
		return
	}

	reservation, err := h.reservationService.Submit(c.Request.Context(), req.UserID, dateStart, dateEnd, req.FormData)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	dateStart, err := time.Parse(time.DateOnly, c.Query("date_start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date_start format, expected YYYY-MM-DD"})
		return
	}
	dateEnd, err := time.Parse(time.DateOnly, c.Query("date_end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date_end format, expected YYYY-MM-DD"})
		return
	}

	available, err := h.reservationService.CheckAvailability(c.Request.Context(), dateStart, dateEnd)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		Available: available,
		DateStart: dateStart.Format(time.DateOnly),
		DateEnd:   dateEnd.Format(time.DateOnly),
	})
}

func (h *Handler) ApproveReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservation, err := h.reservationService.Approve(c.Request.Context(), id, req.ReviewerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) RejectReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservation, err := h.reservationService.Reject(c.Request.Context(), id, req.ReviewerID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) GetUserReservations(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	reservations, err := h.reservationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Name:        req.Name,
		Email:       req.Email,
		BadgeNumber: req.BadgeNumber,
		Role:        domain.Role(req.Role),
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrCourseNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrEnrollmentNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrAlreadyRequested),
		errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBusy):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
