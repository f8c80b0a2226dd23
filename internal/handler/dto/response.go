package dto

import (
	"encoding/json"
	"time"

	"github.com/Matias7xx/portal-aluno/internal/domain"
)

type CourseResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	WorkloadHours int    `json:"workload_hours"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	MaxCapacity   int    `json:"max_capacity"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type CourseDetailsResponse struct {
	Course         CourseResponse       `json:"course"`
	RemainingSeats int                  `json:"remaining_seats"`
	Enrollments    []EnrollmentResponse `json:"enrollments"`
}

type EnrollmentResponse struct {
	ID              string          `json:"id"`
	CourseID        string          `json:"course_id"`
	UserID          string          `json:"user_id"`
	FormData        json.RawMessage `json:"form_data,omitempty"`
	Status          string          `json:"status"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

type ReservationResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	FormData        json.RawMessage `json:"form_data,omitempty"`
	DateStart       string          `json:"date_start"`
	DateEnd         string          `json:"date_end"`
	Status          string          `json:"status"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
}

type UserResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	BadgeNumber string `json:"badge_number,omitempty"`
	Role        string `json:"role"`
	CreatedAt   string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToCourseResponse(c *domain.Course) CourseResponse {
	return CourseResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		Location:      c.Location,
		WorkloadHours: c.WorkloadHours,
		StartDate:     c.StartDate.Format(time.DateOnly),
		EndDate:       c.EndDate.Format(time.DateOnly),
		MaxCapacity:   c.MaxCapacity,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
	}
}

func ToCourseDetailsResponse(d *domain.CourseDetails) CourseDetailsResponse {
	enrollments := make([]EnrollmentResponse, 0, len(d.Enrollments))
	for _, e := range d.Enrollments {
		enrollments = append(enrollments, ToEnrollmentResponse(&e))
	}

	return CourseDetailsResponse{
		Course:         ToCourseResponse(&d.Course),
		RemainingSeats: d.RemainingSeats,
		Enrollments:    enrollments,
	}
}

func ToEnrollmentResponse(e *domain.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:              e.ID,
		CourseID:        e.CourseID,
		UserID:          e.UserID,
		FormData:        e.FormData,
		Status:          string(e.Status),
		RejectionReason: e.RejectionReason,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		FormData:        r.FormData,
		DateStart:       r.DateStart.Format(time.DateOnly),
		DateEnd:         r.DateEnd.Format(time.DateOnly),
		Status:          string(r.Status),
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		BadgeNumber: u.BadgeNumber,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}
