package dto

import "encoding/json"

type CreateCourseRequest struct {
	ActorID       string `json:"actor_id" binding:"required,uuid"`
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	WorkloadHours int    `json:"workload_hours" binding:"gte=0"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	MaxCapacity   int    `json:"max_capacity" binding:"gte=0"`
}

type EnrollRequest struct {
	UserID   string          `json:"user_id" binding:"required,uuid"`
	FormData json.RawMessage `json:"form_data"`
}

type CreateReservationRequest struct {
	UserID    string          `json:"user_id" binding:"required,uuid"`
	DateStart string          `json:"date_start" binding:"required"`
	DateEnd   string          `json:"date_end" binding:"required"`
	FormData  json.RawMessage `json:"form_data"`
}

type ApproveRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required,uuid"`
}

type RejectRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required,uuid"`
	Reason     string `json:"reason" binding:"required"`
}

type CreateUserRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	BadgeNumber string `json:"badge_number"`
	Role        string `json:"role"`
}
