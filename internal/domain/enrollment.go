package domain

import (
	"encoding/json"
	"time"
)

type AdmissionStatus string

const (
	AdmissionStatusPending  AdmissionStatus = "pending"
	AdmissionStatusApproved AdmissionStatus = "approved"
	AdmissionStatusRejected AdmissionStatus = "rejected"
)

// ActiveStatuses are the admission states that hold a seat or a lodging
// window: pending requests soft-reserve capacity until reviewed.
var ActiveStatuses = []AdmissionStatus{AdmissionStatusPending, AdmissionStatusApproved}

type Enrollment struct {
	ID              string          `json:"id"`
	CourseID        string          `json:"course_id"`
	UserID          string          `json:"user_id"`
	FormData        json.RawMessage `json:"form_data"`
	Status          AdmissionStatus `json:"status"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
