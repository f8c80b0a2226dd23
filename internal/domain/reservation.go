package domain

import (
	"encoding/json"
	"time"
)

// Reservation is a request for the shared lodging facility over an
// inclusive [DateStart, DateEnd] interval. Approved reservations are
// pairwise non-overlapping.
type Reservation struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	FormData        json.RawMessage `json:"form_data"`
	DateStart       time.Time       `json:"date_start"`
	DateEnd         time.Time       `json:"date_end"`
	Status          AdmissionStatus `json:"status"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Nights reports the duration of the stay in days, endpoints inclusive.
func (r *Reservation) Nights() int {
	return int(r.DateEnd.Sub(r.DateStart).Hours()/24) + 1
}
