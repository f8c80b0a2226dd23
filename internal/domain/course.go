package domain

import "time"

type CourseStatus string

const (
	CourseStatusOpen      CourseStatus = "open"
	CourseStatusClosed    CourseStatus = "closed"
	CourseStatusCompleted CourseStatus = "completed"
)

type Course struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Location      string       `json:"location"`
	WorkloadHours int          `json:"workload_hours"`
	StartDate     time.Time    `json:"start_date"`
	EndDate       time.Time    `json:"end_date"`
	MaxCapacity   int          `json:"max_capacity"`
	Status        CourseStatus `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type CourseDetails struct {
	Course         Course       `json:"course"`
	RemainingSeats int          `json:"remaining_seats"`
	Enrollments    []Enrollment `json:"enrollments"`
}

type CreateCourseInput struct {
	Name          string
	Description   string
	Location      string
	WorkloadHours int
	StartDate     time.Time
	EndDate       time.Time
	MaxCapacity   int
}
