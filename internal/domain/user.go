package domain

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	BadgeNumber string    `json:"badge_number"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Name        string
	Email       string
	BadgeNumber string
	Role        Role
}
