package domain

import "errors"

var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrAlreadyRequested = errors.New("an active request already exists")
	ErrInvalidState     = errors.New("invalid state for this operation")
	ErrInvalidRange     = errors.New("invalid date range")
	ErrForbidden        = errors.New("operation not allowed")
	ErrBusy             = errors.New("resource is busy, try again")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
