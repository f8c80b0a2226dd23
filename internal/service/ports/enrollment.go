package ports

import (
	"context"

	"github.com/Matias7xx/portal-aluno/internal/domain"
)

type EnrollmentRepo interface {
	// Create checks remaining capacity and inserts the pending record
	// inside one transaction holding the course row lock.
	Create(ctx context.Context, e *domain.Enrollment) error
	GetByID(ctx context.Context, id string) (*domain.Enrollment, error)
	// Approve re-validates capacity under the course row lock before
	// moving a pending enrollment to approved.
	Approve(ctx context.Context, id string) (*domain.Enrollment, error)
	Reject(ctx context.Context, id, reason string) (*domain.Enrollment, error)
	ListByCourse(ctx context.Context, courseID string) ([]*domain.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error)
}
