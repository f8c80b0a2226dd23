package ports

import (
	"context"

	"github.com/Matias7xx/portal-aluno/internal/domain"
)

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	GetDetails(ctx context.Context, courseID string) (*domain.CourseDetails, error)
	CompleteFinished(ctx context.Context) ([]*domain.Course, error)
}
