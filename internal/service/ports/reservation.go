package ports

import (
	"context"
	"time"

	"github.com/Matias7xx/portal-aluno/internal/domain"
)

type ReservationRepo interface {
	// Create checks the requested window against approved reservations and
	// inserts the pending record inside one transaction holding the lodging
	// lock.
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// HasConflict reports whether any approved reservation other than
	// excludeID intersects the inclusive [start, end] interval.
	HasConflict(ctx context.Context, start, end time.Time, excludeID string) (bool, error)
	// Approve re-validates the interval under the lodging lock before
	// moving a pending reservation to approved.
	Approve(ctx context.Context, id string) (*domain.Reservation, error)
	Reject(ctx context.Context, id, reason string) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
}
