package ports

import (
	"context"

	"github.com/Matias7xx/portal-aluno/internal/domain"
)

// AdmissionNotifier delivers outcome messages to requesters. Calls are
// best-effort: implementations log failures and never return them.
type AdmissionNotifier interface {
	NotifyEnrollmentReceived(ctx context.Context, user *domain.User, course *domain.Course)
	NotifyEnrollmentApproved(ctx context.Context, user *domain.User, course *domain.Course)
	NotifyEnrollmentRejected(ctx context.Context, user *domain.User, course *domain.Course, reason string)
	NotifyReservationReceived(ctx context.Context, user *domain.User, reservation *domain.Reservation)
	NotifyReservationApproved(ctx context.Context, user *domain.User, reservation *domain.Reservation)
	NotifyReservationRejected(ctx context.Context, user *domain.User, reservation *domain.Reservation, reason string)
}
