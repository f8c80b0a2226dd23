package ports

import "github.com/Matias7xx/portal-aluno/internal/domain"

// Authorizer is the capability predicate consulted before every mutating
// operation.
type Authorizer interface {
	CanSubmit(user *domain.User) bool
	CanReview(user *domain.User) bool
	CanManageCourses(user *domain.User) bool
}
