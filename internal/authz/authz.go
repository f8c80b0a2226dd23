package authz

import "github.com/Matias7xx/portal-aluno/internal/domain"

// RoleAuthorizer maps the portal's enumerated roles onto admission
// capabilities. Roles come from the users table; there is no per-resource
// permission storage.
type RoleAuthorizer struct{}

func New() *RoleAuthorizer {
	return &RoleAuthorizer{}
}

// CanSubmit allows any known role to request admission for themselves.
func (a *RoleAuthorizer) CanSubmit(user *domain.User) bool {
	if user == nil {
		return false
	}
	switch user.Role {
	case domain.RoleStudent, domain.RoleStaff, domain.RoleAdmin:
		return true
	}
	return false
}

// CanReview allows staff and admins to approve or reject requests.
func (a *RoleAuthorizer) CanReview(user *domain.User) bool {
	if user == nil {
		return false
	}
	return user.Role == domain.RoleStaff || user.Role == domain.RoleAdmin
}

// CanManageCourses allows admins to create courses.
func (a *RoleAuthorizer) CanManageCourses(user *domain.User) bool {
	return user != nil && user.Role == domain.RoleAdmin
}
