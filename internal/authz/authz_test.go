package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Matias7xx/portal-aluno/internal/domain"
)

func TestRoleAuthorizer_CanSubmit(t *testing.T) {
	a := New()

	assert.True(t, a.CanSubmit(&domain.User{Role: domain.RoleStudent}))
	assert.True(t, a.CanSubmit(&domain.User{Role: domain.RoleStaff}))
	assert.True(t, a.CanSubmit(&domain.User{Role: domain.RoleAdmin}))
	assert.False(t, a.CanSubmit(&domain.User{Role: "visitor"}))
	assert.False(t, a.CanSubmit(nil))
}

func TestRoleAuthorizer_CanReview(t *testing.T) {
	a := New()

	assert.False(t, a.CanReview(&domain.User{Role: domain.RoleStudent}))
	assert.True(t, a.CanReview(&domain.User{Role: domain.RoleStaff}))
	assert.True(t, a.CanReview(&domain.User{Role: domain.RoleAdmin}))
	assert.False(t, a.CanReview(nil))
}

func TestRoleAuthorizer_CanManageCourses(t *testing.T) {
	a := New()

	assert.False(t, a.CanManageCourses(&domain.User{Role: domain.RoleStudent}))
	assert.False(t, a.CanManageCourses(&domain.User{Role: domain.RoleStaff}))
	assert.True(t, a.CanManageCourses(&domain.User{Role: domain.RoleAdmin}))
	assert.False(t, a.CanManageCourses(nil))
}
