package service

import (
	"context"
	"testing"

	"github.com/Matias7xx/portal-aluno/internal/domain"
	"github.com/Matias7xx/portal-aluno/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateUserInput{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		Role:  domain.RoleStaff,
	}
	user, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, user.Role)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_DefaultsToStudent(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateUserInput{Name: "Ana Souza", Email: "ana@example.com"}
	user, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, user.Role)
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	input := domain.CreateUserInput{Name: "Ana", Email: "ana@example.com", Role: "superuser"}
	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_MissingEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Name: "Ana"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	input := domain.CreateUserInput{Name: "Ana", Email: "ana@example.com"}
	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_GetByID_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	user := &domain.User{ID: "u1", Name: "Ana"}
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	result, err := svc.GetByID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", result.ID)
}

func TestUserService_List_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	users := []*domain.User{{ID: "u1"}, {ID: "u2"}}
	userRepo.EXPECT().List(mock.Anything).Return(users, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
