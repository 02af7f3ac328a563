package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayhaven/hotel-booking/backend/internal/application/services"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
	apperrors "github.com/stayhaven/hotel-booking/backend/pkg/errors"
	"github.com/stayhaven/hotel-booking/backend/pkg/password"
)

type stubUserRepo struct {
	users map[string]*entities.User

	created  []*entities.User
	setRoles map[string]entities.Role
	err      error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:    map[string]*entities.User{},
		setRoles: map[string]entities.Role{},
	}
}

func (r *stubUserRepo) Create(ctx context.Context, user *entities.User) error {
	if r.err != nil {
		return r.err
	}
	user.ID = "generated-id"
	r.created = append(r.created, user)
	r.users[user.Email] = user
	return nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[email]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return user, nil
}

func (r *stubUserRepo) List(ctx context.Context) ([]*entities.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	users := make([]*entities.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *stubUserRepo) SetRole(ctx context.Context, id string, role entities.Role) (*entities.UpdateAck, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.setRoles[id] = role
	return &entities.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestUserService_Signup_NewUserStartsAsClient(t *testing.T) {
	repo := newStubUserRepo()
	service := services.NewUserService(repo)

	user, created, err := service.Signup(context.Background(), "a@x.com", "Alice", "hunter2")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entities.RoleClient, user.Role)
	assert.Equal(t, "a@x.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
	assert.True(t, password.Check("hunter2", user.PasswordHash))
}

func TestUserService_Signup_ExistingEmailIsNoOp(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["a@x.com"] = &entities.User{ID: "u1", Email: "a@x.com", Role: entities.RoleOwner}
	service := services.NewUserService(repo)

	user, created, err := service.Signup(context.Background(), "a@x.com", "Impostor", "pw")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, entities.RoleOwner, user.Role)
	assert.Empty(t, repo.created, "no record should be written for an existing email")
}

func TestUserService_Signup_PasswordlessUser(t *testing.T) {
	repo := newStubUserRepo()
	service := services.NewUserService(repo)

	user, created, err := service.Signup(context.Background(), "a@x.com", "Alice", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_Promote_SetsAdminRole(t *testing.T) {
	repo := newStubUserRepo()
	service := services.NewUserService(repo)

	ack, err := service.Promote(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, ack.Acknowledged)
	assert.Equal(t, entities.RoleAdmin, repo.setRoles["u1"])
}

func TestUserService_HasRole(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["admin@x.com"] = &entities.User{Email: "admin@x.com", Role: entities.RoleAdmin}
	service := services.NewUserService(repo)

	has, err := service.HasRole(context.Background(), "admin@x.com", entities.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = service.HasRole(context.Background(), "admin@x.com", entities.RoleOwner)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestUserService_HasRole_UnknownEmailIsFalse(t *testing.T) {
	repo := newStubUserRepo()
	service := services.NewUserService(repo)

	has, err := service.HasRole(context.Background(), "ghost@x.com", entities.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestUserService_Authenticate(t *testing.T) {
	hash, err := password.Hash("hunter2")
	require.NoError(t, err)

	repo := newStubUserRepo()
	repo.users["a@x.com"] = &entities.User{Email: "a@x.com", PasswordHash: hash}
	repo.users["sso@x.com"] = &entities.User{Email: "sso@x.com"}
	service := services.NewUserService(repo)

	assert.NoError(t, service.Authenticate(context.Background(), "a@x.com", "hunter2"))

	err = service.Authenticate(context.Background(), "a@x.com", "wrong")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)

	err = service.Authenticate(context.Background(), "ghost@x.com", "whatever")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)

	// Passwordless records authenticate on email alone.
	assert.NoError(t, service.Authenticate(context.Background(), "sso@x.com", ""))
}
