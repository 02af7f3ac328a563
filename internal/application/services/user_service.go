package services

import (
	"context"
	"errors"
	"time"

	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/repositories"
	apperrors "github.com/stayhaven/hotel-booking/backend/pkg/errors"
	"github.com/stayhaven/hotel-booking/backend/pkg/password"
)

// UserService holds the user domain rules: idempotent signup, role
// promotion and credential checks for token issuance.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Signup registers a user. The email is the identity key: signing up
// an existing email is a no-op and the stored record is returned with
// created=false. New users always start as clients regardless of any
// role the caller supplied. The check-then-insert pair is not guarded
// against concurrent identical signups; the duplicate loses nothing
// but a spare record.
func (s *UserService) Signup(ctx context.Context, email, name, plaintext string) (*entities.User, bool, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Type != apperrors.ErrorTypeNotFound {
		return nil, false, err
	}

	user := &entities.User{
		Email:     email,
		Name:      name,
		Role:      entities.RoleClient,
		CreatedAt: time.Now().UTC(),
	}
	if plaintext != "" {
		hash, err := password.Hash(plaintext)
		if err != nil {
			return nil, false, apperrors.NewInternalError("failed to hash password", err)
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]*entities.User, error) {
	return s.repo.List(ctx)
}

// Promote grants the admin role to the user with the given ID.
func (s *UserService) Promote(ctx context.Context, id string) (*entities.UpdateAck, error) {
	return s.repo.SetRole(ctx, id, entities.RoleAdmin)
}

// HasRole reports whether the stored user carries the given role. An
// unknown email is simply not that role.
func (s *UserService) HasRole(ctx context.Context, email string, role entities.Role) (bool, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Type == apperrors.ErrorTypeNotFound {
			return false, nil
		}
		return false, err
	}
	return user.Role == role, nil
}

// Authenticate verifies an identity ahead of token issuance. The user
// must be registered; when the record carries a password hash the
// supplied password must match it. Passwordless records (external
// login flows) authenticate on email alone.
func (s *UserService) Authenticate(ctx context.Context, email, plaintext string) error {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Type == apperrors.ErrorTypeNotFound {
			return apperrors.NewUnauthorizedError("unknown user")
		}
		return err
	}

	if user.PasswordHash != "" && !password.Check(plaintext, user.PasswordHash) {
		return apperrors.NewUnauthorizedError("invalid credentials")
	}
	return nil
}
