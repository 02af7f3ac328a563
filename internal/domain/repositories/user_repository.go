package repositories

import (
	"context"

	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create inserts a new user and fills in its assigned ID
	Create(ctx context.Context, user *entities.User) error

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*entities.User, error)

	// List retrieves all users
	List(ctx context.Context) ([]*entities.User, error)

	// SetRole updates the role of the user with the given ID
	SetRole(ctx context.Context, id string, role entities.Role) (*entities.UpdateAck, error)
}
