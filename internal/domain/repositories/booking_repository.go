package repositories

import (
	"context"

	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
)

// BookingRepository defines the interface for booking operations
type BookingRepository interface {
	// Create inserts a new booking and fills in its assigned ID
	Create(ctx context.Context, booking *entities.Booking) error

	// List retrieves all bookings
	List(ctx context.Context) ([]*entities.Booking, error)

	// ListByEmail retrieves bookings for the given user email
	ListByEmail(ctx context.Context, email string) ([]*entities.Booking, error)

	// Cancel sets the booking status to Canceled. Canceling an already
	// canceled booking is a no-op reported through the ack counts.
	Cancel(ctx context.Context, id string) (*entities.UpdateAck, error)
}
