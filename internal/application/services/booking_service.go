package services

import (
	"context"
	"time"

	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/repositories"
	apperrors "github.com/stayhaven/hotel-booking/backend/pkg/errors"
)

// BookingService holds the booking domain rules.
type BookingService struct {
	repo repositories.BookingRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(repo repositories.BookingRepository) *BookingService {
	return &BookingService{repo: repo}
}

// Create stores a booking. The status is forced to Booked at creation;
// the public interface never accepts a caller-supplied status.
func (s *BookingService) Create(ctx context.Context, booking *entities.Booking) error {
	if booking.Email == "" {
		return apperrors.NewValidationError("email is required")
	}
	if booking.RoomID == "" {
		return apperrors.NewValidationError("roomId is required")
	}

	booking.Status = entities.BookingStatusBooked
	booking.CreatedAt = time.Now().UTC()
	return s.repo.Create(ctx, booking)
}

// List returns all bookings.
func (s *BookingService) List(ctx context.Context) ([]*entities.Booking, error) {
	return s.repo.List(ctx)
}

// ListByEmail returns the bookings for one user email.
func (s *BookingService) ListByEmail(ctx context.Context, email string) ([]*entities.Booking, error) {
	return s.repo.ListByEmail(ctx, email)
}

// Cancel sets a booking's status to Canceled. Canceling twice is
// idempotent; the second ack reports zero modifications.
func (s *BookingService) Cancel(ctx context.Context, id string) (*entities.UpdateAck, error) {
	return s.repo.Cancel(ctx, id)
}
