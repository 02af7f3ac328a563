package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayhaven/hotel-booking/backend/internal/application/services"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
	apperrors "github.com/stayhaven/hotel-booking/backend/pkg/errors"
)

type stubBookingRepo struct {
	created  []*entities.Booking
	canceled []string
}

func (r *stubBookingRepo) Create(ctx context.Context, booking *entities.Booking) error {
	booking.ID = "generated-id"
	r.created = append(r.created, booking)
	return nil
}

func (r *stubBookingRepo) List(ctx context.Context) ([]*entities.Booking, error) {
	return r.created, nil
}

func (r *stubBookingRepo) ListByEmail(ctx context.Context, email string) ([]*entities.Booking, error) {
	var out []*entities.Booking
	for _, b := range r.created {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) Cancel(ctx context.Context, id string) (*entities.UpdateAck, error) {
	r.canceled = append(r.canceled, id)
	return &entities.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestBookingService_Create_ForcesBookedStatus(t *testing.T) {
	repo := &stubBookingRepo{}
	service := services.NewBookingService(repo)

	booking := &entities.Booking{
		Email:  "a@x.com",
		RoomID: "r1",
		Status: entities.BookingStatusCanceled,
	}
	err := service.Create(context.Background(), booking)
	require.NoError(t, err)

	assert.Equal(t, entities.BookingStatusBooked, booking.Status)
	assert.False(t, booking.CreatedAt.IsZero())
	require.Len(t, repo.created, 1)
}

func TestBookingService_Create_RequiresEmailAndRoom(t *testing.T) {
	repo := &stubBookingRepo{}
	service := services.NewBookingService(repo)

	var appErr *apperrors.AppError

	err := service.Create(context.Background(), &entities.Booking{RoomID: "r1"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

	err = service.Create(context.Background(), &entities.Booking{Email: "a@x.com"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

	assert.Empty(t, repo.created)
}

func TestBookingService_ListByEmail(t *testing.T) {
	repo := &stubBookingRepo{}
	service := services.NewBookingService(repo)

	require.NoError(t, service.Create(context.Background(), &entities.Booking{Email: "a@x.com", RoomID: "r1"}))
	require.NoError(t, service.Create(context.Background(), &entities.Booking{Email: "b@x.com", RoomID: "r2"}))

	bookings, err := service.ListByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "r1", bookings[0].RoomID)
}

func TestBookingService_Cancel(t *testing.T) {
	repo := &stubBookingRepo{}
	service := services.NewBookingService(repo)

	ack, err := service.Cancel(context.Background(), "b1")
	require.NoError(t, err)
	assert.True(t, ack.Acknowledged)
	assert.Equal(t, []string{"b1"}, repo.canceled)
}
