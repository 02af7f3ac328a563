package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/repositories"
	"github.com/stayhaven/hotel-booking/backend/internal/infrastructure/clients/mongodb"
	apperrors "github.com/stayhaven/hotel-booking/backend/pkg/errors"
)

const bookingsCollection = "bookingList"

// BookingAdapter implements booking persistence in MongoDB.
type BookingAdapter struct {
	col *mongo.Collection
}

// NewBookingAdapter creates a new booking adapter.
func NewBookingAdapter(client *mongodb.Client) repositories.BookingRepository {
	return &BookingAdapter{
		col: client.Collection(bookingsCollection),
	}
}

type bookingDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	RoomID    string             `bson:"roomId"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *bookingDocument) toEntity() *entities.Booking {
	return &entities.Booking{
		ID:        d.ID.Hex(),
		Email:     d.Email,
		RoomID:    d.RoomID,
		Status:    entities.BookingStatus(d.Status),
		CreatedAt: d.CreatedAt,
	}
}

// Create inserts a booking record.
func (a *BookingAdapter) Create(ctx context.Context, booking *entities.Booking) error {
	doc := bookingDocument{
		Email:     booking.Email,
		RoomID:    booking.RoomID,
		Status:    string(booking.Status),
		CreatedAt: booking.CreatedAt,
	}

	result, err := a.col.InsertOne(ctx, doc)
	if err != nil {
		return apperrors.NewInternalError("failed to create booking", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid.Hex()
	}
	return nil
}

// List retrieves all bookings.
func (a *BookingAdapter) List(ctx context.Context) ([]*entities.Booking, error) {
	return a.find(ctx, bson.M{})
}

// ListByEmail retrieves bookings for the given user email.
func (a *BookingAdapter) ListByEmail(ctx context.Context, email string) ([]*entities.Booking, error) {
	return a.find(ctx, bson.M{"email": email})
}

func (a *BookingAdapter) find(ctx context.Context, filter bson.M) ([]*entities.Booking, error) {
	cursor, err := a.col.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list bookings", err)
	}
	defer cursor.Close(ctx)

	bookings := []*entities.Booking{}
	for cursor.Next(ctx) {
		var doc bookingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, apperrors.NewInternalError("failed to decode booking", err)
		}
		bookings = append(bookings, doc.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, apperrors.NewInternalError("booking cursor failed", err)
	}
	return bookings, nil
}

// Cancel sets the booking status to Canceled. The transition is
// one-way; re-canceling matches the record but modifies nothing.
func (a *BookingAdapter) Cancel(ctx context.Context, id string) (*entities.UpdateAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid booking id")
	}

	result, err := a.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(entities.BookingStatusCanceled)}},
	)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to cancel booking", err)
	}

	return &entities.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}
