package repositories

import (
	"context"

	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
)

// RoomPatch carries the allow-listed fields of a partial room update.
// Nil fields are left untouched; nothing outside this set is ever
// written by the public interface.
type RoomPatch struct {
	HotelImage         *string  `json:"hotelImage"`
	TwoBedAvailable    *bool    `json:"twoBedAvailable"`
	DeluxeAvailable    *bool    `json:"deluxeAvailable"`
	PenthouseAvailable *bool    `json:"penthouseAvailable"`
	TwoBedPrice        *float64 `json:"twoBedPrice"`
	DeluxePrice        *float64 `json:"deluxePrice"`
	PenthousePrice     *float64 `json:"penthousePrice"`
	Ratings            *float64 `json:"ratings"`
	Description        *string  `json:"description"`
}

// Empty reports whether the patch carries no allow-listed field.
func (p RoomPatch) Empty() bool {
	return p.HotelImage == nil &&
		p.TwoBedAvailable == nil &&
		p.DeluxeAvailable == nil &&
		p.PenthouseAvailable == nil &&
		p.TwoBedPrice == nil &&
		p.DeluxePrice == nil &&
		p.PenthousePrice == nil &&
		p.Ratings == nil &&
		p.Description == nil
}

// RoomRepository defines the interface for room listing operations
type RoomRepository interface {
	// Create inserts a new room and fills in its assigned ID
	Create(ctx context.Context, room *entities.Room) error

	// GetByID retrieves a room by ID
	GetByID(ctx context.Context, id string) (*entities.Room, error)

	// List retrieves all rooms
	List(ctx context.Context) ([]*entities.Room, error)

	// ListByDistrict retrieves rooms whose district matches exactly
	ListByDistrict(ctx context.Context, district string) ([]*entities.Room, error)

	// UpdateFields applies a partial update to the allow-listed fields
	UpdateFields(ctx context.Context, id string, patch RoomPatch) (*entities.UpdateAck, error)

	// Delete removes a room by ID
	Delete(ctx context.Context, id string) (*entities.DeleteAck, error)
}
