package services

import (
	"context"
	"time"

	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/repositories"
	apperrors "github.com/stayhaven/hotel-booking/backend/pkg/errors"
)

// RoomService holds the room listing rules: a listing needs a
// district, belongs to the verified owner, and partial updates are
// limited to the allow-listed fields.
type RoomService struct {
	repo repositories.RoomRepository
}

// NewRoomService creates a new room service.
func NewRoomService(repo repositories.RoomRepository) *RoomService {
	return &RoomService{repo: repo}
}

// Create validates and stores a listing. The owner email comes from
// the verified identity, never from the payload.
func (s *RoomService) Create(ctx context.Context, room *entities.Room, ownerEmail string) error {
	if room.DistrictName == "" {
		return apperrors.NewValidationError("districtName is required")
	}

	room.ID = ""
	room.OwnerEmail = ownerEmail
	room.CreatedAt = time.Now().UTC()
	return s.repo.Create(ctx, room)
}

// GetByID retrieves one room.
func (s *RoomService) GetByID(ctx context.Context, id string) (*entities.Room, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all rooms.
func (s *RoomService) List(ctx context.Context) ([]*entities.Room, error) {
	return s.repo.List(ctx)
}

// ListByDistrict returns the rooms whose district matches exactly.
func (s *RoomService) ListByDistrict(ctx context.Context, district string) ([]*entities.Room, error) {
	return s.repo.ListByDistrict(ctx, district)
}

// UpdateFields applies a partial update. A patch with no allow-listed
// field is rejected before the store sees it.
func (s *RoomService) UpdateFields(ctx context.Context, id string, patch repositories.RoomPatch) (*entities.UpdateAck, error) {
	if patch.Empty() {
		return nil, apperrors.NewValidationError("no updatable fields in payload")
	}
	return s.repo.UpdateFields(ctx, id, patch)
}

// Delete removes a room.
func (s *RoomService) Delete(ctx context.Context, id string) (*entities.DeleteAck, error) {
	return s.repo.Delete(ctx, id)
}
