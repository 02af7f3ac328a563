package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stayhaven/hotel-booking/backend/internal/api/middleware"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/repositories"
)

// RoomService defines the room operations used by the handler.
type RoomService interface {
	Create(ctx context.Context, room *entities.Room, ownerEmail string) error
	GetByID(ctx context.Context, id string) (*entities.Room, error)
	List(ctx context.Context) ([]*entities.Room, error)
	ListByDistrict(ctx context.Context, district string) ([]*entities.Room, error)
	UpdateFields(ctx context.Context, id string, patch repositories.RoomPatch) (*entities.UpdateAck, error)
	Delete(ctx context.Context, id string) (*entities.DeleteAck, error)
}

// RoomHandler handles room listing HTTP requests
type RoomHandler struct {
	service RoomService
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(service RoomService) *RoomHandler {
	return &RoomHandler{
		service: service,
	}
}

// ListByDistrict handles GET /hotel-list/{place}
func (h *RoomHandler) ListByDistrict(w http.ResponseWriter, r *http.Request) {
	place := r.PathValue("place")
	if place == "" {
		respondWithError(w, http.StatusBadRequest, "district name is required")
		return
	}

	rooms, err := h.service.ListByDistrict(r.Context(), place)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, rooms)
}

// ListAll handles GET /all-rooms (owner view) and GET /manage-rooms
// (admin view); the role guard in front differs, the read does not.
func (h *RoomHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, rooms)
}

// GetRoom handles GET /hotel-book/{id} and GET /update-room-get/{id}
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "room id is required")
		return
	}

	room, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, room)
}

// CreateRoom handles POST /add-room
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var room entities.Room
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	// The listing belongs to the verified identity, not whoever the
	// payload claims.
	var ownerEmail string
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		ownerEmail = claims.Email
	}

	if err := h.service.Create(r.Context(), &room, ownerEmail); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, room)
}

// PatchRoom handles PATCH /update-room-patch/{id}
func (h *RoomHandler) PatchRoom(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "room id is required")
		return
	}

	var patch repositories.RoomPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	ack, err := h.service.UpdateFields(r.Context(), id, patch)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ack)
}

// DeleteRoom handles DELETE /all-rooms/{id} and DELETE /manage-rooms/{id}
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "room id is required")
		return
	}

	ack, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ack)
}
