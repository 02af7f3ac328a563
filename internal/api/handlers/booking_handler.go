package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stayhaven/hotel-booking/backend/internal/api/middleware"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
)

// BookingService defines the booking operations used by the handler.
type BookingService interface {
	Create(ctx context.Context, booking *entities.Booking) error
	List(ctx context.Context) ([]*entities.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]*entities.Booking, error)
	Cancel(ctx context.Context, id string) (*entities.UpdateAck, error)
}

// BookingHandler handles booking HTTP requests
type BookingHandler struct {
	service BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{
		service: service,
	}
}

// CreateBooking handles POST /booking-collection
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var booking entities.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	// Default the booking to the verified identity when the payload
	// omits an email.
	if booking.Email == "" {
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			booking.Email = claims.Email
		}
	}
	booking.ID = ""

	if err := h.service.Create(r.Context(), &booking); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, booking)
}

// ListBookings handles GET /all-bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, bookings)
}

// ListBookingsByEmail handles GET /own-bookings-get/{email}
func (h *BookingHandler) ListBookingsByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	if email == "" {
		respondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	bookings, err := h.service.ListByEmail(r.Context(), email)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, bookings)
}

// CancelBooking handles PATCH /own-bookings-patch/{id}
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "booking id is required")
		return
	}

	ack, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ack)
}
