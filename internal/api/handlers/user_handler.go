package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stayhaven/hotel-booking/backend/internal/api/middleware"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
	apperrors "github.com/stayhaven/hotel-booking/backend/pkg/errors"
)

// UserService defines the user operations used by the handler.
type UserService interface {
	Signup(ctx context.Context, email, name, password string) (*entities.User, bool, error)
	List(ctx context.Context) ([]*entities.User, error)
	Promote(ctx context.Context, id string) (*entities.UpdateAck, error)
	HasRole(ctx context.Context, email string, role entities.Role) (bool, error)
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	service UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	// A caller-supplied role is ignored; everyone starts as a client.
	Role string `json:"role"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var payload signupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.Email == "" {
		respondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	user, created, err := h.service.Signup(r.Context(), payload.Email, payload.Name, payload.Password)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if !created {
		respondWithJSON(w, http.StatusOK, map[string]string{
			"message": "user already exists.",
		})
		return
	}

	respondWithJSON(w, http.StatusCreated, user)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

// PromoteToAdmin handles PATCH /users/admin/{id}
func (h *UserHandler) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "user id is required")
		return
	}

	ack, err := h.service.Promote(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ack)
}

// CheckAdmin handles GET /users/admin/{email}
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	h.checkRole(w, r, entities.RoleAdmin, "admin")
}

// CheckOwner handles GET /users/owner/{email}
func (h *UserHandler) CheckOwner(w http.ResponseWriter, r *http.Request) {
	h.checkRole(w, r, entities.RoleOwner, "owner")
}

// checkRole answers a self-service role probe. The path email must
// match the verified claim email: answering for someone else's email
// is rejected outright rather than reported as a false probe.
func (h *UserHandler) checkRole(w http.ResponseWriter, r *http.Request, role entities.Role, field string) {
	email := r.PathValue("email")
	if email == "" {
		respondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.Email != email {
		respondWithAppError(w, apperrors.NewForbiddenError("Forbidden Access"))
		return
	}

	has, err := h.service.HasRole(r.Context(), email, role)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{
		field: has,
	})
}
