package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// Authenticator verifies an identity ahead of token issuance.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) error
}

// TokenGenerator signs a bearer token for an email.
type TokenGenerator interface {
	Generate(email string) (string, error)
}

// TokenHandler issues signed bearer tokens.
type TokenHandler struct {
	users  Authenticator
	tokens TokenGenerator
}

// NewTokenHandler creates a new token handler.
func NewTokenHandler(users Authenticator, tokens TokenGenerator) *TokenHandler {
	return &TokenHandler{
		users:  users,
		tokens: tokens,
	}
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IssueToken handles POST /jwt
func (h *TokenHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.Email == "" {
		respondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.users.Authenticate(r.Context(), payload.Email, payload.Password); err != nil {
		respondWithAppError(w, err)
		return
	}

	token, err := h.tokens.Generate(payload.Email)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"token": token,
	})
}
