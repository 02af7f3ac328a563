package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayhaven/hotel-booking/backend/internal/api/middleware"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
	apperrors "github.com/stayhaven/hotel-booking/backend/pkg/errors"
	"github.com/stayhaven/hotel-booking/backend/pkg/jwt"
)

type stubUserGetter struct {
	users map[string]*entities.User
	err   error
}

func (g *stubUserGetter) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if g.err != nil {
		return nil, g.err
	}
	user, ok := g.users[email]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return user, nil
}

func okHandler(hit *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_MissingHeader(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	var hit bool
	handler := middleware.Auth(manager)(okHandler(&hit))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, hit)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "Unauthorized access", body["message"])
}

func TestAuth_InvalidToken(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	var hit bool
	handler := middleware.Auth(manager)(okHandler(&hit))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, hit)
}

func TestAuth_ExpiredToken(t *testing.T) {
	expired := jwt.NewManager("test-secret", -time.Minute)
	manager := jwt.NewManager("test-secret", time.Hour)

	token, err := expired.Generate("a@x.com")
	require.NoError(t, err)

	var hit bool
	handler := middleware.Auth(manager)(okHandler(&hit))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, hit)
}

func TestAuth_ValidTokenAttachesClaims(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	token, err := manager.Generate("a@x.com")
	require.NoError(t, err)

	var gotEmail string
	handler := middleware.Auth(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		require.True(t, ok)
		gotEmail = claims.Email
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.com", gotEmail)
}

func authedRequest(t *testing.T, manager *jwt.Manager, email string) *http.Request {
	t.Helper()
	token, err := manager.Generate(email)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRequireRole_MatchPasses(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	users := &stubUserGetter{users: map[string]*entities.User{
		"admin@x.com": {Email: "admin@x.com", Role: entities.RoleAdmin},
	}}

	var hit bool
	handler := middleware.Auth(manager)(
		middleware.RequireRole(users, entities.RoleAdmin)(okHandler(&hit)),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, manager, "admin@x.com"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hit)
}

func TestRequireRole_WrongRoleForbidden(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	users := &stubUserGetter{users: map[string]*entities.User{
		"client@x.com": {Email: "client@x.com", Role: entities.RoleClient},
	}}

	var hit bool
	handler := middleware.Auth(manager)(
		middleware.RequireRole(users, entities.RoleAdmin)(okHandler(&hit)),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, manager, "client@x.com"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, hit)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Forbidden Access", body["message"])
}

func TestRequireRole_UnknownUserForbidden(t *testing.T) {
	// A valid token whose identity has no stored record cannot carry
	// the role.
	manager := jwt.NewManager("test-secret", time.Hour)
	users := &stubUserGetter{users: map[string]*entities.User{}}

	var hit bool
	handler := middleware.Auth(manager)(
		middleware.RequireRole(users, entities.RoleAdmin)(okHandler(&hit)),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, manager, "ghost@x.com"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, hit)
}

func TestRequireRole_RepoFailure(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	users := &stubUserGetter{err: apperrors.NewInternalError("db down", nil)}

	var hit bool
	handler := middleware.Auth(manager)(
		middleware.RequireRole(users, entities.RoleAdmin)(okHandler(&hit)),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, manager, "admin@x.com"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, hit)
}

func TestRequireRole_WithoutAuthGuard(t *testing.T) {
	users := &stubUserGetter{users: map[string]*entities.User{}}

	var hit bool
	handler := middleware.RequireRole(users, entities.RoleAdmin)(okHandler(&hit))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, hit)
}
