package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayhaven/hotel-booking/backend/internal/api/handlers"
	"github.com/stayhaven/hotel-booking/backend/internal/api/middleware"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
	"github.com/stayhaven/hotel-booking/backend/pkg/jwt"
)

type stubUserService struct {
	signupUser    *entities.User
	signupCreated bool
	signupErr     error

	listUsers []*entities.User

	promoteAck *entities.UpdateAck
	promotedID string

	roles map[string]entities.Role
}

func (s *stubUserService) Signup(ctx context.Context, email, name, password string) (*entities.User, bool, error) {
	return s.signupUser, s.signupCreated, s.signupErr
}

func (s *stubUserService) List(ctx context.Context) ([]*entities.User, error) {
	return s.listUsers, nil
}

func (s *stubUserService) Promote(ctx context.Context, id string) (*entities.UpdateAck, error) {
	s.promotedID = id
	return s.promoteAck, nil
}

func (s *stubUserService) HasRole(ctx context.Context, email string, role entities.Role) (bool, error) {
	return s.roles[email] == role, nil
}

// authed wraps a handler behind the auth guard and returns a request
// carrying a token for the given email.
func authed(t *testing.T, fn http.HandlerFunc, method, target, email string, body io.Reader) (http.Handler, *http.Request) {
	t.Helper()
	manager := jwt.NewManager("test-secret", time.Hour)
	token, err := manager.Generate(email)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+token)
	return middleware.Auth(manager)(fn), req
}

func TestUserHandler_CreateUser_New(t *testing.T) {
	service := &stubUserService{
		signupUser:    &entities.User{ID: "u1", Email: "a@x.com", Role: entities.RoleClient},
		signupCreated: true,
	}
	handler := handlers.NewUserHandler(service)

	body := strings.NewReader(`{"email":"a@x.com","name":"Alice","password":"pw","role":"admin"}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	rec := httptest.NewRecorder()
	handler.CreateUser(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var user entities.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, entities.RoleClient, user.Role)
}

func TestUserHandler_CreateUser_Duplicate(t *testing.T) {
	service := &stubUserService{
		signupUser:    &entities.User{ID: "u1", Email: "a@x.com", Role: entities.RoleClient},
		signupCreated: false,
	}
	handler := handlers.NewUserHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"a@x.com"}`))
	rec := httptest.NewRecorder()
	handler.CreateUser(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "user already exists.", body["message"])
}

func TestUserHandler_CreateUser_BadPayload(t *testing.T) {
	handler := handlers.NewUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	handler.CreateUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_CreateUser_MissingEmail(t *testing.T) {
	handler := handlers.NewUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Alice"}`))
	rec := httptest.NewRecorder()
	handler.CreateUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_PromoteToAdmin(t *testing.T) {
	service := &stubUserService{
		promoteAck: &entities.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1},
	}
	handler := handlers.NewUserHandler(service)

	req := httptest.NewRequest(http.MethodPatch, "/users/admin/u1", nil)
	req.SetPathValue("id", "u1")
	rec := httptest.NewRecorder()
	handler.PromoteToAdmin(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", service.promotedID)

	var ack entities.UpdateAck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.True(t, ack.Acknowledged)
	assert.Equal(t, int64(1), ack.ModifiedCount)
}

func TestUserHandler_CheckAdmin_SelfProbe(t *testing.T) {
	service := &stubUserService{roles: map[string]entities.Role{
		"admin@x.com": entities.RoleAdmin,
	}}
	h := handlers.NewUserHandler(service)

	guarded, req := authed(t, h.CheckAdmin, http.MethodGet, "/users/admin/admin@x.com", "admin@x.com", nil)
	req.SetPathValue("email", "admin@x.com")
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body["admin"])
}

func TestUserHandler_CheckAdmin_NonAdminIsFalse(t *testing.T) {
	service := &stubUserService{roles: map[string]entities.Role{
		"client@x.com": entities.RoleClient,
	}}
	h := handlers.NewUserHandler(service)

	guarded, req := authed(t, h.CheckAdmin, http.MethodGet, "/users/admin/client@x.com", "client@x.com", nil)
	req.SetPathValue("email", "client@x.com")
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body["admin"])
}

func TestUserHandler_CheckOwner_IdentityMismatch(t *testing.T) {
	// Probing someone else's email is rejected, not answered.
	service := &stubUserService{roles: map[string]entities.Role{
		"owner@x.com": entities.RoleOwner,
	}}
	h := handlers.NewUserHandler(service)

	guarded, req := authed(t, h.CheckOwner, http.MethodGet, "/users/owner/owner@x.com", "other@x.com", nil)
	req.SetPathValue("email", "owner@x.com")
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Forbidden Access", body["message"])
}

func TestUserHandler_ListUsers(t *testing.T) {
	service := &stubUserService{listUsers: []*entities.User{
		{ID: "u1", Email: "a@x.com", Role: entities.RoleClient},
		{ID: "u2", Email: "b@x.com", Role: entities.RoleAdmin},
	}}
	handler := handlers.NewUserHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	handler.ListUsers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var users []entities.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}
