package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayhaven/hotel-booking/backend/pkg/jwt"
)

func TestManager_GenerateAndVerify(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	token, err := manager.Generate("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	other := jwt.NewManager("other-secret", time.Hour)

	token, err := manager.Generate("a@x.com")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestManager_Verify_Expired(t *testing.T) {
	manager := jwt.NewManager("test-secret", -time.Minute)

	token, err := manager.Generate("a@x.com")
	require.NoError(t, err)

	_, err = manager.Verify(token)
	assert.Error(t, err)
}

func TestManager_Verify_Garbage(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	_, err := manager.Verify("not-a-token")
	assert.Error(t, err)
}
