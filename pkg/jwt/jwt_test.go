package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	manager := NewManager("test-secret")

	userID := uuid.New().String()
	token, err := manager.Generate(userID, "john_doe", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "john_doe", claims.UserName)
	assert.Equal(t, "instaclone-core", claims.Issuer)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("right-secret").Generate(uuid.New().String(), "john_doe", time.Hour)
	require.NoError(t, err)

	_, err = NewManager("wrong-secret").Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := NewManager("test-secret")

	token, err := manager.Generate(uuid.New().String(), "john_doe", -time.Minute)
	require.NoError(t, err)

	_, err = manager.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewManager("test-secret").Verify("not-a-token")
	assert.Error(t, err)
}
