package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestLocalVerifier(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, "project-secret", jwt.MapClaims{
		"sub":           userID.String(),
		"email":         "owner@example.com",
		"user_metadata": map[string]any{"name": "Sam"},
		"exp":           time.Now().Add(time.Hour).Unix(),
	})

	v := NewLocalVerifier("project-secret")
	user, err := v.Verify(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, "Sam", user.Metadata["name"])
}

func TestLocalVerifierExpired(t *testing.T) {
	token := signToken(t, "project-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	v := NewLocalVerifier("project-secret")
	user, err := v.Verify(context.Background(), token)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLocalVerifierWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	v := NewLocalVerifier("project-secret")
	_, err := v.Verify(context.Background(), token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLocalVerifierNoSubject(t *testing.T) {
	token := signToken(t, "project-secret", jwt.MapClaims{
		"email": "owner@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	v := NewLocalVerifier("project-secret")
	_, err := v.Verify(context.Background(), token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLocalVerifierGarbage(t *testing.T) {
	v := NewLocalVerifier("project-secret")
	_, err := v.Verify(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, ErrInvalidToken)
}
