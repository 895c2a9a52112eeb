package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientVerify(t *testing.T) {
	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "` + userID.String() + `", "email": "owner@example.com", "user_metadata": {"name": "Sam"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "service-key")
	user, err := client.Verify(context.Background(), "good-token")

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, "Sam", user.Metadata["name"])
}

func TestClientVerifyRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "service-key")
	user, err := client.Verify(context.Background(), "expired-token")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClientVerifyEmptyUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "service-key")
	user, err := client.Verify(context.Background(), "odd-token")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClientVerifyProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "service-key")
	user, err := client.Verify(context.Background(), "good-token")

	assert.Nil(t, user)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidToken))
}
