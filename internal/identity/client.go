package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client резолвит токены через auth endpoint Supabase (GoTrue).
// Сервис ходит к провайдеру с service ключом, токен пользователя
// передаётся как есть — провайдер сам решает, жив он или нет.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewClient создаёт клиента identity provider.
func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Verify обменивает токен на пользователя через GET /auth/v1/user.
func (c *Client) Verify(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("identity: build request: %w", err)
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// разбор ниже
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusNotFound:
		return nil, ErrInvalidToken
	default:
		return nil, fmt.Errorf("identity: provider returned status %d", resp.StatusCode)
	}

	var payload struct {
		ID       string         `json:"id"`
		Email    string         `json:"email"`
		Metadata map[string]any `json:"user_metadata"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("identity: decode response: %w", err)
	}

	userID, err := uuid.Parse(payload.ID)
	if err != nil || userID == uuid.Nil {
		// 200 без пользователя трактуем как невалидный токен.
		return nil, ErrInvalidToken
	}

	return &User{
		ID:       userID,
		Email:    payload.Email,
		Metadata: payload.Metadata,
	}, nil
}
