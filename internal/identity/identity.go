package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// User — личность, подтверждённая identity provider.
type User struct {
	ID       uuid.UUID      `json:"id"`
	Email    string         `json:"email"`
	Metadata map[string]any `json:"user_metadata,omitempty"`
}

// ErrInvalidToken возвращается, когда токен отклонён провайдером:
// подпись не сошлась, токен истёк или пользователь не существует.
// Любая другая ошибка Verify означает сбой самого провайдера.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenVerifier обменивает bearer токен на подтверждённую личность.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*User, error)
}
