package identity

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LocalVerifier проверяет access токен офлайн по JWT секрету проекта.
// Supabase подписывает access токены HS256, так что при известном секрете
// поход к провайдеру на каждый запрос не нужен.
type LocalVerifier struct {
	secret []byte
}

// NewLocalVerifier создаёт верификатор с заданным секретом.
func NewLocalVerifier(secret string) *LocalVerifier {
	return &LocalVerifier{secret: []byte(secret)}
}

type accessClaims struct {
	Email    string         `json:"email"`
	Metadata map[string]any `json:"user_metadata"`
	jwt.RegisteredClaims
}

// Verify разбирает и валидирует токен локально.
func (v *LocalVerifier) Verify(_ context.Context, token string) (*User, error) {
	claims := &accessClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	return &User{
		ID:       userID,
		Email:    claims.Email,
		Metadata: claims.Metadata,
	}, nil
}
