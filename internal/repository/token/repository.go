package token

import (
	"context"
	"time"
)

// Token is an opaque bearer token bound to an account.
type Token struct {
	Token     string
	AccountID string
	Kind      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Repository persists issued tokens.
type Repository interface {
	Create(ctx context.Context, t Token) error
	Get(ctx context.Context, token string) (*Token, error)
	Delete(ctx context.Context, token string) error
}
