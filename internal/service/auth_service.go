package service

import (
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/pkg/security"
	"context"
	log "log/slog"
)

type AuthService interface {
	// Logout denylists the token's signature until it would have
	// expired anyway.
	Logout(ctx context.Context, tokenString string) error
	// IsDenied reports whether a token signature was logged out.
	IsDenied(ctx context.Context, signature string) (bool, error)
}

type AuthServiceImpl struct{}

func NewAuthService() AuthService {
	return &AuthServiceImpl{}
}

func (s *AuthServiceImpl) Logout(ctx context.Context, tokenString string) error {
	signature, err := security.ExtractSignature(tokenString)
	if err != nil {
		return ErrParamInvalid
	}

	err = redis.SetWithExpiration(ctx, consts.TokenDenyKey+signature, "1", security.JWTExpirationTime)
	if err != nil {
		log.ErrorContext(ctx, "denylist token failed", "err", err)
		return UnExpectedError
	}
	return nil
}

func (s *AuthServiceImpl) IsDenied(ctx context.Context, signature string) (bool, error) {
	value, err := redis.GetValue(ctx, consts.TokenDenyKey+signature)
	if err != nil {
		return false, err
	}
	return value != "", nil
}
