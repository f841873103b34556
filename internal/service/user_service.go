package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
	"slices"
)

const RoleAdmin = "admin"

type UserService interface {
	// EnsureUser resolves the local user for a verified token, creating
	// the row on first sight of the subject.
	EnsureUser(ctx context.Context, claims *security.UserClaims) (*model.User, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) EnsureUser(ctx context.Context, claims *security.UserClaims) (*model.User, error) {
	user, err := s.userRepo.GetByExternalID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user = &model.User{
		ExternalID: claims.Subject,
		Email:      claims.Email,
		Phone:      claims.Phone,
		FirstName:  claims.FirstName,
		LastName:   claims.LastName,
		Avatar:     claims.Avatar,
		IsAdmin:    slices.Contains(claims.Roles, RoleAdmin),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two first requests can race on the insert; the row exists
		// either way.
		existing, lookupErr := s.userRepo.GetByExternalID(ctx, claims.Subject)
		if lookupErr == nil && existing != nil {
			return existing, nil
		}
		log.ErrorContext(ctx, "create user failed", "subject", claims.Subject, "err", err)
		return nil, err
	}
	return user, nil
}
