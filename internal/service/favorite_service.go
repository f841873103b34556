package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
)

type FavoriteService interface {
	// SetFavorite adds or removes a bookmark; both directions are
	// idempotent.
	SetFavorite(ctx context.Context, userID, postID uint64, favorite bool) (*dto.FavoriteResponse, error)
}

type FavoriteServiceImpl struct {
	favoriteRepo repository.FavoriteRepo
	postRepo     repository.PostRepo
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepo, postRepo repository.PostRepo) FavoriteService {
	return &FavoriteServiceImpl{favoriteRepo: favoriteRepo, postRepo: postRepo}
}

func (s *FavoriteServiceImpl) SetFavorite(ctx context.Context, userID, postID uint64, favorite bool) (*dto.FavoriteResponse, error) {
	row, err := s.postRepo.GetByID(ctx, postID, 0, true)
	if err != nil {
		log.ErrorContext(ctx, "load post for favorite failed", "post", postID, "err", err)
		return nil, UnExpectedError
	}
	if row == nil {
		return nil, ErrPostNotFound
	}

	if favorite {
		err = s.favoriteRepo.Add(ctx, userID, postID)
	} else {
		err = s.favoriteRepo.Remove(ctx, userID, postID)
	}
	if err != nil {
		log.ErrorContext(ctx, "set favorite failed", "post", postID, "user", userID, "err", err)
		return nil, UnExpectedError
	}

	return &dto.FavoriteResponse{Success: true, IsFavorite: favorite}, nil
}
