package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/repository"
	"context"
	"errors"
	log "log/slog"
)

type ReactionService interface {
	// React toggles a like or dislike on a published post and returns
	// the post's counters after the change.
	React(ctx context.Context, userID, postID uint64, reaction int8) (*dto.ReactionResponse, error)
}

type ReactionServiceImpl struct {
	reactionRepo repository.ReactionRepo
	postRepo     repository.PostRepo
}

func NewReactionService(reactionRepo repository.ReactionRepo, postRepo repository.PostRepo) ReactionService {
	return &ReactionServiceImpl{reactionRepo: reactionRepo, postRepo: postRepo}
}

func (s *ReactionServiceImpl) React(ctx context.Context, userID, postID uint64, reaction int8) (*dto.ReactionResponse, error) {
	if reaction != model.ReactionLike && reaction != model.ReactionDislike {
		return nil, ErrReactionInvalid
	}

	row, err := s.postRepo.GetByID(ctx, postID, 0, true)
	if err != nil {
		log.ErrorContext(ctx, "load post for reaction failed", "post", postID, "err", err)
		return nil, UnExpectedError
	}
	if row == nil {
		return nil, ErrPostNotFound
	}

	result, err := s.reactionRepo.SetReaction(ctx, userID, postID, reaction)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrActionDuplicate
		}
		log.ErrorContext(ctx, "set reaction failed", "post", postID, "user", userID, "err", err)
		return nil, UnExpectedError
	}

	return &dto.ReactionResponse{
		Success:  true,
		Reaction: result.Reaction,
		Likes:    result.Likes,
		Dislikes: result.Dislikes,
	}, nil
}
