package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ReactionResult is the state of a post's reactions after a toggle, as
// seen inside the same transaction that applied it.
type ReactionResult struct {
	Reaction int8
	Likes    int
	Dislikes int
}

type ReactionRepo interface {
	// SetReaction toggles the caller's reaction on a post: no existing
	// reaction inserts one, the same reaction removes it, a different
	// reaction replaces it. The post's counters are recomputed in the
	// same transaction.
	SetReaction(ctx context.Context, userID, postID uint64, reaction int8) (*ReactionResult, error)
}

type ReactionRepoImpl struct {
	db *gorm.DB
}

func NewReactionRepo(db *gorm.DB) ReactionRepo {
	return &ReactionRepoImpl{db}
}

func (s *ReactionRepoImpl) SetReaction(ctx context.Context, userID, postID uint64, reaction int8) (*ReactionResult, error) {
	result := &ReactionResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.PostReaction
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := model.PostReaction{UserID: userID, PostID: postID, Reaction: reaction}
			if err := tx.Create(&row).Error; err != nil {
				if isDuplicateError(err) {
					return ErrDuplicateKey
				}
				return err
			}
			result.Reaction = reaction

		case err != nil:
			return err

		case existing.Reaction == reaction:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			result.Reaction = model.ReactionNone

		default:
			if err := tx.Model(&existing).Update("reaction", reaction).Error; err != nil {
				return err
			}
			result.Reaction = reaction
		}

		likes, dislikes, err := recountReactions(tx, postID)
		if err != nil {
			return err
		}
		result.Likes, result.Dislikes = likes, dislikes

		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			Updates(map[string]interface{}{
				"likes_count":    likes,
				"dislikes_count": dislikes,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func recountReactions(tx *gorm.DB, postID uint64) (int, int, error) {
	type bucket struct {
		Reaction int8
		Total    int
	}
	var buckets []bucket
	err := tx.Model(&model.PostReaction{}).
		Select("reaction, COUNT(*) AS total").
		Where("post_id = ?", postID).
		Group("reaction").
		Scan(&buckets).Error
	if err != nil {
		return 0, 0, err
	}

	var likes, dislikes int
	for _, b := range buckets {
		switch b.Reaction {
		case model.ReactionLike:
			likes = b.Total
		case model.ReactionDislike:
			dislikes = b.Total
		}
	}
	return likes, dislikes, nil
}
