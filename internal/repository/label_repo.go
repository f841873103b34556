package repository

import (
	"Inkwell/internal/model"
	"context"

	"gorm.io/gorm"
)

type LabelRepo interface {
	// GetOrCreate resolves captions to label rows, creating any that do
	// not exist yet.
	GetOrCreate(ctx context.Context, captions []string) ([]*model.Label, error)
	// ReplaceForPost rewrites a post's label set.
	ReplaceForPost(ctx context.Context, postID uint64, labelIDs []uint64) error
	// GetByPostIDs loads the labels for a page of posts in one query.
	GetByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64][]*model.Label, error)
}

type LabelRepoImpl struct {
	db *gorm.DB
}

func NewLabelRepo(db *gorm.DB) LabelRepo {
	return &LabelRepoImpl{db}
}

func (s *LabelRepoImpl) GetOrCreate(ctx context.Context, captions []string) ([]*model.Label, error) {
	labels := make([]*model.Label, 0, len(captions))
	for _, caption := range captions {
		label := model.Label{Caption: caption}
		err := s.db.WithContext(ctx).
			Where("caption = ?", caption).
			FirstOrCreate(&label).Error
		if err != nil {
			if !isDuplicateError(err) {
				return nil, err
			}
			// Lost a create race; the row exists now.
			if err := s.db.WithContext(ctx).
				Where("caption = ?", caption).
				First(&label).Error; err != nil {
				return nil, err
			}
		}
		labels = append(labels, &label)
	}
	return labels, nil
}

func (s *LabelRepoImpl) ReplaceForPost(ctx context.Context, postID uint64, labelIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).
			Delete(&model.PostLabel{}).Error; err != nil {
			return err
		}
		if len(labelIDs) == 0 {
			return nil
		}

		rows := make([]model.PostLabel, 0, len(labelIDs))
		for _, id := range labelIDs {
			rows = append(rows, model.PostLabel{PostID: postID, LabelID: id})
		}
		return tx.Create(&rows).Error
	})
}

func (s *LabelRepoImpl) GetByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64][]*model.Label, error) {
	result := make(map[uint64][]*model.Label, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	type labeledRow struct {
		model.Label
		PostID uint64
	}
	var rows []labeledRow
	err := s.db.WithContext(ctx).Model(&model.Label{}).
		Select("labels.*, pl.post_id").
		Joins("JOIN post_labels pl ON pl.label_id = labels.id").
		Where("pl.post_id IN ?", postIDs).
		Order("labels.caption ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		label := rows[i].Label
		result[rows[i].PostID] = append(result[rows[i].PostID], &label)
	}
	return result, nil
}
