package model

import "time"

type Label struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	Caption   string `gorm:"type:varchar(100);not null;uniqueIndex:idx_label_caption" json:"caption"`
	CreatedAt time.Time
}

func (Label) TableName() string {
	return "labels"
}

type PostLabel struct {
	PostID  uint64 `gorm:"primaryKey" json:"postId"`
	LabelID uint64 `gorm:"primaryKey;index:idx_label_id" json:"labelId"`
}

func (PostLabel) TableName() string {
	return "post_labels"
}
