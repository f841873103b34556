package dto

import (
	"time"
)

type ReactionResponse struct {
	Success  bool `json:"success"`
	Reaction int8 `json:"reaction"`
	Likes    int  `json:"likes"`
	Dislikes int  `json:"dislikes"`
}

type FavoriteResponse struct {
	Success    bool `json:"success"`
	IsFavorite bool `json:"isFavorite"`
}

type CommentAuthor struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type CommentDTO struct {
	ID        uint64        `json:"id"`
	PostID    uint64        `json:"postId"`
	Content   string        `json:"content"`
	Author    CommentAuthor `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
}

type ListCommentsQuery struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

type CommentListResponse struct {
	Success    bool          `json:"success"`
	Comments   []*CommentDTO `json:"comments"`
	Pagination Pagination    `json:"pagination"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

type CreateCommentResponse struct {
	Success bool        `json:"success"`
	Comment *CommentDTO `json:"comment"`
}
