package dto

import (
	"time"
)

// ListPostsQuery binds the public feed filters. Labels repeat as
// ?labels=a&labels=b and a post must carry all of them.
type ListPostsQuery struct {
	Limit        int      `form:"limit,default=20" binding:"min=1,max=100"`
	Offset       int      `form:"offset,default=0" binding:"min=0"`
	Title        string   `form:"title" binding:"omitempty,max=255"`
	Labels       []string `form:"labels" binding:"omitempty,dive,max=100"`
	FavoriteOnly bool     `form:"favoriteOnly"`
}

// ListAdminPostsQuery adds the status filter and sort key available on
// the admin console.
type ListAdminPostsQuery struct {
	Limit  int      `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int      `form:"offset,default=0" binding:"min=0"`
	Title  string   `form:"title" binding:"omitempty,max=255"`
	Labels []string `form:"labels" binding:"omitempty,dive,max=100"`
	Status *int8    `form:"status" binding:"omitempty,oneof=0 1 2"`
	Sort   string   `form:"sort" binding:"omitempty,oneof=date likes comments views"`
}

// UpsertPostRequest covers admin create and update.
type UpsertPostRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Content     string   `json:"content" binding:"required"`
	Image       string   `json:"image" binding:"omitempty,max=512"`
	ReadingTime *int     `json:"readingTime" binding:"omitempty,min=1"`
	IsPremium   bool     `json:"isPremium"`
	Labels      []string `json:"labels" binding:"omitempty,dive,required,max=100"`
}

type UpdatePostStatusRequest struct {
	Status *int8 `json:"status" binding:"required,oneof=0 1 2"`
}

type LabelDTO struct {
	ID      uint64 `json:"id"`
	Caption string `json:"caption"`
}

// PostSummary is the feed card shape; Content is never included here.
type PostSummary struct {
	ID            uint64      `json:"id"`
	Image         string      `json:"image"`
	Title         string      `json:"title"`
	Preview       string      `json:"preview"`
	ReadingTime   *int        `json:"readingTime"`
	IsPremium     bool        `json:"isPremium"`
	Status        int8        `json:"status"`
	Labels        []*LabelDTO `json:"labels"`
	LikesCount    int         `json:"likesCount"`
	DislikesCount int         `json:"dislikesCount"`
	CommentsCount int         `json:"commentsCount"`
	ViewsCount    int         `json:"viewsCount"`
	UserReaction  *int8       `json:"userReaction"`
	IsFavorite    bool        `json:"isFavorite"`
	PublishedAt   *time.Time  `json:"publishedAt"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// PostDetail adds the full (or previewed) content to the card shape.
type PostDetail struct {
	PostSummary
	Content string `json:"content"`
}

type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	Count   int  `json:"count"`
	HasMore bool `json:"hasMore"`
}

// FiltersEcho repeats the filters that were actually applied.
type FiltersEcho struct {
	Title  string   `json:"title,omitempty"`
	Labels []string `json:"labels,omitempty"`
	Status *int8    `json:"status,omitempty"`
}

type PostListResponse struct {
	Success      bool           `json:"success"`
	Posts        []*PostSummary `json:"posts"`
	Pagination   Pagination     `json:"pagination"`
	Filters      FiltersEcho    `json:"filters"`
	FavoriteOnly bool           `json:"favoriteOnly"`
}

type PostDetailResponse struct {
	Success           bool        `json:"success"`
	Post              *PostDetail `json:"post"`
	ContentRestricted bool        `json:"contentRestricted"`
}

type PostMutationResponse struct {
	Success bool        `json:"success"`
	Post    *PostDetail `json:"post"`
}
