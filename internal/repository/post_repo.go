package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// PostFilter carries the optional list filters; zero values mean "not
// filtered". Status is honored only on the admin path.
type PostFilter struct {
	Title  string
	Labels []string
	Status *int8
}

// Admin sort keys; all sorts are descending.
const (
	SortByDate     = "date"
	SortByLikes    = "likes"
	SortByComments = "comments"
	SortByViews    = "views"
)

var adminSortColumns = map[string]string{
	SortByDate:     "updated_at DESC",
	SortByLikes:    "likes_count DESC",
	SortByComments: "comments_count DESC",
	SortByViews:    "views_count DESC",
}

// AdminSortColumn resolves a sort key, defaulting to date.
func AdminSortColumn(sort string) (string, bool) {
	if sort == "" {
		return adminSortColumns[SortByDate], true
	}
	col, ok := adminSortColumns[sort]
	return col, ok
}

// PostRow is a post plus the requester-specific flags computed by
// correlated subqueries. The flags stay nil/false for anonymous reads.
type PostRow struct {
	model.Post
	UserReaction *int8 `json:"userReaction"`
	IsFavorite   bool  `json:"isFavorite"`
}

type PostRepo interface {
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	UpdateStatus(ctx context.Context, id uint64, status int8) error
	Exists(ctx context.Context, id uint64) (bool, error)
	GetByID(ctx context.Context, id, userID uint64, publishedOnly bool) (*PostRow, error)
	ListPublished(ctx context.Context, userID uint64, limit, offset int, filter PostFilter, favoriteOnly bool) ([]*PostRow, error)
	ListAdmin(ctx context.Context, limit, offset int, filter PostFilter, sort string) ([]*PostRow, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db}
}

func (s *PostRepoImpl) Create(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) Update(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Save(post).Error
}

func (s *PostRepoImpl) UpdateStatus(ctx context.Context, id uint64, status int8) error {
	updates := map[string]interface{}{"status": status}
	if status == model.PostStatusPublished {
		updates["published_at"] = gorm.Expr("COALESCE(published_at, CURRENT_TIMESTAMP)")
	}
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (s *PostRepoImpl) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (s *PostRepoImpl) GetByID(ctx context.Context, id, userID uint64, publishedOnly bool) (*PostRow, error) {
	q := s.withUserFlags(ctx, userID).Where("posts.id = ?", id)
	if publishedOnly {
		q = q.Where("posts.status = ?", model.PostStatusPublished)
	}

	var row PostRow
	err := q.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *PostRepoImpl) ListPublished(ctx context.Context, userID uint64, limit, offset int, filter PostFilter, favoriteOnly bool) ([]*PostRow, error) {
	q := s.withUserFlags(ctx, userID).
		Where("posts.status = ?", model.PostStatusPublished)

	q = applyFilter(q, filter, false)

	if favoriteOnly && userID > 0 {
		q = q.Where("EXISTS (SELECT 1 FROM favorite_posts f WHERE f.post_id = posts.id AND f.user_id = ?)", userID)
	}

	var rows []*PostRow
	err := q.Order("posts.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	return rows, err
}

func (s *PostRepoImpl) ListAdmin(ctx context.Context, limit, offset int, filter PostFilter, sort string) ([]*PostRow, error) {
	order, ok := AdminSortColumn(sort)
	if !ok {
		order = adminSortColumns[SortByDate]
	}

	q := s.withUserFlags(ctx, 0)
	q = applyFilter(q, filter, true)

	var rows []*PostRow
	err := q.Order("posts." + order).
		Limit(limit).Offset(offset).
		Find(&rows).Error
	return rows, err
}

// withUserFlags selects posts plus the requester's reaction and favorite
// flags via correlated subqueries; anonymous requests skip the
// subqueries entirely.
func (s *PostRepoImpl) withUserFlags(ctx context.Context, userID uint64) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&model.Post{})
	if userID > 0 {
		return q.Select(
			"posts.*, "+
				"(SELECT r.reaction FROM user_post_reactions r WHERE r.post_id = posts.id AND r.user_id = ?) AS user_reaction, "+
				"EXISTS (SELECT 1 FROM favorite_posts f WHERE f.post_id = posts.id AND f.user_id = ?) AS is_favorite",
			userID, userID,
		)
	}
	return q.Select("posts.*, NULL AS user_reaction, 0 AS is_favorite")
}

// applyFilter adds the title prefix and label predicates; posts must
// match every requested label, so each caption gets its own existential
// subquery.
func applyFilter(q *gorm.DB, filter PostFilter, allowStatus bool) *gorm.DB {
	if filter.Title != "" {
		q = q.Where("LOWER(posts.title) LIKE ?", strings.ToLower(filter.Title)+"%")
	}
	for _, caption := range filter.Labels {
		q = q.Where(
			"EXISTS (SELECT 1 FROM post_labels pl JOIN labels l ON l.id = pl.label_id WHERE pl.post_id = posts.id AND l.caption = ?)",
			caption,
		)
	}
	if allowStatus && filter.Status != nil {
		q = q.Where("posts.status = ?", *filter.Status)
	}
	return q
}
