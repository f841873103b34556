package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/billing"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/minio"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type PostService interface {
	// ListPublished is the public feed; userID is 0 for anonymous
	// readers.
	ListPublished(ctx context.Context, userID uint64, query *dto.ListPostsQuery) (*dto.PostListResponse, error)
	// GetPublished returns one published post, applying the premium
	// gate, and asynchronously records the view for signed-in readers.
	GetPublished(ctx context.Context, postID, userID uint64) (*dto.PostDetailResponse, error)

	ListAdmin(ctx context.Context, query *dto.ListAdminPostsQuery) (*dto.PostListResponse, error)
	GetAdmin(ctx context.Context, postID uint64) (*dto.PostDetailResponse, error)
	Create(ctx context.Context, req *dto.UpsertPostRequest) (*dto.PostMutationResponse, error)
	Update(ctx context.Context, postID uint64, req *dto.UpsertPostRequest) (*dto.PostMutationResponse, error)
	UpdateStatus(ctx context.Context, postID uint64, status int8) error
}

type PostServiceImpl struct {
	postRepo  repository.PostRepo
	labelRepo repository.LabelRepo
	viewRepo  repository.ViewRepo
	userRepo  repository.UserRepo
	billing   billing.Client
}

func NewPostService(
	postRepo repository.PostRepo,
	labelRepo repository.LabelRepo,
	viewRepo repository.ViewRepo,
	userRepo repository.UserRepo,
	billingClient billing.Client,
) PostService {
	return &PostServiceImpl{
		postRepo:  postRepo,
		labelRepo: labelRepo,
		viewRepo:  viewRepo,
		userRepo:  userRepo,
		billing:   billingClient,
	}
}

func (s *PostServiceImpl) ListPublished(ctx context.Context, userID uint64, query *dto.ListPostsQuery) (*dto.PostListResponse, error) {
	filter := repository.PostFilter{Title: query.Title, Labels: query.Labels}

	rows, err := s.postRepo.ListPublished(ctx, userID, query.Limit, query.Offset, filter, query.FavoriteOnly)
	if err != nil {
		log.ErrorContext(ctx, "list posts failed", "err", err)
		return nil, UnExpectedError
	}

	summaries, err := s.toSummaries(ctx, rows)
	if err != nil {
		return nil, UnExpectedError
	}

	return &dto.PostListResponse{
		Success:      true,
		Posts:        summaries,
		Pagination:   paginate(query.Limit, query.Offset, len(summaries)),
		Filters:      dto.FiltersEcho{Title: filter.Title, Labels: filter.Labels},
		FavoriteOnly: query.FavoriteOnly,
	}, nil
}

func (s *PostServiceImpl) GetPublished(ctx context.Context, postID, userID uint64) (*dto.PostDetailResponse, error) {
	row, err := s.postRepo.GetByID(ctx, postID, userID, true)
	if err != nil {
		log.ErrorContext(ctx, "get post failed", "post", postID, "err", err)
		return nil, UnExpectedError
	}
	if row == nil {
		return nil, ErrPostNotFound
	}

	detail, err := s.toDetail(ctx, row)
	if err != nil {
		return nil, UnExpectedError
	}

	restricted := false
	if row.IsPremium && !s.hasPremiumAccess(ctx, userID) {
		// Non-subscribers get the preview in place of the content.
		detail.Content = row.Preview
		restricted = true
	}

	if userID > 0 {
		s.trackViewAsync(ctx, row, userID)
	}

	return &dto.PostDetailResponse{
		Success:           true,
		Post:              detail,
		ContentRestricted: restricted,
	}, nil
}

func (s *PostServiceImpl) ListAdmin(ctx context.Context, query *dto.ListAdminPostsQuery) (*dto.PostListResponse, error) {
	if _, ok := repository.AdminSortColumn(query.Sort); !ok {
		return nil, ErrSortInvalid
	}

	filter := repository.PostFilter{Title: query.Title, Labels: query.Labels, Status: query.Status}
	rows, err := s.postRepo.ListAdmin(ctx, query.Limit, query.Offset, filter, query.Sort)
	if err != nil {
		log.ErrorContext(ctx, "admin list posts failed", "err", err)
		return nil, UnExpectedError
	}

	summaries, err := s.toSummaries(ctx, rows)
	if err != nil {
		return nil, UnExpectedError
	}

	return &dto.PostListResponse{
		Success:    true,
		Posts:      summaries,
		Pagination: paginate(query.Limit, query.Offset, len(summaries)),
		Filters:    dto.FiltersEcho{Title: filter.Title, Labels: filter.Labels, Status: filter.Status},
	}, nil
}

func (s *PostServiceImpl) GetAdmin(ctx context.Context, postID uint64) (*dto.PostDetailResponse, error) {
	row, err := s.postRepo.GetByID(ctx, postID, 0, false)
	if err != nil {
		log.ErrorContext(ctx, "admin get post failed", "post", postID, "err", err)
		return nil, UnExpectedError
	}
	if row == nil {
		return nil, ErrPostNotFound
	}

	detail, err := s.toDetail(ctx, row)
	if err != nil {
		return nil, UnExpectedError
	}
	return &dto.PostDetailResponse{Success: true, Post: detail}, nil
}

func (s *PostServiceImpl) Create(ctx context.Context, req *dto.UpsertPostRequest) (*dto.PostMutationResponse, error) {
	post := &model.Post{
		Title:       req.Title,
		Content:     req.Content,
		Image:       req.Image,
		ReadingTime: req.ReadingTime,
		IsPremium:   req.IsPremium,
		Preview:     util.Preview(req.Content, consts.PreviewLimit),
		Status:      model.PostStatusDraft,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		log.ErrorContext(ctx, "create post failed", "err", err)
		return nil, UnExpectedError
	}

	if err := s.replaceLabels(ctx, post.ID, req.Labels); err != nil {
		return nil, UnExpectedError
	}
	return s.mutationResponse(ctx, post.ID)
}

func (s *PostServiceImpl) Update(ctx context.Context, postID uint64, req *dto.UpsertPostRequest) (*dto.PostMutationResponse, error) {
	row, err := s.postRepo.GetByID(ctx, postID, 0, false)
	if err != nil {
		log.ErrorContext(ctx, "load post for update failed", "post", postID, "err", err)
		return nil, UnExpectedError
	}
	if row == nil {
		return nil, ErrPostNotFound
	}

	post := row.Post
	post.Title = req.Title
	post.Content = req.Content
	post.Image = req.Image
	post.ReadingTime = req.ReadingTime
	post.IsPremium = req.IsPremium
	post.Preview = util.Preview(req.Content, consts.PreviewLimit)

	if err := s.postRepo.Update(ctx, &post); err != nil {
		log.ErrorContext(ctx, "update post failed", "post", postID, "err", err)
		return nil, UnExpectedError
	}

	if err := s.replaceLabels(ctx, postID, req.Labels); err != nil {
		return nil, UnExpectedError
	}
	return s.mutationResponse(ctx, postID)
}

func (s *PostServiceImpl) UpdateStatus(ctx context.Context, postID uint64, status int8) error {
	if status != model.PostStatusDraft && status != model.PostStatusPublished && status != model.PostStatusArchived {
		return ErrStatusInvalid
	}

	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "status check failed", "post", postID, "err", err)
		return UnExpectedError
	}
	if !exists {
		return ErrPostNotFound
	}

	if err := s.postRepo.UpdateStatus(ctx, postID, status); err != nil {
		log.ErrorContext(ctx, "update post status failed", "post", postID, "err", err)
		return UnExpectedError
	}
	return nil
}

func (s *PostServiceImpl) replaceLabels(ctx context.Context, postID uint64, captions []string) error {
	labels, err := s.labelRepo.GetOrCreate(ctx, captions)
	if err != nil {
		log.ErrorContext(ctx, "resolve labels failed", "post", postID, "err", err)
		return err
	}
	ids := make([]uint64, 0, len(labels))
	for _, l := range labels {
		ids = append(ids, l.ID)
	}
	if err := s.labelRepo.ReplaceForPost(ctx, postID, ids); err != nil {
		log.ErrorContext(ctx, "replace labels failed", "post", postID, "err", err)
		return err
	}
	return nil
}

func (s *PostServiceImpl) mutationResponse(ctx context.Context, postID uint64) (*dto.PostMutationResponse, error) {
	row, err := s.postRepo.GetByID(ctx, postID, 0, false)
	if err != nil || row == nil {
		log.ErrorContext(ctx, "reload post failed", "post", postID, "err", err)
		return nil, UnExpectedError
	}
	detail, err := s.toDetail(ctx, row)
	if err != nil {
		return nil, UnExpectedError
	}
	return &dto.PostMutationResponse{Success: true, Post: detail}, nil
}

// hasPremiumAccess checks the billing provider; failures default to no
// access rather than leaking premium content.
func (s *PostServiceImpl) hasPremiumAccess(ctx context.Context, userID uint64) bool {
	if userID == 0 {
		return false
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return false
	}
	if user.IsAdmin {
		return true
	}
	active, err := s.billing.HasActiveSubscription(ctx, user.BillingCustomerID)
	if err != nil {
		log.WarnContext(ctx, "subscription lookup failed", "user", userID, "err", err)
		return false
	}
	return active
}

// trackViewAsync records the view off the request path. The cool-down is
// the post's reading time.
func (s *PostServiceImpl) trackViewAsync(ctx context.Context, row *repository.PostRow, userID uint64) {
	coolDown := consts.DefaultReadingTime
	if row.ReadingTime != nil && *row.ReadingTime > 0 {
		coolDown = *row.ReadingTime
	}

	bg := context.WithoutCancel(ctx)
	go func() {
		trackCtx, cancel := context.WithTimeout(bg, 5*time.Second)
		defer cancel()
		_, err := s.viewRepo.TrackView(trackCtx, row.ID, userID, time.Duration(coolDown)*time.Minute, time.Now())
		if err != nil {
			log.ErrorContext(trackCtx, "track view failed", "post", row.ID, "user", userID, "err", err)
		}
	}()
}

func (s *PostServiceImpl) toSummaries(ctx context.Context, rows []*repository.PostRow) ([]*dto.PostSummary, error) {
	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	labelsByPost, err := s.labelRepo.GetByPostIDs(ctx, ids)
	if err != nil {
		log.ErrorContext(ctx, "load labels failed", "err", err)
		return nil, err
	}

	summaries := make([]*dto.PostSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, buildSummary(row, labelsByPost[row.ID]))
	}
	return summaries, nil
}

func (s *PostServiceImpl) toDetail(ctx context.Context, row *repository.PostRow) (*dto.PostDetail, error) {
	labelsByPost, err := s.labelRepo.GetByPostIDs(ctx, []uint64{row.ID})
	if err != nil {
		log.ErrorContext(ctx, "load labels failed", "post", row.ID, "err", err)
		return nil, err
	}
	return &dto.PostDetail{
		PostSummary: *buildSummary(row, labelsByPost[row.ID]),
		Content:     row.Content,
	}, nil
}

func buildSummary(row *repository.PostRow, labels []*model.Label) *dto.PostSummary {
	summary := &dto.PostSummary{}
	if err := copier.Copy(summary, &row.Post); err != nil {
		log.Warn("map post row failed", "post", row.ID, "err", err)
	}
	summary.UserReaction = row.UserReaction
	summary.IsFavorite = row.IsFavorite

	summary.Image = minio.GetPublicURL(summary.Image)
	summary.Labels = make([]*dto.LabelDTO, 0, len(labels))
	for _, l := range labels {
		summary.Labels = append(summary.Labels, &dto.LabelDTO{ID: l.ID, Caption: l.Caption})
	}
	return summary
}

// paginate reports hasMore with the full-page heuristic: a page shorter
// than the limit is the last one, a full page may have more.
func paginate(limit, offset, count int) dto.Pagination {
	return dto.Pagination{
		Limit:   limit,
		Offset:  offset,
		Count:   count,
		HasMore: count == limit,
	}
}
