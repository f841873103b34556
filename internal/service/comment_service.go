package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/kafka"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
	"strings"
)

type CommentService interface {
	Create(ctx context.Context, userID, postID uint64, content string) (*dto.CreateCommentResponse, error)
	List(ctx context.Context, postID uint64, query *dto.ListCommentsQuery) (*dto.CommentListResponse, error)
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
	producer    kafka.Producer
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
	producer kafka.Producer,
) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		producer:    producer,
	}
}

func (s *CommentServiceImpl) Create(ctx context.Context, userID, postID uint64, content string) (*dto.CreateCommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrParamInvalid
	}

	row, err := s.postRepo.GetByID(ctx, postID, 0, true)
	if err != nil {
		log.ErrorContext(ctx, "load post for comment failed", "post", postID, "err", err)
		return nil, UnExpectedError
	}
	if row == nil {
		return nil, ErrPostNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		log.ErrorContext(ctx, "load commenter failed", "user", userID, "err", err)
		return nil, UnExpectedError
	}

	comment := &model.PostComment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		log.ErrorContext(ctx, "create comment failed", "post", postID, "user", userID, "err", err)
		return nil, UnExpectedError
	}

	s.producer.PublishEngagement(ctx, &kafka.EngagementEvent{
		Type:      kafka.EventCommentCreated,
		PostID:    postID,
		PostTitle: row.Title,
		ActorID:   userID,
		ActorName: displayName(user),
		Comment:   content,
	})

	comment.User = *user
	return &dto.CreateCommentResponse{Success: true, Comment: toCommentDTO(comment)}, nil
}

func (s *CommentServiceImpl) List(ctx context.Context, postID uint64, query *dto.ListCommentsQuery) (*dto.CommentListResponse, error) {
	row, err := s.postRepo.GetByID(ctx, postID, 0, true)
	if err != nil {
		log.ErrorContext(ctx, "load post for comments failed", "post", postID, "err", err)
		return nil, UnExpectedError
	}
	if row == nil {
		return nil, ErrPostNotFound
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID, query.Limit, query.Offset)
	if err != nil {
		log.ErrorContext(ctx, "list comments failed", "post", postID, "err", err)
		return nil, UnExpectedError
	}

	items := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		items = append(items, toCommentDTO(comment))
	}
	return &dto.CommentListResponse{
		Success:    true,
		Comments:   items,
		Pagination: paginate(query.Limit, query.Offset, len(items)),
	}, nil
}

func toCommentDTO(comment *model.PostComment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:      comment.ID,
		PostID:  comment.PostID,
		Content: comment.Content,
		Author: dto.CommentAuthor{
			Name:   displayName(&comment.User),
			Avatar: comment.User.Avatar,
		},
		CreatedAt: comment.CreatedAt,
	}
}

func displayName(user *model.User) string {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		return user.Email
	}
	return name
}
