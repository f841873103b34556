package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the public reading surface: the feed, post
// details, comments and per-reader engagement.
type ContentHandler struct {
	postService     service.PostService
	reactionService service.ReactionService
	favoriteService service.FavoriteService
	commentService  service.CommentService
}

func NewContentHandler(
	postService service.PostService,
	reactionService service.ReactionService,
	favoriteService service.FavoriteService,
	commentService service.CommentService,
) *ContentHandler {
	return &ContentHandler{
		postService:     postService,
		reactionService: reactionService,
		favoriteService: favoriteService,
		commentService:  commentService,
	}
}

func (s *ContentHandler) ListPosts(c *gin.Context) {
	var query dto.ListPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	userID := middleware.UserID(c)
	if query.FavoriteOnly && userID == 0 {
		response.Error(c, service.UnauthorizedError)
		return
	}

	resp, err := s.postService.ListPublished(c.Request.Context(), userID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

func (s *ContentHandler) GetPost(c *gin.Context) {
	postID, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := s.postService.GetPublished(c.Request.Context(), postID, middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

func (s *ContentHandler) Like(c *gin.Context) {
	s.react(c, model.ReactionLike)
}

func (s *ContentHandler) Dislike(c *gin.Context) {
	s.react(c, model.ReactionDislike)
}

func (s *ContentHandler) react(c *gin.Context, reaction int8) {
	postID, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := s.reactionService.React(c.Request.Context(), middleware.UserID(c), postID, reaction)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

func (s *ContentHandler) Favorite(c *gin.Context) {
	s.setFavorite(c, true)
}

func (s *ContentHandler) Unfavorite(c *gin.Context) {
	s.setFavorite(c, false)
}

func (s *ContentHandler) setFavorite(c *gin.Context, favorite bool) {
	postID, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := s.favoriteService.SetFavorite(c.Request.Context(), middleware.UserID(c), postID, favorite)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

func (s *ContentHandler) ListComments(c *gin.Context) {
	postID, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var query dto.ListCommentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	resp, err := s.commentService.List(c.Request.Context(), postID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

func (s *ContentHandler) CreateComment(c *gin.Context) {
	postID, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	resp, err := s.commentService.Create(c.Request.Context(), middleware.UserID(c), postID, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

func pathID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, service.ErrParamInvalid
	}
	return id, nil
}
