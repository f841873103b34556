package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the console: post management, publishing and the
// metrics dashboard.
type AdminHandler struct {
	postService    service.PostService
	metricsService service.MetricsService
	mediaService   service.MediaService
}

func NewAdminHandler(
	postService service.PostService,
	metricsService service.MetricsService,
	mediaService service.MediaService,
) *AdminHandler {
	return &AdminHandler{
		postService:    postService,
		metricsService: metricsService,
		mediaService:   mediaService,
	}
}

func (s *AdminHandler) ListPosts(c *gin.Context) {
	var query dto.ListAdminPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	resp, err := s.postService.ListAdmin(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

func (s *AdminHandler) GetPost(c *gin.Context) {
	postID, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := s.postService.GetAdmin(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

func (s *AdminHandler) CreatePost(c *gin.Context) {
	var req dto.UpsertPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	resp, err := s.postService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

func (s *AdminHandler) UpdatePost(c *gin.Context) {
	postID, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpsertPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	resp, err := s.postService.Update(c.Request.Context(), postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

func (s *AdminHandler) UpdatePostStatus(c *gin.Context) {
	postID, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdatePostStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.postService.UpdateStatus(c.Request.Context(), postID, *req.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SimpleResponse{Success: true})
}

func (s *AdminHandler) GetMetrics(c *gin.Context) {
	resp, err := s.metricsService.GetSnapshot(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

func (s *AdminHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	resp, err := s.mediaService.UploadImage(c.Request.Context(), fileHeader)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}
