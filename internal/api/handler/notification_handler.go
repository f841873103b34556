package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	pushService service.PushService
}

func NewNotificationHandler(pushService service.PushService) *NotificationHandler {
	return &NotificationHandler{pushService: pushService}
}

func (s *NotificationHandler) Subscribe(c *gin.Context) {
	var req dto.PushSubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.pushService.Subscribe(c.Request.Context(), middleware.UserID(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SimpleResponse{Success: true})
}
