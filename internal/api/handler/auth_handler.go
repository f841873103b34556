package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (s *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Get(middleware.CtxToken)
	tokenString, _ := token.(string)

	if err := s.authService.Logout(c.Request.Context(), tokenString); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SimpleResponse{Success: true})
}
