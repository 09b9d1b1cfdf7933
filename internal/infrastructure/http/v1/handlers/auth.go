package handlers

import (
	"github.com/gin-gonic/gin"

	"pdv/internal/infrastructure/http/v1/dto"
	"pdv/pkg/auth"
)

// AuthHandler provides authentication endpoints.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// Login authenticates an operator and returns a session token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	})
}
