package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarigama-github/agama-backend/internal/model"
	"github.com/sarigama-github/agama-backend/internal/response"
	"github.com/sarigama-github/agama-backend/internal/service"
	"github.com/sarigama-github/agama-backend/internal/validator"
)

// AuthHandler handles the admin login endpoint.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// POST /auth/login
// Exchanges the admin password for the shared admin bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}
