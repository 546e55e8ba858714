package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/TopsellHQ/topsell_api/internal/models"
	"github.com/TopsellHQ/topsell_api/internal/service"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

type AuthHandler struct {
	authService *service.AdminAuthService
}

func NewAuthHandler(authService *service.AdminAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		utils.Error(c, 401, "INVALID_CREDENTIALS", err.Error())
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{
		"token": token,
	})
}

func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Name     string `json:"name" binding:"required"`
		Role     string `json:"role" binding:"required,oneof=superadmin operator"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.authService.CreateAdmin(req.Email, req.Password, req.Name, models.AdminRole(req.Role)); err != nil {
		utils.Error(c, 500, "CREATE_FAILED", "Failed to create admin account")
		return
	}

	utils.Success(c, 201, "Admin account created", gin.H{
		"email": req.Email,
		"role":  req.Role,
	})
}
