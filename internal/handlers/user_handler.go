package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Rajesh25lab/payroll-phase3-v2/internal/auth"
	"github.com/Rajesh25lab/payroll-phase3-v2/internal/middleware"
	"github.com/Rajesh25lab/payroll-phase3-v2/internal/models"
	"github.com/Rajesh25lab/payroll-phase3-v2/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserHandler struct {
	users *repository.UserRepository
	log   *logrus.Logger
}

func NewUserHandler(users *repository.UserRepository, log *logrus.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		h.log.Errorf("user list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userJSON(&u))
	}
	c.JSON(http.StatusOK, gin.H{"users": out, "total": len(out)})
}

func (h *UserHandler) Create(c *gin.Context) {
	var payload struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Role     string `json:"role"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil ||
		payload.Email == "" || payload.Name == "" || payload.Role == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if _, err := h.users.GetByEmail(payload.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		h.log.Errorf("password hash failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	user := &models.User{
		Email:        payload.Email,
		Name:         payload.Name,
		PasswordHash: hash,
		Role:         payload.Role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := h.users.Create(user); err != nil {
		h.log.Errorf("user create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": userJSON(user)})
}

func (h *UserHandler) Update(c *gin.Context) {
	var payload struct {
		UserID   uint    `json:"userId"`
		Role     *string `json:"role"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return
	}

	user, err := h.users.Update(payload.UserID, payload.Role, payload.IsActive)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.log.Errorf("user update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": userJSON(user)})
}

func (h *UserHandler) Delete(c *gin.Context) {
	var payload struct {
		UserID uint `json:"userId"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return
	}

	claims := middleware.ClaimsFrom(c)
	if claims != nil && claims.UserID == payload.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot delete your own account"})
		return
	}

	if err := h.users.Delete(payload.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.log.Errorf("user delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func userJSON(u *models.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"email":     u.Email,
		"name":      u.Name,
		"role":      u.Role,
		"is_active": u.IsActive,
	}
}
