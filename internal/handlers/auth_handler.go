package handler

import (
	"net/http"
	"time"

	"github.com/Rajesh25lab/payroll-phase3-v2/internal/auth"
	"github.com/Rajesh25lab/payroll-phase3-v2/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	users     *repository.UserRepository
	jwtSecret string
	log       *logrus.Logger
}

func NewAuthHandler(users *repository.UserRepository, jwtSecret string, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret, log: log}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Email == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	user, err := h.users.GetByEmail(payload.Email)
	if err != nil || !user.IsActive || !auth.CheckPassword(user.PasswordHash, payload.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.IssueToken(h.jwtSecret, user, time.Now())
	if err != nil {
		h.log.Errorf("token issuance failed for %s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}
