package handlers

import (
	"errors"
	"net/http"

	"modernschedule/models"
	"modernschedule/services/auth"
	"modernschedule/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes login and logout.
type AuthHandler struct {
	Auth     auth.Authenticator
	Notifier notification.Notifier
}

func NewAuthHandler(authenticator auth.Authenticator, notifier notification.Notifier) *AuthHandler {
	return &AuthHandler{Auth: authenticator, Notifier: notifier}
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter both username and password"})
		return
	}

	resp, err := h.Auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.Notifier.Error("Invalid credentials. Please try again.")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials. Please try again."})
			return
		}
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed", "message": err.Error()})
		return
	}

	h.Notifier.Success("Logged in successfully!")
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	sessionID := c.GetString("sessionID")
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.Auth.Logout(c.Request.Context(), sessionID); err != nil {
		logger.Error("Logout failed", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed", "message": err.Error()})
		return
	}

	h.Notifier.Success("Logged out successfully!")
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully!"})
}
