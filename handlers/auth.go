package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/katalika-invoicing/config"
	"github.com/yourusername/katalika-invoicing/middleware"
	"github.com/yourusername/katalika-invoicing/models"
	"github.com/yourusername/katalika-invoicing/store"
)

// The two fixed application accounts. Credentials are checked verbatim;
// there is no registration flow.
type account struct {
	models.User
	Password string
}

var demoAccounts = []account{
	{
		User: models.User{
			ID:        "1",
			Email:     "admin@studiokatalika.com",
			Name:      "Administrator",
			Role:      "admin",
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Password: "admin123",
	},
	{
		User: models.User{
			ID:        "2",
			Email:     "user@studiokatalika.com",
			Name:      "Staff User",
			Role:      "user",
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Password: "user123",
	},
}

type AuthHandler struct {
	store store.Store
	cfg   *config.Config
}

func NewAuthHandler(s store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: s, cfg: cfg}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login checks the credentials against the fixed account list, persists the
// session user in the record store and returns a signed token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user *models.User
	for _, acc := range demoAccounts {
		if acc.Email == req.Email && acc.Password == req.Password {
			u := acc.User
			now := time.Now()
			u.LastLogin = &now
			user = &u
			break
		}
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := h.store.SaveUser(*user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist session"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role, h.cfg.JWTSecret, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me returns the persisted session user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.store.GetUser()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read session"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout clears the persisted session user.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.store.DeleteUser(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
