package controllers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"vote-monitor-api/config"
	"vote-monitor-api/middleware"
	"vote-monitor-api/models"
	"vote-monitor-api/services"
	"vote-monitor-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	Admin models.Admin `json:"admin"`
}

// AuthController handles moderator authentication. Every attempt, success
// or failure, lands in the audit log under a hashed network identity.
type AuthController struct {
	audit *services.AuditService
	salt  string
}

// NewAuthController builds the controller.
func NewAuthController(audit *services.AuditService, salt string) *AuthController {
	return &AuthController{audit: audit, salt: salt}
}

// Login authenticates a moderator and issues a JWT.
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	ipHash := utils.HashIdentity(utils.ClientIP(c.Request), ctl.salt)

	var admin models.Admin
	if err := config.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !admin.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account is disabled"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		ctl.audit.Log(&admin.AdminID, models.AuditActionFailedLogin, nil,
			map[string]interface{}{"reason": "invalid_password"}, ipHash)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&admin).Update("last_login", now).Error; err != nil {
		// Not worth failing the login over
		c.Error(err)
	}

	token, err := generateToken(admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	ctl.audit.Log(&admin.AdminID, models.AuditActionLogin, nil,
		map[string]interface{}{}, ipHash)

	c.JSON(http.StatusOK, LoginResponse{Token: token, Admin: admin})
}

// generateToken creates the moderator JWT
func generateToken(admin models.Admin) (string, error) {
	// Get expiration hours from env
	expireHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil {
		expireHours = 24 // default 24 hours
	}

	claims := middleware.Claims{
		AdminID:  admin.AdminID,
		Username: admin.Username,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
