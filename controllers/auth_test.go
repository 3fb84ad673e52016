package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vote-monitor-api/config"
	"vote-monitor-api/models"
	"vote-monitor-api/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	api := setupTestAPI(t, true)
	config.DB = api.db
	t.Cleanup(func() { config.DB = nil })

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admins := []models.Admin{
		{Username: "moderator", PasswordHash: string(hash), Role: "admin", IsActive: true},
		{Username: "retired", PasswordHash: string(hash), Role: "admin", IsActive: false},
	}
	if err := api.db.Create(&admins).Error; err != nil {
		t.Fatalf("seed admins: %v", err)
	}

	audit := services.NewAuditService(api.db)
	router := gin.New()
	router.POST("/api/v1/admin/login", NewAuthController(audit, "test-salt").Login)
	return router
}

func postLogin(t *testing.T, router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.3:1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginIssuesToken(t *testing.T) {
	router := setupAuthTest(t)

	rec := postLogin(t, router, "moderator", "correct-horse")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("response must carry a token")
	}
	if resp.Admin.Username != "moderator" {
		t.Fatalf("admin username = %q", resp.Admin.Username)
	}

	var loginAudits int64
	config.DB.Model(&models.AuditLog{}).
		Where("action = ?", models.AuditActionLogin).
		Count(&loginAudits)
	if loginAudits != 1 {
		t.Fatalf("login audit entries = %d, want 1", loginAudits)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	router := setupAuthTest(t)

	rec := postLogin(t, router, "moderator", "wrong")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var failedAudits int64
	config.DB.Model(&models.AuditLog{}).
		Where("action = ?", models.AuditActionFailedLogin).
		Count(&failedAudits)
	if failedAudits != 1 {
		t.Fatalf("failed-login audit entries = %d, want 1", failedAudits)
	}
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	router := setupAuthTest(t)

	rec := postLogin(t, router, "retired", "correct-horse")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	router := setupAuthTest(t)

	rec := postLogin(t, router, "nobody", "correct-horse")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
