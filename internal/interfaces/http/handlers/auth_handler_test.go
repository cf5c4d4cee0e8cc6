package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"harvest-admin.backend/internal/domain/entities"
	"harvest-admin.backend/internal/usecases"
	"harvest-admin.backend/pkg/crypto"
	"harvest-admin.backend/pkg/jwt"
)

func newAuthRouter(t *testing.T, users *userRepoStub) *gin.Engine {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	h := NewAuthHandler(usecases.NewAuthUsecase(users, jwtService))

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	return r
}

func adminFixture(t *testing.T) *entities.User {
	t.Helper()
	hash, err := crypto.HashPassword("correct-horse-battery")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &entities.User{
		ID:           uuid.New(),
		Email:        "admin@harvest.test",
		Name:         "Admin",
		PasswordHash: hash,
		Role:         entities.UserRoleAdmin,
		Status:       entities.UserStatusActive,
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	admin := adminFixture(t)
	r := newAuthRouter(t, newUserRepoStub(admin))

	body := []byte(`{"email":"admin@harvest.test","password":"correct-horse-battery"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var resp entities.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatalf("missing tokens in response: %+v", resp)
	}
	if resp.User.Email != admin.Email {
		t.Fatalf("unexpected user in response: %+v", resp.User)
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	r := newAuthRouter(t, newUserRepoStub(adminFixture(t)))

	body := []byte(`{"email":"admin@harvest.test","password":"wrong-password-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	r := newAuthRouter(t, newUserRepoStub())

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte(`{"email":"not-an-email"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_Refresh_RoundTrip(t *testing.T) {
	admin := adminFixture(t)
	r := newAuthRouter(t, newUserRepoStub(admin))

	loginBody := []byte(`{"email":"admin@harvest.test","password":"correct-horse-battery"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(loginBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	var loginResp entities.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("unmarshal login response: %v", err)
	}

	refreshBody, _ := json.Marshal(gin.H{"refreshToken": loginResp.RefreshToken})
	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewReader(refreshBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var refreshResp entities.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &refreshResp); err != nil {
		t.Fatalf("unmarshal refresh response: %v", err)
	}
	if refreshResp.AccessToken == "" {
		t.Fatalf("missing access token after refresh")
	}
}

func TestAuthHandler_Refresh_GarbageToken(t *testing.T) {
	r := newAuthRouter(t, newUserRepoStub())

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewReader([]byte(`{"refreshToken":"garbage"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}
