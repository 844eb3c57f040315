package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bgogeta007/health-hustler/internal/models"
	"github.com/bgogeta007/health-hustler/internal/service"
	"github.com/bgogeta007/health-hustler/pkg/validation"
)

type mockAuthService struct {
	registerProfile *models.Profile
	registerToken   string
	registerErr     error
	loginProfile    *models.Profile
	loginToken      string
	loginErr        error
}

func (m *mockAuthService) Register(ctx context.Context, email, username, fullName, password string) (*models.Profile, string, error) {
	return m.registerProfile, m.registerToken, m.registerErr
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*models.Profile, string, error) {
	return m.loginProfile, m.loginToken, m.loginErr
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error { return nil }

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (uint64, error) {
	return 0, nil
}

func (m *mockAuthService) GetProfile(ctx context.Context, userID uint64) (*models.Profile, error) {
	return nil, nil
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID uint64, fullName, username string) (*models.Profile, error) {
	return nil, nil
}

func (m *mockAuthService) ReplaceAvatar(ctx context.Context, userID uint64, data io.Reader, ext string) (*models.Profile, error) {
	return nil, nil
}

func (m *mockAuthService) RemoveAvatar(ctx context.Context, userID uint64) (*models.Profile, error) {
	return nil, nil
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		registerErr  error
		expectStatus int
	}{
		{
			name:         "successful registration",
			body:         `{"email":"jo@example.com","username":"jo_fit","full_name":"Jo Fit","password":"secret-password"}`,
			expectStatus: http.StatusCreated,
		},
		{
			name:         "invalid email",
			body:         `{"email":"not-an-email","username":"jo_fit","full_name":"Jo Fit","password":"secret-password"}`,
			expectStatus: http.StatusUnprocessableEntity,
		},
		{
			name:         "username with invalid characters",
			body:         `{"email":"jo@example.com","username":"Jo Fit!","full_name":"Jo Fit","password":"secret-password"}`,
			expectStatus: http.StatusUnprocessableEntity,
		},
		{
			name:         "password too short",
			body:         `{"email":"jo@example.com","username":"jo_fit","full_name":"Jo Fit","password":"short"}`,
			expectStatus: http.StatusUnprocessableEntity,
		},
		{
			name:         "email already registered",
			body:         `{"email":"jo@example.com","username":"jo_fit","full_name":"Jo Fit","password":"secret-password"}`,
			registerErr:  service.ErrEmailTaken,
			expectStatus: http.StatusConflict,
		},
		{
			name:         "malformed body",
			body:         `{`,
			expectStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mockAuthService{
				registerProfile: &models.Profile{ID: 1, Username: "jo_fit"},
				registerToken:   "tok-1",
				registerErr:     tt.registerErr,
			}
			h := NewAuthHandler(mockService, validation.NewCustomValidator())

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Register(rec, req)

			if rec.Code != tt.expectStatus {
				t.Errorf("expected status %d, got %d (%s)", tt.expectStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockService := &mockAuthService{loginErr: service.ErrInvalidCredentials}
	h := NewAuthHandler(mockService, validation.NewCustomValidator())

	body := `{"email":"jo@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockService := &mockAuthService{
		loginProfile: &models.Profile{ID: 7, Username: "jo_fit"},
		loginToken:   "tok-7",
	}
	h := NewAuthHandler(mockService, validation.NewCustomValidator())

	body := `{"email":"jo@example.com","password":"secret-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"token":"tok-7"`) {
		t.Errorf("expected token in response, got %s", rec.Body.String())
	}
}
