package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bgogeta007/health-hustler/internal/middleware"
	"github.com/bgogeta007/health-hustler/internal/models"
	"github.com/bgogeta007/health-hustler/internal/service"
	"github.com/bgogeta007/health-hustler/pkg/validation"
)

const maxUploadBytes = 10 << 20

type AuthHandler struct {
	authService service.AuthService
	validator   *validation.CustomValidator
}

func NewAuthHandler(authService service.AuthService, validator *validation.CustomValidator) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,username"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,username"`
}

type sessionResponse struct {
	Token string          `json:"token"`
	User  *models.Profile `json:"user"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if err := h.validator.Validate(req); err != nil {
		writeFieldErrors(w, h.validator.FieldErrors(err))
		return
	}

	profile, token, err := h.authService.Register(r.Context(), req.Email, req.Username, req.FullName, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{Token: token, User: profile})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Validate(req); err != nil {
		writeFieldErrors(w, h.validator.FieldErrors(err))
		return
	}

	profile, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Token: token, User: profile})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r)
	if token != "" {
		if err := h.authService.Logout(r.Context(), token); err != nil {
			writeServiceError(w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.authService.GetProfile(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": profile})
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if err := h.validator.Validate(req); err != nil {
		writeFieldErrors(w, h.validator.FieldErrors(err))
		return
	}

	profile, err := h.authService.UpdateProfile(r.Context(), middleware.UserID(r.Context()), req.FullName, req.Username)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": profile})
}

// UploadAvatar handles POST /api/auth/avatar with a multipart "avatar" field
func (h *AuthHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer file.Close()

	ext, ok := imageExtension(header.Filename)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "unsupported image format")
		return
	}

	profile, err := h.authService.ReplaceAvatar(r.Context(), middleware.UserID(r.Context()), file, ext)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": profile})
}

// RemoveAvatar handles DELETE /api/auth/avatar
func (h *AuthHandler) RemoveAvatar(w http.ResponseWriter, r *http.Request) {
	profile, err := h.authService.RemoveAvatar(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": profile})
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func imageExtension(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
		return ext, true
	}
	return "", false
}
