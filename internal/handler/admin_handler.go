package handler

import (
	"net/http"
	"time"

	"github.com/bgogeta007/health-hustler/internal/models"
	"github.com/bgogeta007/health-hustler/internal/service"
	"github.com/bgogeta007/health-hustler/pkg/validation"
)

// AdminHandler serves the back-office API. Every route is behind the
// admin middleware.
type AdminHandler struct {
	adminService    service.AdminService
	settingsService service.SettingsService
	validator       *validation.CustomValidator
}

func NewAdminHandler(adminService service.AdminService, settingsService service.SettingsService, validator *validation.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminService:    adminService,
		settingsService: settingsService,
		validator:       validator,
	}
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": stats})
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": users})
}

// ListAdmins handles GET /api/admin/admins
func (h *AdminHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminService.ListAdmins(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": admins})
}

type grantAdminRequest struct {
	Role string `json:"role" validate:"omitempty,oneof=admin moderator"`
}

// GrantAdmin handles POST /api/admin/admins/{id}
func (h *AdminHandler) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req grantAdminRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := h.validator.Validate(req); err != nil {
			writeFieldErrors(w, h.validator.FieldErrors(err))
			return
		}
	}

	if err := h.adminService.GrantAdmin(r.Context(), userID, req.Role); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RevokeAdmin handles DELETE /api/admin/admins/{id}
func (h *AdminHandler) RevokeAdmin(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.adminService.RevokeAdmin(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListChallenges handles GET /api/admin/challenges, including inactive
// and expired ones
func (h *AdminHandler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.adminService.ListChallenges(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": challenges})
}

type challengeRequest struct {
	Title        string                       `json:"title"`
	Description  string                       `json:"description"`
	Type         string                       `json:"type"`
	Difficulty   string                       `json:"difficulty"`
	Points       int                          `json:"points"`
	Requirements models.ChallengeRequirements `json:"requirements"`
	StartDate    time.Time                    `json:"start_date"`
	EndDate      time.Time                    `json:"end_date"`
	IsActive     bool                         `json:"is_active"`
}

func (req *challengeRequest) toModel(id uint64) *models.Challenge {
	return &models.Challenge{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Difficulty:   req.Difficulty,
		Points:       req.Points,
		Requirements: req.Requirements,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsActive:     req.IsActive,
	}
}

// CreateChallenge handles POST /api/admin/challenges
func (h *AdminHandler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	var req challengeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	challenge, err := h.adminService.CreateChallenge(r.Context(), req.toModel(0))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": challenge})
}

// UpdateChallenge handles PUT /api/admin/challenges/{id}
func (h *AdminHandler) UpdateChallenge(w http.ResponseWriter, r *http.Request) {
	challengeID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	var req challengeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	challenge, err := h.adminService.UpdateChallenge(r.Context(), req.toModel(challengeID))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": challenge})
}

type setActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// SetChallengeActive handles PUT /api/admin/challenges/{id}/active
func (h *AdminHandler) SetChallengeActive(w http.ResponseWriter, r *http.Request) {
	challengeID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	var req setActiveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.adminService.SetChallengeActive(r.Context(), challengeID, req.IsActive); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListRewards handles GET /api/admin/rewards with an optional ?limit=
func (h *AdminHandler) ListRewards(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)
	rewards, err := h.adminService.ListRewards(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": rewards})
}

type adjustPointsRequest struct {
	Delta int `json:"delta"`
}

// AdjustPoints handles POST /api/admin/rewards/{id}/points
func (h *AdminHandler) AdjustPoints(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req adjustPointsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rewards, err := h.adminService.AdjustPoints(r.Context(), userID, req.Delta)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": rewards})
}

type grantBadgeRequest struct {
	ID   string `json:"id" validate:"required,max=60"`
	Name string `json:"name" validate:"required,max=100"`
	Icon string `json:"icon" validate:"omitempty,max=200"`
}

// GrantBadge handles POST /api/admin/rewards/{id}/badges
func (h *AdminHandler) GrantBadge(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req grantBadgeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Validate(req); err != nil {
		writeFieldErrors(w, h.validator.FieldErrors(err))
		return
	}

	rewards, err := h.adminService.GrantBadge(r.Context(), userID, models.Badge{
		ID:   req.ID,
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": rewards})
}

type updateSettingsRequest struct {
	PlatformName string  `json:"platform_name" validate:"required,max=60"`
	ThemeColor   string  `json:"theme_color" validate:"required,hexcolor_hash"`
	LogoURL      *string `json:"logo_url" validate:"omitempty,url"`
	FaviconURL   *string `json:"favicon_url" validate:"omitempty,url"`
}

// UpdateSettings handles PUT /api/admin/settings
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Validate(req); err != nil {
		writeFieldErrors(w, h.validator.FieldErrors(err))
		return
	}

	settings, err := h.settingsService.Update(r.Context(), &models.PlatformSettings{
		PlatformName: req.PlatformName,
		ThemeColor:   req.ThemeColor,
		LogoURL:      req.LogoURL,
		FaviconURL:   req.FaviconURL,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": settings})
}

// UploadLogo handles POST /api/admin/settings/logo with a multipart
// "logo" field
func (h *AdminHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "logo file is required")
		return
	}
	defer file.Close()

	ext, ok := imageExtension(header.Filename)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "unsupported image format")
		return
	}

	settings, err := h.settingsService.UploadLogo(r.Context(), file, ext)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": settings})
}
