package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bgogeta007/health-hustler/internal/middleware"
	"github.com/bgogeta007/health-hustler/internal/service"
)

const maxPhotoBytes = 5 << 20

type PhotoHandler struct {
	photoService service.PhotoService
}

func NewPhotoHandler(photoService service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// Upload handles POST /api/photos with a multipart "photo" field plus
// caption, week_number, is_private and community_visible form values.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()

	if header.Size > maxPhotoBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "photo exceeds the 5MB limit")
		return
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		writeError(w, http.StatusUnprocessableEntity, "unsupported image format")
		return
	}

	ext, ok := imageExtension(header.Filename)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "unsupported image format")
		return
	}

	weekNumber, _ := strconv.Atoi(r.FormValue("week_number"))
	isPrivate := r.FormValue("is_private") == "true"
	communityVisible := r.FormValue("community_visible") == "true"

	photo, err := h.photoService.Upload(
		r.Context(),
		middleware.UserID(r.Context()),
		file,
		ext,
		r.FormValue("caption"),
		weekNumber,
		isPrivate,
		communityVisible,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": photo})
}

// ListMine handles GET /api/photos
func (h *PhotoHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	photos, err := h.photoService.ListMine(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": photos})
}

type visibilityRequest struct {
	IsPrivate        bool `json:"is_private"`
	CommunityVisible bool `json:"community_visible"`
}

// SetVisibility handles PUT /api/photos/{id}/visibility
func (h *PhotoHandler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	photoID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid photo id")
		return
	}

	var req visibilityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	photo, err := h.photoService.SetVisibility(r.Context(), middleware.UserID(r.Context()), photoID, req.IsPrivate, req.CommunityVisible)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": photo})
}

type captionRequest struct {
	Caption string `json:"caption"`
}

// UpdateCaption handles PUT /api/photos/{id}/caption
func (h *PhotoHandler) UpdateCaption(w http.ResponseWriter, r *http.Request) {
	photoID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid photo id")
		return
	}

	var req captionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	photo, err := h.photoService.UpdateCaption(r.Context(), middleware.UserID(r.Context()), photoID, req.Caption)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": photo})
}

// Delete handles DELETE /api/photos/{id}
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	photoID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid photo id")
		return
	}

	if err := h.photoService.Delete(r.Context(), middleware.UserID(r.Context()), photoID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
