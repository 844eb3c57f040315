package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bgogeta007/health-hustler/internal/middleware"
	"github.com/bgogeta007/health-hustler/internal/service"
)

const (
	defaultFeedLimit = 10
	maxFeedLimit     = 50
)

type FeedHandler struct {
	feedService service.FeedService
}

func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// Feed handles GET /api/feed?limit=&offset=. Anonymous viewers get the
// same page with all like flags false.
func (h *FeedHandler) Feed(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultFeedLimit)
	if limit <= 0 || limit > maxFeedLimit {
		limit = defaultFeedLimit
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	feed, err := h.feedService.Feed(r.Context(), middleware.UserID(r.Context()), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": feed})
}

type addCommentRequest struct {
	ParentID *uint64 `json:"parent_id"`
	Content  string  `json:"content"`
}

// AddComment handles POST /api/feed/photos/{id}/comments
func (h *FeedHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	photoID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid photo id")
		return
	}

	var req addCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.feedService.AddComment(r.Context(), middleware.UserID(r.Context()), photoID, req.ParentID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": comment})
}

// TogglePhotoLike handles POST /api/feed/photos/{id}/like
func (h *FeedHandler) TogglePhotoLike(w http.ResponseWriter, r *http.Request) {
	photoID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid photo id")
		return
	}

	liked, likes, err := h.feedService.TogglePhotoLike(r.Context(), middleware.UserID(r.Context()), photoID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"liked": liked, "likes": likes})
}

// ToggleCommentLike handles POST /api/feed/comments/{id}/like
func (h *FeedHandler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	liked, likes, err := h.feedService.ToggleCommentLike(r.Context(), middleware.UserID(r.Context()), commentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"liked": liked, "likes": likes})
}

// MentionSuggestions handles GET /api/feed/mentions?q=<partial handle>
func (h *FeedHandler) MentionSuggestions(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("q")
	if token == "" {
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": []struct{}{}})
		return
	}

	candidates, err := h.feedService.MentionCandidates(r.Context(), token)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": candidates})
}

func pathID(r *http.Request, name string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[name], 10, 64)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
