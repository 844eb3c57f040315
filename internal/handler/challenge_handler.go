package handler

import (
	"net/http"

	"github.com/bgogeta007/health-hustler/internal/middleware"
	"github.com/bgogeta007/health-hustler/internal/service"
)

type ChallengeHandler struct {
	challengeService service.ChallengeService
}

func NewChallengeHandler(challengeService service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// List handles GET /api/challenges. Anonymous viewers see the challenges
// without participation data.
func (h *ChallengeHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.challengeService.List(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": views})
}

// Join handles POST /api/challenges/{id}/join
func (h *ChallengeHandler) Join(w http.ResponseWriter, r *http.Request) {
	challengeID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	participant, err := h.challengeService.Join(r.Context(), challengeID, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": participant})
}

// Quit handles DELETE /api/challenges/{id}/join
func (h *ChallengeHandler) Quit(w http.ResponseWriter, r *http.Request) {
	challengeID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	if err := h.challengeService.Quit(r.Context(), challengeID, middleware.UserID(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type progressRequest struct {
	Increment int `json:"increment"`
}

// LogProgress handles POST /api/challenges/{id}/progress
func (h *ChallengeHandler) LogProgress(w http.ResponseWriter, r *http.Request) {
	challengeID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	req := progressRequest{Increment: 1}
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	participant, err := h.challengeService.LogProgress(r.Context(), challengeID, middleware.UserID(r.Context()), req.Increment)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": participant})
}

// Rewards handles GET /api/rewards
func (h *ChallengeHandler) Rewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.challengeService.Rewards(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": rewards})
}

// Leaderboard handles GET /api/rewards/leaderboard
func (h *ChallengeHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.challengeService.Leaderboard(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": entries})
}
