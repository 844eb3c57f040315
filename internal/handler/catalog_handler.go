package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bgogeta007/health-hustler/internal/catalog"
	"github.com/bgogeta007/health-hustler/internal/middleware"
	"github.com/bgogeta007/health-hustler/internal/service"
)

// CatalogHandler serves the static diet, exercise and tip catalogs
type CatalogHandler struct {
	tipService service.TipService
}

func NewCatalogHandler(tipService service.TipService) *CatalogHandler {
	return &CatalogHandler{tipService: tipService}
}

// ListDiets handles GET /api/diets
func (h *CatalogHandler) ListDiets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": catalog.DietPlans})
}

// GetDiet handles GET /api/diets/{slug}
func (h *CatalogHandler) GetDiet(w http.ResponseWriter, r *http.Request) {
	plan := catalog.DietPlanBySlug(mux.Vars(r)["slug"])
	if plan == nil {
		writeError(w, http.StatusNotFound, "diet plan not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": plan})
}

// ListExercises handles GET /api/exercises
func (h *CatalogHandler) ListExercises(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": catalog.Exercises})
}

// GetExercise handles GET /api/exercises/{slug}
func (h *CatalogHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	exercise := catalog.ExerciseBySlug(mux.Vars(r)["slug"])
	if exercise == nil {
		writeError(w, http.StatusNotFound, "exercise not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": exercise})
}

// DailyTip handles GET /api/tips/daily
func (h *CatalogHandler) DailyTip(w http.ResponseWriter, r *http.Request) {
	tip, err := h.tipService.TipOfTheDay(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": tip})
}

// ToggleSaveTip handles POST /api/tips/{id}/save
func (h *CatalogHandler) ToggleSaveTip(w http.ResponseWriter, r *http.Request) {
	tipID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tip id")
		return
	}

	saved, err := h.tipService.ToggleSave(r.Context(), middleware.UserID(r.Context()), int(tipID))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"saved": saved})
}

// SavedTips handles GET /api/tips/saved
func (h *CatalogHandler) SavedTips(w http.ResponseWriter, r *http.Request) {
	tips, err := h.tipService.SavedTips(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": tips})
}
