package handler

import (
	"net/http"

	"github.com/bgogeta007/health-hustler/internal/middleware"
	"github.com/bgogeta007/health-hustler/internal/models"
	"github.com/bgogeta007/health-hustler/internal/nutrition"
	"github.com/bgogeta007/health-hustler/internal/service"
)

type QuizHandler struct {
	quizService service.QuizService
}

func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// Questions handles GET /api/quiz/questions
func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": h.quizService.Questions()})
}

type submitQuizRequest struct {
	Answers models.AnswerSet `json:"answers"`
}

type quizResultResponse struct {
	Result  *models.QuizResult     `json:"result"`
	Targets *nutrition.PlanTargets `json:"targets"`
}

// Submit handles POST /api/quiz/submit
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitQuizRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, targets, err := h.quizService.Submit(r.Context(), middleware.UserID(r.Context()), req.Answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, quizResultResponse{Result: result, Targets: targets})
}

// History handles GET /api/quiz/history
func (h *QuizHandler) History(w http.ResponseWriter, r *http.Request) {
	results, err := h.quizService.History(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": results})
}

// Result handles GET /api/quiz/history/{id}
func (h *QuizHandler) Result(w http.ResponseWriter, r *http.Request) {
	resultID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid result id")
		return
	}

	result, err := h.quizService.Result(r.Context(), middleware.UserID(r.Context()), resultID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": result})
}

// CurrentPlan handles GET /api/quiz/plan. Users who never took the quiz
// get an empty 200 so the client can route them to the quiz.
func (h *QuizHandler) CurrentPlan(w http.ResponseWriter, r *http.Request) {
	profile, targets, err := h.quizService.CurrentPlan(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"profile": profile,
			"targets": targets,
		},
	})
}
