package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bgogeta007/health-hustler/internal/middleware"
	"github.com/bgogeta007/health-hustler/internal/service"
	"github.com/bgogeta007/health-hustler/pkg/logger"
	"github.com/bgogeta007/health-hustler/pkg/metrics"
)

// Handlers bundles everything the router needs
type Handlers struct {
	Auth      *AuthHandler
	Quiz      *QuizHandler
	Feed      *FeedHandler
	Photo     *PhotoHandler
	Challenge *ChallengeHandler
	Catalog   *CatalogHandler
	Settings  *SettingsHandler
	Admin     *AdminHandler

	AuthService  service.AuthService
	AdminService service.AdminService
}

// NewRouter builds the full route table. Three tiers: public (optional
// auth so like flags render for signed-in viewers), authenticated, and
// admin.
func NewRouter(h Handlers, m *metrics.Metrics, log *logger.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.LoggingMiddleware(log))
	r.Use(metrics.Middleware(m))

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// guest routes
	api.HandleFunc("/auth/register", h.Auth.Register).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/logout", h.Auth.Logout).Methods(http.MethodPost, http.MethodOptions)

	// public routes; auth is optional so signed-in viewers get their
	// like flags and participation state
	public := api.NewRoute().Subrouter()
	public.Use(middleware.OptionalAuthMiddleware(h.AuthService))
	public.HandleFunc("/settings", h.Settings.Get).Methods(http.MethodGet, http.MethodOptions)
	public.HandleFunc("/quiz/questions", h.Quiz.Questions).Methods(http.MethodGet, http.MethodOptions)
	public.HandleFunc("/feed", h.Feed.Feed).Methods(http.MethodGet, http.MethodOptions)
	public.HandleFunc("/challenges", h.Challenge.List).Methods(http.MethodGet, http.MethodOptions)
	public.HandleFunc("/rewards/leaderboard", h.Challenge.Leaderboard).Methods(http.MethodGet, http.MethodOptions)
	public.HandleFunc("/diets", h.Catalog.ListDiets).Methods(http.MethodGet, http.MethodOptions)
	public.HandleFunc("/diets/{slug}", h.Catalog.GetDiet).Methods(http.MethodGet, http.MethodOptions)
	public.HandleFunc("/exercises", h.Catalog.ListExercises).Methods(http.MethodGet, http.MethodOptions)
	public.HandleFunc("/exercises/{slug}", h.Catalog.GetExercise).Methods(http.MethodGet, http.MethodOptions)
	public.HandleFunc("/tips/daily", h.Catalog.DailyTip).Methods(http.MethodGet, http.MethodOptions)

	// authenticated routes
	authed := api.NewRoute().Subrouter()
	authed.Use(middleware.AuthMiddleware(h.AuthService))
	authed.HandleFunc("/auth/me", h.Auth.Me).Methods(http.MethodGet, http.MethodOptions)
	authed.HandleFunc("/auth/profile", h.Auth.UpdateProfile).Methods(http.MethodPut, http.MethodOptions)
	authed.HandleFunc("/auth/avatar", h.Auth.UploadAvatar).Methods(http.MethodPost, http.MethodOptions)
	authed.HandleFunc("/auth/avatar", h.Auth.RemoveAvatar).Methods(http.MethodDelete, http.MethodOptions)

	authed.HandleFunc("/quiz/submit", h.Quiz.Submit).Methods(http.MethodPost, http.MethodOptions)
	authed.HandleFunc("/quiz/history", h.Quiz.History).Methods(http.MethodGet, http.MethodOptions)
	authed.HandleFunc("/quiz/history/{id}", h.Quiz.Result).Methods(http.MethodGet, http.MethodOptions)
	authed.HandleFunc("/quiz/plan", h.Quiz.CurrentPlan).Methods(http.MethodGet, http.MethodOptions)

	authed.HandleFunc("/photos", h.Photo.Upload).Methods(http.MethodPost, http.MethodOptions)
	authed.HandleFunc("/photos", h.Photo.ListMine).Methods(http.MethodGet, http.MethodOptions)
	authed.HandleFunc("/photos/{id}/visibility", h.Photo.SetVisibility).Methods(http.MethodPut, http.MethodOptions)
	authed.HandleFunc("/photos/{id}/caption", h.Photo.UpdateCaption).Methods(http.MethodPut, http.MethodOptions)
	authed.HandleFunc("/photos/{id}", h.Photo.Delete).Methods(http.MethodDelete, http.MethodOptions)

	authed.HandleFunc("/feed/photos/{id}/comments", h.Feed.AddComment).Methods(http.MethodPost, http.MethodOptions)
	authed.HandleFunc("/feed/photos/{id}/like", h.Feed.TogglePhotoLike).Methods(http.MethodPost, http.MethodOptions)
	authed.HandleFunc("/feed/comments/{id}/like", h.Feed.ToggleCommentLike).Methods(http.MethodPost, http.MethodOptions)
	authed.HandleFunc("/feed/mentions", h.Feed.MentionSuggestions).Methods(http.MethodGet, http.MethodOptions)

	authed.HandleFunc("/challenges/{id}/join", h.Challenge.Join).Methods(http.MethodPost, http.MethodOptions)
	authed.HandleFunc("/challenges/{id}/join", h.Challenge.Quit).Methods(http.MethodDelete, http.MethodOptions)
	authed.HandleFunc("/challenges/{id}/progress", h.Challenge.LogProgress).Methods(http.MethodPost, http.MethodOptions)
	authed.HandleFunc("/rewards", h.Challenge.Rewards).Methods(http.MethodGet, http.MethodOptions)

	authed.HandleFunc("/tips/{id}/save", h.Catalog.ToggleSaveTip).Methods(http.MethodPost, http.MethodOptions)
	authed.HandleFunc("/tips/saved", h.Catalog.SavedTips).Methods(http.MethodGet, http.MethodOptions)

	// back office
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware(h.AuthService))
	admin.Use(middleware.AdminMiddleware(h.AdminService))
	admin.HandleFunc("/stats", h.Admin.Stats).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/users", h.Admin.ListUsers).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/admins", h.Admin.ListAdmins).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/admins/{id}", h.Admin.GrantAdmin).Methods(http.MethodPost, http.MethodOptions)
	admin.HandleFunc("/admins/{id}", h.Admin.RevokeAdmin).Methods(http.MethodDelete, http.MethodOptions)
	admin.HandleFunc("/challenges", h.Admin.ListChallenges).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/challenges", h.Admin.CreateChallenge).Methods(http.MethodPost, http.MethodOptions)
	admin.HandleFunc("/challenges/{id}", h.Admin.UpdateChallenge).Methods(http.MethodPut, http.MethodOptions)
	admin.HandleFunc("/challenges/{id}/active", h.Admin.SetChallengeActive).Methods(http.MethodPut, http.MethodOptions)
	admin.HandleFunc("/rewards", h.Admin.ListRewards).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/rewards/{id}/points", h.Admin.AdjustPoints).Methods(http.MethodPost, http.MethodOptions)
	admin.HandleFunc("/rewards/{id}/badges", h.Admin.GrantBadge).Methods(http.MethodPost, http.MethodOptions)
	admin.HandleFunc("/settings", h.Admin.UpdateSettings).Methods(http.MethodPut, http.MethodOptions)
	admin.HandleFunc("/settings/logo", h.Admin.UploadLogo).Methods(http.MethodPost, http.MethodOptions)

	return r
}
