package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"courseware/internal/auth"
	"courseware/internal/models"
	repo "courseware/internal/repository"
)

func ProgressRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(auth.RequireAuth(false))

	router.Get("/", getProgressStatsHandler)
	router.Get("/{courseID}", getCourseProgressHandler)
	router.Post("/complete/{videoID}", markVideoCompleteHandler)

	return router
}

// GET: /
func getProgressStatsHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	stats, err := repo.Repository.GetCourseProgressStats(user.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, stats)
}

// GET: /{courseID}
func getCourseProgressHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	courseProgress, err := repo.Repository.GetUserCourseProgress(user.ID, chi.URLParam(r, "courseID"))
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, courseProgress)
}

// POST: /complete/{videoID}
func markVideoCompleteHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	record, err := repo.Repository.MarkVideoComplete(&models.MarkVideoCompleteRequest{
		UserID:  user.ID,
		VideoID: chi.URLParam(r, "videoID"),
	})
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, record)
}
