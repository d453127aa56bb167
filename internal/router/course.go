package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"

	"courseware/internal/auth"
	"courseware/internal/models"
	repo "courseware/internal/repository"
	"courseware/internal/videolink"
)

func CourseRoutes() *chi.Mux {
	router := chi.NewRouter()

	// Catalog browsing. Public: the course listing backs the landing page.
	router.Get("/", listCoursesHandler)
	router.Get("/{courseID}", getCourseHandler)
	router.Get("/{courseID}/modules", getCourseModulesHandler)
	router.Get("/{courseID}/videos", getCourseVideosHandler)
	router.Get("/modules/{moduleID}/videos", getModuleVideosHandler)

	// Catalog edits, admin only.
	router.With(auth.RequireAuth(true)).Post("/create", createCourseHandler)
	router.With(auth.RequireAuth(true)).Post("/edit/{courseID}", editCourseHandler)
	router.With(auth.RequireAuth(true)).Post("/delete/{courseID}", deleteCourseHandler)

	router.With(auth.RequireAuth(true)).Post("/modules/create", createModuleHandler)
	router.With(auth.RequireAuth(true)).Post("/modules/edit/{moduleID}", editModuleHandler)
	router.With(auth.RequireAuth(true)).Post("/modules/delete/{moduleID}", deleteModuleHandler)

	router.With(auth.RequireAuth(true)).Post("/videos/create", createVideoHandler)
	router.With(auth.RequireAuth(true)).Post("/videos/edit/{videoID}", editVideoHandler)
	router.With(auth.RequireAuth(true)).Post("/videos/delete/{videoID}", deleteVideoHandler)

	return router
}

// GET: /?q=searchTerm
func listCoursesHandler(w http.ResponseWriter, r *http.Request) {
	if term := r.URL.Query().Get("q"); term != "" {
		render.JSON(w, r, repo.Repository.SearchCourses(term))
		return
	}

	render.JSON(w, r, repo.Repository.ListCourses())
}

// GET: /{courseID}
func getCourseHandler(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	course, err := repo.Repository.GetCourseByID(courseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, course)
}

// GET: /{courseID}/modules
func getCourseModulesHandler(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	if _, err := repo.Repository.GetCourseByID(courseID); err != nil {
		renderError(w, r, err)
		return
	}

	modules, err := repo.Repository.GetCourseModules(courseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, modules)
}

// GET: /{courseID}/videos
func getCourseVideosHandler(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	if _, err := repo.Repository.GetCourseByID(courseID); err != nil {
		renderError(w, r, err)
		return
	}

	videos, err := repo.Repository.GetCourseVideos(courseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, videos)
}

// GET: /modules/{moduleID}/videos
func getModuleVideosHandler(w http.ResponseWriter, r *http.Request) {
	moduleID := chi.URLParam(r, "moduleID")

	videos, err := repo.Repository.GetModuleVideos(moduleID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, videos)
}

// POST: /create
func createCourseHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest

	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.CreatedBy = user

	if err := models.Validate(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	course, err := repo.Repository.CreateCourse(&req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, course)
}

// POST: /edit/{courseID}
func editCourseHandler(w http.ResponseWriter, r *http.Request) {
	var req models.EditCourseRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.CourseID = chi.URLParam(r, "courseID")

	if err := models.Validate(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := repo.Repository.EditCourse(&req); err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]string{"message": "successfully edited course " + req.CourseID})
}

// POST: /delete/{courseID}
func deleteCourseHandler(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	err := repo.Repository.DeleteCourse(&models.DeleteCourseRequest{CourseID: courseID})
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]string{"message": "successfully deleted course " + courseID})
}

// POST: /modules/create
func createModuleHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateModuleRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := models.Validate(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	module, err := repo.Repository.CreateModule(&req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, module)
}

// POST: /modules/edit/{moduleID}
func editModuleHandler(w http.ResponseWriter, r *http.Request) {
	var req models.EditModuleRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.ModuleID = chi.URLParam(r, "moduleID")

	if err := models.Validate(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := repo.Repository.EditModule(&req); err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]string{"message": "successfully edited module " + req.ModuleID})
}

// POST: /modules/delete/{moduleID}
func deleteModuleHandler(w http.ResponseWriter, r *http.Request) {
	moduleID := chi.URLParam(r, "moduleID")

	err := repo.Repository.DeleteModule(&models.DeleteModuleRequest{ModuleID: moduleID})
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]string{"message": "successfully deleted module " + moduleID})
}

// POST: /videos/create
func createVideoHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVideoRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := models.Validate(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The stored link must be one of the recognized provider shapes.
	if _, err := videolink.Parse(req.VideoLink); err != nil {
		renderError(w, r, err)
		return
	}

	video, err := repo.Repository.CreateVideo(&req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, video)
}

// POST: /videos/edit/{videoID}
func editVideoHandler(w http.ResponseWriter, r *http.Request) {
	var req models.EditVideoRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.VideoID = chi.URLParam(r, "videoID")

	if err := models.Validate(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := videolink.Parse(req.VideoLink); err != nil {
		renderError(w, r, err)
		return
	}

	if err := repo.Repository.EditVideo(&req); err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]string{"message": "successfully edited video " + req.VideoID})
}

// POST: /videos/delete/{videoID}
func deleteVideoHandler(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")

	video, err := repo.Repository.GetVideoByID(videoID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := repo.Repository.DeleteVideo(&models.DeleteVideoRequest{VideoID: videoID}); err != nil {
		renderError(w, r, err)
		return
	}

	// Garbage-collect the hosted video entry when the link points at our
	// Bunny library. Best effort: the catalog delete already succeeded.
	if bunnyClient != nil {
		if embed, err := videolink.Parse(video.VideoLink); err == nil && embed.Provider == videolink.ProviderBunny {
			if err := bunnyClient.DeleteVideo(embed.VideoID); err != nil {
				glog.Warningf("error deleting hosted video %v: %v\n", embed.VideoID, err)
			}
		}
	}

	render.JSON(w, r, map[string]string{"message": "successfully deleted video " + videoID})
}
