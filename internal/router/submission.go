package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"courseware/internal/auth"
	"courseware/internal/models"
)

func SubmissionRoutes() *chi.Mux {
	router := chi.NewRouter()

	// User-facing submission actions.
	router.With(auth.RequireAuth(false)).Post("/submit/{courseID}", submitProjectHandler)
	router.With(auth.RequireAuth(false)).Get("/{courseID}", getSubmissionHandler)

	// Admin triage.
	router.With(auth.RequireAuth(true)).Get("/", listSubmissionsHandler)
	router.With(auth.RequireAuth(true)).Post("/review/{submissionID}", reviewSubmissionHandler)

	return router
}

// POST: /submit/{courseID}
func submitProjectHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var req models.SubmitProjectRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.UserID = user.ID
	req.CourseID = chi.URLParam(r, "courseID")

	submission, err := certificationService.SubmitProject(&req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, submission)
}

// GET: /{courseID}
func getSubmissionHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	submission, err := certificationService.GetSubmission(user.ID, chi.URLParam(r, "courseID"))
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, submission)
}

// GET: /?status=pending
func listSubmissionsHandler(w http.ResponseWriter, r *http.Request) {
	var status models.SubmissionStatus
	switch filter := r.URL.Query().Get("status"); filter {
	case "", "all":
		status = ""
	case string(models.StatusPending), string(models.StatusApproved), string(models.StatusRejected):
		status = models.SubmissionStatus(filter)
	default:
		http.Error(w, "invalid status filter", http.StatusBadRequest)
		return
	}

	submissions, err := certificationService.ListSubmissions(status)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, submissions)
}

// POST: /review/{submissionID}
func reviewSubmissionHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ReviewSubmissionRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.SubmissionID = chi.URLParam(r, "submissionID")

	submission, err := certificationService.ReviewSubmission(&req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, submission)
}
