package router

import (
	"net/http"

	"github.com/go-chi/render"

	"courseware/internal/apperrors"
	"courseware/internal/bunny"
	"courseware/internal/certification"
)

var (
	certificationService *certification.Service
	bunnyClient          *bunny.Client
)

// Initialize wires the services the route handlers depend on. Must be called
// before the routes are mounted. bunnyClient may be nil when no Bunny
// library is configured; the provisioning routes then report failure.
func Initialize(svc *certification.Service, client *bunny.Client) {
	certificationService = svc
	bunnyClient = client
}

// renderError writes an error response with a status code matching the error
// taxonomy: bad input 400, missing entities 404, permission problems 403,
// everything else (including unreachable collaborators) 500.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, statusCode(err))
	render.JSON(w, r, map[string]string{"message": err.Error()})
}

func statusCode(err error) int {
	switch err {
	case apperrors.EmptyProjectLinkError,
		apperrors.NoProjectRequiredError,
		apperrors.NotEligibleError,
		apperrors.MissingRejectionNoteError,
		apperrors.InvalidDecisionError,
		apperrors.UnknownVideoLinkError:
		return http.StatusBadRequest
	case apperrors.CourseNotFoundError,
		apperrors.ModuleNotFoundError,
		apperrors.VideoNotFoundError,
		apperrors.UserNotFoundError,
		apperrors.SubmissionNotFoundError:
		return http.StatusNotFound
	case apperrors.UnauthorizedError:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
