package auth

import (
	"context"
	"net/http"

	"courseware/internal/apperrors"
	"courseware/internal/config"
	"courseware/internal/models"
	repo "courseware/internal/repository"
)

type contextKey string

const userContextKey contextKey = "currentUser"

// RequireAuth is a middleware that rejects requests without a valid session
// cookie. The User associated with the request is added to the request
// context and can be accessed via GetUserFromRequest. With adminOnly set,
// non-admin users are rejected before the handler runs.
func RequireAuth(adminOnly bool) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionCookie, err := r.Cookie(config.Config.SessionCookieName)
			if err != nil {
				// Missing session cookie.
				rejectUnauthorizedRequest(w)
				return
			}

			// Verify the session cookie. This also detects if the user's
			// Firebase session was revoked, user deleted/disabled, etc.
			user, err := repo.Repository.VerifySessionCookie(sessionCookie)
			if err != nil {
				rejectUnauthorizedRequest(w)
				return
			}

			if adminOnly && !user.IsAdmin {
				rejectForbiddenRequest(w)
				return
			}

			ctxWithUser := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctxWithUser))
		})
	}
}

// GetUserFromRequest returns the User within the request context. Only works
// with routes behind the RequireAuth middleware.
func GetUserFromRequest(r *http.Request) (*models.User, error) {
	user, ok := r.Context().Value(userContextKey).(*models.User)
	if !ok || user == nil {
		return nil, apperrors.UserNotFoundError
	}
	return user, nil
}

// Helpers

func rejectUnauthorizedRequest(w http.ResponseWriter) {
	http.Error(w, "You must be authenticated to access this resource", http.StatusUnauthorized)
}

func rejectForbiddenRequest(w http.ResponseWriter) {
	http.Error(w, apperrors.UnauthorizedError.Error(), http.StatusForbidden)
}
