package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"

	"courseware/internal/auth"
	"courseware/internal/config"
	"courseware/internal/firebase"
	"courseware/internal/models"
	repo "courseware/internal/repository"
)

func AuthRoutes() *chi.Mux {
	router := chi.NewRouter()

	router.Route("/", func(r chi.Router) {
		r.Use(auth.RequireAuth(false))

		// Information about the current user
		r.Get("/me", getMeHandler)
		r.Get("/me/certifications", getMyCertificationsHandler)

		r.With(auth.RequireAuth(true)).Get("/{userID}", getUserHandler)
		r.With(auth.RequireAuth(true)).Delete("/{userID}", deleteUserHandler)
	})

	// Account lifecycle. No auth middlewares required.
	router.Post("/register", registerHandler)
	router.Post("/session", createSessionHandler)
	router.Post("/signout", signOutHandler)

	return router
}

// POST: /register
func registerHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := repo.Repository.CreateUser(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	render.JSON(w, r, user)
}

// POST: /session
func createSessionHandler(w http.ResponseWriter, r *http.Request) {
	authClient, err := firebase.App.Auth(firebase.Context)
	if err != nil {
		glog.Errorf("error getting Auth client: %v\n", err)
		http.Error(w, "authentication unavailable", http.StatusInternalServerError)
		return
	}

	var req struct {
		Token string `json:"token"`
	}

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	expiresIn := config.Config.SessionCookieExpiration

	// Create the session cookie. This also verifies the ID token in the
	// process. The session cookie will have the same claims as the ID token.
	cookie, err := authClient.SessionCookie(firebase.Context, req.Token, expiresIn)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     config.Config.SessionCookieName,
		Value:    cookie,
		MaxAge:   int(expiresIn.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})

	w.WriteHeader(http.StatusOK)
	_, err = w.Write([]byte("success"))
	if err != nil {
		glog.Warningf("failed to write response: %v\n", err)
	}
}

// POST: /signout
func signOutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.Config.SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})

	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte("success"))
	if err != nil {
		glog.Warningf("failed to write response: %v\n", err)
	}
}

// GET: /me
func getMeHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	render.JSON(w, r, struct {
		*models.Profile
		ID string `json:"id"`
	}{user.Profile, user.ID})
}

// GET: /me/certifications
func getMyCertificationsHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	certifications, err := certificationService.ListCertifications(user.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, certifications)
}

// DELETE: /{userID}
func deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := repo.Repository.DeleteUser(userID); err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]string{"message": "successfully deleted user " + userID})
}

// GET: /{userID}
func getUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := repo.Repository.GetUserByID(userID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, user)
}
