package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func HealthRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", healthCheckHandler)
	return router
}

// GET: /
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}
