package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"courseware/internal/auth"
	"courseware/internal/videolink"
)

func VideoRoutes() *chi.Mux {
	router := chi.NewRouter()

	// Resolve a stored video link into a playable embed.
	router.With(auth.RequireAuth(false)).Get("/embed", getEmbedHandler)

	// Hosted-video management, admin only.
	router.With(auth.RequireAuth(true)).Post("/provision", provisionVideoHandler)
	router.With(auth.RequireAuth(true)).Get("/{bunnyVideoID}/status", getVideoStatusHandler)

	return router
}

// GET: /embed?link=...
func getEmbedHandler(w http.ResponseWriter, r *http.Request) {
	embed, err := videolink.Parse(r.URL.Query().Get("link"))
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, embed)
}

// POST: /provision
// Creates an empty video entry in the Bunny library and returns the link to
// store on the catalog video. The file itself is uploaded to Bunny directly
// by the admin's browser.
func provisionVideoHandler(w http.ResponseWriter, r *http.Request) {
	if bunnyClient == nil {
		http.Error(w, "video hosting is not configured", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		Title string `json:"title"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "title must be a non-empty string", http.StatusBadRequest)
		return
	}

	video, err := bunnyClient.CreateVideo(req.Title)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	render.JSON(w, r, map[string]string{
		"videoID":   video.GUID,
		"videoLink": bunnyClient.FormatVideoLink(video.GUID),
		"embedURL":  bunnyClient.EmbedURL(video.GUID),
	})
}

// GET: /{bunnyVideoID}/status
func getVideoStatusHandler(w http.ResponseWriter, r *http.Request) {
	if bunnyClient == nil {
		http.Error(w, "video hosting is not configured", http.StatusServiceUnavailable)
		return
	}

	ready, err := bunnyClient.IsVideoReady(chi.URLParam(r, "bunnyVideoID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	render.JSON(w, r, map[string]bool{"ready": ready})
}
