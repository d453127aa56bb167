package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"courseware/internal/config"
)

// Account routes behind RequireAuth reject unauthenticated requests before
// any store access happens.
func TestAuthRoutesRejectMissingSession(t *testing.T) {
	config.Config = config.DefaultConfig()

	cases := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/me"},
		{http.MethodGet, "/me/certifications"},
		{http.MethodGet, "/u1"},
		{http.MethodDelete, "/u1"},
	}

	routes := AuthRoutes()
	for _, c := range cases {
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, httptest.NewRequest(c.method, c.target, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s should require a session", c.method, c.target)
	}
}
