package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseware/internal/apperrors"
	"courseware/internal/config"
	"courseware/internal/models"
)

func TestRequireAuthRejectsMissingCookie(t *testing.T) {
	config.Config = config.DefaultConfig()

	handler := RequireAuth(true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a session")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRejectForbiddenRequestReportsUnauthorizedError(t *testing.T) {
	rr := httptest.NewRecorder()
	rejectForbiddenRequest(rr)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, apperrors.UnauthorizedError.Error(), strings.TrimSpace(rr.Body.String()))
}

func TestGetUserFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetUserFromRequest(req)
	assert.Equal(t, apperrors.UserNotFoundError, err)

	user := &models.User{ID: "u1", Profile: &models.Profile{IsAdmin: true}}
	ctx := context.WithValue(req.Context(), userContextKey, user)

	got, err := GetUserFromRequest(req.WithContext(ctx))
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}
