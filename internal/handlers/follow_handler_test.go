package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/onielsteve2003/Modern-social-media/internal/models"
	"github.com/onielsteve2003/Modern-social-media/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFollowHandler(t *testing.T) (*FollowHandler, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	h := NewFollowHandler(
		repositories.NewPostgresFollowRepository(env.db),
		repositories.NewPostgresUserRepository(env.db),
	)
	return h, env
}

func followContext(env *testEnv, caller *models.User, targetID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/follow/"+targetID, nil)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	c.SetPath("/follow/:userId")
	c.SetParamNames("userId")
	c.SetParamValues(targetID)
	authenticate(c, caller)
	return c, rec
}

func TestFollowUser(t *testing.T) {
	h, env := newFollowHandler(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")

	c, rec := followContext(env, alice, paramValue(bob.ID))
	require.NoError(t, h.FollowUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "You followed bob", resp.Message)
}

func TestFollowUserTwice(t *testing.T) {
	h, env := newFollowHandler(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")

	c, _ := followContext(env, alice, paramValue(bob.ID))
	require.NoError(t, h.FollowUser(c))

	c, _ = followContext(env, alice, paramValue(bob.ID))
	httpError(t, h.FollowUser(c), http.StatusConflict)
}

func TestFollowYourself(t *testing.T) {
	h, env := newFollowHandler(t)
	alice := createTestUser(t, env.db, "alice")

	c, _ := followContext(env, alice, paramValue(alice.ID))
	httpError(t, h.FollowUser(c), http.StatusBadRequest)
}

func TestFollowMissingUser(t *testing.T) {
	h, env := newFollowHandler(t)
	alice := createTestUser(t, env.db, "alice")

	c, _ := followContext(env, alice, "9999")
	httpError(t, h.FollowUser(c), http.StatusNotFound)
}

func TestUnfollowUser(t *testing.T) {
	h, env := newFollowHandler(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")

	c, _ := followContext(env, alice, paramValue(bob.ID))
	require.NoError(t, h.FollowUser(c))

	req := httptest.NewRequest(http.MethodDelete, "/unfollow/"+paramValue(bob.ID), nil)
	rec := httptest.NewRecorder()
	c = env.e.NewContext(req, rec)
	c.SetPath("/unfollow/:userId")
	c.SetParamNames("userId")
	c.SetParamValues(paramValue(bob.ID))
	authenticate(c, alice)

	require.NoError(t, h.UnfollowUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// A second unfollow finds no edge.
	req = httptest.NewRequest(http.MethodDelete, "/unfollow/"+paramValue(bob.ID), nil)
	c = env.e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/unfollow/:userId")
	c.SetParamNames("userId")
	c.SetParamValues(paramValue(bob.ID))
	authenticate(c, alice)
	httpError(t, h.UnfollowUser(c), http.StatusNotFound)
}

func TestFollowerAndFollowingCounts(t *testing.T) {
	h, env := newFollowHandler(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")
	carol := createTestUser(t, env.db, "carol")

	for _, follower := range []*models.User{bob, carol} {
		c, _ := followContext(env, follower, paramValue(alice.ID))
		require.NoError(t, h.FollowUser(c))
	}

	req := httptest.NewRequest(http.MethodGet, "/followers-count", nil)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	authenticate(c, alice)
	require.NoError(t, h.FollowersCount(c))

	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(2), data["follower_count"])

	req = httptest.NewRequest(http.MethodGet, "/following-count", nil)
	rec = httptest.NewRecorder()
	c = env.e.NewContext(req, rec)
	authenticate(c, alice)
	require.NoError(t, h.FollowingCount(c))

	resp = decodeResponse(t, rec)
	data = resp.Data.(map[string]interface{})
	assert.Equal(t, float64(0), data["following_count"])
}

func TestFollowRequiresAuth(t *testing.T) {
	h, env := newFollowHandler(t)
	bob := createTestUser(t, env.db, "bob")

	req := httptest.NewRequest(http.MethodPost, "/follow/"+paramValue(bob.ID), nil)
	c := env.e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/follow/:userId")
	c.SetParamNames("userId")
	c.SetParamValues(paramValue(bob.ID))

	httpError(t, h.FollowUser(c), http.StatusUnauthorized)
}
