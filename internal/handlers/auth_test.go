package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/onielsteve2003/Modern-social-media/internal/models"
	"github.com/onielsteve2003/Modern-social-media/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	return NewAuthHandler(repositories.NewPostgresUserRepository(env.db), "auth-test-secret"), env
}

func validSignup(username string) models.SignupRequest {
	return models.SignupRequest{
		Username: username,
		Fullname: username + " Example",
		Email:    username + "@example.com",
		DOB:      "1995-06-15",
		Password: testPassword,
	}
}

func TestSignup(t *testing.T) {
	h, env := newAuthHandler(t)

	req := newJSONRequest(t, http.MethodPost, "/signup", validSignup("alice"))
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "Signup successful", resp.Message)

	var user models.User
	require.NoError(t, env.db.Where("username = ?", "alice").First(&user).Error)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, testPassword, user.Password, "password must be stored hashed")
}

func TestSignupUnderage(t *testing.T) {
	h, env := newAuthHandler(t)

	body := validSignup("kid")
	body.DOB = time.Now().AddDate(-17, 0, 0).Format("2006-01-02")
	req := newJSONRequest(t, http.MethodPost, "/signup", body)
	c := env.e.NewContext(req, httptest.NewRecorder())

	err := h.Signup(c)
	he := httpError(t, err, http.StatusBadRequest)
	assert.Contains(t, he.Message, "18")
}

func TestSignupDuplicateUsername(t *testing.T) {
	h, env := newAuthHandler(t)
	createTestUser(t, env.db, "alice")

	body := validSignup("alice")
	body.Email = "other@example.com"
	req := newJSONRequest(t, http.MethodPost, "/signup", body)
	c := env.e.NewContext(req, httptest.NewRecorder())

	httpError(t, h.Signup(c), http.StatusConflict)
}

func TestSignupDuplicateEmail(t *testing.T) {
	h, env := newAuthHandler(t)
	createTestUser(t, env.db, "alice")

	body := validSignup("different")
	body.Email = "alice@example.com"
	req := newJSONRequest(t, http.MethodPost, "/signup", body)
	c := env.e.NewContext(req, httptest.NewRecorder())

	httpError(t, h.Signup(c), http.StatusConflict)
}

func TestSignupInvalidBody(t *testing.T) {
	h, env := newAuthHandler(t)

	body := validSignup("alice")
	body.DOB = "15/06/1995"
	req := newJSONRequest(t, http.MethodPost, "/signup", body)
	c := env.e.NewContext(req, httptest.NewRecorder())

	httpError(t, h.Signup(c), http.StatusBadRequest)
}

func TestLoginWithUsername(t *testing.T) {
	h, env := newAuthHandler(t)
	createTestUser(t, env.db, "alice")

	req := newJSONRequest(t, http.MethodPost, "/login", models.LoginRequest{Identifier: "alice", Password: testPassword})
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])
}

func TestLoginWithEmail(t *testing.T) {
	h, env := newAuthHandler(t)
	createTestUser(t, env.db, "alice")

	req := newJSONRequest(t, http.MethodPost, "/login", models.LoginRequest{Identifier: "alice@example.com", Password: testPassword})
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	h, env := newAuthHandler(t)
	createTestUser(t, env.db, "alice")

	req := newJSONRequest(t, http.MethodPost, "/login", models.LoginRequest{Identifier: "alice", Password: "wrong-password"})
	c := env.e.NewContext(req, httptest.NewRecorder())

	httpError(t, h.Login(c), http.StatusUnauthorized)
}

func TestLoginUnknownIdentifier(t *testing.T) {
	h, env := newAuthHandler(t)

	req := newJSONRequest(t, http.MethodPost, "/login", models.LoginRequest{Identifier: "nobody", Password: testPassword})
	c := env.e.NewContext(req, httptest.NewRecorder())

	httpError(t, h.Login(c), http.StatusUnauthorized)
}

func TestUnderage(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, underage(time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC), now), "exactly 18 today")
	assert.True(t, underage(time.Date(2008, 1, 2, 0, 0, 0, 0, time.UTC), now), "18 tomorrow")
	assert.False(t, underage(time.Date(1990, 7, 20, 0, 0, 0, 0, time.UTC), now))
}
