//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"suraksha-api/internal/config"
	"suraksha-api/internal/database"
	"suraksha-api/internal/handler"
	"suraksha-api/internal/middleware"
	"suraksha-api/internal/model"
	"suraksha-api/internal/repository"
	"suraksha-api/internal/router"
	"suraksha-api/internal/service"
)

type env struct {
	server *httptest.Server
	db     *database.DB
	users  *repository.UserRepository
	tokens *repository.TokenRepository
	auth   *service.AuthService
}

// newEnv spins up the full stack against the database named by
// TEST_DATABASE_URL. Tests are skipped when it is unset.
func newEnv(t *testing.T) *env {
	t.Helper()

	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	db, err := database.New(ctx, databaseURL, 4, 1)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.EnsureSchema(ctx))
	_, err = db.Pool.Exec(ctx, `TRUNCATE refresh_tokens, users`)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db.Pool)
	tokenRepo := repository.NewTokenRepository(db.Pool)
	issuer := service.NewTokenIssuer("integration-secret", 15*time.Minute, 24*time.Hour)
	authService := service.NewAuthService(userRepo, tokenRepo, service.NewPasswordHasher(), issuer)
	userService := service.NewUserService(userRepo)

	cfg := &config.Config{
		Env:              "development",
		ServerPort:       "8080",
		RequestTimeout:   30 * time.Second,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     10000,
		AuthRateLimitRPM: 10000,
	}

	authMiddleware := middleware.NewAuthMiddleware(authService)
	h := router.New(cfg, authMiddleware, router.Handlers{
		Auth:   handler.NewAuthHandler(authService, cfg.Production()),
		User:   handler.NewUserHandler(userService),
		Health: handler.NewHealthHandler(db),
	})

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	return &env{server: server, db: db, users: userRepo, tokens: tokenRepo, auth: authService}
}

func (e *env) do(t *testing.T, method string, path string, payload any, opts ...func(*http.Request)) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.server.URL+path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func withBearer(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func withCookie(cookie *http.Cookie) func(*http.Request) {
	return func(r *http.Request) {
		r.AddCookie(cookie)
	}
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func refreshCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "refreshToken" {
			return cookie
		}
	}
	t.Fatal("refreshToken cookie not set")
	return nil
}

func (e *env) registerAndLogin(t *testing.T, email string, password string) (model.PublicUser, string, *http.Cookie) {
	t.Helper()

	resp := e.do(t, http.MethodPost, "/auth/register", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	user := decode[model.PublicUser](t, resp)

	resp = e.do(t, http.MethodPost, "/auth/login", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[model.LoginResponse](t, resp)
	require.NotEmpty(t, body.AccessToken)

	return user, body.AccessToken, refreshCookie(t, resp)
}
