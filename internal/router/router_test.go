package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Marco16005/pag-web-web/internal/admin"
	adminrepo "github.com/Marco16005/pag-web-web/internal/admin/repo"
	"github.com/Marco16005/pag-web-web/internal/chat"
	"github.com/Marco16005/pag-web-web/internal/contact"
	contactrepo "github.com/Marco16005/pag-web-web/internal/contact/repo"
	"github.com/Marco16005/pag-web-web/internal/gateway"
	"github.com/Marco16005/pag-web-web/internal/gateway/gatewaytest"
	"github.com/Marco16005/pag-web-web/internal/leaderboard"
	lbrepo "github.com/Marco16005/pag-web-web/internal/leaderboard/repo"
	"github.com/Marco16005/pag-web-web/internal/token"
	"github.com/Marco16005/pag-web-web/internal/user"
	userentity "github.com/Marco16005/pag-web-web/internal/user/entity"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newHandlers(t *testing.T, stub *gatewaytest.Stub, tokens *token.Service) Handlers {
	t.Helper()
	logger := zaptest.NewLogger(t).Sugar()
	users := user.NewUserService(stub, nil)
	contacts := contactrepo.NewContactRepo(stub)
	return Handlers{
		Users:       user.NewHandler(users, nil, logger),
		Contact:     contact.NewHandler(contacts, logger),
		Leaderboard: leaderboard.NewHandler(lbrepo.NewLeaderboardRepo(stub), logger),
		Admin:       admin.NewHandler(users, contacts, adminrepo.NewAdminRepo(stub), logger),
		Chat:        chat.NewHandler(nil, time.Second, logger),
		Tokens:      tokens,
		Store:       fakePinger{},
	}
}

func newTestRouter(t *testing.T, cfg Config, h Handlers) http.Handler {
	t.Helper()
	return RegisterRoutes(cfg, h, DefaultLimits, zaptest.NewLogger(t).Sugar())
}

func send(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestRegisterRateLimitCountsInvalidRequests(t *testing.T) {
	stub := gatewaytest.New()
	h := newTestRouter(t, Config{}, newHandlers(t, stub, nil))

	for i := 0; i < DefaultLimits.Register.Requests; i++ {
		rec := send(h, http.MethodPost, "/api/register", `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code, "request %d", i+1)
	}
	rec := send(h, http.MethodPost, "/api/register", `{}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"Too many registration attempts from this IP, please try again after 15 minutes."}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, 0, stub.Count(""))
}

func TestRateLimitsAreIndependentPerRoute(t *testing.T) {
	stub := gatewaytest.New()
	h := newTestRouter(t, Config{}, newHandlers(t, stub, nil))

	for i := 0; i <= DefaultLimits.Contact.Requests; i++ {
		send(h, http.MethodPost, "/api/contact", `{}`)
	}
	rec := send(h, http.MethodPost, "/api/contact", `{}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"Too many contact form submissions from this IP, please try again after an hour."}`, rec.Body.String())

	rec = send(h, http.MethodPost, "/api/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginRateLimit(t *testing.T) {
	h := newTestRouter(t, Config{}, newHandlers(t, gatewaytest.New(), nil))
	for i := 0; i < DefaultLimits.Login.Requests; i++ {
		send(h, http.MethodPost, "/api/login", `{}`)
	}
	rec := send(h, http.MethodPost, "/api/login", `{"correo":"a@b.co","contraseña":"x"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"Too many login attempts from this IP, please try again after 15 minutes."}`, rec.Body.String())
}

func TestUnknownAPIPathIsJSON404(t *testing.T) {
	h := newTestRouter(t, Config{}, newHandlers(t, gatewaytest.New(), nil))
	rec := send(h, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not found."}`, rec.Body.String())
	assert.Equal(t, apiCSP, rec.Header().Get("Content-Security-Policy"))
}

func TestHealth(t *testing.T) {
	hs := newHandlers(t, gatewaytest.New(), nil)
	rec := send(newTestRouter(t, Config{}, hs), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	hs.Store = fakePinger{err: errors.New("db down")}
	rec = send(newTestRouter(t, Config{}, hs), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRoutesReachHandlers(t *testing.T) {
	stub := gatewaytest.New().On(gateway.ProcListUsers, gatewaytest.Rows([]userentity.User{}))
	h := newTestRouter(t, Config{}, newHandlers(t, stub, nil))

	rec := send(h, http.MethodGet, "/api/admin/users", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = send(h, http.MethodGet, "/api/registration-rules", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = send(h, http.MethodPost, "/api/chat-gemini", `{"message":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"AI service is not configured correctly. Missing API Key."}`, rec.Body.String())
}

func TestAdminGuard(t *testing.T) {
	tokens := token.New(token.Config{Secret: "s3cret", TTL: time.Hour, Issuer: "test"})
	stub := gatewaytest.New().On(gateway.ProcListUsers, gatewaytest.Rows([]userentity.User{}))
	h := newTestRouter(t, Config{}, newHandlers(t, stub, tokens))

	rec := send(h, http.MethodGet, "/api/admin/users", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	userToken, err := tokens.Issue(2, "user")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken, err := tokens.Issue(1, "admin")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, stub.Count(gateway.ProcListUsers))
}

func TestRequestIDIsEchoedOrAssigned(t *testing.T) {
	h := newTestRouter(t, Config{}, newHandlers(t, gatewaytest.New(), nil))

	rec := send(h, http.MethodGet, "/api/health", "")
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	cfg := Config{Env: "production", FrontendURL: "https://campus-chaos.example"}
	h := newTestRouter(t, cfg, newHandlers(t, gatewaytest.New(), nil))

	for origin, allowed := range map[string]bool{
		"http://localhost:5500":        true,
		"https://campus-chaos.example": true,
		"https://evil.example":         false,
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if allowed {
			assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"), origin)
			assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"), origin)
		} else {
			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"), origin)
		}
	}
}

func TestAllowedOrigins(t *testing.T) {
	dev := Config{Env: "development", FrontendURL: "https://x.example"}
	assert.Equal(t, DevOrigins, dev.AllowedOrigins())

	prod := Config{Env: "production", FrontendURL: "https://x.example", RenderExternalURL: "https://x.example"}
	assert.Equal(t, append(append([]string(nil), DevOrigins...), "https://x.example"), prod.AllowedOrigins())
}

func TestRecoverMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core).Sugar()
	wrap := func(h http.HandlerFunc) http.Handler {
		return RequestIDMiddleware()(LoggingMiddleware(logger)(RecoverMiddleware(logger)(h)))
	}

	rec := httptest.NewRecorder()
	wrap(func(http.ResponseWriter, *http.Request) { panic("boom") }).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/x", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error."}`, rec.Body.String())
	require.Equal(t, 1, logs.FilterMessage("panic serving request").Len())

	rec = httptest.NewRecorder()
	wrap(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("partial"))
		panic("late")
	}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/x", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestStaticFallback(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	write("index.html", "home")
	write("about-us.html", "about")
	write("css/site.css", "body{}")
	write("Build/game.wasm.br", "wasm")

	h := newTestRouter(t, Config{StaticDir: dir}, newHandlers(t, gatewaytest.New(), nil))

	cases := []struct {
		path string
		code int
		body string
	}{
		{"/", http.StatusOK, "home"},
		{"/about-us", http.StatusOK, "about"},
		{"/about-us.html", http.StatusOK, "about"},
		{"/profile", http.StatusOK, "home"},
		{"/css/site.css", http.StatusOK, "body{}"},
		{"/css/missing.css", http.StatusNotFound, ""},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := send(h, http.MethodGet, tc.path, "")
			assert.Equal(t, tc.code, rec.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, rec.Body.String())
			}
		})
	}

	rec := send(h, http.MethodGet, "/Build/game.wasm.br", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "br", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "application/wasm", rec.Header().Get("Content-Type"))
}
