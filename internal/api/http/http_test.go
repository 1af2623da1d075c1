package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nuxtvisa/visa-portal/internal/apisrv/admin"
	"github.com/nuxtvisa/visa-portal/internal/apisrv/auth"
	"github.com/nuxtvisa/visa-portal/internal/apisrv/frontend"
	"github.com/nuxtvisa/visa-portal/internal/apisrv/httpx"
	"github.com/nuxtvisa/visa-portal/internal/content"
	"github.com/nuxtvisa/visa-portal/internal/dependency/mocks"
	"github.com/nuxtvisa/visa-portal/internal/metrics"
	"github.com/nuxtvisa/visa-portal/internal/ratelimit"
	"github.com/nuxtvisa/visa-portal/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIsOriginAllowed(t *testing.T) {
	allowed := []string{"https://visa.example.com"}

	assert.True(t, isOriginAllowed("http://localhost:3000", allowed))
	assert.True(t, isOriginAllowed("https://visa.example.com", allowed))
	assert.False(t, isOriginAllowed("https://evil.example.com", allowed))
	assert.False(t, isOriginAllowed("http://localhost.evil.com", allowed))
}

func TestCheckOrigin(t *testing.T) {
	s := New(&Config{AllowedOrigins: []string{"https://visa.example.com"}})

	req := httptest.NewRequest(http.MethodGet, "/api/frontend/chat/ws", nil)
	assert.True(t, s.CheckOrigin(req))

	req.Header.Set("Origin", "https://visa.example.com")
	assert.True(t, s.CheckOrigin(req))

	req.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, s.CheckOrigin(req))
}

func newRouter(t *testing.T, repo *mocks.Repository) http.Handler {
	t.Helper()
	cs, err := content.New(&content.Config{WhatsAppNumber: "966500000000"})
	require.NoError(t, err)
	rl := ratelimit.NewMultiKeyLimiter(&ratelimit.Config{})
	t.Cleanup(rl.Close)
	rs := httpx.NewResponder(cs)

	authS, err := auth.New(&auth.Config{
		JWTSecret:                "secret",
		MasterPassword:           "master",
		PasswordHasherSaltSize:   16,
		PasswordHasherIterations: 1000,
		JWTTTL:                   "1h",
	}, repo, session.NewManager(), rl, rs)
	require.NoError(t, err)

	s := New(&Config{AllowedOrigins: []string{"https://visa.example.com"}})
	return s.Router(&Handlers{
		Auth:     authS,
		Frontend: frontend.New(repo, cs, nil, nil, rl, rs),
		Admin:    admin.New(repo, nil, nil, nil, cs, rs),
		Content:  cs,
		Metrics:  metrics.New(),
		Health:   repo,
	})
}

func TestRouter_Healthz(t *testing.T) {
	repo := mocks.NewRepository(t)
	repo.EXPECT().Ping(mock.Anything).Return(nil).Once()
	repo.EXPECT().Ping(mock.Anything).Return(errors.New("gone")).Once()
	h := newRouter(t, repo)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_AnonymousRedirects(t *testing.T) {
	h := newRouter(t, mocks.NewRepository(t))

	for _, path := range []string{"/api/frontend/applications", "/api/admin/applications"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path+"?lang=en", nil)
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		var p httpx.Problem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		assert.Equal(t, httpx.RedirectAuth, p.Redirect, path)
		assert.NotEmpty(t, p.Error, path)
		assert.Equal(t, "en", rec.Header().Get("Content-Language"))
	}
}

func TestRouter_ContentAndMetrics(t *testing.T) {
	h := newRouter(t, mocks.NewRepository(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/frontend/content", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ar", rec.Header().Get("Content-Language"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `visa_portal_http_requests_total{code="200",method="GET",route="/api/frontend/content"} 1`)
}

func TestRouter_CORS(t *testing.T) {
	h := newRouter(t, mocks.NewRepository(t))

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/sign-in", nil)
	req.Header.Set("Origin", "https://visa.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://visa.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
