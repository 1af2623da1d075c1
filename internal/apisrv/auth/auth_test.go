package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nuxtvisa/visa-portal/internal/apisrv/httpx"
	"github.com/nuxtvisa/visa-portal/internal/content"
	"github.com/nuxtvisa/visa-portal/internal/dependency"
	"github.com/nuxtvisa/visa-portal/internal/dependency/mocks"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	gerr "github.com/nuxtvisa/visa-portal/internal/errors"
	"github.com/nuxtvisa/visa-portal/internal/ratelimit"
	"github.com/nuxtvisa/visa-portal/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	jwtSecret      = "hehe"
	masterPassword = "FJKqDyBvr9pAQMB3f8Uj4s"

	email    = "sara@example.com"
	password = "testPassword"
)

type env struct {
	srv      *Server
	repo     *mocks.Repository
	accounts *mocks.Accounts
	sessions *mocks.Sessions
	roles    *mocks.Roles
	changes  []session.Change
}

func newEnv(t *testing.T) *env {
	repo := mocks.NewRepository(t)
	e := &env{
		repo:     repo,
		accounts: mocks.NewAccounts(t),
		sessions: mocks.NewSessions(t),
		roles:    mocks.NewRoles(t),
	}
	repo.EXPECT().Accounts().Return(e.accounts).Maybe()
	repo.EXPECT().Sessions().Return(e.sessions).Maybe()
	repo.EXPECT().Roles().Return(e.roles).Maybe()
	repo.EXPECT().Now().RunAndReturn(time.Now).Maybe()

	cs, err := content.New(&content.Config{})
	require.NoError(t, err)
	rl := ratelimit.NewMultiKeyLimiter(&ratelimit.Config{})
	t.Cleanup(rl.Close)

	sm := session.NewManager()
	sm.Subscribe(func(c session.Change) { e.changes = append(e.changes, c) })

	e.srv, err = New(&Config{
		JWTSecret:                jwtSecret,
		MasterPassword:           masterPassword,
		PasswordHasherSaltSize:   16,
		PasswordHasherIterations: 1000,
		JWTTTL:                   "60m",
	}, repo, sm, rl, httpx.NewResponder(cs))
	require.NoError(t, err)
	return e
}

func (e *env) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.srv.Routes().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func account(t *testing.T, e *env) *entity.Account {
	hash, err := e.srv.pwhash.HashPassword(password)
	require.NoError(t, err)
	return &entity.Account{Id: "acc-1", Email: email, PasswordHash: hash, FullName: "Sara Ali"}
}

func newSession(id string, ttl time.Duration) *entity.Session {
	return &entity.Session{Id: id, AccountId: "acc-1", CreatedAt: time.Now(), ExpiresAt: time.Now().Add(ttl)}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cs, err := content.New(&content.Config{})
	require.NoError(t, err)
	rs := httpx.NewResponder(cs)

	_, err = New(&Config{JWTSecret: "", MasterPassword: "x", PasswordHasherSaltSize: 16, PasswordHasherIterations: 1000, JWTTTL: "1h"}, nil, nil, nil, rs)
	assert.Error(t, err)
	_, err = New(&Config{JWTSecret: "s", MasterPassword: "x", PasswordHasherSaltSize: 16, PasswordHasherIterations: 1000, JWTTTL: "forever"}, nil, nil, nil, rs)
	assert.Error(t, err)
}

func TestSignUp(t *testing.T) {
	e := newEnv(t)

	e.repo.EXPECT().Tx(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, f func(context.Context, dependency.Repository) error) error {
			return f(ctx, e.repo)
		}).Once()
	e.accounts.EXPECT().AddAccount(mock.Anything, email, mock.Anything, "Sara Ali").
		Return(&entity.Account{Id: "acc-1", Email: email, FullName: "Sara Ali"}, nil).Once()
	e.sessions.EXPECT().AddSession(mock.Anything, "acc-1", mock.Anything).
		Return(newSession("sess-1", time.Hour), nil).Once()

	rec := e.do(t, http.MethodPost, "/sign-up", `{"email":" Sara@Example.com ","password":"secret1","full_name":"Sara Ali"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp SessionResponse
	decode(t, rec, &resp)
	assert.Equal(t, session.Authenticated, resp.State)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "/", resp.Redirect)
	require.NotNil(t, resp.Identity)
	assert.Equal(t, "acc-1", resp.Identity.AccountId)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, TokenCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	require.Len(t, e.changes, 1)
	assert.Equal(t, session.Authenticated, e.changes[0].State)
	assert.Equal(t, "sess-1", e.changes[0].SessionId)
}

func TestSignUpEmailTaken(t *testing.T) {
	e := newEnv(t)
	e.repo.EXPECT().Tx(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, f func(context.Context, dependency.Repository) error) error {
			return f(ctx, e.repo)
		}).Once()
	e.accounts.EXPECT().AddAccount(mock.Anything, email, mock.Anything, "").
		Return(nil, fmt.Errorf("add account: %w", gerr.ErrEmailTaken)).Once()

	rec := e.do(t, http.MethodPost, "/sign-up", `{"email":"sara@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var p httpx.Problem
	decode(t, rec, &p)
	assert.Contains(t, p.Fields, "email")
	assert.Empty(t, e.changes)
}

func TestSignUpValidation(t *testing.T) {
	e := newEnv(t)
	rec := e.do(t, http.MethodPost, "/sign-up", `{"email":"nope","password":"123"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var p httpx.Problem
	decode(t, rec, &p)
	assert.Contains(t, p.Fields, "email")
	assert.Contains(t, p.Fields, "password")

	rec = e.do(t, http.MethodPost, "/sign-up", `{"email":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignIn(t *testing.T) {
	e := newEnv(t)
	acc := account(t, e)

	e.accounts.EXPECT().GetAccountByEmail(mock.Anything, email).Return(acc, nil).Twice()
	e.sessions.EXPECT().AddSession(mock.Anything, "acc-1", mock.Anything).
		Return(newSession("sess-2", time.Hour), nil).Once()

	rec := e.do(t, http.MethodPost, "/sign-in", `{"email":"sara@example.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, e.changes)

	rec = e.do(t, http.MethodPost, "/sign-in", fmt.Sprintf(`{"email":"sara@example.com","password":%q}`, password), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SessionResponse
	decode(t, rec, &resp)
	assert.Equal(t, session.Authenticated, resp.State)
	assert.Equal(t, "Sara Ali", resp.Identity.FullName)
	require.Len(t, e.changes, 1)
}

func TestSignInUnknownEmail(t *testing.T) {
	e := newEnv(t)
	e.accounts.EXPECT().GetAccountByEmail(mock.Anything, "who@example.com").
		Return(nil, fmt.Errorf("account: %w", gerr.ErrNotFound)).Once()

	rec := e.do(t, http.MethodPost, "/sign-in", `{"email":"who@example.com","password":"whatever"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func (e *env) token(t *testing.T, sessionId string) string {
	tok, err := e.srv.issue(time.Now().Add(time.Hour), "acc-1", sessionId)
	require.NoError(t, err)
	return tok
}

func TestSessionState(t *testing.T) {
	e := newEnv(t)
	acc := account(t, e)

	rec := e.do(t, http.MethodGet, "/session", "", "")
	var resp SessionResponse
	decode(t, rec, &resp)
	assert.Equal(t, session.Anonymous, resp.State)

	rec = e.do(t, http.MethodGet, "/session", "", "garbage")
	decode(t, rec, &resp)
	assert.Equal(t, session.Anonymous, resp.State)

	e.sessions.EXPECT().GetSession(mock.Anything, "sess-1").Return(newSession("sess-1", time.Hour), nil).Once()
	e.accounts.EXPECT().GetAccountById(mock.Anything, "acc-1").Return(acc, nil).Once()

	rec = e.do(t, http.MethodGet, "/session", "", e.token(t, "sess-1"))
	resp = SessionResponse{}
	decode(t, rec, &resp)
	assert.Equal(t, session.Authenticated, resp.State)
	require.NotNil(t, resp.Identity)
	assert.Equal(t, email, resp.Identity.Email)
}

func TestSessionRevokedOrExpired(t *testing.T) {
	e := newEnv(t)

	e.sessions.EXPECT().GetSession(mock.Anything, "gone").
		Return(nil, fmt.Errorf("session: %w", gerr.ErrNotFound)).Once()
	e.sessions.EXPECT().GetSession(mock.Anything, "old").
		Return(newSession("old", -time.Minute), nil).Once()

	for _, sid := range []string{"gone", "old"} {
		rec := e.do(t, http.MethodGet, "/session", "", e.token(t, sid))
		var resp SessionResponse
		decode(t, rec, &resp)
		assert.Equal(t, session.Anonymous, resp.State, sid)
	}
}

func TestSignOut(t *testing.T) {
	e := newEnv(t)
	acc := account(t, e)

	e.sessions.EXPECT().GetSession(mock.Anything, "sess-1").Return(newSession("sess-1", time.Hour), nil).Once()
	e.accounts.EXPECT().GetAccountById(mock.Anything, "acc-1").Return(acc, nil).Once()
	e.sessions.EXPECT().DeleteSession(mock.Anything, "sess-1").Return(nil).Once()

	rec := e.do(t, http.MethodPost, "/sign-out", "", e.token(t, "sess-1"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SessionResponse
	decode(t, rec, &resp)
	assert.Equal(t, session.Anonymous, resp.State)

	require.Len(t, e.changes, 1)
	assert.Equal(t, session.Anonymous, e.changes[0].State)
	assert.Equal(t, "sess-1", e.changes[0].SessionId)

	// already anonymous
	rec = e.do(t, http.MethodPost, "/sign-out", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, e.changes, 1)
}

func TestRequireSession(t *testing.T) {
	e := newEnv(t)
	reached := false
	h := e.srv.WithSession(e.srv.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/applications", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)

	var p httpx.Problem
	decode(t, rec, &p)
	assert.Equal(t, httpx.RedirectAuth, p.Redirect)
	assert.NotEmpty(t, p.Error)
}

func TestGrantAdmin(t *testing.T) {
	e := newEnv(t)
	acc := account(t, e)

	rec := e.do(t, http.MethodPost, "/admins", `{"master_password":"nope","email":"sara@example.com"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	e.accounts.EXPECT().GetAccountByEmail(mock.Anything, email).Return(acc, nil).Once()
	e.roles.EXPECT().AddRole(mock.Anything, "acc-1", entity.RoleAdmin).Return(nil).Once()

	rec = e.do(t, http.MethodPost, "/admins", fmt.Sprintf(`{"master_password":%q,"email":"sara@example.com"}`, masterPassword), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
