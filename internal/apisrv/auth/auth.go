package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/nuxtvisa/visa-portal/internal/apisrv/httpx"
	"github.com/nuxtvisa/visa-portal/internal/auth/jwt"
	"github.com/nuxtvisa/visa-portal/internal/auth/pwhash"
	"github.com/nuxtvisa/visa-portal/internal/dependency"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	gerr "github.com/nuxtvisa/visa-portal/internal/errors"
	"github.com/nuxtvisa/visa-portal/internal/form"
	"github.com/nuxtvisa/visa-portal/internal/middleware"
	"github.com/nuxtvisa/visa-portal/internal/ratelimit"
	"github.com/nuxtvisa/visa-portal/internal/session"
)

// TokenCookie carries the session token for clients that cannot set headers,
// such as browser websockets.
const TokenCookie = "jwt"

// Server implements the session endpoints and the session middleware.
type Server struct {
	repo       dependency.Repository
	pwhash     *pwhash.PasswordHasher
	JwtAuth    *jwtauth.JWTAuth
	jwtTTL     time.Duration
	c          *Config
	masterHash string
	sessions   *session.Manager
	rl         *ratelimit.MultiKeyLimiter
	rs         *httpx.Responder
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret                string `mapstructure:"jwt_secret"`
	MasterPassword           string `mapstructure:"master_password"`
	PasswordHasherSaltSize   int    `mapstructure:"password_hasher_salt_size"`
	PasswordHasherIterations int    `mapstructure:"password_hasher_iterations"`
	JWTTTL                   string `mapstructure:"jwt_ttl"`
	SecureCookie             bool   `mapstructure:"secure_cookie"`
}

// SessionResponse is returned by every endpoint that changes or reports the
// session state.
type SessionResponse struct {
	State     session.State     `json:"state"`
	Identity  *session.Identity `json:"identity,omitempty"`
	Token     string            `json:"token,omitempty"`
	ExpiresAt *time.Time        `json:"expires_at,omitempty"`
	Notice    string            `json:"notice,omitempty"`
	Redirect  string            `json:"redirect,omitempty"`
}

// New creates a new auth server.
func New(c *Config, r dependency.Repository, sm *session.Manager, rl *ratelimit.MultiKeyLimiter, rs *httpx.Responder) (*Server, error) {
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	ph, err := pwhash.New(c.PasswordHasherSaltSize, c.PasswordHasherIterations)
	if err != nil {
		return nil, err
	}
	hash, err := ph.HashPassword(c.MasterPassword)
	if err != nil {
		return nil, err
	}
	if err := ph.Validate(c.MasterPassword, hash); err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &Server{
		repo:       r,
		pwhash:     ph,
		JwtAuth:    jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		jwtTTL:     ttl,
		c:          c,
		masterHash: hash,
		sessions:   sm,
		rl:         rl,
		rs:         rs,
	}, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.WithSession)
	r.Post("/sign-up", s.SignUp)
	r.Post("/sign-in", s.SignIn)
	r.Post("/sign-out", s.SignOut)
	r.Get("/session", s.Session)
	r.Post("/admins", s.GrantAdmin)
	return r
}

// SignUp creates an account and its first session in one transaction.
func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.rl.CheckSignUp(middleware.GetClientIP(ctx)); err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}

	req := &form.SignUpRequest{}
	if err := httpx.Decode(r, req); err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}
	if err := req.Validate(); err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}

	pwHash, err := s.pwhash.HashPassword(req.Password)
	if err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}

	var (
		acc  *entity.Account
		sess *entity.Session
	)
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		var err error
		acc, err = rep.Accounts().AddAccount(ctx, req.Email, pwHash, req.FullName)
		if err != nil {
			return err
		}
		sess, err = rep.Sessions().AddSession(ctx, acc.Id, rep.Now().Add(s.jwtTTL))
		return err
	})
	if err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}

	s.startSession(w, r, acc, sess, http.StatusCreated, "notice.signed_up")
}

// SignIn opens a new session; an existing session of the caller stays valid.
func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := &form.SignInRequest{}
	if err := httpx.Decode(r, req); err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}
	if err := req.Validate(); err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}
	if err := s.rl.CheckSignIn(middleware.GetClientIP(ctx), req.Email); err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}

	acc, err := s.repo.Accounts().GetAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gerr.ErrNotFound) {
			err = gerr.ErrBadCredentials
		}
		s.rs.Error(w, r, err, "error.internal")
		return
	}
	if err := s.pwhash.Validate(req.Password, acc.PasswordHash); err != nil {
		slog.Default().InfoContext(ctx, "sign in rejected",
			slog.String("account_id", acc.Id),
		)
		s.rs.Error(w, r, gerr.ErrBadCredentials, "error.internal")
		return
	}

	sess, err := s.repo.Sessions().AddSession(ctx, acc.Id, s.repo.Now().Add(s.jwtTTL))
	if err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}

	s.startSession(w, r, acc, sess, http.StatusOK, "notice.signed_in")
}

func (s *Server) startSession(w http.ResponseWriter, r *http.Request, acc *entity.Account, sess *entity.Session, status int, notice string) {
	token, err := s.issue(sess.ExpiresAt, acc.Id, sess.Id)
	if err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   s.c.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	s.sessions.Publish(session.Change{
		State:     session.Authenticated,
		AccountId: acc.Id,
		SessionId: sess.Id,
	})

	expiresAt := sess.ExpiresAt
	s.rs.JSON(w, status, &SessionResponse{
		State: session.Authenticated,
		Identity: &session.Identity{
			AccountId: acc.Id,
			SessionId: sess.Id,
			Email:     acc.Email,
			FullName:  acc.FullName,
		},
		Token:     token,
		ExpiresAt: &expiresAt,
		Notice:    s.rs.T(r, notice),
		Redirect:  httpx.RedirectHome,
	})
}

func (s *Server) issue(expiresAt time.Time, accountId, sessionId string) (string, error) {
	return jwt.NewSessionToken(s.JwtAuth, expiresAt, accountId, sessionId)
}

// SignOut deletes the caller's session. Without a session it only reports
// the anonymous state.
func (s *Server) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.c.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	id, ok := session.FromContext(ctx)
	if ok {
		err := s.repo.Sessions().DeleteSession(ctx, id.SessionId)
		if err != nil && !errors.Is(err, gerr.ErrNotFound) {
			s.rs.Error(w, r, err, "error.internal")
			return
		}
		s.sessions.Publish(session.Change{
			State:     session.Anonymous,
			AccountId: id.AccountId,
			SessionId: id.SessionId,
		})
	}

	s.rs.JSON(w, http.StatusOK, &SessionResponse{
		State:    session.Anonymous,
		Notice:   s.rs.T(r, "notice.signed_out"),
		Redirect: httpx.RedirectHome,
	})
}

// Session reports the current state; invalid tokens read as anonymous.
func (s *Server) Session(w http.ResponseWriter, r *http.Request) {
	id, ok := session.FromContext(r.Context())
	if !ok {
		s.rs.JSON(w, http.StatusOK, &SessionResponse{State: session.Anonymous})
		return
	}
	s.rs.JSON(w, http.StatusOK, &SessionResponse{
		State:    session.Authenticated,
		Identity: id,
	})
}

// GrantAdmin gives the admin role to an existing account, guarded by the
// master password.
func (s *Server) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := &form.GrantAdminRequest{}
	if err := httpx.Decode(r, req); err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}
	if err := req.Validate(); err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}
	if err := s.pwhash.Validate(req.MasterPassword, s.masterHash); err != nil {
		slog.Default().WarnContext(ctx, "admin grant with bad master password",
			slog.String("ip", middleware.GetClientIP(ctx)),
		)
		s.rs.Error(w, r, gerr.ErrMasterPassword, "error.internal")
		return
	}

	acc, err := s.repo.Accounts().GetAccountByEmail(ctx, req.Email)
	if err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}
	if err := s.repo.Roles().AddRole(ctx, acc.Id, entity.RoleAdmin); err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}
	slog.Default().InfoContext(ctx, "admin role granted",
		slog.String("account_id", acc.Id),
	)

	s.rs.JSON(w, http.StatusOK, map[string]string{
		"notice": s.rs.T(r, "notice.admin_granted"),
	})
}

// WithSession resolves the token from the Authorization header or the
// session cookie and attaches the identity to the request context. A
// missing, invalid, revoked or expired token leaves the request anonymous.
// Requests that already carry an identity pass through untouched.
func (s *Server) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.FromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}
		id, err := s.resolve(r)
		if err != nil {
			s.rs.Error(w, r, err, "error.internal")
			return
		}
		if id != nil {
			r = r.WithContext(session.WithIdentity(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSession rejects anonymous requests with 401 before the handler runs.
func (s *Server) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.FromContext(r.Context()); !ok {
			s.rs.Error(w, r, gerr.ErrAuthRequired, "error.internal")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) resolve(r *http.Request) (*session.Identity, error) {
	ctx := r.Context()

	token := jwtauth.TokenFromHeader(r)
	if token == "" {
		token = jwtauth.TokenFromCookie(r)
	}
	if token == "" {
		return nil, nil
	}

	accountId, sessionId, err := jwt.VerifySessionToken(s.JwtAuth, token)
	if err != nil {
		return nil, nil
	}

	sess, err := s.repo.Sessions().GetSession(ctx, sessionId)
	if err != nil {
		if errors.Is(err, gerr.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("can't get session: %w", err)
	}
	if sess.AccountId != accountId || sess.Expired(s.repo.Now()) {
		return nil, nil
	}

	acc, err := s.repo.Accounts().GetAccountById(ctx, accountId)
	if err != nil {
		if errors.Is(err, gerr.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("can't get account: %w", err)
	}

	return &session.Identity{
		AccountId: acc.Id,
		SessionId: sess.Id,
		Email:     acc.Email,
		FullName:  acc.FullName,
	}, nil
}
