package admin

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nuxtvisa/visa-portal/internal/apisrv/httpx"
	"github.com/nuxtvisa/visa-portal/internal/chat"
	"github.com/nuxtvisa/visa-portal/internal/content"
	"github.com/nuxtvisa/visa-portal/internal/dependency"
	"github.com/nuxtvisa/visa-portal/internal/dto"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	gerr "github.com/nuxtvisa/visa-portal/internal/errors"
	"github.com/nuxtvisa/visa-portal/internal/form"
	"github.com/nuxtvisa/visa-portal/internal/session"
)

// Server implements handlers for admin.
type Server struct {
	repo     dependency.Repository
	mailer   dependency.Mailer
	chat     *chat.Service
	hub      *chat.Hub
	cs       *content.Store
	rs       *httpx.Responder
	onReview func(*entity.ApplicationReview)
}

// New creates a new server with admin handlers.
func New(
	r dependency.Repository,
	m dependency.Mailer,
	chatSvc *chat.Service,
	hub *chat.Hub,
	cs *content.Store,
	rs *httpx.Responder,
) *Server {
	return &Server{
		repo:   r,
		mailer: m,
		chat:   chatSvc,
		hub:    hub,
		cs:     cs,
		rs:     rs,
	}
}

// OnReview registers fn to run after every stored review.
func (s *Server) OnReview(fn func(*entity.ApplicationReview)) {
	s.onReview = fn
}

func (s *Server) Routes(requireSession func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requireSession, s.RequireAdmin)
	r.Get("/applications", s.ListApplications)
	r.Put("/applications/{id}", s.ReviewApplication)
	r.Post("/chat/messages", s.ReplyChatMessage)
	r.Get("/chat/ws", s.ChatSocket)
	return r
}

// RequireAdmin looks the role grant up on every request, before any
// application data is read.
func (s *Server) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, ok := session.FromContext(ctx)
		if !ok {
			s.rs.Error(w, r, gerr.ErrAuthRequired, "error.internal")
			return
		}
		isAdmin, err := s.repo.Roles().HasRole(ctx, id.AccountId, entity.RoleAdmin)
		if err != nil {
			s.rs.Error(w, r, err, "error.internal")
			return
		}
		if !isAdmin {
			slog.Default().WarnContext(ctx, "admin access denied",
				slog.String("account_id", id.AccountId),
				slog.String("path", r.URL.Path),
			)
			s.rs.Error(w, r, gerr.ErrAdminOnly, "error.internal")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type ApplicationsResponse struct {
	Applications []dto.Application `json:"applications"`
	Notice       string            `json:"notice,omitempty"`
}

// ListApplications returns every application, newest first.
func (s *Server) ListApplications(w http.ResponseWriter, r *http.Request) {
	as, err := s.repo.Applications().GetAllApplications(r.Context())
	if err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}
	s.rs.JSON(w, http.StatusOK, &ApplicationsResponse{
		Applications: dto.ConvertEntityApplications(s.cs, content.LanguageFrom(r.Context()), as),
	})
}

// ReviewApplication writes status and admin notes, then answers with the
// reloaded list. Any status may follow any other; the last write wins.
func (s *Server) ReviewApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	appId := chi.URLParam(r, "id")

	req := &form.ReviewRequest{}
	if err := httpx.Decode(r, req); err != nil {
		s.rs.Error(w, r, err, "error.update_failed")
		return
	}
	if err := req.Validate(); err != nil {
		s.rs.Error(w, r, err, "error.update_failed")
		return
	}

	review := req.Review()
	if err := s.repo.Applications().UpdateApplicationReview(ctx, appId, review); err != nil {
		s.rs.Error(w, r, err, "error.update_failed")
		return
	}
	if s.onReview != nil {
		s.onReview(review)
	}
	s.notifyApplicant(r, appId)

	as, err := s.repo.Applications().GetAllApplications(ctx)
	if err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}
	s.rs.JSON(w, http.StatusOK, &ApplicationsResponse{
		Applications: dto.ConvertEntityApplications(s.cs, content.LanguageFrom(ctx), as),
		Notice:       s.rs.T(r, "notice.application_updated"),
	})
}

// notifyApplicant queues the status email; failures never undo the review.
func (s *Server) notifyApplicant(r *http.Request, appId string) {
	ctx := r.Context()
	a, err := s.repo.Applications().GetApplicationById(ctx, appId)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get application for notification",
			slog.String("err", err.Error()),
			slog.String("id", appId),
		)
		return
	}
	if err := s.mailer.QueueStatusUpdate(ctx, a); err != nil {
		slog.Default().ErrorContext(ctx, "can't queue status update mail",
			slog.String("err", err.Error()),
			slog.String("id", appId),
		)
	}
}

type ReplyRequest struct {
	Message string `json:"message"`
}

// ReplyChatMessage posts into the support channel as the support team.
func (s *Server) ReplyChatMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body := &ReplyRequest{}
	if err := httpx.Decode(r, body); err != nil {
		s.rs.Error(w, r, err, "error.chat_send_failed")
		return
	}
	req := &form.ChatMessageRequest{
		UserName: s.replyName(r),
		Message:  body.Message,
	}
	if err := req.Validate(); err != nil {
		s.rs.Error(w, r, err, "error.chat_send_failed")
		return
	}

	m, err := s.chat.Send(ctx, req.UserName, req.Message, true)
	if err != nil {
		s.rs.Error(w, r, err, "error.chat_send_failed")
		return
	}
	s.rs.JSON(w, http.StatusCreated, map[string]*entity.SupportMessage{"message": m})
}

// ChatSocket opens the live chat for an admin; it is closed when the
// admin's session signs out.
func (s *Server) ChatSocket(w http.ResponseWriter, r *http.Request) {
	p := chat.Peer{
		Name:  s.replyName(r),
		Admin: true,
	}
	if id, ok := session.FromContext(r.Context()); ok {
		p.SessionId = id.SessionId
	}
	s.hub.Serve(w, r, p)
}

func (s *Server) replyName(r *http.Request) string {
	if id, ok := session.FromContext(r.Context()); ok && id.FullName != "" {
		return id.FullName
	}
	return s.rs.T(r, "chat.support_name")
}
