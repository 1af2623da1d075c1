package frontend

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nuxtvisa/visa-portal/internal/apisrv/httpx"
	"github.com/nuxtvisa/visa-portal/internal/chat"
	"github.com/nuxtvisa/visa-portal/internal/content"
	"github.com/nuxtvisa/visa-portal/internal/dependency"
	"github.com/nuxtvisa/visa-portal/internal/dto"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	gerr "github.com/nuxtvisa/visa-portal/internal/errors"
	"github.com/nuxtvisa/visa-portal/internal/form"
	"github.com/nuxtvisa/visa-portal/internal/middleware"
	"github.com/nuxtvisa/visa-portal/internal/ratelimit"
	"github.com/nuxtvisa/visa-portal/internal/session"
)

const RedirectMyApplications = "/my-applications"

// Server implements handlers for visitor requests.
type Server struct {
	repo     dependency.Repository
	cs       *content.Store
	chat     *chat.Service
	hub      *chat.Hub
	rl       *ratelimit.MultiKeyLimiter
	rs       *httpx.Responder
	onSubmit func(*entity.VisaApplication)
}

// New creates a new server with frontend handlers.
func New(r dependency.Repository, cs *content.Store, chatSvc *chat.Service, hub *chat.Hub, rl *ratelimit.MultiKeyLimiter, rs *httpx.Responder) *Server {
	return &Server{
		repo: r,
		cs:   cs,
		chat: chatSvc,
		hub:  hub,
		rl:   rl,
		rs:   rs,
	}
}

// OnSubmit registers fn to run after every stored application.
func (s *Server) OnSubmit(fn func(*entity.VisaApplication)) {
	s.onSubmit = fn
}

// Routes mounts the visitor API; requireSession guards the application
// endpoints.
func (s *Server) Routes(requireSession func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/content", s.GetContent)

	r.Group(func(r chi.Router) {
		r.Use(requireSession)
		r.Post("/applications", s.SubmitApplication)
		r.Get("/applications", s.ListMyApplications)
	})

	r.Get("/chat/messages", s.GetChatMessages)
	r.Post("/chat/messages", s.SendChatMessage)
	r.Get("/chat/ws", s.ChatSocket)
	return r
}

type ContentResponse struct {
	*content.Sections
	WhatsAppURL string `json:"whatsapp_url"`
}

func (s *Server) GetContent(w http.ResponseWriter, r *http.Request) {
	lang := content.LanguageFrom(r.Context())
	s.rs.JSON(w, http.StatusOK, &ContentResponse{
		Sections:    s.cs.Sections(lang),
		WhatsAppURL: s.cs.WhatsAppURL(lang),
	})
}

type ApplicationResponse struct {
	Application dto.Application `json:"application"`
	Notice      string          `json:"notice"`
	Redirect    string          `json:"redirect"`
}

// SubmitApplication stores a pending application owned by the caller.
// Nothing reaches the store unless every field is valid.
func (s *Server) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := session.FromContext(ctx)
	if !ok {
		s.rs.Error(w, r, gerr.ErrAuthRequired, "error.submit_failed")
		return
	}

	req := &form.ApplicationRequest{}
	if err := httpx.Decode(r, req); err != nil {
		s.rs.Error(w, r, err, "error.submit_failed")
		return
	}
	if err := req.Validate(); err != nil {
		s.rs.Error(w, r, err, "error.submit_failed")
		return
	}
	if err := s.rl.CheckApplication(middleware.GetClientIP(ctx)); err != nil {
		s.rs.Error(w, r, err, "error.submit_failed")
		return
	}

	lang := content.LanguageFrom(ctx)
	a, err := s.repo.Applications().AddApplication(ctx, id.AccountId, lang.String(), req.Insert())
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't add application",
			slog.String("err", err.Error()),
			slog.String("account_id", id.AccountId),
		)
		s.rs.Fail(w, r, http.StatusInternalServerError, "error.submit_failed", "")
		return
	}
	if s.onSubmit != nil {
		s.onSubmit(a)
	}

	s.rs.JSON(w, http.StatusCreated, &ApplicationResponse{
		Application: dto.ConvertEntityApplication(s.cs, lang, a),
		Notice:      s.rs.T(r, "notice.application_submitted"),
		Redirect:    RedirectMyApplications,
	})
}

type ApplicationsResponse struct {
	Applications []dto.Application `json:"applications"`
	Empty        bool              `json:"empty"`
	Notice       string            `json:"notice,omitempty"`
}

// ListMyApplications returns the caller's applications, newest first.
func (s *Server) ListMyApplications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := session.FromContext(ctx)
	if !ok {
		s.rs.Error(w, r, gerr.ErrAuthRequired, "error.internal")
		return
	}

	as, err := s.repo.Applications().GetApplicationsByUser(ctx, id.AccountId)
	if err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}

	resp := &ApplicationsResponse{
		Applications: dto.ConvertEntityApplications(s.cs, content.LanguageFrom(ctx), as),
		Empty:        len(as) == 0,
	}
	if resp.Empty {
		resp.Notice = s.rs.T(r, "notice.applications_empty")
	}
	s.rs.JSON(w, http.StatusOK, resp)
}

type MessagesResponse struct {
	Messages []entity.SupportMessage `json:"messages"`
}

// GetChatMessages returns the support history, oldest first.
func (s *Server) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.chat.History(r.Context())
	if err != nil {
		s.rs.Error(w, r, err, "error.internal")
		return
	}
	if msgs == nil {
		msgs = []entity.SupportMessage{}
	}
	s.rs.JSON(w, http.StatusOK, &MessagesResponse{Messages: msgs})
}

type MessageResponse struct {
	Message *entity.SupportMessage `json:"message"`
}

// SendChatMessage writes a visitor message to the support channel.
func (s *Server) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := &form.ChatMessageRequest{}
	if err := httpx.Decode(r, req); err != nil {
		s.rs.Error(w, r, err, "error.chat_send_failed")
		return
	}
	if err := req.Validate(); err != nil {
		s.rs.Error(w, r, err, "error.chat_send_failed")
		return
	}
	if err := s.rl.CheckChatMessage(middleware.GetClientIP(ctx)); err != nil {
		s.rs.Error(w, r, err, "error.chat_send_failed")
		return
	}

	m, err := s.chat.Send(ctx, req.UserName, req.Message, false)
	if err != nil {
		s.rs.Error(w, r, err, "error.chat_send_failed")
		return
	}
	s.rs.JSON(w, http.StatusCreated, &MessageResponse{Message: m})
}

// ChatSocket opens the live chat once the visitor entered a name.
func (s *Server) ChatSocket(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		s.rs.Fail(w, r, http.StatusBadRequest, "error.chat_name_required", "")
		return
	}
	p := chat.Peer{Name: name}
	if id, ok := session.FromContext(r.Context()); ok {
		p.SessionId = id.SessionId
	}
	s.hub.Serve(w, r, p)
}
