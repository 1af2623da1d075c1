package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nuxtvisa/visa-portal/internal/content"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	"github.com/nuxtvisa/visa-portal/internal/form"
	"github.com/nuxtvisa/visa-portal/internal/middleware"
	"github.com/nuxtvisa/visa-portal/internal/session"
	"golang.org/x/text/language"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 8 << 10
	sendBuffer     = 256
)

const (
	FrameHistory = "history"
	FrameMessage = "message"
	FrameError   = "error"
)

// Frame is every server to client websocket message.
type Frame struct {
	Type     string                  `json:"type"`
	Messages []entity.SupportMessage `json:"messages,omitempty"`
	Message  *entity.SupportMessage  `json:"message,omitempty"`
	Error    string                  `json:"error,omitempty"`
}

type inbound struct {
	Message string `json:"message"`
}

// Peer describes who is on the other end of a socket. SessionId is set for
// signed-in peers only.
type Peer struct {
	Name      string
	Admin     bool
	SessionId string
}

// Hub owns the live chat sockets.
type Hub struct {
	svc      *Service
	cs       *content.Store
	limit    func(ip string) error
	upgrader websocket.Upgrader

	mu     sync.Mutex
	conns  map[*conn]struct{}
	closed bool
}

// NewHub creates a hub. limit, when set, is consulted before every inbound
// message with the client IP.
func NewHub(svc *Service, cs *content.Store, checkOrigin func(*http.Request) bool, limit func(ip string) error) *Hub {
	return &Hub{
		svc:   svc,
		cs:    cs,
		limit: limit,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		conns: make(map[*conn]struct{}),
	}
}

type conn struct {
	ws   *websocket.Conn
	peer Peer
	lang language.Tag
	ip   string
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (c *conn) close() {
	c.once.Do(func() {
		close(c.done)
		c.ws.Close()
	})
}

// enqueue never blocks the broker; a full buffer drops the frame.
func (c *conn) enqueue(f *Frame) {
	b, err := json.Marshal(f)
	if err != nil {
		slog.Default().Error("can't marshal chat frame",
			slog.String("err", err.Error()),
		)
		return
	}
	select {
	case <-c.done:
	case c.send <- b:
	default:
		slog.Default().Warn("chat socket is slow, frame dropped",
			slog.String("type", f.Type),
		)
	}
}

// Serve upgrades the request and runs the socket until either side closes
// it. The subscription is opened before the history is read, so no insert
// between the two is lost; an insert may then appear in both.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, p Peer) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Default().WarnContext(r.Context(), "can't upgrade chat socket",
			slog.String("err", err.Error()),
		)
		return
	}

	c := &conn{
		ws:   ws,
		peer: p,
		lang: content.LanguageFrom(r.Context()),
		ip:   middleware.GetClientIP(r.Context()),
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
	if !h.register(c) {
		ws.Close()
		return
	}
	defer h.unregister(c)
	defer c.close()

	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	sub, err := h.svc.Subscribe(ctx, func(m entity.SupportMessage) {
		c.enqueue(&Frame{Type: FrameMessage, Message: &m})
	})
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't subscribe chat socket",
			slog.String("err", err.Error()),
		)
		h.writeNow(c, &Frame{Type: FrameError, Error: h.cs.T(c.lang, "error.internal")})
		return
	}
	defer sub.Close()

	history, err := h.svc.History(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't load chat history",
			slog.String("err", err.Error()),
		)
		h.writeNow(c, &Frame{Type: FrameError, Error: h.cs.T(c.lang, "error.internal")})
		return
	}
	if history == nil {
		history = []entity.SupportMessage{}
	}
	if err := h.writeNow(c, &Frame{Type: FrameHistory, Messages: history}); err != nil {
		return
	}

	go h.writePump(c)
	h.readPump(ctx, c)
}

// writeNow writes directly to the socket; only used before writePump runs.
func (h *Hub) writeNow(c *conn, f *Frame) error {
	c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(f)
}

func (h *Hub) writePump(c *conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case b := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, b); err != nil {
				c.close()
				return
			}
		case <-ticker.C:
			if err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				c.close()
				return
			}
		case <-c.done:
			return
		}
	}
}

func (h *Hub) readPump(ctx context.Context, c *conn) {
	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, b, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Default().DebugContext(ctx, "chat socket closed",
					slog.String("err", err.Error()),
				)
			}
			return
		}

		var in inbound
		if err := json.Unmarshal(b, &in); err != nil {
			c.enqueue(&Frame{Type: FrameError, Error: h.cs.T(c.lang, "error.bad_request")})
			continue
		}
		h.handleInbound(ctx, c, &in)
	}
}

func (h *Hub) handleInbound(ctx context.Context, c *conn, in *inbound) {
	f := &form.ChatMessageRequest{UserName: c.peer.Name, Message: in.Message}
	if err := f.Validate(); err != nil {
		msgID := "error.chat_send_failed"
		var fe form.FieldErrors
		if errors.As(err, &fe) {
			if id, ok := fe["message"]; ok {
				msgID = id
			} else if id, ok := fe["user_name"]; ok {
				msgID = id
			}
		}
		c.enqueue(&Frame{Type: FrameError, Error: h.cs.T(c.lang, msgID)})
		return
	}
	if h.limit != nil {
		if err := h.limit(c.ip); err != nil {
			c.enqueue(&Frame{Type: FrameError, Error: h.cs.T(c.lang, "error.rate_limited")})
			return
		}
	}
	if _, err := h.svc.Send(ctx, f.UserName, f.Message, c.peer.Admin); err != nil {
		slog.Default().ErrorContext(ctx, "can't send chat message from socket",
			slog.String("err", err.Error()),
		)
		c.enqueue(&Frame{Type: FrameError, Error: h.cs.T(c.lang, "error.chat_send_failed")})
	}
}

func (h *Hub) register(c *conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.conns[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
}

// Connections reports the open sockets.
func (h *Hub) Connections() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// closeWhere closes every socket matching fn.
func (h *Hub) closeWhere(fn func(*conn) bool) int {
	h.mu.Lock()
	var victims []*conn
	for c := range h.conns {
		if fn(c) {
			victims = append(victims, c)
		}
	}
	h.mu.Unlock()

	for _, c := range victims {
		c.close()
	}
	return len(victims)
}

// WatchSessions closes the sockets of sessions that sign out.
func (h *Hub) WatchSessions(sm *session.Manager) (unsubscribe func()) {
	return sm.Subscribe(func(ch session.Change) {
		if ch.State != session.Anonymous || ch.SessionId == "" {
			return
		}
		n := h.closeWhere(func(c *conn) bool {
			return c.peer.SessionId == ch.SessionId
		})
		if n > 0 {
			slog.Default().Info("closed chat sockets of signed out session",
				slog.Int("count", n),
			)
		}
	})
}

// Close closes every socket and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	h.closeWhere(func(*conn) bool { return true })
}
