package log

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/nuxtvisa/visa-portal/internal/middleware"
	"github.com/nuxtvisa/visa-portal/internal/session"
)

type Config struct {
	Level     int  `mapstructure:"level"`
	AddSource bool `mapstructure:"add_source"`
}

// RequestLogger logs one line per finished request with the chi request id.
func RequestLogger(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			lvl := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				lvl = slog.LevelError
			}
			l.LogAttrs(r.Context(), lvl, "http request",
				slog.String("request_id", chimw.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.String("client_ip", middleware.GetClientIP(r.Context())),
				slog.String("session", string(session.StateOf(r.Context()))),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// AuditSessions logs every sign-in and sign-out.
func AuditSessions(l *slog.Logger, sm *session.Manager) (unsubscribe func()) {
	return sm.Subscribe(func(c session.Change) {
		l.Info("session changed",
			slog.String("state", string(c.State)),
			slog.String("account_id", c.AccountId),
			slog.String("session_id", c.SessionId),
			slog.Time("at", c.At),
		)
	})
}
