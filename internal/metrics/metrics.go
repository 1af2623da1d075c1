// Package metrics exposes prometheus counters for the portal.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	"github.com/nuxtvisa/visa-portal/internal/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "visa_portal"

type Metrics struct {
	reg *prometheus.Registry

	applicationsSubmitted *prometheus.CounterVec
	applicationsReviewed  *prometheus.CounterVec
	chatMessages          *prometheus.CounterVec
	sessionChanges        *prometheus.CounterVec
	activeSessions        prometheus.Gauge
	httpRequests          *prometheus.CounterVec
	httpDuration          *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		applicationsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "submitted_total",
			Help:      "Visa applications stored, by visa type.",
		}, []string{"visa_type"}),
		applicationsReviewed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "reviewed_total",
			Help:      "Admin reviews stored, by resulting status.",
		}, []string{"status"}),
		chatMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "messages_total",
			Help:      "Support messages stored, by origin.",
		}, []string{"origin"}),
		sessionChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "changes_total",
			Help:      "Sign-ins and sign-outs.",
		}, []string{"state"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Sessions opened minus sessions closed since start.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.applicationsSubmitted,
		m.applicationsReviewed,
		m.chatMessages,
		m.sessionChanges,
		m.activeSessions,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

func (m *Metrics) ApplicationSubmitted(a *entity.VisaApplication) {
	m.applicationsSubmitted.WithLabelValues(string(a.VisaType)).Inc()
}

func (m *Metrics) ApplicationReviewed(r *entity.ApplicationReview) {
	m.applicationsReviewed.WithLabelValues(string(r.Status)).Inc()
}

func (m *Metrics) ChatMessage(msg *entity.SupportMessage) {
	origin := "visitor"
	if msg.IsAdminReply {
		origin = "admin"
	}
	m.chatMessages.WithLabelValues(origin).Inc()
}

// TrackSockets exposes fn as the open chat socket gauge.
func (m *Metrics) TrackSockets(fn func() int) {
	m.reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "chat",
		Name:      "sockets_open",
		Help:      "Open live chat sockets.",
	}, func() float64 { return float64(fn()) }))
}

func (m *Metrics) WatchSessions(sm *session.Manager) (unsubscribe func()) {
	return sm.Subscribe(func(c session.Change) {
		m.sessionChanges.WithLabelValues(string(c.State)).Inc()
		switch c.State {
		case session.Authenticated:
			m.activeSessions.Inc()
		case session.Anonymous:
			m.activeSessions.Dec()
		}
	})
}

// Middleware records every request under its chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
