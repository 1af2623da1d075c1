package app

import (
	"context"
	"sync"

	"log/slog"

	"github.com/nuxtvisa/visa-portal/config"
	httpapi "github.com/nuxtvisa/visa-portal/internal/api/http"
	"github.com/nuxtvisa/visa-portal/internal/apisrv/admin"
	"github.com/nuxtvisa/visa-portal/internal/apisrv/auth"
	"github.com/nuxtvisa/visa-portal/internal/apisrv/frontend"
	"github.com/nuxtvisa/visa-portal/internal/apisrv/httpx"
	"github.com/nuxtvisa/visa-portal/internal/chat"
	"github.com/nuxtvisa/visa-portal/internal/content"
	"github.com/nuxtvisa/visa-portal/internal/dependency"
	"github.com/nuxtvisa/visa-portal/internal/mail"
	"github.com/nuxtvisa/visa-portal/internal/metrics"
	"github.com/nuxtvisa/visa-portal/internal/ratelimit"
	"github.com/nuxtvisa/visa-portal/internal/realtime"
	"github.com/nuxtvisa/visa-portal/internal/session"
	"github.com/nuxtvisa/visa-portal/internal/sessioncleanup"
	"github.com/nuxtvisa/visa-portal/internal/store"
	"github.com/nuxtvisa/visa-portal/log"
	"golang.org/x/sync/errgroup"
)

// App is the main application
type App struct {
	hs      *httpapi.Server
	db      dependency.Repository
	broker  realtime.Broker
	hub     *chat.Hub
	mailer  *mail.Mailer
	cleanup *sessioncleanup.Worker
	rl      *ratelimit.MultiKeyLimiter
	unsubs  []func()
	c       *config.Config
	done    chan struct{}
	once    sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting visa portal")

	cs, err := content.New(&a.c.Content)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't load content", slog.String("err", err.Error()))
		return err
	}

	// the store and the broker live for the whole ctx, so no errgroup ctx here
	var g errgroup.Group
	g.Go(func() error {
		db, err := store.New(ctx, a.c.DB)
		if err != nil {
			slog.Default().ErrorContext(ctx, "couldn't connect to mysql", slog.String("err", err.Error()))
			return err
		}
		a.db = db
		return nil
	})
	g.Go(func() error {
		b, err := realtime.New(ctx, &a.c.Realtime)
		if err != nil {
			slog.Default().ErrorContext(ctx, "couldn't start realtime broker", slog.String("err", err.Error()))
			return err
		}
		a.broker = b
		return nil
	})
	if err := g.Wait(); err != nil {
		a.closeStorage()
		return err
	}

	sm := session.NewManager()
	rs := httpx.NewResponder(cs)
	a.rl = ratelimit.NewMultiKeyLimiter(&a.c.RateLimit)
	a.hs = httpapi.New(&a.c.HTTP)
	m := metrics.New()

	chatSvc := chat.New(a.db, a.broker)
	chatSvc.OnSend(m.ChatMessage)
	a.hub = chat.NewHub(chatSvc, cs, a.hs.CheckOrigin, a.rl.CheckChatMessage)
	m.TrackSockets(a.hub.Connections)

	a.unsubs = append(a.unsubs,
		a.hub.WatchSessions(sm),
		m.WatchSessions(sm),
		log.AuditSessions(slog.Default(), sm),
	)

	a.mailer, err = mail.New(&a.c.Mailer, a.db.Mail(), cs)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new mailer", slog.String("err", err.Error()))
		return err
	}
	if err := a.mailer.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "failed start mailer worker", slog.String("err", err.Error()))
		return err
	}

	a.cleanup = sessioncleanup.New(&a.c.SessionCleanup, a.db)
	if err := a.cleanup.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "failed start session cleanup worker", slog.String("err", err.Error()))
		return err
	}

	authS, err := auth.New(&a.c.Auth, a.db, sm, a.rl, rs)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new auth server", slog.String("err", err.Error()))
		return err
	}

	frontendS := frontend.New(a.db, cs, chatSvc, a.hub, a.rl, rs)
	frontendS.OnSubmit(m.ApplicationSubmitted)

	adminS := admin.New(a.db, a.mailer, chatSvc, a.hub, cs, rs)
	adminS.OnReview(m.ApplicationReviewed)

	if err := a.hs.Start(ctx, &httpapi.Handlers{
		Auth:     authS,
		Frontend: frontendS,
		Admin:    adminS,
		Content:  cs,
		Metrics:  m,
		Health:   a.db,
	}); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}

	go func() {
		<-a.hs.Done()
		a.once.Do(func() { close(a.done) })
	}()

	slog.Default().InfoContext(ctx, "visa portal started",
		slog.String("broker", a.c.Realtime.Broker),
	)
	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown", slog.String("err", err.Error()))
		}
	}
	for _, unsubscribe := range a.unsubs {
		unsubscribe()
	}
	if a.hub != nil {
		a.hub.Close()
	}

	var g errgroup.Group
	if a.mailer != nil {
		g.Go(a.mailer.Stop)
	}
	if a.cleanup != nil {
		g.Go(a.cleanup.Stop)
	}
	if err := g.Wait(); err != nil {
		slog.Default().ErrorContext(ctx, "worker stop", slog.String("err", err.Error()))
	}
	if a.rl != nil {
		a.rl.Close()
	}

	a.closeStorage()
	a.once.Do(func() { close(a.done) })
}

func (a *App) closeStorage() {
	if a.broker != nil {
		if err := a.broker.Close(); err != nil {
			slog.Default().Error("can't close realtime broker", slog.String("err", err.Error()))
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
