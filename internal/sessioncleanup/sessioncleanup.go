// Package sessioncleanup removes expired auth_session rows on a ticker.
package sessioncleanup

import (
	"context"
	"fmt"
	"time"

	"github.com/nuxtvisa/visa-portal/internal/dependency"
)

type Config struct {
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
}

func DefaultConfig() Config {
	return Config{
		WorkerInterval: 15 * time.Minute,
	}
}

type Worker struct {
	repo dependency.Repository
	c    *Config
	ctx  context.Context
	stop context.CancelFunc
}

func New(c *Config, repo dependency.Repository) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = 15 * time.Minute
	}
	return &Worker{
		repo: repo,
		c:    c,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("session cleanup worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("session cleanup worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	return nil
}
