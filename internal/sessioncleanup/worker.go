package sessioncleanup

import (
	"context"
	"fmt"
	"time"

	"log/slog"
)

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := w.deleteExpired(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't delete expired sessions",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) deleteExpired(ctx context.Context) (int64, error) {
	n, err := w.repo.Sessions().DeleteExpiredSessions(ctx, w.repo.Now())
	if err != nil {
		return 0, fmt.Errorf("can't delete expired sessions: %w", err)
	}
	if n > 0 {
		slog.Default().InfoContext(ctx, "deleted expired sessions",
			slog.Int64("count", n),
		)
	}
	return n, nil
}
