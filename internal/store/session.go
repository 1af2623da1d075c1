package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nuxtvisa/visa-portal/internal/dependency"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	gerr "github.com/nuxtvisa/visa-portal/internal/errors"
)

type sessionStore struct {
	*MYSQLStore
}

// Sessions returns an object implementing dependency.Sessions interface
func (ms *MYSQLStore) Sessions() dependency.Sessions {
	return &sessionStore{
		MYSQLStore: ms,
	}
}

func (s *sessionStore) AddSession(ctx context.Context, accountId string, expiresAt time.Time) (*entity.Session, error) {
	sess := &entity.Session{
		Id:        uuid.NewString(),
		AccountId: accountId,
		CreatedAt: s.Now().UTC(),
		ExpiresAt: expiresAt.UTC(),
	}

	query := `
	INSERT INTO auth_session (id, account_id, created_at, expires_at)
	VALUES (:id, :accountId, :createdAt, :expiresAt)`

	err := ExecNamed(ctx, s.DB(), query, map[string]any{
		"id":        sess.Id,
		"accountId": sess.AccountId,
		"createdAt": sess.CreatedAt,
		"expiresAt": sess.ExpiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("can't add session: %w", err)
	}
	return sess, nil
}

func (s *sessionStore) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	sess, err := QueryNamedOne[entity.Session](ctx, s.DB(), `
	SELECT id, account_id, created_at, expires_at
	FROM auth_session
	WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session: %w", gerr.ErrNotFound)
		}
		return nil, fmt.Errorf("can't get session: %w", err)
	}
	return &sess, nil
}

func (s *sessionStore) DeleteSession(ctx context.Context, id string) error {
	err := ExecNamed(ctx, s.DB(), `DELETE FROM auth_session WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("can't delete session: %w", err)
	}
	return nil
}

func (s *sessionStore) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	n, err := ExecNamedAffected(ctx, s.DB(), `DELETE FROM auth_session WHERE expires_at <= :now`, map[string]any{
		"now": now.UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("can't delete expired sessions: %w", err)
	}
	return n, nil
}
