package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nuxtvisa/visa-portal/internal/dependency"
	"github.com/nuxtvisa/visa-portal/internal/entity"
)

type mailStore struct {
	*MYSQLStore
}

// Mail returns an object implementing mail interface
func (ms *MYSQLStore) Mail() dependency.Mail {
	return &mailStore{
		MYSQLStore: ms,
	}
}

func (s *mailStore) AddMail(ctx context.Context, m *entity.QueuedMail) (int, error) {
	query := `
	INSERT INTO mail_queue
		(application_id, to_email, subject, html, sent, sent_at)
	VALUES
		(:applicationId, :toEmail, :subject, :html, :sent, :sentAt)`

	params := map[string]any{
		"applicationId": m.ApplicationId,
		"toEmail":       m.To,
		"subject":       m.Subject,
		"html":          m.Html,
		"sent":          m.Sent,
		"sentAt":        sql.NullTime{Time: time.Now(), Valid: m.Sent},
	}

	id, err := ExecNamedLastId(ctx, s.DB(), query, params)
	if err != nil {
		return 0, fmt.Errorf("failed to add mail: %w", err)
	}
	return id, nil
}

func (s *mailStore) GetAllUnsent(ctx context.Context, withError bool) ([]entity.QueuedMail, error) {
	query := `
	SELECT id, application_id, to_email, subject, html, sent, sent_at, created_at, error_msg
	FROM mail_queue
	WHERE sent = false AND error_msg IS NULL
	ORDER BY id`
	if withError {
		query = `
		SELECT id, application_id, to_email, subject, html, sent, sent_at, created_at, error_msg
		FROM mail_queue
		WHERE sent = false
		ORDER BY id`
	}

	mails, err := QueryListNamed[entity.QueuedMail](ctx, s.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to get unsent mails: %w", err)
	}
	return mails, nil
}

func (s *mailStore) UpdateSent(ctx context.Context, id int) error {
	err := ExecNamed(ctx, s.DB(), `UPDATE mail_queue SET sent = true, sent_at = :sentAt WHERE id = :id`, map[string]any{
		"id":     id,
		"sentAt": sql.NullTime{Time: time.Now(), Valid: true},
	})
	if err != nil {
		return fmt.Errorf("failed to update sent: %w", err)
	}
	return nil
}

func (s *mailStore) AddError(ctx context.Context, id int, errMsg string) error {
	err := ExecNamed(ctx, s.DB(), `UPDATE mail_queue SET error_msg = :err WHERE id = :id`, map[string]any{
		"id":  id,
		"err": errMsg,
	})
	if err != nil {
		return fmt.Errorf("failed to add mail error: %w", err)
	}
	return nil
}
