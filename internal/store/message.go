package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nuxtvisa/visa-portal/internal/dependency"
	"github.com/nuxtvisa/visa-portal/internal/entity"
)

type messageStore struct {
	*MYSQLStore
}

// Messages returns an object implementing dependency.Messages interface
func (ms *MYSQLStore) Messages() dependency.Messages {
	return &messageStore{
		MYSQLStore: ms,
	}
}

func (s *messageStore) AddMessage(ctx context.Context, m *entity.SupportMessageInsert) (*entity.SupportMessage, error) {
	msg := &entity.SupportMessage{
		Id:                   uuid.NewString(),
		CreatedAt:            s.Now().UTC(),
		SupportMessageInsert: *m,
	}

	query := `
	INSERT INTO support_message
		(id, user_name, message, is_admin_reply, created_at)
	VALUES
		(:id, :userName, :message, :isAdminReply, :createdAt)`

	err := ExecNamed(ctx, s.DB(), query, map[string]any{
		"id":           msg.Id,
		"userName":     msg.UserName,
		"message":      msg.Message,
		"isAdminReply": msg.IsAdminReply,
		"createdAt":    msg.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("can't insert support message: %w", err)
	}
	return msg, nil
}

func (s *messageStore) GetMessages(ctx context.Context) ([]entity.SupportMessage, error) {
	query := `
	SELECT id, user_name, message, is_admin_reply, created_at
	FROM support_message
	ORDER BY created_at ASC`

	msgs, err := QueryListNamed[entity.SupportMessage](ctx, s.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get support messages: %w", err)
	}
	return msgs, nil
}
