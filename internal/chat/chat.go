// Package chat is the shared support channel between visitors and admins.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nuxtvisa/visa-portal/internal/dependency"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	"github.com/nuxtvisa/visa-portal/internal/realtime"
)

type Service struct {
	repo   dependency.Repository
	broker realtime.Broker
	onSend func(*entity.SupportMessage)
}

func New(repo dependency.Repository, broker realtime.Broker) *Service {
	return &Service{
		repo:   repo,
		broker: broker,
	}
}

// OnSend registers fn to run after every stored message.
func (s *Service) OnSend(fn func(*entity.SupportMessage)) {
	s.onSend = fn
}

// History returns every message, oldest first.
func (s *Service) History(ctx context.Context) ([]entity.SupportMessage, error) {
	msgs, err := s.repo.Messages().GetMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't get support messages: %w", err)
	}
	return msgs, nil
}

// Send stores the message and then announces the insert on the support
// channel. A failed announcement is logged; the stored row stays.
func (s *Service) Send(ctx context.Context, userName, message string, isAdminReply bool) (*entity.SupportMessage, error) {
	m, err := s.repo.Messages().AddMessage(ctx, &entity.SupportMessageInsert{
		UserName:     userName,
		Message:      message,
		IsAdminReply: isAdminReply,
	})
	if err != nil {
		return nil, fmt.Errorf("can't add support message: %w", err)
	}

	payload, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("can't marshal support message: %w", err)
	}
	if err := s.broker.Publish(ctx, entity.SupportChannel, payload); err != nil {
		slog.Default().ErrorContext(ctx, "can't publish support message",
			slog.String("err", err.Error()),
			slog.String("id", m.Id),
		)
	}
	if s.onSend != nil {
		s.onSend(m)
	}
	return m, nil
}

// Subscribe calls onMessage for every message inserted after it returns.
// The caller owns the subscription and must close it.
func (s *Service) Subscribe(ctx context.Context, onMessage func(entity.SupportMessage)) (realtime.Subscription, error) {
	return s.broker.Subscribe(ctx, entity.SupportChannel, func(payload []byte) {
		var m entity.SupportMessage
		if err := json.Unmarshal(payload, &m); err != nil {
			slog.Default().Error("can't decode support message event",
				slog.String("err", err.Error()),
			)
			return
		}
		onMessage(m)
	})
}
