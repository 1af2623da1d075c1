package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis shares channels between instances through redis pub/sub.
type Redis struct {
	client *redis.Client
}

func NewRedis(ctx context.Context, c *Config) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &Redis{client: client}, nil
}

func (b *Redis) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := b.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Subscribe returns once redis confirmed the subscription, so no event
// published afterwards is missed.
func (b *Redis) Subscribe(ctx context.Context, channel string, onEvent func(payload []byte)) (Subscription, error) {
	ps := b.client.Subscribe(ctx, channel)
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return nil, fmt.Errorf("redis subscribe %s: %w", channel, err)
	}

	s := &redisSub{ps: ps}
	go func() {
		for msg := range ps.Channel() {
			onEvent([]byte(msg.Payload))
		}
		slog.Default().Debug("redis subscription ended",
			slog.String("channel", channel),
		)
	}()
	return s, nil
}

func (b *Redis) Close() error {
	return b.client.Close()
}

type redisSub struct {
	ps   *redis.PubSub
	once sync.Once
	err  error
}

func (s *redisSub) Close() error {
	s.once.Do(func() {
		s.err = s.ps.Close()
	})
	return s.err
}
