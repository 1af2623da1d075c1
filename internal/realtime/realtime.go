// Package realtime delivers insert events on named channels to live
// subscribers, in process or through redis pub/sub.
package realtime

import (
	"context"
	"fmt"
)

const (
	BrokerMemory = "memory"
	BrokerRedis  = "redis"
)

type Config struct {
	Broker        string `mapstructure:"broker"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	BufferSize    int    `mapstructure:"buffer_size"`
}

// Subscription is a live registration on a channel. Close stops delivery
// and may be called more than once.
type Subscription interface {
	Close() error
}

// Broker fans out payloads published on a channel to its subscribers.
// onEvent is called from a single goroutine per subscription, in receive
// order.
type Broker interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	Subscribe(ctx context.Context, channel string, onEvent func(payload []byte)) (Subscription, error)
	Close() error
}

func New(ctx context.Context, c *Config) (Broker, error) {
	switch c.Broker {
	case "", BrokerMemory:
		return NewMemory(c.BufferSize), nil
	case BrokerRedis:
		return NewRedis(ctx, c)
	default:
		return nil, fmt.Errorf("unknown realtime broker %q", c.Broker)
	}
}
