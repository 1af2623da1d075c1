package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

const defaultBufferSize = 64

// Memory is a single process broker.
type Memory struct {
	mu     sync.Mutex
	subs   map[string]map[*memorySub]struct{}
	buf    int
	closed bool
}

type memorySub struct {
	b       *Memory
	channel string
	events  chan []byte
	done    chan struct{}
	once    sync.Once
}

func NewMemory(bufferSize int) *Memory {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Memory{
		subs: make(map[string]map[*memorySub]struct{}),
		buf:  bufferSize,
	}
}

// Publish never blocks: a subscriber whose buffer is full misses the event.
func (b *Memory) Publish(ctx context.Context, channel string, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return fmt.Errorf("broker closed")
	}
	for s := range b.subs[channel] {
		select {
		case s.events <- payload:
		default:
			slog.Default().WarnContext(ctx, "realtime subscriber is slow, event dropped",
				slog.String("channel", channel),
			)
		}
	}
	return nil
}

func (b *Memory) Subscribe(ctx context.Context, channel string, onEvent func(payload []byte)) (Subscription, error) {
	s := &memorySub{
		b:       b,
		channel: channel,
		events:  make(chan []byte, b.buf),
		done:    make(chan struct{}),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, fmt.Errorf("broker closed")
	}
	if b.subs[channel] == nil {
		b.subs[channel] = make(map[*memorySub]struct{})
	}
	b.subs[channel][s] = struct{}{}
	b.mu.Unlock()

	go s.run(onEvent)
	return s, nil
}

func (s *memorySub) run(onEvent func([]byte)) {
	for {
		select {
		case p := <-s.events:
			onEvent(p)
		case <-s.done:
			return
		}
	}
}

func (s *memorySub) Close() error {
	s.once.Do(func() {
		s.b.mu.Lock()
		delete(s.b.subs[s.channel], s)
		if len(s.b.subs[s.channel]) == 0 {
			delete(s.b.subs, s.channel)
		}
		s.b.mu.Unlock()
		close(s.done)
	})
	return nil
}

// Close stops every subscription.
func (b *Memory) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	var all []*memorySub
	for _, subs := range b.subs {
		for s := range subs {
			all = append(all, s)
		}
	}
	b.mu.Unlock()

	for _, s := range all {
		s.Close()
	}
	return nil
}

// subscribers reports the live subscriptions on channel.
func (b *Memory) subscribers(channel string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[channel])
}
