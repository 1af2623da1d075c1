package ratelimit

import (
	"errors"
	"sync"
	"time"
)

// ErrLimited is returned by every Check method when the caller is over its quota.
var ErrLimited = errors.New("rate limit exceeded")

// Limiter implements a simple in-memory fixed window rate limiter
type Limiter struct {
	mu       sync.Mutex
	counters map[string]*counter
	window   time.Duration
	max      int
	done     chan struct{}
	once     sync.Once
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max requests
func NewLimiter(window time.Duration, max int) *Limiter {
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		done:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Allow checks if a request for the given key is allowed. A non-positive
// max disables the limiter.
func (l *Limiter) Allow(key string) bool {
	if l.max <= 0 {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	c, exists := l.counters[key]
	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}
	if c.count >= l.max {
		return false
	}
	c.count++
	return true
}

func (l *Limiter) Close() {
	l.once.Do(func() { close(l.done) })
}

// cleanup periodically removes expired counters
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			now := time.Now()
			for key, c := range l.counters {
				if now.After(c.expiresAt) {
					delete(l.counters, key)
				}
			}
			l.mu.Unlock()
		case <-l.done:
			return
		}
	}
}

// Config holds per-hour quotas. Zero disables the corresponding limit.
type Config struct {
	ApplicationsPerHour int `mapstructure:"applications_per_hour"`
	ChatMessagesPerHour int `mapstructure:"chat_messages_per_hour"`
	SignInsPerHour      int `mapstructure:"sign_ins_per_hour"`
	SignUpsPerHour      int `mapstructure:"sign_ups_per_hour"`
}

const (
	keyApplication = "ip_application"
	keyChat        = "ip_chat"
	keySignInIP    = "ip_sign_in"
	keySignInEmail = "email_sign_in"
	keySignUp      = "ip_sign_up"
)

// MultiKeyLimiter manages multiple rate limiters for different types of operations
type MultiKeyLimiter struct {
	limiters map[string]*Limiter
}

func NewMultiKeyLimiter(c *Config) *MultiKeyLimiter {
	return &MultiKeyLimiter{
		limiters: map[string]*Limiter{
			keyApplication: NewLimiter(time.Hour, c.ApplicationsPerHour),
			keyChat:        NewLimiter(time.Hour, c.ChatMessagesPerHour),
			keySignInIP:    NewLimiter(time.Hour, c.SignInsPerHour),
			keySignInEmail: NewLimiter(time.Hour, c.SignInsPerHour),
			keySignUp:      NewLimiter(time.Hour, c.SignUpsPerHour),
		},
	}
}

// CheckApplication verifies if an application can be submitted from the given IP
func (m *MultiKeyLimiter) CheckApplication(ip string) error {
	return m.check(keyApplication, ip)
}

// CheckChatMessage verifies if a chat message can be sent from the given IP
func (m *MultiKeyLimiter) CheckChatMessage(ip string) error {
	return m.check(keyChat, ip)
}

// CheckSignIn limits password attempts by IP and by targeted email.
func (m *MultiKeyLimiter) CheckSignIn(ip, email string) error {
	if err := m.check(keySignInIP, ip); err != nil {
		return err
	}
	if email != "" {
		return m.check(keySignInEmail, email)
	}
	return nil
}

func (m *MultiKeyLimiter) CheckSignUp(ip string) error {
	return m.check(keySignUp, ip)
}

func (m *MultiKeyLimiter) check(limiter, key string) error {
	if !m.limiters[limiter].Allow(key) {
		return ErrLimited
	}
	return nil
}

func (m *MultiKeyLimiter) Close() {
	for _, l := range m.limiters {
		l.Close()
	}
}
