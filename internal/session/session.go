// Package session holds the per-request identity and fans out sign-in and
// sign-out changes to interested components.
package session

import (
	"context"
	"sync"
	"time"
)

type State string

const (
	Anonymous     State = "anonymous"
	Authenticated State = "authenticated"
)

// Identity is the authenticated caller resolved from a session token.
type Identity struct {
	AccountId string `json:"account_id"`
	SessionId string `json:"-"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity attached to ctx, if any.
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(*Identity)
	return id, ok && id != nil
}

// StateOf reports whether ctx carries an identity.
func StateOf(ctx context.Context) State {
	if _, ok := FromContext(ctx); ok {
		return Authenticated
	}
	return Anonymous
}

type Change struct {
	State     State
	AccountId string
	SessionId string
	At        time.Time
}

// Manager is the single subscription point for session changes.
type Manager struct {
	mu     sync.RWMutex
	nextId int
	subs   map[int]func(Change)
}

func NewManager() *Manager {
	return &Manager{
		subs: make(map[int]func(Change)),
	}
}

// Subscribe registers fn for every future change. The returned function
// removes the subscription and is safe to call more than once.
func (m *Manager) Subscribe(fn func(Change)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextId
	m.nextId++
	m.subs[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

// Publish calls subscribers synchronously, in no particular order.
func (m *Manager) Publish(c Change) {
	if c.At.IsZero() {
		c.At = time.Now()
	}
	m.mu.RLock()
	fns := make([]func(Change), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.RUnlock()

	for _, fn := range fns {
		fn(c)
	}
}
