package session

import (
	"context"
	"sync"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Listener is notified every time the provider's current user changes.
// A nil user means the session ended.
type Listener interface {
	OnSessionChange(ctx context.Context, user *User)
}

type ListenerFunc func(ctx context.Context, user *User)

func (f ListenerFunc) OnSessionChange(ctx context.Context, user *User) {
	f(ctx, user)
}

// Provider holds the authenticated user of one workspace and fans changes out to its listeners.
type Provider struct {
	mu        sync.RWMutex
	user      *User
	listeners []Listener

	// serializes Set so fan-outs never interleave
	setMu sync.Mutex
}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Current() *User {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.user == nil {
		return nil
	}
	u := *p.user
	return &u
}

func (p *Provider) Subscribe(l Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, l)
}

// Set stores user and then calls every listener sequentially, in subscription order.
func (p *Provider) Set(ctx context.Context, user *User) {
	p.setMu.Lock()
	defer p.setMu.Unlock()

	p.mu.Lock()
	if user != nil {
		u := *user
		p.user = &u
	} else {
		p.user = nil
	}
	listeners := make([]Listener, len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	for _, l := range listeners {
		l.OnSessionChange(ctx, p.Current())
	}
}

type ctxKey struct{}

func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

func UserFrom(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(ctxKey{}).(*User)
	return user, ok && user != nil
}
