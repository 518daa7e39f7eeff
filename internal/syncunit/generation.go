package syncunit

import (
	"sync/atomic"

	"github.com/2beens/motivly/internal/session"
)

// Generation numbers the requests of one load routine. Only the result of the most
// recently issued request may be applied.
type Generation struct {
	n atomic.Uint64
}

func (g *Generation) next() uint64 {
	return g.n.Add(1)
}

func (g *Generation) isLatest(n uint64) bool {
	return g.n.Load() == n
}

type LoadToken struct {
	gen    *Generation
	n      uint64
	userID string
}

// BeginLoad issues a new generation for gen and flags the unit as loading.
func (b *Base) BeginLoad(gen *Generation, user *session.User) LoadToken {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading++
	return LoadToken{
		gen:    gen,
		n:      gen.next(),
		userID: user.ID,
	}
}

func (b *Base) EndLoad(LoadToken) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.loading > 0 {
		b.loading--
	}
}

// Apply runs f under the unit lock when tok is still the latest generation of its
// routine and the session user did not change since the load started.
func (b *Base) Apply(tok LoadToken, f func()) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !tok.gen.isLatest(tok.n) || b.user == nil || b.user.ID != tok.userID {
		return false
	}
	f()
	return true
}
