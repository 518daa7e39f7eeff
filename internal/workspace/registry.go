package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/metrics"

	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Factory builds an inactive workspace.
type Factory func() *Workspace

// Registry keeps one workspace per user and forgets those idle for longer than the ttl.
type Registry struct {
	factory Factory
	metrics *metrics.Manager
	cache   *gocache.Cache

	// one activation in flight per user, other users never wait on it
	loads singleflight.Group

	// guards cache writes and drops; never held across backend calls
	mu sync.Mutex

	// drops counts Drop calls per user so an activation racing a logout is not cached
	drops map[string]uint64
}

func NewRegistry(factory Factory, idleTTL time.Duration, m *metrics.Manager) *Registry {
	r := &Registry{
		factory: factory,
		metrics: m,
		cache:   gocache.New(idleTTL, idleTTL/2),
		drops:   map[string]uint64{},
	}
	r.cache.OnEvicted(func(userID string, v any) {
		ws, ok := v.(*Workspace)
		if !ok || ws == nil {
			return
		}
		log.Debugf("workspace of %s evicted", userID)
		ws.Deactivate(context.Background())
		r.updateGauge()
	})
	return r
}

// Get returns the user's workspace, creating and activating it on first use.
// Every call pushes the idle expiry back. Concurrent first calls for the same
// user share one activation, which runs detached from the caller's cancellation.
func (r *Registry) Get(ctx context.Context, user *session.User) (*Workspace, error) {
	if user == nil || user.ID == "" {
		return nil, syncunit.ErrNoSession
	}

	if ws, ok := r.touch(user.ID); ok {
		return ws, nil
	}

	v, err, _ := r.loads.Do(user.ID, func() (any, error) {
		if ws, ok := r.touch(user.ID); ok {
			return ws, nil
		}
		return r.activate(context.WithoutCancel(ctx), user)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Workspace), nil
}

func (r *Registry) touch(userID string) (*Workspace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.cache.Get(userID)
	if !ok {
		return nil, false
	}
	ws, ok := v.(*Workspace)
	if !ok || ws == nil {
		return nil, false
	}
	r.cache.SetDefault(userID, ws)
	return ws, true
}

func (r *Registry) activate(ctx context.Context, user *session.User) (*Workspace, error) {
	r.mu.Lock()
	dropsBefore := r.drops[user.ID]
	r.mu.Unlock()

	ws := r.factory()
	ws.Activate(ctx, user)

	r.mu.Lock()
	if r.drops[user.ID] != dropsBefore {
		r.mu.Unlock()
		ws.Deactivate(ctx)
		log.Debugf("workspace of %s dropped while loading", user.ID)
		return nil, syncunit.ErrNoSession
	}
	r.cache.SetDefault(user.ID, ws)
	r.mu.Unlock()

	r.updateGauge()
	log.Debugf("workspace of %s created", user.ID)
	return ws, nil
}

// FromContext resolves the workspace of the user carried by ctx.
func (r *Registry) FromContext(ctx context.Context) (*Workspace, error) {
	user, ok := session.UserFrom(ctx)
	if !ok {
		return nil, syncunit.ErrNoSession
	}
	return r.Get(ctx, user)
}

// Drop deactivates and forgets the user's workspace. An activation still in
// flight for the user is discarded when it finishes.
func (r *Registry) Drop(ctx context.Context, userID string) {
	r.mu.Lock()
	r.drops[userID]++
	v, ok := r.cache.Get(userID)
	if ok {
		// Delete would run the eviction callback with a background context.
		r.cache.Set(userID, nil, gocache.NoExpiration)
		r.cache.Delete(userID)
	}
	r.mu.Unlock()
	r.loads.Forget(userID)

	if ws, ok := v.(*Workspace); ok && ws != nil {
		ws.Deactivate(ctx)
	}
	r.updateGauge()
}

func (r *Registry) Len() int {
	return r.cache.ItemCount()
}

func (r *Registry) updateGauge() {
	if r.metrics == nil {
		return
	}
	r.metrics.GaugeActiveWorkspaces.Set(float64(r.cache.ItemCount()))
}
