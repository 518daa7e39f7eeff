// Package syncunit holds the machinery shared by every per-domain sync unit: the
// loading/saving/error status, the bound session user, the clock, load generations
// and the backend error policy.
package syncunit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/telemetry/metrics"
)

var (
	ErrNoSession    = errors.New("no active session")
	ErrInvalidInput = errors.New("invalid input")
)

// Unit is what a workspace needs from every sync unit.
type Unit interface {
	session.Listener
	Name() string
	Refresh(ctx context.Context)
	Revision() uint64
	Status() Status
}

type Status struct {
	Loading bool    `json:"loading"`
	Saving  bool    `json:"saving"`
	Error   *string `json:"error"`
}

type Options struct {
	Now      func() time.Time
	Location *time.Location
	Metrics  *metrics.Manager
}

// Base is embedded by every sync unit. Its mutex also guards the embedding unit's state,
// which must only be touched inside View and Update callbacks.
type Base struct {
	name    string
	now     func() time.Time
	loc     *time.Location
	metrics *metrics.Manager

	epoch uint64

	mu       sync.Mutex
	user     *session.User
	loading  int
	saving   int
	errMsg   *string
	revision atomic.Uint64
}

func NewBase(name string, opts Options) *Base {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Base{
		name:    name,
		now:     opts.Now,
		loc:     opts.Location,
		metrics: opts.Metrics,
		epoch:   baseSeq.Add(1),
	}
}

var baseSeq atomic.Uint64

// CacheKey identifies the unit's data as of its latest write. Units built later never
// reuse a key, even after their workspace was evicted.
func (b *Base) CacheKey(userID string, parts ...any) string {
	key := fmt.Sprintf("%s:%s:%d:%d", b.name, userID, b.epoch, b.Revision())
	for _, p := range parts {
		key += fmt.Sprintf(":%v", p)
	}
	return key
}

func (b *Base) Name() string {
	return b.name
}

// Now is the current time in the unit's location.
func (b *Base) Now() time.Time {
	return b.now().In(b.loc)
}

func (b *Base) Location() *time.Location {
	return b.loc
}

func (b *Base) CurrentUser() *session.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.user == nil {
		return nil
	}
	u := *b.user
	return &u
}

// BindUser records the session user. A nil user resets the status, and loads started
// for a previous user will no longer apply.
func (b *Base) BindUser(user *session.User, clear func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if user == nil {
		b.user = nil
		b.loading = 0
		b.errMsg = nil
		if clear != nil {
			clear()
		}
		return
	}
	u := *user
	b.user = &u
}

func (b *Base) View(f func(st Status)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	f(b.statusLocked())
}

func (b *Base) Update(f func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	f()
}

func (b *Base) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.statusLocked()
}

func (b *Base) statusLocked() Status {
	st := Status{
		Loading: b.loading > 0,
		Saving:  b.saving > 0,
	}
	if b.errMsg != nil {
		msg := *b.errMsg
		st.Error = &msg
	}
	return st
}

func (b *Base) ClearError() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errMsg = nil
}

func (b *Base) setError(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errMsg = &msg
}

// Revision increases after every successful write.
func (b *Base) Revision() uint64 {
	return b.revision.Load()
}

func (b *Base) MarkWritten() {
	b.revision.Add(1)
	if b.metrics != nil {
		b.metrics.CounterUnitSaves.WithLabelValues(b.name).Inc()
	}
}

// BeginSave checks the session and flags the unit as saving.
// The returned user must be passed to the repository.
func (b *Base) BeginSave() (*session.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.user == nil {
		return nil, ErrNoSession
	}
	b.saving++
	b.errMsg = nil
	u := *b.user
	return &u, nil
}

func (b *Base) EndSave() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.saving > 0 {
		b.saving--
	}
}

// Invalid sets a validation message and returns an ErrInvalidInput error.
func (b *Base) Invalid(msg string) error {
	b.setError(msg)
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
