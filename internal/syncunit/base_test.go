package syncunit

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/telemetry/metrics"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBase() (*Base, *metrics.Manager) {
	m := metrics.NewTestManager()
	fixed := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)
	return NewBase("test", Options{
		Now:      func() time.Time { return fixed },
		Location: time.UTC,
		Metrics:  m,
	}), m
}

func TestBase_SaveRequiresSession(t *testing.T) {
	b, _ := newTestBase()

	_, err := b.BeginSave()
	assert.ErrorIs(t, err, ErrNoSession)
	assert.False(t, b.Status().Saving)

	b.BindUser(&session.User{ID: "u1"}, nil)
	user, err := b.BeginSave()
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, b.Status().Saving)

	b.EndSave()
	assert.False(t, b.Status().Saving)
}

func TestBase_BindNilClears(t *testing.T) {
	b, _ := newTestBase()
	b.BindUser(&session.User{ID: "u1"}, nil)
	_ = b.Invalid("title required")
	require.NotNil(t, b.Status().Error)

	cleared := false
	b.BindUser(nil, func() { cleared = true })
	assert.True(t, cleared)
	assert.Nil(t, b.Status().Error)
	assert.Nil(t, b.CurrentUser())
}

func TestBase_Invalid(t *testing.T) {
	b, _ := newTestBase()
	err := b.Invalid("reason required")
	assert.ErrorIs(t, err, ErrInvalidInput)
	require.NotNil(t, b.Status().Error)
	assert.Equal(t, "reason required", *b.Status().Error)
}

func TestBase_MarkWritten(t *testing.T) {
	b, m := newTestBase()
	assert.Equal(t, uint64(0), b.Revision())
	b.MarkWritten()
	b.MarkWritten()
	assert.Equal(t, uint64(2), b.Revision())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterUnitSaves.WithLabelValues("test")))
}

func TestBase_Now(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	fixed := time.Date(2024, 3, 14, 23, 30, 0, 0, time.UTC)
	b := NewBase("x", Options{Now: func() time.Time { return fixed }, Location: paris})
	assert.Equal(t, 15, b.Now().Day())
	assert.Equal(t, paris, b.Location())

	d := NewBase("defaults", Options{})
	assert.Equal(t, time.Local, d.Location())
	assert.Equal(t, "defaults", d.Name())
}

func TestGeneration_OnlyLatestApplies(t *testing.T) {
	b, _ := newTestBase()
	user := &session.User{ID: "u1"}
	b.BindUser(user, nil)

	var gen Generation
	first := b.BeginLoad(&gen, user)
	second := b.BeginLoad(&gen, user)
	assert.True(t, b.Status().Loading)

	value := ""
	// the later request resolves first
	assert.True(t, b.Apply(second, func() { value = "second" }))
	b.EndLoad(second)
	assert.False(t, b.Apply(first, func() { value = "first" }))
	b.EndLoad(first)

	assert.Equal(t, "second", value)
	assert.False(t, b.Status().Loading)
}

func TestGeneration_UserChangeDiscards(t *testing.T) {
	b, _ := newTestBase()
	u1 := &session.User{ID: "u1"}
	b.BindUser(u1, nil)

	var gen Generation
	tok := b.BeginLoad(&gen, u1)
	b.BindUser(&session.User{ID: "u2"}, nil)
	assert.False(t, b.Apply(tok, func() { t.Fatal("must not apply") }))

	b.BindUser(nil, nil)
	tok = b.BeginLoad(&gen, u1)
	assert.False(t, b.Apply(tok, func() { t.Fatal("must not apply") }))
}

func TestHandleLoadError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    Outcome
		message bool
	}{
		{"absent schema", store.Classify("t", "select", &pgconn.PgError{Code: "42P01"}), OutcomeEmpty, false},
		{"network", store.Classify("t", "select", dialErr()), OutcomeEmpty, false},
		{"generic", store.Classify("t", "select", errors.New("boom")), OutcomeFailed, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, m := newTestBase()
			got := b.HandleLoadError("load", tt.err, "could not load")
			assert.Equal(t, tt.want, got)
			if tt.message {
				require.NotNil(t, b.Status().Error)
				assert.Equal(t, "could not load", *b.Status().Error)
			} else {
				assert.Nil(t, b.Status().Error)
			}
			assert.Equal(t, 1.0, testutil.ToFloat64(
				m.CounterUnitErrors.WithLabelValues("test", "load", store.KindOf(tt.err).String()),
			))
		})
	}
}

func TestHandleSaveError(t *testing.T) {
	b, _ := newTestBase()
	b.HandleSaveError("save", store.Classify("t", "insert", dialErr()), "could not save")
	require.NotNil(t, b.Status().Error)
	assert.Equal(t, "could not save", *b.Status().Error)

	b.ClearError()
	assert.Nil(t, b.Status().Error)
}

func dialErr() error {
	return &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
}

func TestBase_CacheKey(t *testing.T) {
	b, _ := newTestBase()
	other, _ := newTestBase()

	k1 := b.CacheKey("u1", 2024, 2)
	assert.Equal(t, k1, b.CacheKey("u1", 2024, 2))
	assert.NotEqual(t, k1, other.CacheKey("u1", 2024, 2))
	assert.NotEqual(t, k1, b.CacheKey("u2", 2024, 2))

	b.MarkWritten()
	assert.NotEqual(t, k1, b.CacheKey("u1", 2024, 2))
}
