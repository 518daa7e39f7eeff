package dailyplan

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/multierr"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testNow = time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)

var testUser = &session.User{ID: "user-1", Email: "ada@example.com"}

type planRow struct {
	userID    string
	createdAt time.Time
	value     string
}

type fakeRepo struct {
	mu         sync.Mutex
	slots      []planRow
	intentions []planRow
	errs       map[string]error
}

func (f *fakeRepo) latest(rows []planRow, method, userID string, start, end time.Time) (*string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs[method]; err != nil {
		return nil, err
	}
	var latest *planRow
	for i := range rows {
		r := rows[i]
		if r.userID != userID || r.createdAt.Before(start) || !r.createdAt.Before(end) {
			continue
		}
		if latest == nil || !r.createdAt.Before(latest.createdAt) {
			latest = &rows[i]
		}
	}
	if latest == nil {
		return nil, nil
	}
	v := latest.value
	return &v, nil
}

func (f *fakeRepo) LatestSlot(_ context.Context, userID string, start, end time.Time) (*string, error) {
	return f.latest(f.slots, "LatestSlot", userID, start, end)
}

func (f *fakeRepo) LatestIntention(_ context.Context, userID string, start, end time.Time) (*string, error) {
	return f.latest(f.intentions, "LatestIntention", userID, start, end)
}

func (f *fakeRepo) InsertSlot(_ context.Context, userID string, slot Slot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs["InsertSlot"]; err != nil {
		return err
	}
	f.slots = append(f.slots, planRow{userID: userID, createdAt: testNow, value: string(slot)})
	return nil
}

func (f *fakeRepo) InsertIntention(_ context.Context, userID string, intention Intention) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs["InsertIntention"]; err != nil {
		return err
	}
	f.intentions = append(f.intentions, planRow{userID: userID, createdAt: testNow, value: string(intention)})
	return nil
}

func newTestUnit(t *testing.T) (*Unit, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{errs: map[string]error{}}
	unit := NewUnit(repo, syncunit.Options{
		Now:      func() time.Time { return testNow },
		Location: time.UTC,
		Metrics:  metrics.NewTestManager(),
	})
	return unit, repo
}

func TestUnit_SaveBoth(t *testing.T) {
	ctx := context.Background()
	unit, repo := newTestUnit(t)
	unit.OnSessionChange(ctx, testUser)

	require.NoError(t, unit.Save(ctx, Input{Slot: SlotNoon, Intention: IntentionCalm}))

	st := unit.State()
	require.NotNil(t, st.TodaySlot)
	require.NotNil(t, st.TodayIntention)
	assert.Equal(t, SlotNoon, *st.TodaySlot)
	assert.Equal(t, IntentionCalm, *st.TodayIntention)
	assert.Len(t, repo.slots, 1)
	assert.Len(t, repo.intentions, 1)
	assert.Nil(t, st.Error)
	assert.False(t, st.Saving)
}

func TestUnit_SavePartialFailure(t *testing.T) {
	ctx := context.Background()
	unit, repo := newTestUnit(t)
	unit.OnSessionChange(ctx, testUser)
	repo.errs["InsertIntention"] = store.Classify(tableIntentions, "insert", errors.New("boom"))

	err := unit.Save(ctx, Input{Slot: SlotEvening, Intention: IntentionPresence})
	require.Error(t, err)

	st := unit.State()
	require.NotNil(t, st.TodaySlot)
	assert.Equal(t, SlotEvening, *st.TodaySlot)
	assert.Nil(t, st.TodayIntention)
	require.NotNil(t, st.Error)
	assert.Equal(t, msgSave, *st.Error)
	assert.Equal(t, uint64(1), unit.Revision())
}

func TestUnit_SaveBothFail(t *testing.T) {
	ctx := context.Background()
	unit, repo := newTestUnit(t)
	unit.OnSessionChange(ctx, testUser)
	repo.errs["InsertSlot"] = store.Classify(tableSlots, "insert", errors.New("slot down"))
	repo.errs["InsertIntention"] = store.Classify(tableIntentions, "insert", errors.New("intention down"))

	err := unit.Save(ctx, Input{Slot: SlotNoon, Intention: IntentionCalm})
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Contains(t, err.Error(), "slot down")
	assert.Contains(t, err.Error(), "intention down")

	st := unit.State()
	assert.Nil(t, st.TodaySlot)
	assert.Nil(t, st.TodayIntention)
	require.NotNil(t, st.Error)
	assert.Zero(t, unit.Revision())
}

func TestUnit_SaveRejectsUnknownValues(t *testing.T) {
	ctx := context.Background()
	unit, repo := newTestUnit(t)
	unit.OnSessionChange(ctx, testUser)

	err := unit.Save(ctx, Input{Slot: "midnight", Intention: IntentionNone})
	assert.ErrorIs(t, err, syncunit.ErrInvalidInput)
	assert.Empty(t, repo.slots)
}

func TestUnit_SaveWithoutSession(t *testing.T) {
	unit, _ := newTestUnit(t)
	err := unit.Save(context.Background(), Input{Slot: SlotNoon, Intention: IntentionCalm})
	assert.ErrorIs(t, err, syncunit.ErrNoSession)
}

func TestUnit_LoadTodayNewestRowWinsAndUnknownReadsNil(t *testing.T) {
	unit, repo := newTestUnit(t)
	repo.slots = []planRow{
		{userID: testUser.ID, createdAt: testNow.Add(-2 * time.Hour), value: "morning"},
		{userID: testUser.ID, createdAt: testNow.Add(-time.Hour), value: "afternoon"},
		{userID: testUser.ID, createdAt: testNow.AddDate(0, 0, -1), value: "evening"},
	}
	repo.intentions = []planRow{
		{userID: testUser.ID, createdAt: testNow.Add(-time.Hour), value: "zen"},
	}

	unit.OnSessionChange(context.Background(), testUser)

	st := unit.State()
	require.NotNil(t, st.TodaySlot)
	assert.Equal(t, SlotAfternoon, *st.TodaySlot)
	assert.Nil(t, st.TodayIntention)
}

func TestUnit_LoadErrorsPerTable(t *testing.T) {
	unit, repo := newTestUnit(t)
	repo.intentions = []planRow{{userID: testUser.ID, createdAt: testNow, value: "detente"}}
	repo.errs["LatestSlot"] = store.Classify(tableSlots, "select", &pgconn.PgError{Code: "42P01"})

	unit.OnSessionChange(context.Background(), testUser)

	st := unit.State()
	assert.Nil(t, st.Error)
	assert.Nil(t, st.TodaySlot)
	require.NotNil(t, st.TodayIntention)
	assert.Equal(t, IntentionRelax, *st.TodayIntention)

	repo.errs["LatestSlot"] = store.Classify(tableSlots, "select", errors.New("boom"))
	unit.Refresh(context.Background())
	require.NotNil(t, unit.State().Error)
	assert.Equal(t, msgLoad, *unit.State().Error)
}

func TestHandler_Save(t *testing.T) {
	unit, _ := newTestUnit(t)
	unit.OnSessionChange(context.Background(), testUser)
	r := mux.NewRouter()
	NewHandler(func(context.Context) (*Unit, error) { return unit, nil }).SetupRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(`{"slot":"morning","intention":"mobilite"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"today_intention":"mobilite"`)

	req = httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(`{"slot":"morning"}`))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
