package morning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/metrics"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testNow = time.Date(2024, 3, 14, 7, 30, 0, 0, time.UTC)

var testUser = &session.User{ID: "user-1", Email: "ada@example.com"}

func newTestUnit(t *testing.T) (*Unit, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo(func() time.Time { return testNow })
	unit := NewUnit(repo, syncunit.Options{
		Now:      func() time.Time { return testNow },
		Location: time.UTC,
		Metrics:  metrics.NewTestManager(),
	})
	return unit, repo
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestUnit_SaveWithoutSession(t *testing.T) {
	unit, repo := newTestUnit(t)

	err := unit.Save(context.Background(), Input{Mood: intPtr(5)})
	assert.ErrorIs(t, err, syncunit.ErrNoSession)
	assert.Empty(t, repo.calls)
}

func TestUnit_SaveMapsEnergyAndPriorities(t *testing.T) {
	ctx := context.Background()
	unit, _ := newTestUnit(t)
	unit.OnSessionChange(ctx, testUser)

	require.NoError(t, unit.Save(ctx, Input{
		Mood:       intPtr(7),
		Energy:     intPtr(0),
		Priorities: []string{" write ", "", "  ", "run"},
		BedTime:    strPtr("23:15"),
		WakeTime:   strPtr("7:05"),
	}))

	st := unit.State()
	require.NotNil(t, st.Today)
	assert.Equal(t, "2024-03-14", st.Today.DayDate)
	assert.Equal(t, 1, *st.Today.EnergyLevel)
	assert.Equal(t, []string{"write", "run"}, st.Today.Priorities)
	assert.Equal(t, "07:05", *st.Today.SleepWakeTime)
	require.Len(t, st.Recent, 1)
	assert.Equal(t, 7.0, *st.WeeklyAverageMood)
	assert.Equal(t, 1.0, *st.WeeklyAverageEnergy)
	assert.Equal(t, uint64(1), unit.Revision())
}

func TestUnit_SaveTwiceSameDayUpserts(t *testing.T) {
	ctx := context.Background()
	unit, repo := newTestUnit(t)
	unit.OnSessionChange(ctx, testUser)

	require.NoError(t, unit.Save(ctx, Input{Mood: intPtr(3), Priorities: []string{"a"}}))
	require.NoError(t, unit.Save(ctx, Input{Mood: intPtr(8), Priorities: []string{"  "}}))

	assert.Len(t, repo.rows, 1)
	st := unit.State()
	require.NotNil(t, st.Today)
	assert.Equal(t, 8, *st.Today.MoodLevel)
	assert.Nil(t, st.Today.Priorities)
}

func TestUnit_SaveRejectsBadClock(t *testing.T) {
	ctx := context.Background()
	unit, repo := newTestUnit(t)
	unit.OnSessionChange(ctx, testUser)
	repo.calls = nil

	err := unit.Save(ctx, Input{BedTime: strPtr("25:00")})
	assert.ErrorIs(t, err, syncunit.ErrInvalidInput)
	assert.Empty(t, repo.calls)
	require.NotNil(t, unit.State().Error)
}

func TestUnit_WeeklyAggregates(t *testing.T) {
	ctx := context.Background()
	unit, repo := newTestUnit(t)
	repo.seed(testUser.ID, testNow.AddDate(0, 0, -2), MorningState{
		MoodLevel:     intPtr(4),
		Priorities:    []string{"write", "run"},
		SleepBedTime:  strPtr("23:00"),
		SleepWakeTime: strPtr("07:00"),
	})
	repo.seed(testUser.ID, testNow.AddDate(0, 0, -1), MorningState{
		MoodLevel:     intPtr(6),
		Priorities:    []string{"run", "read"},
		SleepBedTime:  strPtr("22:00"),
		SleepWakeTime: strPtr("07:00"),
	})
	// outside the window
	repo.seed(testUser.ID, testNow.AddDate(0, 0, -9), MorningState{MoodLevel: intPtr(10)})

	unit.OnSessionChange(ctx, testUser)

	st := unit.State()
	assert.Nil(t, st.Today)
	require.Len(t, st.Recent, 2)
	assert.Equal(t, 5.0, *st.WeeklyAverageMood)
	assert.Nil(t, st.WeeklyAverageEnergy)
	require.NotEmpty(t, st.WeeklyTopPriorities)
	assert.Equal(t, "run", st.WeeklyTopPriorities[0].Key)
	assert.Equal(t, 2, st.WeeklyTopPriorities[0].Count)
	assert.Equal(t, "22:30", *st.AverageBedTime)
	assert.Equal(t, "07:00", *st.AverageWakeTime)
	assert.Equal(t, 510, *st.AverageSleepMinutes)
}

func TestUnit_LoadAbsentSchemaIsSilent(t *testing.T) {
	ctx := context.Background()
	unit, repo := newTestUnit(t)
	repo.fail("ForDay", store.Classify(table, "select", &pgconn.PgError{Code: "42P01"}))
	repo.fail("Between", store.Classify(table, "select", &pgconn.PgError{Code: "42P01"}))

	unit.OnSessionChange(ctx, testUser)

	st := unit.State()
	assert.Nil(t, st.Error)
	assert.Nil(t, st.Today)
	assert.Empty(t, st.Recent)
}

func TestUnit_SaveFailureSetsError(t *testing.T) {
	ctx := context.Background()
	unit, repo := newTestUnit(t)
	unit.OnSessionChange(ctx, testUser)
	repo.fail("Upsert", store.Classify(table, "upsert", errors.New("boom")))

	err := unit.Save(ctx, Input{Mood: intPtr(1)})
	require.Error(t, err)
	require.NotNil(t, unit.State().Error)
	assert.Equal(t, msgSave, *unit.State().Error)
	assert.False(t, unit.State().Saving)
	assert.Equal(t, uint64(0), unit.Revision())
}

func TestUnit_SessionChangeClearsState(t *testing.T) {
	ctx := context.Background()
	unit, _ := newTestUnit(t)
	unit.OnSessionChange(ctx, testUser)
	require.NoError(t, unit.Save(ctx, Input{Mood: intPtr(5)}))

	unit.OnSessionChange(ctx, nil)

	st := unit.State()
	assert.Nil(t, st.Today)
	assert.Empty(t, st.Recent)
}

func TestUnit_MonthDays(t *testing.T) {
	ctx := context.Background()
	unit, repo := newTestUnit(t)
	repo.seed(testUser.ID, time.Date(2024, 3, 2, 6, 0, 0, 0, time.UTC), MorningState{})
	repo.seed(testUser.ID, time.Date(2024, 3, 9, 6, 0, 0, 0, time.UTC), MorningState{})
	repo.seed(testUser.ID, time.Date(2024, 2, 28, 6, 0, 0, 0, time.UTC), MorningState{})
	unit.OnSessionChange(ctx, testUser)

	days, err := unit.MonthDays(ctx, 2024, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-02", "2024-03-09"}, days)

	repo.fail("CreatedAtBetween", store.Classify(table, "select", &pgconn.PgError{Code: "42P01"}))
	days, err = unit.MonthDays(ctx, 2024, 2)
	require.NoError(t, err)
	assert.Empty(t, days)
}
