package movement_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/2beens/motivly/internal/cache"
	"github.com/2beens/motivly/internal/movement"
	"github.com/2beens/motivly/internal/syncunit"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, unit *movement.Unit) *mux.Router {
	t.Helper()
	r := mux.NewRouter()
	resolve := func(context.Context) (*movement.Unit, error) {
		if unit == nil {
			return nil, syncunit.ErrNoSession
		}
		return unit, nil
	}
	movement.NewHandler(resolve, cache.NewMonthCache(1, time.Minute, nil)).SetupRoutes(r)
	return r
}

func serve(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_RecordAndGoal(t *testing.T) {
	unit, deps := newTestUnit(t)
	signIn(t, unit, deps, nil, nil)
	router := newTestRouter(t, unit)

	deps.repo.EXPECT().InsertSession(gomock.Any(), testUser.ID, gomock.Any()).Return(nil)
	deps.repo.EXPECT().SessionsBetween(gomock.Any(), testUser.ID, weekStart, weekEnd).
		Return([]movement.Session{mkSession(1, testNow, 12, "mobility")}, nil)
	rec := serve(router, http.MethodPost, "/movement/sessions", `{"duration_minutes":12,"kind":"mobility"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	deps.repo.EXPECT().InsertGoal(gomock.Any(), testUser.ID, 2).Return(int64(1), nil)
	rec = serve(router, http.MethodPost, "/movement/goal", `{"delta":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var st movement.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, 1, st.WeeklyCount)
	require.NotNil(t, st.Goal)
	assert.Equal(t, 2, *st.Goal)
	assert.Equal(t, 50, st.ProgressPercent)
	assert.Equal(t, "One more session to reach your goal.", st.Label)
}

func TestHandler_RecordBadRequest(t *testing.T) {
	unit, deps := newTestUnit(t)
	signIn(t, unit, deps, nil, nil)
	router := newTestRouter(t, unit)

	for _, body := range []string{``, `{"kind":"yoga"}`, `{"duration_minutes":0}`} {
		rec := serve(router, http.MethodPost, "/movement/sessions", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestHandler_DeleteRoutes(t *testing.T) {
	unit, deps := newTestUnit(t)
	signIn(t, unit, deps, []movement.Session{mkSession(3, testNow, 10, "")}, nil)
	router := newTestRouter(t, unit)

	deps.repo.EXPECT().LastSession(gomock.Any(), testUser.ID).Return(&movement.Session{ID: 3}, nil)
	deps.repo.EXPECT().DeleteSession(gomock.Any(), testUser.ID, int64(3)).Return(nil)
	deps.repo.EXPECT().SessionsBetween(gomock.Any(), testUser.ID, weekStart, weekEnd).Return(nil, nil)
	rec := serve(router, http.MethodDelete, "/movement/sessions/last", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	deps.repo.EXPECT().SessionsBetween(gomock.Any(), testUser.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
	rec = serve(router, http.MethodDelete, "/movement/sessions/date/2024-03-12", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, http.MethodDelete, "/movement/sessions/date/yesterday", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	deps.repo.EXPECT().DeleteSession(gomock.Any(), testUser.ID, int64(99)).
		Return(errNotFound())
	rec = serve(router, http.MethodDelete, "/movement/sessions/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Month(t *testing.T) {
	unit, deps := newTestUnit(t)
	signIn(t, unit, deps, nil, nil)
	router := newTestRouter(t, unit)

	deps.repo.EXPECT().PerformedAtBetween(gomock.Any(), testUser.ID, gomock.Any(), gomock.Any()).
		Return([]time.Time{time.Date(2024, 3, 5, 6, 0, 0, 0, time.UTC)}, nil)
	rec := serve(router, http.MethodGet, "/movement/month/2024/3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var days []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &days))
	assert.Equal(t, []string{"2024-03-05"}, days)
}

func TestHandler_Unauthorized(t *testing.T) {
	router := newTestRouter(t, nil)
	rec := serve(router, http.MethodGet, "/movement", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
