package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movementState struct {
	Week []struct {
		ID          int64   `json:"id"`
		Kind        *string `json:"kind"`
		TemplateKey *string `json:"template_key"`
	} `json:"week"`
	WeeklyCount int    `json:"weekly_count"`
	Goal        *int   `json:"goal"`
	Label       string `json:"label"`
}

func decodeMovement(t require.TestingT, body []byte) movementState {
	var st movementState
	require.NoError(t, json.Unmarshal(body, &st))
	return st
}

func (s *IntegrationTestSuite) TestMovementSessionsAndGoal() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, login := doSignupAndLogin(ctx, t)

	status, body := doRequest(ctx, t, http.MethodGet, "/movement", login.Token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	st := decodeMovement(t, body)
	assert.Zero(t, st.WeeklyCount)
	assert.Nil(t, st.Goal)
	assert.Equal(t, "Set a weekly goal to track your progress.", st.Label)

	status, body = doRequest(ctx, t, http.MethodPost, "/movement/goal", login.Token, map[string]int{"delta": 2})
	require.Equal(t, http.StatusOK, status, string(body))
	st = decodeMovement(t, body)
	require.NotNil(t, st.Goal)
	assert.Equal(t, 2, *st.Goal)

	status, body = doRequest(ctx, t, http.MethodPost, "/movement/sessions", login.Token, map[string]string{
		"template_key": "WT_CARDIO_10_MIN_BEGINNER",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	st = decodeMovement(t, body)
	assert.Equal(t, 1, st.WeeklyCount)
	require.Len(t, st.Week, 1)
	require.NotNil(t, st.Week[0].Kind)
	assert.Equal(t, "cardio", *st.Week[0].Kind)
	assert.Equal(t, "One more session to reach your goal.", st.Label)

	status, body = doRequest(ctx, t, http.MethodPost, "/movement/sessions", login.Token, map[string]any{
		"kind":             "strength",
		"duration_minutes": 20,
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	st = decodeMovement(t, body)
	assert.Equal(t, 2, st.WeeklyCount)
	assert.Equal(t, "Weekly goal reached.", st.Label)

	status, _ = doRequest(ctx, t, http.MethodPost, "/movement/sessions", login.Token, map[string]string{
		"template_key": "NO_SUCH_TEMPLATE",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = doRequest(ctx, t, http.MethodDelete, "/movement/sessions/last", login.Token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Equal(t, 1, decodeMovement(t, body).WeeklyCount)

	today := time.Now().UTC().Format("2006-01-02")
	status, body = doRequest(ctx, t, http.MethodDelete, "/movement/sessions/date/"+today, login.Token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Zero(t, decodeMovement(t, body).WeeklyCount)

	status, _ = doRequest(ctx, t, http.MethodDelete, "/movement/sessions/date/"+today, login.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	now := time.Now().UTC()
	status, body = doRequest(ctx, t, http.MethodGet,
		fmt.Sprintf("/movement/month/%d/%d", now.Year(), int(now.Month())), login.Token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
}
