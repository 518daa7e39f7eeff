package test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestCheckinsAndMorning() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, login := doSignupAndLogin(ctx, t)

	status, body := doRequest(ctx, t, http.MethodPost, "/checkins", login.Token, map[string]any{
		"stress_level": 6,
		"note":         "long day",
	})
	require.Equal(t, http.StatusCreated, status, string(body))

	var checkins struct {
		Today *struct {
			StressLevel *int `json:"stress_level"`
		} `json:"today"`
		WeeklyCount int `json:"weekly_count"`
	}
	require.NoError(t, json.Unmarshal(body, &checkins))
	require.NotNil(t, checkins.Today)
	require.NotNil(t, checkins.Today.StressLevel)
	assert.Equal(t, 6, *checkins.Today.StressLevel)
	assert.Equal(t, 1, checkins.WeeklyCount)

	status, _ = doRequest(ctx, t, http.MethodPost, "/checkins", login.Token, map[string]any{
		"stress_level": 11,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = doRequest(ctx, t, http.MethodPut, "/morning", login.Token, map[string]any{
		"mood":       7,
		"energy":     3,
		"priorities": []string{"walk", "write"},
		"bed_time":   "23:00",
		"wake_time":  "07:00",
	})
	require.Equal(t, http.StatusOK, status, string(body))

	var morning struct {
		Today *struct {
			Priorities []string `json:"priorities"`
		} `json:"today"`
		AverageSleepMinutes *int `json:"average_sleep_minutes"`
	}
	require.NoError(t, json.Unmarshal(body, &morning))
	require.NotNil(t, morning.Today)
	assert.Equal(t, []string{"walk", "write"}, morning.Today.Priorities)
	require.NotNil(t, morning.AverageSleepMinutes)
	assert.Equal(t, 480, *morning.AverageSleepMinutes)

	status, body = doRequest(ctx, t, http.MethodGet, "/today", login.Token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var today map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &today))
	assert.Contains(t, today, "checkins")
	assert.Contains(t, today, "morning")
}
