package test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestSignupLoginLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	creds, login := doSignupAndLogin(ctx, t)
	assert.Equal(t, creds.Email, login.User.Email)
	assert.NotEmpty(t, login.User.ID)

	// same email again
	status, _ := doRequest(ctx, t, http.MethodPost, "/auth/signup", "", creds)
	assert.Equal(t, http.StatusConflict, status)

	wrong := creds
	wrong.Password = "not-the-password"
	status, _ = doRequest(ctx, t, http.MethodPost, "/auth/login", "", wrong)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := doRequest(ctx, t, http.MethodGet, "/today", login.Token, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	status, _ = doRequest(ctx, t, http.MethodPost, "/auth/logout", login.Token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doRequest(ctx, t, http.MethodGet, "/today", login.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestProfileBootstrappedOnFirstUse() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, login := doSignupAndLogin(ctx, t)

	status, body := doRequest(ctx, t, http.MethodGet, "/profile", login.Token, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var count int
	require.NoError(t, s.DB.QueryRow(ctx, `SELECT count(*) FROM profiles WHERE id = $1`, login.User.ID).Scan(&count))
	assert.Equal(t, 1, count)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Contains(t, resp, "initial")
}
