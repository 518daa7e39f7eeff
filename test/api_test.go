package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/2beens/motivly/internal/auth"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func pingServer() error {
	req, err := http.NewRequest(http.MethodGet, serverEndpoint+"/catalog/templates", nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "test-agent")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}

func pingRedisPort(ctx context.Context, port string) error {
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:" + port})
	defer rdb.Close()
	return rdb.Ping(ctx).Err()
}

func newCredentials() credentials {
	return credentials{
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}
}

// doRequest sends body as JSON and returns the status code and the raw response.
func doRequest(ctx context.Context, t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func doSignupAndLogin(ctx context.Context, t *testing.T) (credentials, loginResponse) {
	t.Helper()

	creds := newCredentials()
	status, body := doRequest(ctx, t, http.MethodPost, "/auth/signup", "", creds)
	require.Equal(t, http.StatusCreated, status, string(body))

	status, body = doRequest(ctx, t, http.MethodPost, "/auth/login", "", creds)
	require.Equal(t, http.StatusOK, status, string(body))

	var resp loginResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotEmpty(t, resp.Token)
	return creds, resp
}
