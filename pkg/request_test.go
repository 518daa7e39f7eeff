package pkg

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleBody struct {
	Level int    `json:"level" validate:"gte=0,lte=10"`
	Time  string `json:"time" validate:"omitempty,clock"`
	Name  string `json:"name" validate:"required"`
}

func newJSONRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	require.NoError(t, err)
	return req
}

func TestDecodeJSON(t *testing.T) {
	var b sampleBody
	require.NoError(t, DecodeJSON(newJSONRequest(t, `{"level":3,"time":"07:30","name":"x"}`), &b))
	assert.Equal(t, 3, b.Level)
	assert.Equal(t, "07:30", b.Time)

	assert.ErrorIs(t, DecodeJSON(newJSONRequest(t, ``), &sampleBody{}), ErrEmptyBody)
	assert.ErrorContains(t, DecodeJSON(newJSONRequest(t, `{"level":`), &sampleBody{}), "decode json")
	assert.ErrorContains(t, DecodeJSON(newJSONRequest(t, `{"level":11,"name":"x"}`), &sampleBody{}), "validate")
	assert.ErrorContains(t, DecodeJSON(newJSONRequest(t, `{"time":"25:00","name":"x"}`), &sampleBody{}), "validate")
	assert.ErrorContains(t, DecodeJSON(newJSONRequest(t, `{"level":1}`), &sampleBody{}), "validate")
}
