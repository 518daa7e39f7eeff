package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/2beens/motivly/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCtl(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagKind, flagDuration, flagMaxLevel, flagSeed, flagJSON = "", 0, 0, 0, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCatalogList_JSONFiltersByKind(t *testing.T) {
	out, err := runCtl(t, "catalog", "list", "--kind", "cardio", "--json")
	require.NoError(t, err)

	var templates []catalog.Template
	require.NoError(t, json.Unmarshal([]byte(out), &templates))
	require.NotEmpty(t, templates)
	for _, tpl := range templates {
		assert.Equal(t, catalog.Kind("cardio"), tpl.Kind)
	}
}

func TestCatalogList_Table(t *testing.T) {
	out, err := runCtl(t, "catalog", "list", "--duration", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "WT_CARDIO_10_MIN_BEGINNER")
}

func TestCatalogList_UnknownKind(t *testing.T) {
	_, err := runCtl(t, "catalog", "list", "--kind", "yoga")
	assert.Error(t, err)
}

func TestCatalogPick(t *testing.T) {
	out, err := runCtl(t, "catalog", "pick", "--duration", "10", "--max-level", "1", "--seed", "7", "--json")
	require.NoError(t, err)

	var templates []catalog.Template
	require.NoError(t, json.Unmarshal([]byte(out), &templates))
	require.Len(t, templates, 1)
	assert.Equal(t, 10, templates[0].TargetDurationMinutes)
	assert.Equal(t, 1, templates[0].Level)
}

func TestCatalogPick_RequiresDuration(t *testing.T) {
	_, err := runCtl(t, "catalog", "pick")
	assert.Error(t, err)
}
