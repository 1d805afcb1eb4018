package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"version": "0.9.0"},
		"adapter": {"api_address": "http://json.example.com/api", "request_timeout": "45s"},
		"storage": {"session_db_path": "/data/session.db"},
		"workers": {"refresh_interval": "90s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "http://json.example.com/api", cfg.Adapter.APIAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/data/session.db", cfg.Storage.SessionDBPath)
	assert.Equal(t, 90*time.Second, cfg.Workers.RefreshInterval)
	assert.Empty(t, cfg.JSONFilePath, "JSON source must not re-trigger JSON loading")
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Durations may also arrive as raw nanosecond numbers.
	path := writeTempJSON(t, `{"adapter": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_PartialFile(t *testing.T) {
	path := writeTempJSON(t, `{"storage": {"session_db_path": "only.db"}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "only.db", cfg.Storage.SessionDBPath)
	assert.Empty(t, cfg.Adapter.APIAddress)
	assert.Zero(t, cfg.Workers.RefreshInterval)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"adapter": `)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDurationString(t *testing.T) {
	path := writeTempJSON(t, `{"adapter": {"request_timeout": "not-a-duration"}}`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, d, back)
}
