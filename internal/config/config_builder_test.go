package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	oldArgs := os.Args
	os.Args = []string{oldArgs[0]}
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	t.Cleanup(func() { os.Args = oldArgs })
}

func TestBuild_DefaultsOnly(t *testing.T) {
	clearEnvVars(t)
	resetFlags(t)

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", cfg.Adapter.APIAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "creditguard-session.db", cfg.Storage.SessionDBPath)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestBuild_EnvOverridesDefaults(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_API_ADDRESS":      "http://env.example.com/api",
		"WORKERS_REFRESH_INTERVAL": "5m",
	})
	resetFlags(t)

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://env.example.com/api", cfg.Adapter.APIAddress)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
	// untouched fields still fall through to the defaults
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuild_EnvWinsOverFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_API_ADDRESS": "http://env.example.com/api",
	})
	resetFlags(t)
	os.Args = append(os.Args, "-a", "http://flag.example.com/api", "-s", "flag.db")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://env.example.com/api", cfg.Adapter.APIAddress)
	// the flag-only field is taken from the flags source
	assert.Equal(t, "flag.db", cfg.Storage.SessionDBPath)
}

func TestBuild_JSONFileFromEnv(t *testing.T) {
	path := writeTempJSON(t, `{
		"adapter": {"request_timeout": "42s"},
		"storage": {"session_db_path": "json.db"}
	}`)
	setEnvVars(t, map[string]string{
		"CONFIG": path,
	})
	resetFlags(t)

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, 42*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "json.db", cfg.Storage.SessionDBPath)
	// fields absent from every explicit source come from the defaults
	assert.Equal(t, "http://localhost:8000/api", cfg.Adapter.APIAddress)
}

func TestBuild_MissingJSONFileFails(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/does/not/exist.json",
	})
	resetFlags(t)

	_, err := GetClientConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestValidate_RejectsEmptyAddress(t *testing.T) {
	cfg := defaults()
	cfg.Adapter.APIAddress = ""

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestValidate_RejectsZeroRefreshInterval(t *testing.T) {
	cfg := defaults()
	cfg.Workers.RefreshInterval = 0

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

func TestValidate_RejectsEmptySessionDBPath(t *testing.T) {
	cfg := defaults()
	cfg.Storage.SessionDBPath = ""

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
