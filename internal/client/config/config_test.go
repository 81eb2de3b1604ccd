package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"mdd"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "mdd.db", cfg.StorePath)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "https://mdd.example.com", "-t", "3", "-s", "/tmp/x.db")

	cfg := LoadConfig()

	assert.Equal(t, "https://mdd.example.com", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/x.db", cfg.StorePath)
}

func TestLoadConfig_JsonFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"api_base_url": "https://json.example.com",
		"request_timeout": "7s",
		"store_path": "json.db"
	}`), 0o600))

	withArgs(t, "-c", file)

	cfg := LoadConfig()

	assert.Equal(t, "https://json.example.com", cfg.APIBaseURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "json.db", cfg.StorePath)
}

func TestLoadConfig_FlagsWinOverJson(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"api_base_url": "https://json.example.com"}`), 0o600))

	withArgs(t, "-c", file, "-a", "https://flag.example.com")

	cfg := LoadConfig()

	assert.Equal(t, "https://flag.example.com", cfg.APIBaseURL)
}

func TestLoadConfig_BrokenJsonPanics(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{broken`), 0o600))

	withArgs(t, "-c", file)

	assert.Panics(t, func() { LoadConfig() })
}
