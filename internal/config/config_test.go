package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.Equal(t, defaultTimeout, cfg.RequestTimeout)
	assert.NotEmpty(t, cfg.CachePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOANBOARD_API_URL", "https://sched.example.com")
	t.Setenv("LOANBOARD_TIMEOUT_SECONDS", "10")
	t.Setenv("LOANBOARD_OFFICE", "Atlanta")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://sched.example.com", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "Atlanta", cfg.DefaultOffice)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("LOANBOARD_TIMEOUT_SECONDS", "zero")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("LOANBOARD_TIMEOUT_SECONDS", "5")
	t.Setenv("LOANBOARD_API_URL", "not a url")
	_, err = Load()
	assert.Error(t, err)
}
