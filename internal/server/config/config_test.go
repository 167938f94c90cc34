package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8000", cfg.EndpointAddrHTTP)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, 5*time.Minute, cfg.ChallengeValidityDuration)
	assert.Equal(t, 5*time.Second, cfg.DatabaseTimeout)
	assert.Equal(t, 5, cfg.RateLimitRPS)
	assert.Equal(t, "*", cfg.CORSAllowedOrigin)
	assert.Empty(t, cfg.CaptchaSecret)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server",
		"-a", ":9999",
		"-d", "postgres://u:p@localhost:5432/social",
		"-s", "flag-secret",
		"-t", "60",
		"-w", "120",
		"-l", "2",
		"-b", "4",
	}

	cfg := LoadConfig()

	assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
	assert.Equal(t, "postgres://u:p@localhost:5432/social", cfg.DatabaseDSN)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, 2*time.Minute, cfg.ChallengeValidityDuration)
	assert.Equal(t, 2, cfg.RateLimitRPS)
	assert.Equal(t, 4, cfg.RateLimitBurst)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	content := `{
		"endpoint_addr_http": ":7070",
		"database_dsn": "postgres://json",
		"secret_key": "json-secret",
		"token_validity_duration": "168h",
		"challenge_validity_duration": "5m",
		"captcha_endpoint": "https://captcha.example/verify",
		"captcha_secret": "cap-secret",
		"captcha_timeout": "3s",
		"rate_limit_rps": 7,
		"rate_limit_burst": 14,
		"cors_allowed_origin": "https://app.example"
	}`

	path := filepath.Join(t.TempDir(), "server.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	os.Args = []string{"server", "-c", path}

	cfg := LoadConfig()

	assert.Equal(t, ":7070", cfg.EndpointAddrHTTP)
	assert.Equal(t, "postgres://json", cfg.DatabaseDSN)
	assert.Equal(t, "json-secret", cfg.SecretKey)
	assert.Equal(t, 168*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, 5*time.Minute, cfg.ChallengeValidityDuration)
	assert.Equal(t, "https://captcha.example/verify", cfg.CaptchaEndpoint)
	assert.Equal(t, "cap-secret", cfg.CaptchaSecret)
	assert.Equal(t, 3*time.Second, cfg.CaptchaTimeout)
	assert.Equal(t, 7, cfg.RateLimitRPS)
	assert.Equal(t, 14, cfg.RateLimitBurst)
	assert.Equal(t, "https://app.example", cfg.CORSAllowedOrigin)
}
