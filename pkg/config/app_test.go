package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/config"
)

func TestApp_Defaults(t *testing.T) {
	t.Parallel()

	var cfg config.App
	require.NoError(t, config.LoadWithEnvironment(&cfg, map[string]string{}))

	assert.Equal(t, config.Development, cfg.Env)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 2*time.Second, cfg.SubmitDelay)
	assert.Equal(t, time.Second, cfg.OTPDelay)
	assert.Equal(t, 30*time.Second, cfg.OTPCooldown)
	assert.Equal(t, "123456", cfg.OTPDemoCode)
	assert.Equal(t, time.Second, cfg.PincodeDelay)
	assert.Equal(t, 64, cfg.PincodeCacheSize)
	assert.Equal(t, int64(5242880), cfg.AttachmentMaxBytes)
	assert.NoError(t, cfg.Validate())
}

func TestApp_Overrides(t *testing.T) {
	t.Parallel()

	var cfg config.App
	err := config.LoadWithEnvironment(&cfg, map[string]string{
		"APP_ENV":             "production",
		"LOG_LEVEL":           "debug",
		"LOG_FORMAT":          "json",
		"SUBMIT_DELAY":        "0s",
		"OTP_RESEND_COOLDOWN": "1m",
		"OTP_GENERATE_CODES":  "true",
		"PINCODE_CACHE_SIZE":  "8",
	})
	require.NoError(t, err)

	assert.Equal(t, config.Production, cfg.Env)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Zero(t, cfg.SubmitDelay)
	assert.Equal(t, time.Minute, cfg.OTPCooldown)
	assert.Equal(t, 8, cfg.PincodeCacheSize)
	assert.True(t, cfg.OTPGenerateCodes)
	assert.NoError(t, cfg.Validate())
}

func TestApp_ParseErrors(t *testing.T) {
	t.Parallel()

	var cfg config.App
	err := config.LoadWithEnvironment(&cfg, map[string]string{"SUBMIT_DELAY": "soon"})
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.ErrorIs(t, config.LoadWithEnvironment[config.App](nil, nil), config.ErrNilPointer)
}

func TestApp_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.App)
	}{
		{"unknown env", func(c *config.App) { c.Env = "qa" }},
		{"unknown log format", func(c *config.App) { c.LogFormat = "xml" }},
		{"cache size", func(c *config.App) { c.PincodeCacheSize = 0 }},
		{"attachment limit", func(c *config.App) { c.AttachmentMaxBytes = -1 }},
		{"negative delay", func(c *config.App) { c.OTPDelay = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var cfg config.App
			require.NoError(t, config.LoadWithEnvironment(&cfg, map[string]string{}))
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidValue)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("FORMGUARD_TEST_DEMO=\"654321\"\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("FORMGUARD_TEST_DEMO") })

	require.NoError(t, config.LoadEnv(path))

	var cfg struct {
		Demo string `env:"FORMGUARD_TEST_DEMO"`
	}
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "654321", cfg.Demo)

	assert.Error(t, config.LoadEnv(filepath.Join(dir, "missing.env")))
}

func TestLoadEnv_DefaultFile(t *testing.T) {
	t.Run("missing file is fine", func(t *testing.T) {
		t.Chdir(t.TempDir())
		assert.NoError(t, config.LoadEnv())
	})

	t.Run("malformed file is reported", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OTP_DEMO_CODE=\"123456\n"), 0o600))
		t.Chdir(dir)
		assert.Error(t, config.LoadEnv())
	})
}

func TestLoadApp_FromProcessEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("OTP_DEMO_CODE", "111111")

	cfg, err := config.LoadApp()
	require.NoError(t, err)
	assert.Equal(t, config.Staging, cfg.Env)
	assert.Equal(t, "111111", cfg.OTPDemoCode)

	t.Setenv("LOG_FORMAT", "yaml")
	_, err = config.LoadApp()
	assert.ErrorIs(t, err, config.ErrInvalidValue)
}

func TestMustLoad(t *testing.T) {
	var cfg struct {
		Required string `env:"FORMGUARD_TEST_REQUIRED_MISSING,required"`
	}
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}
