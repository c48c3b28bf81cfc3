package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MalformedDefaultEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OTP_DEMO_CODE=\"123456\n"), 0o600))
	t.Chdir(dir)

	prev := defaultEnv
	defaultEnv = sync.OnceValue(func() error { return LoadEnv() })
	t.Cleanup(func() { defaultEnv = prev })

	var cfg App
	err := Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoadingEnvFile)

	assert.ErrorIs(t, Load(&cfg), ErrLoadingEnvFile, "the outcome is remembered")
}
