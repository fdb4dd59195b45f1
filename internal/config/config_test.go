package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"MATHHEROES_DB", "MATHHEROES_LOG_FILE", "MATHHEROES_LOG_LEVEL", "MATHHEROES_SEED"} {
		unsetEnv(t, k)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MATHHEROES_DB", "/tmp/heroes.db")
	t.Setenv("MATHHEROES_LOG_LEVEL", "debug")
	t.Setenv("MATHHEROES_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/heroes.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("MATHHEROES_SEED", "not-a-number")
	_, err := Load()
	assert.Error(t, err)

	unsetEnv(t, "MATHHEROES_SEED")
	t.Setenv("MATHHEROES_LOG_LEVEL", "chatty")
	_, err = Load()
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	cfg := Config{}
	require.NoError(t, cfg.Resolve())
	assert.Equal(t, filepath.Join(dir, "mathheroes", "mathheroes.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "mathheroes", "mathheroes.log"), cfg.LogFile)

	custom := Config{DBPath: filepath.Join(dir, "nested", "x.db")}
	require.NoError(t, custom.Resolve())
	assert.DirExists(t, filepath.Join(dir, "nested"))
	assert.Equal(t, filepath.Join(dir, "nested", "mathheroes.log"), custom.LogFile)
}
