package config_test

import (
	"os"
	"testing"

	"github.com/I2oman/HospitalAssessment/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	env := `APP_PORT=8080
APP_ENV=test
DB_HOST=localhost
DB_PORT=5432
DB_USER=hospital
DB_PASSWORD=secret
DB_NAME=hospitaldb
`
	require.NoError(t, os.WriteFile(dir+"/.env", []byte(env), 0o644))
	chdir(t, dir)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "test", cfg.App.Env)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "hospital", cfg.DB.User)
	assert.Equal(t, "secret", cfg.DB.Password)
	assert.Equal(t, "hospitaldb", cfg.DB.Name)
}

// chdir changes into dir for the duration of the test, matching the
// semantics of testing.T.Chdir (not available before Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfigMissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := config.LoadConfig()
	assert.Error(t, err)
}
