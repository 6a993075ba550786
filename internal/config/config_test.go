package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "office"

[auth]
jwt_secret = "from-file"

[booking]
timezone = "UTC"

[cleanup]
interval_minutes = 15
retention_hours = 48
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout, "defaults are kept for missing keys")
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.Cleanup.Interval())
	assert.Equal(t, 48*time.Hour, cfg.Cleanup.Retention())

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
[auth]
jwt_secret = "from-file"
`)
	t.Setenv(EnvJWTSecret, "from-env")
	t.Setenv(EnvDBPassword, "s3cret")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv(EnvJWTSecret, "")

		_, err := Load(writeConfig(t, `[server]
http_port = 8080`))

		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unknown timezone", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
[auth]
jwt_secret = "x"
[booking]
timezone = "Mars/Olympus"
`))

		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

		assert.Error(t, err)
	})
}
