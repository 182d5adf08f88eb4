package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
user = "wedding"
password = "secret"
dbname = "wedding_composer"

[logs]
level = "debug"

[metrics]
enabled = true

[payment]
url = "http://gateway:8080"
webhook_secret = "whsec"

[booking]
timezone = "America/New_York"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileWithDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "usd", cfg.Payment.Currency)
	assert.True(t, cfg.Payment.PaymentEnabled())
	assert.Equal(t, "America/New_York", cfg.Booking.Location().String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WEDDING_DATABASE_PASSWORD", "from-env")
	t.Setenv("WEDDING_SERVER_HTTP_PORT", "7070")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
}

func TestLoad_IgnoresUnprefixedEnv(t *testing.T) {
	t.Setenv("USER", "root")
	t.Setenv("HOST", "other-host")
	t.Setenv("PORT", "3000")
	t.Setenv("PATH", "/usr/bin:/bin")
	t.Setenv("PASSWORD", "leaked")
	t.Setenv("URL", "http://elsewhere")
	t.Setenv("LEVEL", "error")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "wedding", cfg.Database.User)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "http://gateway:8080", cfg.Payment.URL)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoad_SplitWordsEnvNames(t *testing.T) {
	t.Setenv("WEDDING_DATABASE_DB_NAME", "from_env")
	t.Setenv("WEDDING_DATABASE_SSL_MODE", "require")
	t.Setenv("WEDDING_METRICS_PATH", "/internal/metrics")
	t.Setenv("WEDDING_PAYMENT_API_KEY", "key")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from_env", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
	assert.Equal(t, "key", cfg.Payment.APIKey)
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("WEDDING_DATABASE_USER", "u")
	t.Setenv("WEDDING_DATABASE_DB_NAME", "d")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.False(t, cfg.Payment.PaymentEnabled())
	assert.Equal(t, "UTC", cfg.Booking.Timezone)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing dbname", "[database]\nuser = \"u\"\n"},
		{"webhook secret required", "[database]\nuser = \"u\"\ndbname = \"d\"\n[payment]\nurl = \"http://x\"\n"},
		{"bad timezone", "[database]\nuser = \"u\"\ndbname = \"d\"\n[booking]\ntimezone = \"Mars/Olympus\"\n"},
		{"bad port", "[server]\nhttp_port = 70000\n[database]\nuser = \"u\"\ndbname = \"d\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MalformedToml(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\n"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 1, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=n sslmode=disable", d.DSN())
}
