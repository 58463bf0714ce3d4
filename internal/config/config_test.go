package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[storage]
driver = "memory"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, domain.HoldPeriod, cfg.Engine.HoldPeriod())
	assert.Equal(t, domain.MatchConfirmedOnly, cfg.Engine.Policy())
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
[logs]
level = "debug"
file = "/var/log/engine.log"

[metrics]
enabled = true
path = "/prom"
service_name = "engine"

[storage]
driver = "postgres"

[database]
host = "db"
port = 6432
user = "engine"
password = "secret"
dbname = "engine"
sslmode = "require"

[identity]
url = "http://identity.local/client"
file = ""

[engine]
hold_period_minutes = 45
match_policy = "all"
`)
	t.Setenv("DB_PASSWORD", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/prom", cfg.Metrics.Path)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "host=db port=6432 user=engine password=from-env dbname=engine sslmode=require", cfg.Database.DSN())
	assert.Empty(t, cfg.Identity.File)
	assert.Equal(t, "http://identity.local/client", cfg.Identity.URL)
	assert.Equal(t, 45*time.Minute, cfg.Engine.HoldPeriod())
	assert.Equal(t, domain.MatchAll, cfg.Engine.Policy())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown driver", content: "[storage]\ndriver = \"redis\"\n"},
		{name: "unknown policy", content: "[engine]\nmatch_policy = \"pending\"\n"},
		{name: "zero hold", content: "[engine]\nhold_period_minutes = 0\n"},
		{name: "empty data dir", content: "[storage]\ndriver = \"file\"\ndata_dir = \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = "))
	assert.Error(t, err)
}
