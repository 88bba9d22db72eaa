package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[database]
host = "localhost"
user = "rental"
dbname = "rental_service"

[auth]
jwt_secret = "test-secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_ExplicitValues(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
port = 5433
user = "rental"
password = "pass"
dbname = "rental_service"
sslmode = "require"

[auth]
jwt_secret = "test-secret"
token_ttl_hours = 1

[metrics]
enabled = true
service_name = "rental-test"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 1, cfg.Auth.TokenTTLHours)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t,
		"host=db.internal port=5433 user=rental password=pass dbname=rental_service sslmode=require",
		cfg.Database.DSN())
}

func TestLoad_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing database host",
			content: `
[database]
user = "rental"
dbname = "rental_service"

[auth]
jwt_secret = "test-secret"
`,
		},
		{
			name: "missing jwt secret",
			content: `
[database]
host = "localhost"
user = "rental"
dbname = "rental_service"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
