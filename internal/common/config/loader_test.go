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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const minimalConfig = `
camunda:
  broker_address: localhost:26500
database:
  postgres:
    host: localhost
    database: inquiries
    user: inquiry
  redis:
    address: localhost:6379
workers:
  score-inquiry:
    enabled: true
  send-decision-letter:
    enabled: false
    timeout: 5000
`

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "inquiry-workers", cfg.App.Name)
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
	assert.Equal(t, 3600, cfg.Scoring.CacheTTL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ":8080", cfg.Observability.MetricsAddress)

	score := cfg.Workers["score-inquiry"]
	assert.True(t, score.Enabled)
	assert.Equal(t, 5, score.MaxJobsActive)
	assert.Equal(t, 30*time.Second, score.TimeoutDuration())

	send := cfg.Workers["send-decision-letter"]
	assert.False(t, send.Enabled)
	assert.Equal(t, 5*time.Second, send.TimeoutDuration())
}

func TestLoadFromFile_ExpandsEnvPlaceholders(t *testing.T) {
	t.Setenv("TEST_PG_PASSWORD", "s3cret")
	cfg, err := LoadFromFile(writeConfig(t, `
app:
  version: "1.2.3"
camunda:
  broker_address: localhost:26500
database:
  postgres:
    host: localhost
    database: inquiries
    user: inquiry
    password: ${TEST_PG_PASSWORD}
  redis:
    address: localhost:6379
integrations:
  aws:
    region: eu-west-1
logging:
  level: debug
scoring:
  cache_ttl: 60
`))
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Database.Postgres.Password)
	assert.Equal(t, "eu-west-1", cfg.Integrations.AWS.Region)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 60, cfg.Scoring.CacheTTL)
	assert.Equal(t, "1.2.3", cfg.App.Version)
}

func TestLoadFromFile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing broker",
			body:    "database:\n  postgres:\n    host: h\n    database: d\n    user: u\n  redis:\n    address: r\n",
			wantErr: "camunda.broker_address is required",
		},
		{
			name:    "missing redis",
			body:    "camunda:\n  broker_address: b\ndatabase:\n  postgres:\n    host: h\n    database: d\n    user: u\n",
			wantErr: "database.redis.address is required",
		},
		{
			name:    "ses without sender",
			body:    minimalConfig + "integrations:\n  aws:\n    ses:\n      enabled: true\n",
			wantErr: "integrations.aws.ses.from_email is required",
		},
		{
			name:    "sns without topic",
			body:    minimalConfig + "integrations:\n  aws:\n    sns:\n      enabled: true\n",
			wantErr: "integrations.aws.sns.topic_arn is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetWorkerConfig(t *testing.T) {
	cfg := &Config{Workers: map[string]WorkerConfig{
		"record-decision": {Enabled: false, MaxJobsActive: 2, Timeout: 1000, MaxRetries: 1},
	}}

	assert.Equal(t, 2, GetWorkerConfig(cfg, "record-decision").MaxJobsActive)
	assert.False(t, IsWorkerEnabled(cfg, "record-decision"))

	fallback := GetWorkerConfig(cfg, "unknown")
	assert.True(t, fallback.Enabled)
	assert.Equal(t, 5, fallback.MaxJobsActive)
	assert.True(t, IsWorkerEnabled(cfg, "unknown"))
}

func TestPostgresConfig_GetDSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "inq", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=inq sslmode=disable", p.GetDSN())
}
