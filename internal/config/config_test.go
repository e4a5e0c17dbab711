package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// an explicit path that does not exist is an error, a missing default file is not
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "./gatekeeper.db", cfg.Database.Path)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Telegram.CallTimeout)
	assert.Equal(t, 5*time.Second, cfg.Scheduler.OverdueDelay)
	assert.Equal(t, int64(4), cfg.Scheduler.MaxConcurrentChannels)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Slack.Enabled())

	assert.EqualError(t, cfg.Validate(), "telegram.token is required")
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
telegram:
  token: from-file
scheduler:
  timezone: Europe/Moscow
  overdue_delay: 30s
server:
  port: 8081
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("GATEKEEPER_TELEGRAM_TOKEN", "from-env")
	t.Setenv("GATEKEEPER_SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("GATEKEEPER_SLACK_SIGNING_SECRET", "secret")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "from-env", cfg.Telegram.Token)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.OverdueDelay)
	assert.True(t, cfg.Slack.Enabled())

	loc, err := cfg.Scheduler.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Telegram:  TelegramConfig{Token: "t", CallTimeout: time.Second},
			Server:    ServerConfig{Port: 3000},
			Scheduler: SchedulerConfig{Timezone: "UTC", MaxConcurrentChannels: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "Should accept valid config", mutate: func(c *Config) {}},
		{name: "Should reject bad port", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "Should reject unknown timezone", mutate: func(c *Config) { c.Scheduler.Timezone = "Mars/Base" }, wantErr: true},
		{name: "Should reject zero concurrency", mutate: func(c *Config) { c.Scheduler.MaxConcurrentChannels = 0 }, wantErr: true},
		{name: "Should reject zero call timeout", mutate: func(c *Config) { c.Telegram.CallTimeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
