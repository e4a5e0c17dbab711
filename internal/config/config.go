package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Database  DatabaseConfig  `mapstructure:"db"`
	Server    ServerConfig    `mapstructure:"server"`
	Slack     SlackConfig     `mapstructure:"slack"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Log       LogConfig       `mapstructure:"log"`
}

type TelegramConfig struct {
	Token       string        `mapstructure:"token"`
	PollTimeout int           `mapstructure:"poll_timeout"` // seconds of long polling
	CallTimeout time.Duration `mapstructure:"call_timeout"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
	// ExportToken guards the spreadsheet download endpoint. Empty disables it.
	ExportToken string `mapstructure:"export_token"`
}

type SlackConfig struct {
	BotToken      string `mapstructure:"bot_token"`
	SigningSecret string `mapstructure:"signing_secret"`
	ReportChannel string `mapstructure:"report_channel"`
}

// Enabled reports whether the Slack admin surface should be served.
func (c SlackConfig) Enabled() bool {
	return c.BotToken != "" && c.SigningSecret != ""
}

type SchedulerConfig struct {
	Timezone              string        `mapstructure:"timezone"`
	OverdueDelay          time.Duration `mapstructure:"overdue_delay"`
	MaxConcurrentChannels int64         `mapstructure:"max_concurrent_channels"`
}

// Location resolves the configured IANA timezone.
func (c SchedulerConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler.timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from defaults, an optional config file and
// GATEKEEPER_* environment variables, in increasing priority.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.poll_timeout", 60)
	v.SetDefault("telegram.call_timeout", "10s")

	v.SetDefault("db.path", "./gatekeeper.db")

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.export_token", "")

	v.SetDefault("slack.bot_token", "")
	v.SetDefault("slack.signing_secret", "")
	v.SetDefault("slack.report_channel", "")

	v.SetDefault("scheduler.timezone", "UTC")
	v.SetDefault("scheduler.overdue_delay", "5s")
	v.SetDefault("scheduler.max_concurrent_channels", 4)

	v.SetDefault("cache.ttl", "10m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("GATEKEEPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings needed to run the bot.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return errors.New("telegram.token is required")
	}
	if c.Telegram.CallTimeout <= 0 {
		return errors.New("telegram.call_timeout must be positive")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Scheduler.MaxConcurrentChannels <= 0 {
		return errors.New("scheduler.max_concurrent_channels must be positive")
	}
	if _, err := c.Scheduler.Location(); err != nil {
		return err
	}
	return nil
}
