package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "daily-quote-service",
			Version:     "1.0.0",
			Environment: "local",
		},
		Server: ServerConfig{
			Port:            5000,
			Host:            "0.0.0.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  5 * time.Second,
			MaxRequestSize:  1048576,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Store: StoreConfig{
			Seed: SeedConfig{
				Paths:    []string{"quotes.json"},
				Embedded: true,
			},
		},
		Client: ClientConfig{
			Timeout: 10 * time.Second,
			Retry: RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     2 * time.Second,
				Multiplier:      2.0,
				JitterFactor:    0.25,
			},
			Transport: TransportConfig{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"missing app name", func(c *Config) { c.App.Name = "" }, "app.name is required"},
		{"unknown environment", func(c *Config) { c.App.Environment = "staging" }, "app.environment must be one of"},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port is required"},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, "server.port must be at most 65535"},
		{"empty host", func(c *Config) { c.Server.Host = "" }, "server.host is required"},
		{"request timeout too short", func(c *Config) { c.Server.RequestTimeout = 10 * time.Millisecond }, "server.requesttimeout must be at least"},
		{"no body limit", func(c *Config) { c.Server.MaxRequestSize = 0 }, "server.maxrequestsize is required"},
		{"log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level must be one of"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format must be one of"},
		{"log file without path", func(c *Config) {
			c.Log.File.Enabled = true
			c.Log.File.Path = ""
		}, "log.file.path is required when"},
		{"log file too large", func(c *Config) { c.Log.File.MaxSizeMB = 4096 }, "log.file.maxsizemb must be at most 1024"},
		{"telemetry without endpoint", func(c *Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.ServiceName = "daily-quote-service"
		}, "telemetry.endpoint is required when"},
		{"telemetry bad endpoint", func(c *Config) { c.Telemetry.Endpoint = "::nope" }, "telemetry.endpoint must be a valid URL"},
		{"sampling above one", func(c *Config) { c.Telemetry.SamplingRate = 1.5 }, "telemetry.samplingrate must be at most 1"},
		{"client timeout too short", func(c *Config) { c.Client.Timeout = time.Millisecond }, "client.timeout must be at least"},
		{"too many attempts", func(c *Config) { c.Client.Retry.MaxAttempts = 11 }, "client.retry.maxattempts must be at most 10"},
		{"flat multiplier", func(c *Config) { c.Client.Retry.Multiplier = 1.0 }, "client.retry.multiplier must be at least 1.1"},
		{"jitter above one", func(c *Config) { c.Client.Retry.JitterFactor = 2 }, "client.retry.jitterfactor must be at most 1"},
		{"idle pool", func(c *Config) { c.Client.Transport.MaxIdleConns = 0 }, "client.transport.maxidleconns is required"},
		{"seed url", func(c *Config) { c.Store.Seed.URL = "not a url" }, "store.seed.url must be a valid URL"},
		{"no seed source", func(c *Config) { c.Store.Seed = SeedConfig{Paths: []string{"  "}} }, "store.seed needs a url, a path or embedded=true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestConfig_Validate_SeedSources(t *testing.T) {
	for name, seed := range map[string]SeedConfig{
		"embedded only": {Embedded: true},
		"url only":      {URL: "https://quotes.example.com/quotes.json"},
		"path only":     {Path: "/srv/quotes.json"},
		"paths only":    {Paths: []string{"data/quotes.json"}},
	} {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Store.Seed = seed

			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestConfig_Validate_AllEnvironments(t *testing.T) {
	for _, env := range []string{"local", "dev", "qa", "prod", "test"} {
		cfg := validConfig()
		cfg.App.Environment = env

		assert.NoError(t, cfg.Validate(), env)
	}
}

func TestConfig_Validate_ReportsEveryField(t *testing.T) {
	cfg := validConfig()
	cfg.App.Name = ""
	cfg.Server.Port = -1
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Equal(t, 3, strings.Count(msg, "\n  "), msg)
	assert.Contains(t, msg, "app.name")
	assert.Contains(t, msg, "server.port")
	assert.Contains(t, msg, "log.level")
}

func TestFormatFieldPath(t *testing.T) {
	tests := map[string]string{
		"Config.Server.Port":              "server.port",
		"Config.Client.Retry.MaxAttempts": "client.retry.maxattempts",
		"Config.Store.Seed.URL":           "store.seed.url",
		"Port":                            "port",
	}

	for namespace, want := range tests {
		assert.Equal(t, want, formatFieldPath(namespace), namespace)
	}
}
