package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "employees.json", cfg.Store.DataFile)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_FILE", "/var/lib/staffdesk/employees.json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/var/lib/staffdesk/employees.json", cfg.Store.DataFile)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Valid config", func(c *Config) {}, false},
		{"Missing data file", func(c *Config) { c.Store.DataFile = "" }, true},
		{"Missing port", func(c *Config) { c.Server.Port = "" }, true},
		{"Non-numeric port", func(c *Config) { c.Server.Port = "abc" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Server: ServerConfig{Port: "8080", Environment: "development", LogLevel: "info"},
				Store:  StoreConfig{DataFile: "employees.json"},
			}
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
