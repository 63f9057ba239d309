package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: develop
  serviceName: catalog
auth:
  token:
    secret: file-secret
    expirationTime: 3600
  bcryptCost: 4
redis:
  addr: localhost:6379
  ttl: 5m
mail:
  provider: log
  baseURL: http://localhost:8080
`

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))
}

func TestLoadWithEnv_FileValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "unit", testYAML)
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)

	assert.Equal(t, "catalog", cfg.Env.ServiceName)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "file-secret", cfg.Auth.Token.Secret)
	assert.Equal(t, time.Hour, cfg.Auth.Token.TTL())
	require.NotNil(t, cfg.Redis)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Nil(t, cfg.PubSub)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "unit", testYAML)
	t.Chdir(dir)
	t.Setenv("AUTH_TOKEN_SECRET", "env-secret")
	t.Setenv("AUTH_TOKEN_EXPIRATIONTIME", "120")

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.Token.Secret)
	assert.Equal(t, 2*time.Minute, cfg.Auth.Token.TTL())
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Auth: &AuthConfig{Token: TokenConfig{Secret: "s", ExpirationTime: 60}}}
		cfg.Mail.Provider = "log"
		cfg.applyDefaults()

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "mail provider is never implied", mutate: func(c *Config) { c.Mail.Provider = "" }, wantErr: "mail.provider is required"},
		{name: "missing auth", mutate: func(c *Config) { c.Auth = nil }, wantErr: "auth config is required"},
		{name: "blank secret", mutate: func(c *Config) { c.Auth.Token.Secret = "  " }, wantErr: "auth.token.secret"},
		{name: "zero ttl", mutate: func(c *Config) { c.Auth.Token.ExpirationTime = 0 }, wantErr: "expirationTime"},
		{name: "smtp without host", mutate: func(c *Config) { c.Mail.Provider = "smtp" }, wantErr: "mail.smtp.host"},
		{name: "pubsub without config", mutate: func(c *Config) { c.Mail.Provider = "pubsub" }, wantErr: "pubsub config"},
		{name: "unknown provider", mutate: func(c *Config) { c.Mail.Provider = "carrier-pigeon" }, wantErr: "unknown mail provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
