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
  serviceName: trajmatch
  log:
    level: debug
http:
  port: 9000
matcher:
  baseUrl: http://matcher:8080
  timeout: 3s
  requestInterval: 0s
persistence:
  provider: memory
`

func writeConfig(t *testing.T, name, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_YAMLAndEnvOverride(t *testing.T) {
	writeConfig(t, "test.yaml", testYAML)
	t.Setenv("MATCHER_REQUESTINTERVAL", "250ms")
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := LoadWithEnv[Config]("test")

	require.NoError(t, err)
	assert.Equal(t, "trajmatch", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 9100, cfg.HTTP.Port)
	require.NotNil(t, cfg.Matcher)
	assert.Equal(t, "http://matcher:8080", cfg.Matcher.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Matcher.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Matcher.RequestInterval)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestNew_AppliesDefaults(t *testing.T) {
	writeConfig(t, "config.yaml", "env:\n  env: develop\n")
	t.Setenv("TRAJMATCH_CONFIG", "")

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultMatcherBaseURL, cfg.Matcher.BaseURL)
	assert.Equal(t, defaultMatcherPath, cfg.Matcher.Path)
	assert.Zero(t, cfg.Matcher.Timeout)
	assert.Equal(t, "memory", cfg.Persistence.Provider)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, defaultSQLitePath, cfg.SQLite.Path)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
	assert.Equal(t, defaultMaxTrackedRuns, cfg.Worker.MaxTrackedRuns)
	assert.Equal(t, "memory", cfg.RunStore.Provider)
	assert.Nil(t, cfg.Redis)
}

func TestNew_ConfigNameFromEnv(t *testing.T) {
	writeConfig(t, "config.local.yaml", "matcher:\n  baseUrl: http://elsewhere\n")
	t.Setenv("TRAJMATCH_CONFIG", "config.local.yaml")

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, "http://elsewhere", cfg.Matcher.BaseURL)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "memory needs nothing", mutate: func(*Config) {}},
		{
			name:    "firestore without project",
			mutate:  func(c *Config) { c.Persistence.Provider = "firestore" },
			wantErr: "firebase.projectId",
		},
		{
			name: "firestore with project",
			mutate: func(c *Config) {
				c.Persistence.Provider = "firestore"
				c.Firebase = &FirebaseConfig{ProjectID: "p"}
			},
		},
		{
			name:    "postgres without section",
			mutate:  func(c *Config) { c.Persistence.Provider = "postgres" },
			wantErr: "postgres section",
		},
		{
			name:    "blob without bucket",
			mutate:  func(c *Config) { c.Persistence.Provider = "blob" },
			wantErr: "blob.bucketUrl",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Persistence.Provider = "redis" },
			wantErr: "unknown persistence provider",
		},
		{
			name:   "sqlite uses the default file",
			mutate: func(c *Config) { c.Persistence.Provider = "sqlite" },
		},
		{
			name:    "redis run store without addr",
			mutate:  func(c *Config) { c.RunStore.Provider = "redis" },
			wantErr: "redis.addr",
		},
		{
			name: "redis run store with addr",
			mutate: func(c *Config) {
				c.RunStore.Provider = "redis"
				c.Redis = &RedisConfig{Addr: "localhost:6379"}
			},
		},
		{
			name:    "unknown run store",
			mutate:  func(c *Config) { c.RunStore.Provider = "etcd" },
			wantErr: "unknown run store provider",
		},
		{
			name:    "negative interval",
			mutate:  func(c *Config) { c.Matcher.RequestInterval = -time.Second },
			wantErr: "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
