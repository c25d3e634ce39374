package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"matcher": map[string]any{
			"baseUrl":         "",
			"requestInterval": "0s",
		},
		"worker": map[string]any{
			"maxTrackedRuns": 100,
		},
		"runStore": map[string]any{
			"provider": "memory",
		},
		"redis": map[string]any{
			"keyPrefix": "trajmatch:",
		},
		"postgres": map[string]any{
			"master": map[string]any{
				"userName": "user",
			},
		},
	}

	tests := map[string]string{
		"MATCHER_BASEURL":          "matcher.baseUrl",
		"MATCHER_REQUESTINTERVAL":  "matcher.requestInterval",
		"WORKER_MAXTRACKEDRUNS":    "worker.maxTrackedRuns",
		"RUNSTORE_PROVIDER":        "runStore.provider",
		"REDIS_KEYPREFIX":          "redis.keyPrefix",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"SQLITE_PATH":              "sqlite.path",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}
