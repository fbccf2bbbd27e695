package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rdferrors "github.com/c360/rdfstore/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"endpoint": {
			"query": "http://localhost:3030/ds/query",
			"update": "http://localhost:3030/ds/update"
		},
		"security_label": "clearance=low",
		"timeout_seconds": 10
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3030/ds/query", cfg.Endpoint.Query)
	assert.Equal(t, "http://localhost:3030/ds/update", cfg.Endpoint.Update)
	assert.Equal(t, "clearance=low", cfg.SecurityLabel)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	// Defaults survive for fields the file does not set.
	assert.Equal(t, "https://rdfstore.c360.io/resource#", cfg.ResourceStub)
	assert.Equal(t, "rdf.mutation", cfg.NATS.SubjectPrefix)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
endpoint:
  query: http://localhost:3030/ds/query
  update: http://localhost:3030/ds/update
resource_stub: https://example.org/things#
nats:
  enabled: true
  url: nats://nats:4222
  subject_prefix: graph.mutation
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.org/things#", cfg.ResourceStub)
	assert.True(t, cfg.NATS.Enabled)
	assert.Equal(t, "nats://nats:4222", cfg.NATS.URL)
	assert.Equal(t, "graph.mutation", cfg.NATS.SubjectPrefix)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "config.toml", `endpoint = "nope"`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, rdferrors.IsInvalid(err))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, rdferrors.ErrConfigNotFound)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"endpoint": {
			"query": "http://file:3030/query",
			"update": "http://file:3030/update"
		}
	}`)

	t.Setenv(EnvQueryEndpoint, "http://env:3030/query")
	t.Setenv(EnvSecurityLabel, "clearance=high")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env:3030/query", cfg.Endpoint.Query)
	assert.Equal(t, "http://file:3030/update", cfg.Endpoint.Update)
	assert.Equal(t, "clearance=high", cfg.SecurityLabel)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.Endpoint.Query = "http://localhost:3030/ds/query"
		cfg.Endpoint.Update = "http://localhost:3030/ds/update"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config passes",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing query endpoint",
			mutate:  func(c *Config) { c.Endpoint.Query = "" },
			wantErr: true,
		},
		{
			name:    "missing update endpoint",
			mutate:  func(c *Config) { c.Endpoint.Update = "" },
			wantErr: true,
		},
		{
			name:    "relative endpoint rejected",
			mutate:  func(c *Config) { c.Endpoint.Query = "/ds/query" },
			wantErr: true,
		},
		{
			name:    "non-http scheme rejected",
			mutate:  func(c *Config) { c.Endpoint.Update = "ftp://store/update" },
			wantErr: true,
		},
		{
			name:    "empty resource stub rejected",
			mutate:  func(c *Config) { c.ResourceStub = "" },
			wantErr: true,
		},
		{
			name:    "negative timeout rejected",
			mutate:  func(c *Config) { c.TimeoutSeconds = -1 },
			wantErr: true,
		},
		{
			name: "metrics port out of range",
			mutate: func(c *Config) {
				c.Metrics.Enabled = true
				c.Metrics.Port = 70000
			},
			wantErr: true,
		},
		{
			name: "bridge without subject prefix rejected",
			mutate: func(c *Config) {
				c.NATS.Enabled = true
				c.NATS.SubjectPrefix = ""
			},
			wantErr: true,
		},
		{
			name: "disabled bridge ignores empty prefix",
			mutate: func(c *Config) {
				c.NATS.Enabled = false
				c.NATS.SubjectPrefix = ""
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, rdferrors.IsInvalid(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
