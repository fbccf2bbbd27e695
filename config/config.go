// Package config defines the service configuration for the rdfstore client:
// endpoint URLs, the resource stub for minted URIs, the default security
// label, and the optional metrics and NATS bridge settings. Configuration is
// loaded once at startup and is immutable thereafter.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/rdfstore/errors"
)

// Environment variable overrides applied after file load. File values are
// defaults; the environment wins.
const (
	EnvQueryEndpoint  = "RDFSTORE_QUERY_ENDPOINT"
	EnvUpdateEndpoint = "RDFSTORE_UPDATE_ENDPOINT"
	EnvSecurityLabel  = "RDFSTORE_SECURITY_LABEL"
	EnvNATSURL        = "RDFSTORE_NATS_URL"
)

// EndpointConfig holds the SPARQL endpoint pair.
type EndpointConfig struct {
	// Query is the SPARQL query endpoint (reads)
	Query string `json:"query" yaml:"query"`
	// Update is the SPARQL update endpoint (writes)
	Update string `json:"update" yaml:"update"`
}

// MetricsConfig controls the Prometheus metrics server.
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Port    int    `json:"port" yaml:"port"`
	Path    string `json:"path" yaml:"path"`
}

// NATSConfig controls the mutation bridge.
type NATSConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	URL     string `json:"url" yaml:"url"`
	// SubjectPrefix is the root of the mutation subjects
	// (e.g. "rdf.mutation" listens on "rdf.mutation.insert" etc.)
	SubjectPrefix string `json:"subject_prefix" yaml:"subject_prefix"`
}

// Config represents the complete rdfstore configuration.
type Config struct {
	Endpoint EndpointConfig `json:"endpoint" yaml:"endpoint"`

	// ResourceStub is the URI prefix for minted resource identifiers
	ResourceStub string `json:"resource_stub" yaml:"resource_stub"`

	// SecurityLabel is the default label attached to updates; individual
	// calls may override it
	SecurityLabel string `json:"security_label" yaml:"security_label"`

	// TimeoutSeconds bounds each HTTP request; 0 uses the transport default
	TimeoutSeconds int `json:"timeout_seconds" yaml:"timeout_seconds"`

	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
	NATS    NATSConfig    `json:"nats" yaml:"nats"`
}

// DefaultConfig returns a configuration with sensible defaults. Endpoints
// have no default: they must come from the file or the environment.
func DefaultConfig() *Config {
	return &Config{
		ResourceStub:   "https://rdfstore.c360.io/resource#",
		TimeoutSeconds: 30,
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
			Path:    "/metrics",
		},
		NATS: NATSConfig{
			Enabled:       false,
			URL:           "nats://localhost:4222",
			SubjectPrefix: "rdf.mutation",
		},
	}
}

// Load reads a configuration file (JSON or YAML by extension), applies
// environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapFatal(errors.ErrConfigNotFound, "config", "Load", path)
		}
		return nil, errors.WrapFatal(err, "config", "Load", "read file")
	}

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapFatal(err, "config", "Load", "parse yaml")
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapFatal(err, "config", "Load", "parse json")
		}
	default:
		return nil, errors.WrapInvalid(
			fmt.Errorf("unsupported config extension %q (want .json, .yaml, or .yml)", filepath.Ext(path)),
			"config", "Load", "detect format")
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvQueryEndpoint); v != "" {
		c.Endpoint.Query = v
	}
	if v := os.Getenv(EnvUpdateEndpoint); v != "" {
		c.Endpoint.Update = v
	}
	if v := os.Getenv(EnvSecurityLabel); v != "" {
		c.SecurityLabel = v
	}
	if v := os.Getenv(EnvNATSURL); v != "" {
		c.NATS.URL = v
	}
}

// Validate checks the configuration for errors. Both endpoints are required
// and must be absolute http(s) URLs.
func (c *Config) Validate() error {
	if err := validateEndpoint("endpoint.query", c.Endpoint.Query); err != nil {
		return err
	}
	if err := validateEndpoint("endpoint.update", c.Endpoint.Update); err != nil {
		return err
	}

	if c.ResourceStub == "" {
		return errors.WrapInvalid(
			fmt.Errorf("resource_stub must not be empty"),
			"config", "Validate", "check resource stub")
	}

	if c.TimeoutSeconds < 0 {
		return errors.WrapInvalid(
			fmt.Errorf("timeout_seconds must not be negative, got %d", c.TimeoutSeconds),
			"config", "Validate", "check timeout")
	}

	if c.Metrics.Enabled {
		if c.Metrics.Port <= 0 || c.Metrics.Port > 65535 {
			return errors.WrapInvalid(
				fmt.Errorf("metrics.port %d out of range", c.Metrics.Port),
				"config", "Validate", "check metrics port")
		}
	}

	if c.NATS.Enabled {
		if c.NATS.URL == "" {
			return errors.WrapInvalid(
				fmt.Errorf("nats.url required when the bridge is enabled"),
				"config", "Validate", "check nats url")
		}
		if c.NATS.SubjectPrefix == "" {
			return errors.WrapInvalid(
				fmt.Errorf("nats.subject_prefix required when the bridge is enabled"),
				"config", "Validate", "check subject prefix")
		}
	}

	return nil
}

func validateEndpoint(field, value string) error {
	if value == "" {
		return errors.WrapInvalid(
			fmt.Errorf("%s is required", field),
			"config", "Validate", "check endpoints")
	}
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.WrapInvalid(
			fmt.Errorf("%s must be an absolute http(s) URL, got %q", field, value),
			"config", "Validate", "check endpoints")
	}
	return nil
}
