/*
Copyright 2025-2026 the Bookstore Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config resolves suite configuration from three layers with fixed
// precedence: process environment, then the config.properties file, then
// compiled defaults. Configuration is an immutable value constructed once and
// passed to every client, with no global mutable state beyond the Default
// convenience accessor.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the public FakeRestAPI deployment the suite probes
	// when nothing else is configured.
	DefaultBaseURL = "https://fakerestapi.azurewebsites.net"

	DefaultAPIVersion      = "/api/v1"
	DefaultBooksEndpoint   = "/Books"
	DefaultAuthorsEndpoint = "/Authors"

	DefaultRequestTimeout    = 30 * time.Second
	DefaultConnectionTimeout = 10 * time.Second
	DefaultLatencyCeiling    = 5 * time.Second

	DefaultReportDir = "reports"

	DefaultLogFormat = "text"
)

// Config is the resolved, immutable suite configuration. Endpoint fields are
// path suffixes relative to the versioned API root; use BooksPath and
// AuthorsPath for the composed resource paths.
type Config struct {
	BaseURL         string
	APIVersion      string
	BooksEndpoint   string
	AuthorsEndpoint string

	RequestTimeout    time.Duration
	ConnectionTimeout time.Duration
	LatencyCeiling    time.Duration

	LogLevel  slog.Level
	LogFormat string
	ReportDir string

	LogRequests     bool
	LogResponses    bool
	SkipIntegration bool
}

// BooksPath returns the Books collection path, e.g. "/api/v1/Books".
func (c *Config) BooksPath() string {
	return c.APIVersion + c.BooksEndpoint
}

// AuthorsPath returns the Authors collection path, e.g. "/api/v1/Authors".
func (c *Config) AuthorsPath() string {
	return c.APIVersion + c.AuthorsEndpoint
}

// Load resolves configuration using the default properties file search path.
func Load() (*Config, error) {
	return LoadFrom(findPropertiesFile())
}

// LoadFrom resolves configuration against a specific properties file. The
// file degrading to empty is not an error; an unparseable base URL is.
func LoadFrom(propertiesPath string) (*Config, error) {
	loadEnvFile()

	source := NewSource(propertiesPath)

	config := &Config{
		BaseURL:           source.GetDefault("base.url", DefaultBaseURL),
		APIVersion:        source.GetDefault("api.version", DefaultAPIVersion),
		BooksEndpoint:     source.GetDefault("books.endpoint", DefaultBooksEndpoint),
		AuthorsEndpoint:   source.GetDefault("authors.endpoint", DefaultAuthorsEndpoint),
		RequestTimeout:    source.millisWithDefault("request.timeout", DefaultRequestTimeout),
		ConnectionTimeout: source.millisWithDefault("connection.timeout", DefaultConnectionTimeout),
		LatencyCeiling:    source.millisWithDefault("latency.ceiling", DefaultLatencyCeiling),
		LogLevel:          levelWithDefault(source, "log.level", slog.LevelInfo),
		LogFormat:         formatWithDefault(source, "log.format", DefaultLogFormat),
		ReportDir:         source.GetDefault("report.dir", DefaultReportDir),
		LogRequests:       source.boolWithDefault("log.requests", false),
		LogResponses:      source.boolWithDefault("log.responses", false),
		SkipIntegration:   source.boolWithDefault("skip.integration", false),
	}

	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("parsing base URL %q: %w", config.BaseURL, err)
	}

	return config, nil
}

var (
	defaultOnce   sync.Once
	defaultConfig *Config
	defaultErr    error
)

// Default resolves configuration at most once per process and returns the
// same value to every caller. Safe for concurrent first use.
func Default() (*Config, error) {
	defaultOnce.Do(func() {
		defaultConfig, defaultErr = Load()
	})

	return defaultConfig, defaultErr
}

// levelWithDefault parses a slog level name, falling back on malformed values.
func levelWithDefault(source *Source, key string, fallback slog.Level) slog.Level {
	value, ok := source.Get(key)
	if !ok {
		return fallback
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return fallback
	}

	return level
}

// formatWithDefault accepts json or text, falling back on anything else.
func formatWithDefault(source *Source, key, fallback string) string {
	value, ok := source.Get(key)
	if !ok {
		return fallback
	}

	if value != "json" && value != "text" {
		return fallback
	}

	return value
}

// findPropertiesFile probes for config.properties relative to the working
// directory, which differs between the repository root and test packages.
func findPropertiesFile() string {
	paths := []string{
		"config.properties",
		"../../config.properties",    // from pkg test packages
		"../../../config.properties", // from test/api/suites
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return "config.properties"
}

func loadEnvFile() {
	envPaths := []string{
		"test/.env",          // from the repository root
		"../../../test/.env", // from test/api/suites
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// No .env file - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
