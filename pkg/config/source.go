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

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Source resolves property keys against the process environment first and a
// properties file second. An environment variable that is set but empty counts
// as absent, so CI systems exporting empty placeholders fall through to the
// file layer.
type Source struct {
	props map[string]string
}

// NewSource reads the properties file at path. A missing or unreadable file
// degrades to an empty file layer with a warning; environment variables and
// defaults still resolve.
func NewSource(path string) *Source {
	props, err := godotenv.Read(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to read properties from %s: %v\n", path, err)

		props = map[string]string{}
	}

	return &Source{props: props}
}

// EnvName maps a property key to its environment variable override, e.g.
// "base.url" becomes "BASE_URL".
func EnvName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Get returns the resolved value for key, or false when neither the
// environment nor the properties file provides one.
func (s *Source) Get(key string) (string, bool) {
	if value := os.Getenv(EnvName(key)); value != "" {
		return value, true
	}

	if value, ok := s.props[key]; ok && value != "" {
		return value, true
	}

	return "", false
}

// GetDefault returns the resolved value for key, or fallback when absent.
func (s *Source) GetDefault(key, fallback string) string {
	if value, ok := s.Get(key); ok {
		return value
	}

	return fallback
}

// millisWithDefault resolves a millisecond-valued key. Malformed values fall
// back to the default rather than failing resolution.
func (s *Source) millisWithDefault(key string, fallback time.Duration) time.Duration {
	value, ok := s.Get(key)
	if !ok {
		return fallback
	}

	millis, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return time.Duration(millis) * time.Millisecond
}

// boolWithDefault resolves a boolean key, falling back on malformed values.
func (s *Source) boolWithDefault(key string, fallback bool) bool {
	value, ok := s.Get(key)
	if !ok {
		return fallback
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}

	return boolValue
}
