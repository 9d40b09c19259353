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

// Package conformance runs named smoke checks against a bookstore API
// deployment. Checks are the subset of the conformance catalog a healthy
// deployment must pass, so a non-zero exit is always a real regression.
package conformance

import (
	"context"
	"log/slog"
	"time"

	"github.com/bookstore-qa/conformance/pkg/bookstore"
	"github.com/bookstore-qa/conformance/pkg/config"
)

// Env carries everything a check needs. The API surfaces are interfaces so
// runner tests substitute doubles.
type Env struct {
	Config   *config.Config
	Books    BooksAPI
	Authors  AuthorsAPI
	Document DocumentAPI
	Log      *slog.Logger
}

// NewEnv builds an Env with real clients over one shared HTTP client.
func NewEnv(cfg *config.Config, log *slog.Logger, opts ...bookstore.Option) *Env {
	client := bookstore.NewClient(cfg, opts...)

	return &Env{
		Config:   cfg,
		Books:    bookstore.NewBooksClient(client),
		Authors:  bookstore.NewAuthorsClient(client),
		Document: client,
		Log:      log,
	}
}

// CheckFunc probes one behavior. A nil return is a pass.
type CheckFunc func(ctx context.Context, env *Env) error

// Check is a named smoke probe.
type Check struct {
	Name        string
	Description string
	Run         CheckFunc
}

// Result is one executed check's outcome.
type Result struct {
	Name       string `json:"name"`
	Passed     bool   `json:"passed"`
	DurationMS int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// Report aggregates an executed check sequence.
type Report struct {
	Results  []Result      `json:"results"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"-"`
}

// Ok reports whether every check passed.
func (r *Report) Ok() bool {
	return r.Failed == 0
}

// Run executes checks sequentially against env and never stops early; a
// failed check is recorded and the sequence continues.
func Run(ctx context.Context, env *Env, checks []Check) *Report {
	report := &Report{}

	start := time.Now()

	for _, check := range checks {
		env.Log.Info("check started", "name", check.Name)

		checkStart := time.Now()
		err := check.Run(ctx, env)

		result := Result{
			Name:       check.Name,
			Passed:     err == nil,
			DurationMS: time.Since(checkStart).Milliseconds(),
		}

		if err != nil {
			result.Message = err.Error()
			report.Failed++

			env.Log.Warn("check failed", "name", check.Name, "duration_ms", result.DurationMS, "error", err)
		} else {
			report.Passed++

			env.Log.Info("check passed", "name", check.Name, "duration_ms", result.DurationMS)
		}

		report.Results = append(report.Results, result)
	}

	report.Duration = time.Since(start)

	return report
}
