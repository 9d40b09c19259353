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

// Package report records run lifecycle events and writes the report bundle.
// The recorder is strictly observational: it consumes events and never
// influences test outcomes.
package report

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/bookstore-qa/conformance/pkg/bookstore"
)

type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// SpecResult is the outcome of one executed scenario. Output carries the
// captured request/response log and lands in the bundle's failure
// attachments rather than summary.json.
type SpecResult struct {
	Suite      string   `json:"suite"`
	Name       string   `json:"name"`
	Status     Status   `json:"status"`
	DurationMS int64    `json:"duration_ms"`
	Message    string   `json:"message,omitempty"`
	Labels     []string `json:"labels,omitempty"`

	Output string `json:"-"`
}

// Summary aggregates a finished run.
type Summary struct {
	RunID        string       `json:"run_id"`
	Suite        string       `json:"suite"`
	StartedAt    time.Time    `json:"started_at"`
	FinishedAt   time.Time    `json:"finished_at"`
	Total        int          `json:"total"`
	Passed       int          `json:"passed"`
	Failed       int          `json:"failed"`
	Skipped      int          `json:"skipped"`
	FailedSuites []string     `json:"failed_suites,omitempty"`
	Specs        []SpecResult `json:"specs"`
}

// Recorder consumes lifecycle events for one run. Safe for concurrent use.
type Recorder struct {
	mu sync.Mutex

	runID    string
	suite    string
	started  time.Time
	finished time.Time
	results  []SpecResult

	logBuf bytes.Buffer
	logger *slog.Logger
}

type Option func(*recorderOptions)

type recorderOptions struct {
	writer io.Writer
	level  slog.Level
}

// WithWriter mirrors the execution log to w as events arrive, in addition to
// the buffered copy written into the bundle.
func WithWriter(w io.Writer) Option {
	return func(o *recorderOptions) {
		o.writer = w
	}
}

// WithLevel sets the execution log threshold.
func WithLevel(level slog.Level) Option {
	return func(o *recorderOptions) {
		o.level = level
	}
}

func NewRecorder(suite string, opts ...Option) *Recorder {
	options := &recorderOptions{
		writer: io.Discard,
		level:  slog.LevelInfo,
	}

	for _, opt := range opts {
		opt(options)
	}

	r := &Recorder{
		runID: uuid.NewString(),
		suite: suite,
	}

	sink := io.MultiWriter(&r.logBuf, options.writer)
	r.logger = slog.New(slog.NewTextHandler(sink, &slog.HandlerOptions{Level: options.level}))

	return r
}

func (r *Recorder) RunID() string {
	return r.runID
}

// RunStarted marks the beginning of the run.
func (r *Recorder) RunStarted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.started = time.Now()

	r.logger.Info("run started", "run_id", r.runID, "suite", r.suite)
}

// SpecStarted announces a scenario about to execute.
func (r *Recorder) SpecStarted(suite, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logger.Info("spec started", "suite", suite, "name", name)
}

// SpecFinished records a scenario outcome.
func (r *Recorder) SpecFinished(result SpecResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.results = append(r.results, result)

	switch result.Status {
	case StatusFailed:
		r.logger.Warn("spec failed", "suite", result.Suite, "name", result.Name, "duration_ms", result.DurationMS, "message", firstLine(result.Message))
	case StatusSkipped:
		r.logger.Info("spec skipped", "suite", result.Suite, "name", result.Name)
	default:
		r.logger.Info("spec passed", "suite", result.Suite, "name", result.Name, "duration_ms", result.DurationMS)
	}
}

// RunFinished marks the end of the run and returns its summary.
func (r *Recorder) RunFinished() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.finished = time.Now()

	summary := r.summaryLocked()

	r.logger.Info("run finished",
		"run_id", summary.RunID,
		"total", summary.Total,
		"passed", summary.Passed,
		"failed", summary.Failed,
		"skipped", summary.Skipped)

	return summary
}

// Summary builds the current aggregate without closing the run.
func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.summaryLocked()
}

func (r *Recorder) summaryLocked() Summary {
	summary := Summary{
		RunID:      r.runID,
		Suite:      r.suite,
		StartedAt:  r.started,
		FinishedAt: r.finished,
		Total:      len(r.results),
		Specs:      slices.Clone(r.results),
	}

	failedSuites := set.New[string]()

	for _, result := range r.results {
		switch result.Status {
		case StatusFailed:
			summary.Failed++
			failedSuites.Add(result.Suite)
		case StatusSkipped:
			summary.Skipped++
		default:
			summary.Passed++
		}
	}

	summary.FailedSuites = slices.Collect(failedSuites.All())
	slices.Sort(summary.FailedSuites)

	return summary
}

// ExecutionLog returns a copy of the buffered plain-text log.
func (r *Recorder) ExecutionLog() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	return bytes.Clone(r.logBuf.Bytes())
}

// Tracer adapts the recorder into a request tracer so request/response
// activity lands in the execution log alongside lifecycle events.
func (r *Recorder) Tracer() bookstore.Tracer {
	return &recorderTracer{recorder: r}
}

type recorderTracer struct {
	recorder *Recorder
}

func (t *recorderTracer) Trace(record bookstore.TraceRecord) {
	t.recorder.mu.Lock()
	defer t.recorder.mu.Unlock()

	if record.Err != nil {
		t.recorder.logger.Warn("request failed",
			"method", record.Method,
			"path", record.Path,
			"duration", record.Elapsed.String(),
			"traceparent", record.TraceParent,
			"error", record.Err)

		return
	}

	t.recorder.logger.Info("request",
		"method", record.Method,
		"path", record.Path,
		"status", record.Status,
		"duration", record.Elapsed.String(),
		"traceparent", record.TraceParent)
}

func firstLine(s string) string {
	if line, _, found := strings.Cut(s, "\n"); found {
		return fmt.Sprintf("%s ...", line)
	}

	return s
}
