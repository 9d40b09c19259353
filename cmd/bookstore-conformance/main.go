/*
Copyright 2026 the Bookstore Conformance Authors.

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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/bookstore-qa/conformance/pkg/bookstore"
	"github.com/bookstore-qa/conformance/pkg/config"
	"github.com/bookstore-qa/conformance/pkg/conformance"
	"github.com/bookstore-qa/conformance/pkg/constants"
	"github.com/bookstore-qa/conformance/pkg/report"
)

type options struct {
	baseURL    string
	planPath   string
	reportDir  string
	timeout    time.Duration
	logLevel   string
	listChecks bool
}

func (o *options) addFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.baseURL, "base-url", "", "Base URL of the deployment to probe, overriding configuration.")
	flags.StringVar(&o.planPath, "plan", "", "YAML plan selecting and ordering checks.")
	flags.StringVar(&o.reportDir, "report-dir", "", "Report bundle directory, overriding configuration.")
	flags.DurationVar(&o.timeout, "timeout", 10*time.Minute, "Overall run deadline.")
	flags.StringVar(&o.logLevel, "log-level", "", "Execution log level: debug, info, warn or error.")
	flags.BoolVar(&o.listChecks, "list-checks", false, "List the available checks and exit.")
}

// newLogHandler builds the console handler for the configured format and
// level. The format is controlled by log.format or the LOG_FORMAT environment
// variable, json or text.
func newLogHandler(cfg *config.Config) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.LogFormat == "json" {
		return slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.NewTextHandler(os.Stderr, opts)
}

// apply overlays flag values onto the resolved configuration. Flags beat both
// the environment and the properties file.
func (o *options) apply(cfg *config.Config) error {
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}

	if o.reportDir != "" {
		cfg.ReportDir = o.reportDir
	}

	if o.logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(o.logLevel)); err != nil {
			return fmt.Errorf("parsing log level %q: %w", o.logLevel, err)
		}
	}

	return nil
}

func main() {
	o := &options{}
	o.addFlags(pflag.CommandLine)

	pflag.Parse()

	if o.listChecks {
		for _, check := range conformance.DefaultChecks() {
			fmt.Printf("%-16s %s\n", check.Name, check.Description)
		}

		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := o.apply(cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	checks := conformance.DefaultChecks()

	if o.planPath != "" {
		plan, err := conformance.LoadPlan(o.planPath)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		cfg = plan.Apply(cfg)

		checks, err = plan.Select(checks)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	logger := slog.New(newLogHandler(cfg))
	logger.Info("smoke run starting",
		"application", constants.Application,
		"version", constants.Version,
		"revision", constants.Revision,
		"base_url", cfg.BaseURL,
		"checks", len(checks))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	// Request traces land in the bundle's execution log; the console gets
	// check lifecycle events only.
	recorder := report.NewRecorder("Bookstore API Smoke Checks", report.WithLevel(cfg.LogLevel))
	recorder.RunStarted()

	env := conformance.NewEnv(cfg, logger, bookstore.WithTracer(recorder.Tracer()))

	runReport := conformance.Run(ctx, env, checks)

	for _, result := range runReport.Results {
		status := report.StatusPassed
		if !result.Passed {
			status = report.StatusFailed
		}

		recorder.SpecFinished(report.SpecResult{
			Suite:      "smoke",
			Name:       result.Name,
			Status:     status,
			DurationMS: result.DurationMS,
			Message:    result.Message,
		})
	}

	recorder.RunFinished()

	bundleDir, err := recorder.WriteBundle(cfg.ReportDir)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	logger.Info("smoke run finished",
		"passed", runReport.Passed,
		"failed", runReport.Failed,
		"duration", runReport.Duration.String(),
		"report", bundleDir)

	if !runReport.Ok() {
		os.Exit(1)
	}
}
