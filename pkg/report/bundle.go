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

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const maxSlugLength = 80

// WriteBundle writes the report bundle under dir/{run-id}: summary.json, the
// plain-text execution log, and one attachment per failed spec containing the
// failure message and captured request/response output. Returns the bundle
// directory.
func (r *Recorder) WriteBundle(dir string) (string, error) {
	summary := r.Summary()

	bundleDir := filepath.Join(dir, r.runID)
	if err := os.MkdirAll(bundleDir, 0o755); err != nil {
		return "", fmt.Errorf("creating bundle directory: %w", err)
	}

	encoded, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding summary: %w", err)
	}

	if err := os.WriteFile(filepath.Join(bundleDir, "summary.json"), encoded, 0o644); err != nil {
		return "", fmt.Errorf("writing summary: %w", err)
	}

	if err := os.WriteFile(filepath.Join(bundleDir, "run.log"), r.ExecutionLog(), 0o644); err != nil {
		return "", fmt.Errorf("writing execution log: %w", err)
	}

	if err := r.writeFailures(bundleDir, summary); err != nil {
		return "", err
	}

	return bundleDir, nil
}

func (r *Recorder) writeFailures(bundleDir string, summary Summary) error {
	failed := 0

	for _, spec := range summary.Specs {
		if spec.Status != StatusFailed {
			continue
		}

		failed++

		if failed == 1 {
			if err := os.MkdirAll(filepath.Join(bundleDir, "failures"), 0o755); err != nil {
				return fmt.Errorf("creating failures directory: %w", err)
			}
		}

		var attachment strings.Builder

		fmt.Fprintf(&attachment, "%s\n\n", spec.Name)
		fmt.Fprintf(&attachment, "suite: %s\nlabels: %s\nduration: %dms\n\n", spec.Suite, strings.Join(spec.Labels, ","), spec.DurationMS)
		fmt.Fprintf(&attachment, "failure:\n%s\n", spec.Message)

		if spec.Output != "" {
			fmt.Fprintf(&attachment, "\ncaptured output:\n%s", spec.Output)
		}

		name := fmt.Sprintf("%03d-%s.txt", failed, slugify(spec.Name))
		if err := os.WriteFile(filepath.Join(bundleDir, "failures", name), []byte(attachment.String()), 0o644); err != nil {
			return fmt.Errorf("writing failure attachment: %w", err)
		}
	}

	return nil
}

// slugify reduces a spec name to a safe, bounded file name fragment.
func slugify(name string) string {
	mapper := func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}

	slug := strings.Map(mapper, name)

	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	slug = strings.Trim(slug, "-")

	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}

	return slug
}
