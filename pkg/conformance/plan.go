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

package conformance

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bookstore-qa/conformance/pkg/config"
)

// Plan selects and orders checks and optionally overrides configuration for
// one run. The zero Plan selects every default check.
type Plan struct {
	Checks           []string `yaml:"checks"`
	BaseURL          string   `yaml:"base_url"`
	LatencyCeilingMS int      `yaml:"latency_ceiling_ms"`
}

// LoadPlan reads a plan file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}

	plan := &Plan{}

	if err := yaml.Unmarshal(data, plan); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}

	return plan, nil
}

// Select resolves the plan's check names against the available checks,
// preserving the plan's order. An empty selection means all checks.
func (p *Plan) Select(available []Check) ([]Check, error) {
	if len(p.Checks) == 0 {
		return available, nil
	}

	byName := make(map[string]Check, len(available))
	names := make([]string, 0, len(available))

	for _, check := range available {
		byName[check.Name] = check
		names = append(names, check.Name)
	}

	selected := make([]Check, 0, len(p.Checks))

	for _, name := range p.Checks {
		check, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown check %q, available: %s", name, strings.Join(names, ", "))
		}

		selected = append(selected, check)
	}

	return selected, nil
}

// Apply returns a copy of cfg with the plan's overrides applied; cfg itself
// stays untouched.
func (p *Plan) Apply(cfg *config.Config) *config.Config {
	applied := *cfg

	if p.BaseURL != "" {
		applied.BaseURL = p.BaseURL
	}

	if p.LatencyCeilingMS > 0 {
		applied.LatencyCeiling = time.Duration(p.LatencyCeilingMS) * time.Millisecond
	}

	return &applied
}
