// Copyright 2025 Workflowkit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package models

import (
	"fmt"
)

// Backfill flags that will be mapped to backfill launch params.
// Dates and the window are kept raw here and parsed during mapping.
type Backfill struct {
	Project           string `yaml:"project,omitempty"`
	Domain            string `yaml:"domain,omitempty"`
	Version           string `yaml:"version,omitempty"`
	ExecutionName     string `yaml:"execution-name,omitempty"`
	DryRun            bool   `yaml:"dry-run,omitempty"`
	Parallel          bool   `yaml:"parallel,omitempty"`
	Serial            bool   `yaml:"serial,omitempty"`
	NoExecute         bool   `yaml:"no-execute,omitempty"`
	FromDate          string `yaml:"from-date,omitempty"`
	ToDate            string `yaml:"to-date,omitempty"`
	BackfillWindow    string `yaml:"backfill-window,omitempty"`
	LaunchPlan        string `yaml:"launchplan,omitempty"`
	LaunchPlanVersion string `yaml:"launchplan-version,omitempty"`
}

func (b *Backfill) Validate() error {
	if b == nil {
		return nil
	}

	if b.LaunchPlan == "" {
		return fmt.Errorf("launchplan is required")
	}

	if b.Project == "" {
		return fmt.Errorf("project is required")
	}

	if b.Domain == "" {
		return fmt.Errorf("domain is required")
	}

	if b.Parallel && b.Serial {
		return fmt.Errorf("only one of parallel and serial can be configured")
	}

	// Date and window combinations are checked by the resolver, which owns the rules.
	return nil
}
