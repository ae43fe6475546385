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

package backfill

import (
	"context"
	"time"
)

// OutputFunc receives user-facing progress lines emitted while a backfill
// is being registered.
type OutputFunc func(format string, args ...any)

// Entity is a handle to the workflow the remote registered, and possibly
// launched, for a backfill.
type Entity struct {
	Project string
	Domain  string
	Name    string
	Version string
}

// LaunchParams describes one backfill registration request.
type LaunchParams struct {
	Project           string
	Domain            string
	From              time.Time
	To                time.Time
	LaunchPlan        string
	LaunchPlanVersion string
	ExecutionName     string
	Version           string
	DryRun            bool
	NoExecute         bool
	Parallel          bool
	Output            OutputFunc
}

// Remote is the workflow-execution service collaborator. It owns workflow
// registration, backfill-workflow generation and execution; this module only
// consumes the contract.
type Remote interface {
	// LaunchBackfill registers a backfill workflow covering params' window and,
	// unless NoExecute is set, launches it. A nil entity is returned in dry-run
	// mode. Errors are returned as-is, never retried.
	LaunchBackfill(ctx context.Context, params LaunchParams) (*Entity, error)
	// ConsoleURL returns the console page for entity.
	ConsoleURL(entity *Entity) string
}
