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

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	backfill "github.com/workflowkit/backfill-go"
	"github.com/workflowkit/backfill-go/cmd/internal/config"
)

// Backfill resolves the window from the service config and drives one
// registration call against the remote.
type Backfill struct {
	remote backfill.Remote
	params backfill.LaunchParams
	logger *slog.Logger
	stdout io.Writer
}

// NewBackfill validates cfg, resolves the backfill window and prepares launch
// params. All user input errors surface here, before anything touches the
// network.
func NewBackfill(
	cfg *config.BackfillServiceConfig,
	remote backfill.Remote,
	logger *slog.Logger,
) (*Backfill, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	window, err := resolveWindow(cfg.Backfill.FromDate, cfg.Backfill.ToDate, cfg.Backfill.BackfillWindow)
	if err != nil {
		return nil, err
	}

	executionName := cfg.Backfill.ExecutionName
	if executionName == "" {
		executionName = newExecutionName()
	}

	b := &Backfill{
		remote: remote,
		params: backfill.LaunchParams{
			Project:           cfg.Backfill.Project,
			Domain:            cfg.Backfill.Domain,
			From:              window.From,
			To:                window.To,
			LaunchPlan:        cfg.Backfill.LaunchPlan,
			LaunchPlanVersion: cfg.Backfill.LaunchPlanVersion,
			ExecutionName:     executionName,
			Version:           cfg.Backfill.Version,
			DryRun:            cfg.Backfill.DryRun,
			NoExecute:         cfg.Backfill.NoExecute,
			Parallel:          cfg.Backfill.Parallel,
		},
		logger: logger,
		stdout: os.Stdout,
	}

	b.params.Output = func(format string, args ...any) {
		fmt.Fprintf(b.stdout, format+"\n", args...)
	}

	return b, nil
}

// resolveWindow parses the raw date inputs and hands them to the resolver.
// Absent inputs stay nil so the resolver can tell them apart from zero values.
func resolveWindow(fromDate, toDate, backfillWindow string) (backfill.Window, error) {
	var (
		from, to *time.Time
		window   *time.Duration
	)

	if fromDate != "" {
		parsed, err := config.ParseDate(fromDate)
		if err != nil {
			return backfill.Window{}, fmt.Errorf("failed to parse from-date: %w", err)
		}

		from = &parsed
	}

	if toDate != "" {
		parsed, err := config.ParseDate(toDate)
		if err != nil {
			return backfill.Window{}, fmt.Errorf("failed to parse to-date: %w", err)
		}

		to = &parsed
	}

	if backfillWindow != "" {
		parsed, err := config.ParseWindow(backfillWindow)
		if err != nil {
			return backfill.Window{}, fmt.Errorf("failed to parse backfill-window: %w", err)
		}

		window = &parsed
	}

	return backfill.ResolveWindow(from, to, window)
}

func newExecutionName() string {
	return "backfill-" + uuid.NewString()[:8]
}

// Run executes the prepared backfill registration. Remote errors propagate
// unchanged, they are never retried here.
func (b *Backfill) Run(ctx context.Context) error {
	b.logger.Info("launching backfill",
		slog.String("launchplan", b.params.LaunchPlan),
		slog.String("project", b.params.Project),
		slog.String("domain", b.params.Domain),
		slog.Time("from", b.params.From),
		slog.Time("to", b.params.To),
	)

	entity, err := b.remote.LaunchBackfill(ctx, b.params)
	if err != nil {
		return err
	}

	if entity == nil {
		b.logger.Info("dry run, nothing was registered")

		return nil
	}

	consoleURL := b.remote.ConsoleURL(entity)
	green := color.New(color.FgGreen)

	if b.params.NoExecute {
		green.Fprintf(b.stdout, "\nNo execute mode: workflow registered at %s\n", consoleURL)

		return nil
	}

	green.Fprintf(b.stdout, "\nExecution progress can be seen at %s\n", consoleURL)

	return nil
}
