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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workflowkit/backfill-go/cmd/internal/models"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "backfill.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewBackfillServiceConfig_FromFlags(t *testing.T) {
	t.Parallel()

	app := &models.App{}
	backfill := &models.Backfill{LaunchPlan: "daily-report", Project: "flows", Domain: "development"}
	remote := &models.Remote{Endpoint: "http://localhost:30080"}

	cfg, err := NewBackfillServiceConfig(app, backfill, remote)
	require.NoError(t, err)

	assert.Same(t, backfill, cfg.Backfill)
	assert.Same(t, remote, cfg.Remote)
	assert.NoError(t, cfg.Validate())
}

func TestNewBackfillServiceConfig_FromFile(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `
backfill:
  project: flows
  domain: production
  launchplan: daily-report
  from-date: "2023-01-01"
  backfill-window: 7d
remote:
  endpoint: https://api.example.com
  console-endpoint: https://console.example.com
  timeout: 5000
`)

	app := &models.App{ConfigFilePath: path}
	flagBackfill := &models.Backfill{Project: "ignored"}
	flagRemote := &models.Remote{Endpoint: "http://ignored"}

	cfg, err := NewBackfillServiceConfig(app, flagBackfill, flagRemote)
	require.NoError(t, err)

	assert.Equal(t, "flows", cfg.Backfill.Project)
	assert.Equal(t, "production", cfg.Backfill.Domain)
	assert.Equal(t, "daily-report", cfg.Backfill.LaunchPlan)
	assert.Equal(t, "2023-01-01", cfg.Backfill.FromDate)
	assert.Equal(t, "7d", cfg.Backfill.BackfillWindow)
	assert.Equal(t, "https://api.example.com", cfg.Remote.Endpoint)
	assert.Equal(t, 5000, cfg.Remote.TimeoutMilliseconds)
	assert.NoError(t, cfg.Validate())
}

func TestNewBackfillServiceConfig_UnknownField(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `
backfill:
  project: flows
  launch-plan-name: daily-report
`)

	app := &models.App{ConfigFilePath: path}

	_, err := NewBackfillServiceConfig(app, &models.Backfill{}, &models.Remote{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode config file")
}

func TestNewBackfillServiceConfig_MissingFile(t *testing.T) {
	t.Parallel()

	app := &models.App{ConfigFilePath: filepath.Join(t.TempDir(), "nope.yaml")}

	_, err := NewBackfillServiceConfig(app, &models.Backfill{}, &models.Remote{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open config file")
}

func TestBackfillServiceConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := &BackfillServiceConfig{
		App:      &models.App{},
		Backfill: &models.Backfill{},
		Remote:   &models.Remote{Endpoint: "http://localhost:30080"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "launchplan is required")

	cfg.Backfill = &models.Backfill{LaunchPlan: "daily-report", Project: "flows", Domain: "development"}
	cfg.Remote = &models.Remote{}

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint is required")
}
