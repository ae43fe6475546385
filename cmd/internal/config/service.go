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
	"fmt"
	"os"

	"github.com/workflowkit/backfill-go/cmd/internal/models"
	"gopkg.in/yaml.v3"
)

// BackfillServiceConfig groups everything the backfill service needs.
type BackfillServiceConfig struct {
	App      *models.App
	Backfill *models.Backfill
	Remote   *models.Remote
}

// fileConfig is the YAML layout of a --config file.
type fileConfig struct {
	App      models.App      `yaml:"app,omitempty"`
	Backfill models.Backfill `yaml:"backfill,omitempty"`
	Remote   models.Remote   `yaml:"remote,omitempty"`
}

// NewBackfillServiceConfig assembles the service config from flag-backed models.
// When app carries a config file path, the file replaces the flag values,
// except for App itself, which always comes from flags.
func NewBackfillServiceConfig(
	app *models.App,
	backfill *models.Backfill,
	remote *models.Remote,
) (*BackfillServiceConfig, error) {
	if app.ConfigFilePath != "" {
		var cfg fileConfig
		if err := decodeFromFile(app.ConfigFilePath, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", app.ConfigFilePath, err)
		}

		return &BackfillServiceConfig{
			App:      app,
			Backfill: &cfg.Backfill,
			Remote:   &cfg.Remote,
		}, nil
	}

	return &BackfillServiceConfig{
		App:      app,
		Backfill: backfill,
		Remote:   remote,
	}, nil
}

// Validate checks all grouped models.
func (c *BackfillServiceConfig) Validate() error {
	if err := c.Backfill.Validate(); err != nil {
		return fmt.Errorf("failed to validate backfill params: %w", err)
	}

	if err := c.Remote.Validate(); err != nil {
		return fmt.Errorf("failed to validate remote params: %w", err)
	}

	return nil
}

// decodeFromFile decode yaml to params.
func decodeFromFile(filename string, params any) error {
	if filename == "" {
		return fmt.Errorf("config path is empty")
	}

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open config file %s: %w", filename, err)
	}
	defer file.Close()

	yamlDec := yaml.NewDecoder(file)
	yamlDec.KnownFields(true)

	if err := yamlDec.Decode(params); err != nil {
		return fmt.Errorf("failed to decode config file %s: %w", filename, err)
	}

	return nil
}
