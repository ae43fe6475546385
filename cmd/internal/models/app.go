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

// App contains flags that configure the CLI itself rather than the backfill.
type App struct {
	Version        bool   `yaml:"-"`
	Verbose        bool   `yaml:"verbose,omitempty"`
	LogLevel       string `yaml:"log-level,omitempty"`
	LogJSON        bool   `yaml:"log-json,omitempty"`
	ConfigFilePath string `yaml:"-"`
}
