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

// Remote holds connection flags for the workflow-execution service.
type Remote struct {
	Endpoint            string `yaml:"endpoint,omitempty"`
	ConsoleEndpoint     string `yaml:"console-endpoint,omitempty"`
	Insecure            bool   `yaml:"insecure,omitempty"`
	TimeoutMilliseconds int    `yaml:"timeout,omitempty"`
}

func (r *Remote) Validate() error {
	if r == nil {
		return nil
	}

	if r.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}

	if r.TimeoutMilliseconds < 0 {
		return fmt.Errorf("timeout must not be negative")
	}

	return nil
}
