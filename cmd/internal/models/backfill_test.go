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
	"testing"

	"github.com/stretchr/testify/assert"
)

const testLaunchPlan = "daily-report"

func TestValidateBackfill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		backfill    *Backfill
		wantErr     bool
		expectedErr string
	}{
		{
			name:     "nil backfill",
			backfill: nil,
		},
		{
			name: "valid backfill",
			backfill: &Backfill{
				LaunchPlan: testLaunchPlan,
				Project:    "flows",
				Domain:     "development",
				FromDate:   "2023-01-01",
				ToDate:     "2023-01-08",
			},
		},
		{
			name: "missing launchplan",
			backfill: &Backfill{
				Project: "flows",
				Domain:  "development",
			},
			wantErr:     true,
			expectedErr: "launchplan is required",
		},
		{
			name: "missing project",
			backfill: &Backfill{
				LaunchPlan: testLaunchPlan,
				Domain:     "development",
			},
			wantErr:     true,
			expectedErr: "project is required",
		},
		{
			name: "missing domain",
			backfill: &Backfill{
				LaunchPlan: testLaunchPlan,
				Project:    "flows",
			},
			wantErr:     true,
			expectedErr: "domain is required",
		},
		{
			name: "parallel and serial together",
			backfill: &Backfill{
				LaunchPlan: testLaunchPlan,
				Project:    "flows",
				Domain:     "development",
				Parallel:   true,
				Serial:     true,
			},
			wantErr:     true,
			expectedErr: "only one of parallel and serial can be configured",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.backfill.Validate()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRemote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		remote      *Remote
		wantErr     bool
		expectedErr string
	}{
		{
			name:   "nil remote",
			remote: nil,
		},
		{
			name:   "valid remote",
			remote: &Remote{Endpoint: "http://localhost:30080"},
		},
		{
			name:        "missing endpoint",
			remote:      &Remote{},
			wantErr:     true,
			expectedErr: "endpoint is required",
		},
		{
			name: "negative timeout",
			remote: &Remote{
				Endpoint:            "http://localhost:30080",
				TimeoutMilliseconds: -1,
			},
			wantErr:     true,
			expectedErr: "timeout must not be negative",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.remote.Validate()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
