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

package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemote_NewFlagSet(t *testing.T) {
	t.Parallel()
	remote := NewRemote()

	flagSet := remote.NewFlagSet()

	args := []string{
		"--endpoint", "https://api.example.com",
		"--console-endpoint", "https://console.example.com",
		"--insecure",
		"--timeout", "5000",
	}

	err := flagSet.Parse(args)
	assert.NoError(t, err)

	result := remote.GetRemote()

	assert.Equal(t, "https://api.example.com", result.Endpoint, "The endpoint flag should be parsed correctly")
	assert.Equal(t, "https://console.example.com", result.ConsoleEndpoint,
		"The console-endpoint flag should be parsed correctly")
	assert.True(t, result.Insecure, "The insecure flag should be parsed correctly")
	assert.Equal(t, 5000, result.TimeoutMilliseconds, "The timeout flag should be parsed correctly")
}

func TestRemote_NewFlagSet_DefaultValues(t *testing.T) {
	t.Parallel()
	remote := NewRemote()

	flagSet := remote.NewFlagSet()

	err := flagSet.Parse([]string{})
	assert.NoError(t, err)

	result := remote.GetRemote()

	assert.Equal(t, "http://localhost:30080", result.Endpoint,
		"The default value for endpoint should point at a local service")
	assert.Equal(t, "", result.ConsoleEndpoint, "The default value for console-endpoint should be an empty string")
	assert.False(t, result.Insecure, "The default value for insecure should be false")
	assert.Equal(t, 30000, result.TimeoutMilliseconds, "The default value for timeout should be 30000")
}
