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
	"github.com/spf13/pflag"
	"github.com/workflowkit/backfill-go/cmd/internal/models"
)

type Remote struct {
	models.Remote
}

func NewRemote() *Remote {
	return &Remote{}
}

func (f *Remote) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}

	flagSet.StringVar(&f.Endpoint, "endpoint",
		"http://localhost:30080",
		"Base URL of the workflow-execution service API.")
	flagSet.StringVar(&f.ConsoleEndpoint, "console-endpoint",
		"",
		"Base URL of the web console.\n"+
			"Default: same as --endpoint.")
	flagSet.BoolVar(&f.Insecure, "insecure",
		false,
		"Skip TLS certificate verification when calling the service.")
	flagSet.IntVar(&f.TimeoutMilliseconds, "timeout",
		30000,
		"Timeout in milliseconds for a single service call.\n"+
			"Default: 30000.")

	return flagSet
}

func (f *Remote) GetRemote() *models.Remote {
	return &f.Remote
}
