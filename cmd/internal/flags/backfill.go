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

type Backfill struct {
	models.Backfill
}

func NewBackfill() *Backfill {
	return &Backfill{}
}

func (f *Backfill) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}

	flagSet.StringVarP(&f.Project, "project", "p",
		"default",
		"Project to register and run this workflow in.")
	flagSet.StringVarP(&f.Domain, "domain", "d",
		"development",
		"Domain to register and run this workflow in.")
	flagSet.StringVarP(&f.Version, "version", "v",
		"",
		"Version for the registered workflow.\n"+
			"If not specified it is auto-derived using the start and end date.")
	flagSet.StringVarP(&f.ExecutionName, "execution-name", "n",
		"",
		"Create a named execution for the backfill.\n"+
			"This can prevent launching multiple executions.")
	flagSet.BoolVar(&f.DryRun, "dry-run",
		false,
		"Just generate the workflow. Do not register or execute.")
	flagSet.BoolVar(&f.Parallel, "parallel",
		false,
		"Run the backfilled executions in parallel, bounded by max parallelism.")
	flagSet.BoolVar(&f.Serial, "serial",
		false,
		"Run the backfilled executions one after another. This is the default.")
	flagSet.BoolVar(&f.NoExecute, "no-execute",
		false,
		"Generate the workflow and register it, do not execute.")
	flagSet.StringVar(&f.FromDate, "from-date",
		"",
		"<YYYY-MM-DD[THH:MM:SS]>\n"+
			"Date from which the backfill should begin. Start date is inclusive.\n"+
			"Also accepts RFC3339 timestamps and the keywords 'now' and 'today'.")
	flagSet.StringVar(&f.ToDate, "to-date",
		"",
		"<YYYY-MM-DD[THH:MM:SS]>\n"+
			"Date till which the backfill should run. End date is inclusive.\n"+
			"Also accepts RFC3339 timestamps and the keywords 'now' and 'today'.")
	flagSet.StringVar(&f.BackfillWindow, "backfill-window",
		"",
		"Duration of the backfill window after from-date or before to-date.\n"+
			"Needed when only one of from-date and to-date is given, redundant\n"+
			"when both are. Accepts Go durations plus day units, e.g. '7d', '36h', '2 days'.")

	return flagSet
}

func (f *Backfill) GetBackfill() *models.Backfill {
	return &f.Backfill
}
