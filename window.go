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

// Package backfill contains the core types for registering workflow backfills:
// the window resolver that turns partial date inputs into a concrete interval,
// and the Remote collaborator contract used to register and launch them.
package backfill

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrConflictingArguments is returned when mutually exclusive inputs are supplied together.
	ErrConflictingArguments = errors.New("conflicting arguments")
	// ErrInsufficientArguments is returned when the inputs are not enough to determine a window.
	ErrInsufficientArguments = errors.New("insufficient arguments")
)

// Window is the concrete date interval a backfill covers.
// Both boundaries are inclusive.
type Window struct {
	From time.Time
	To   time.Time
}

// ResolveWindow resolves a partially specified (from, to, window) triple into a
// concrete interval. Exactly two of the three inputs must be set: both dates fix
// the interval directly, a single date is extended forward (from) or backward (to)
// by window. Nil stands for an absent input.
//
// From <= To is not checked here; negative windows are the caller's problem.
func ResolveWindow(from, to *time.Time, window *time.Duration) (Window, error) {
	switch {
	case from != nil && to != nil && window != nil:
		return Window{}, fmt.Errorf(
			"%w: cannot use from-date, to-date and backfill-window together, use any two",
			ErrConflictingArguments)
	case from == nil && to == nil:
		return Window{}, fmt.Errorf(
			"%w: one of the pairs (from-date, to-date) | (from-date, backfill-window) | "+
				"(to-date, backfill-window) is required",
			ErrInsufficientArguments)
	case from != nil && to != nil:
		return Window{From: *from, To: *to}, nil
	case window == nil:
		return Window{}, fmt.Errorf(
			"%w: backfill-window is required when only one of from-date and to-date is given",
			ErrInsufficientArguments)
	case from != nil:
		return Window{From: *from, To: from.Add(*window)}, nil
	default:
		return Window{From: to.Add(-*window), To: *to}, nil
	}
}
