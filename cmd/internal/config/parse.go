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
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// Date parsing expressions.
	expDateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// Window expressions, e.g. "7d", "7 days", "1 day".
	expDays = regexp.MustCompile(`^(\d+)\s*(?:d|day|days)$`)
)

// Accepted date layouts, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses a user supplied date value. Besides the fixed layouts it
// accepts "now" and "today" (midnight UTC of the current day). Dates without
// an explicit zone are read as UTC.
func ParseDate(value string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return time.Time{}, fmt.Errorf("date is empty")
	case "now":
		return time.Now().UTC(), nil
	case "today":
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}

	value = strings.TrimSpace(value)

	if expDateOnly.MatchString(value) {
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date %q: %w", value, err)
		}

		return parsed, nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf(
		"unsupported date format %q, expected YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, RFC3339, 'now' or 'today'", value)
}

// ParseWindow parses a backfill window. It accepts Go duration syntax plus
// whole-day units, since backfill windows are usually counted in days.
func ParseWindow(value string) (time.Duration, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return 0, fmt.Errorf("window is empty")
	}

	if match := expDays.FindStringSubmatch(value); match != nil {
		days, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, fmt.Errorf("failed to parse window days %q: %w", value, err)
		}

		return time.Duration(days) * 24 * time.Hour, nil
	}

	window, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("unsupported window format %q, expected forms like '7d', '2 days' or '36h'", value)
	}

	return window, nil
}
