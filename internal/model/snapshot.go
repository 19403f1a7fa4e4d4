// Package model defines the data structures shared by the regression gate.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Path represents a file system path.
type Path string

// TestID names one test case. It is opaque: only equality and lexicographic
// order are meaningful.
type TestID string

// Status is the outcome of a single test case.
type Status string

const (
	// StatusPassed indicates the test passed (or failed as expected).
	StatusPassed Status = "passed"
	// StatusFailed indicates the test failed.
	StatusFailed Status = "failed"
	// StatusSkipped indicates the test did not run.
	StatusSkipped Status = "skipped"
	// StatusErrored indicates the harness could not complete the test.
	StatusErrored Status = "errored"
)

// Statuses lists every known status in display order.
var Statuses = []Status{StatusPassed, StatusFailed, StatusSkipped, StatusErrored}

// ParseStatus converts a string into a Status.
func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if !status.Valid() {
		return "", fmt.Errorf("unknown test status %q", value)
	}

	return status, nil
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPassed, StatusFailed, StatusSkipped, StatusErrored:
		return true
	}

	return false
}

// Failing reports whether s counts as a failure for regression purposes.
func (s Status) Failing() bool {
	return s == StatusFailed || s == StatusErrored
}

func (s Status) String() string {
	return string(s)
}

// Outcome is the result of one test case in one run.
type Outcome struct {
	ID     TestID `json:"id" yaml:"id" validate:"required"`
	Status Status `json:"status" yaml:"status" validate:"required,oneof=passed failed skipped errored"`
}

// Counters holds aggregate counts reported for a run.
type Counters struct {
	Total   int `json:"total" yaml:"total" validate:"gte=0"`
	Passed  int `json:"passed" yaml:"passed" validate:"gte=0"`
	Failed  int `json:"failed" yaml:"failed" validate:"gte=0"`
	Skipped int `json:"skipped" yaml:"skipped" validate:"gte=0"`
}

// CountersFromOutcomes derives counters from individual outcomes. Errored
// outcomes are counted as failed.
func CountersFromOutcomes(outcomes []Outcome) Counters {
	counters := Counters{Total: len(outcomes)}

	for _, outcome := range outcomes {
		switch outcome.Status {
		case StatusPassed:
			counters.Passed++
		case StatusFailed, StatusErrored:
			counters.Failed++
		case StatusSkipped:
			counters.Skipped++
		}
	}

	return counters
}

// Snapshot is the normalized outcome of one execution of a suite.
type Snapshot struct {
	Suite      string    `json:"suite" yaml:"suite" validate:"required"`
	RunID      string    `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	RecordedAt time.Time `json:"recorded_at,omitempty" yaml:"recorded_at,omitempty"`
	Outcomes   []Outcome `json:"outcomes" yaml:"outcomes" validate:"dive"`
	Counters   *Counters `json:"counters,omitempty" yaml:"counters,omitempty"`
}

// Failing returns the identifiers of failing outcomes in input order.
func (s Snapshot) Failing() []TestID {
	failing := make([]TestID, 0)

	for _, outcome := range s.Outcomes {
		if outcome.Status.Failing() {
			failing = append(failing, outcome.ID)
		}
	}

	return failing
}

// IDs returns every identifier seen in the run.
func (s Snapshot) IDs() []TestID {
	ids := make([]TestID, 0, len(s.Outcomes))
	for _, outcome := range s.Outcomes {
		ids = append(ids, outcome.ID)
	}

	return ids
}
