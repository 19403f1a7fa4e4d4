package model

import "time"

// DefaultBranch is the reference branch used when none is configured.
const DefaultBranch = "main"

// BaselineRef identifies the most recent snapshot recorded for a reference
// branch and suite.
type BaselineRef struct {
	Branch string `json:"branch" yaml:"branch" validate:"required"`
	Suite  string `json:"suite" yaml:"suite" validate:"required"`
}

// Key renders the ref as "branch/suite".
func (r BaselineRef) Key() string {
	return r.Branch + "/" + r.Suite
}

func (r BaselineRef) String() string {
	return r.Key()
}

// Baseline is a resolved BaselineRef. Snapshot is nil when no baseline has
// been recorded for the ref yet.
type Baseline struct {
	Ref      BaselineRef
	Snapshot *Snapshot
}

// Available reports whether a baseline snapshot was found.
func (b Baseline) Available() bool {
	return b.Snapshot != nil
}

// NoBaseline returns the explicit "no baseline available" input state.
func NoBaseline(ref BaselineRef) Baseline {
	return Baseline{Ref: ref}
}

// BaselineRecord summarizes one stored baseline in history listings.
type BaselineRecord struct {
	Ref        BaselineRef `json:"ref"`
	RunID      string      `json:"run_id"`
	RecordedAt time.Time   `json:"recorded_at"`
	Counters   *Counters   `json:"counters,omitempty"`
	Failing    int         `json:"failing"`
}

// RecordFor builds the history record of snapshot stored under ref.
func RecordFor(ref BaselineRef, snapshot Snapshot) BaselineRecord {
	return BaselineRecord{
		Ref:        ref,
		RunID:      snapshot.RunID,
		RecordedAt: snapshot.RecordedAt,
		Counters:   snapshot.Counters,
		Failing:    len(snapshot.Failing()),
	}
}
