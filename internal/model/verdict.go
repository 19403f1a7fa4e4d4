package model

import (
	"encoding/json"
	"slices"
)

// ClassifiedDelta is the identifier-level comparison of two failing sets.
// Regressed, Fixed and StillFailing are disjoint and sorted. Vanished is a
// subset of Fixed holding baseline failures absent from the current run.
type ClassifiedDelta struct {
	Regressed    []TestID `json:"regressed"`
	Fixed        []TestID `json:"fixed"`
	StillFailing []TestID `json:"still_failing"`
	Vanished     []TestID `json:"vanished,omitempty"`
}

// Empty reports whether the delta has no findings at all.
func (d ClassifiedDelta) Empty() bool {
	return len(d.Regressed) == 0 && len(d.Fixed) == 0 && len(d.StillFailing) == 0
}

func (d ClassifiedDelta) clone() ClassifiedDelta {
	return ClassifiedDelta{
		Regressed:    slices.Clone(d.Regressed),
		Fixed:        slices.Clone(d.Fixed),
		StillFailing: slices.Clone(d.StillFailing),
		Vanished:     slices.Clone(d.Vanished),
	}
}

// CountVerdict is the numeric-level decision.
type CountVerdict string

const (
	// Acceptable means the aggregate counts did not regress.
	Acceptable CountVerdict = "acceptable"
	// Regressed means net new failures exceeded the tolerance.
	Regressed CountVerdict = "regressed"
)

// TolerancePolicy configures the count judge.
type TolerancePolicy struct {
	// AllowEqual lets an unchanged failure count pass.
	AllowEqual bool `json:"allow_equal" yaml:"allow_equal" mapstructure:"allow_equal"`
	// MaxNewFailures is how many net new failures are tolerated.
	MaxNewFailures int `json:"max_new_failures" yaml:"max_new_failures" mapstructure:"max_new_failures" validate:"gte=0"`
}

// DefaultPolicy accepts unchanged counts and tolerates no new failures.
func DefaultPolicy() TolerancePolicy {
	return TolerancePolicy{AllowEqual: true, MaxNewFailures: 0}
}

// CountJudgement is the output of the count judge.
type CountJudgement struct {
	Verdict        CountVerdict `json:"verdict"`
	NetNewFailures int          `json:"net_new_failures"`
	CurrentFailed  int          `json:"current_failed"`
	BaselineFailed int          `json:"baseline_failed"`
	// Evaluated is false when counters were missing and no numeric
	// comparison took place.
	Evaluated bool   `json:"evaluated"`
	Warning   string `json:"warning,omitempty"`
}

// GateVerdict is the sole output of the gate. It cannot be modified after
// construction; accessors return copies.
type GateVerdict struct {
	suite             string
	runID             string
	ref               BaselineRef
	delta             ClassifiedDelta
	count             CountJudgement
	policy            TolerancePolicy
	baselineAvailable bool
	messages          []string
}

// NewGateVerdict assembles a verdict, copying every slice it is given.
func NewGateVerdict(
	ref BaselineRef,
	runID string,
	delta ClassifiedDelta,
	count CountJudgement,
	policy TolerancePolicy,
	baselineAvailable bool,
	messages []string,
) GateVerdict {
	return GateVerdict{
		suite:             ref.Suite,
		runID:             runID,
		ref:               ref,
		delta:             delta.clone(),
		count:             count,
		policy:            policy,
		baselineAvailable: baselineAvailable,
		messages:          slices.Clone(messages),
	}
}

// Suite returns the suite the verdict was computed for.
func (v GateVerdict) Suite() string { return v.suite }

// RunID returns the run id of the current snapshot.
func (v GateVerdict) RunID() string { return v.runID }

// Ref returns the baseline ref compared against.
func (v GateVerdict) Ref() BaselineRef { return v.ref }

// Delta returns a copy of the identifier-level delta.
func (v GateVerdict) Delta() ClassifiedDelta { return v.delta.clone() }

// Count returns the count judgement.
func (v GateVerdict) Count() CountJudgement { return v.count }

// Policy returns the tolerance policy the verdict was judged under.
func (v GateVerdict) Policy() TolerancePolicy { return v.policy }

// BaselineAvailable reports whether a baseline snapshot took part.
func (v GateVerdict) BaselineAvailable() bool { return v.baselineAvailable }

// Messages returns a copy of the ordered findings.
func (v GateVerdict) Messages() []string { return slices.Clone(v.messages) }

// Green reports whether the gate passes: counts are acceptable and nothing
// regressed.
func (v GateVerdict) Green() bool {
	return v.count.Verdict == Acceptable && len(v.delta.Regressed) == 0
}

// VerdictReport is the persisted form of a GateVerdict.
type VerdictReport struct {
	Ref               BaselineRef     `json:"ref"`
	RunID             string          `json:"run_id,omitempty"`
	Green             bool            `json:"green"`
	BaselineAvailable bool            `json:"baseline_available"`
	Delta             ClassifiedDelta `json:"delta"`
	Count             CountJudgement  `json:"count"`
	Policy            TolerancePolicy `json:"policy"`
	Messages          []string        `json:"messages"`
}

// Report converts the verdict to its persisted form.
func (v GateVerdict) Report() VerdictReport {
	return VerdictReport{
		Ref:               v.ref,
		RunID:             v.runID,
		Green:             v.Green(),
		BaselineAvailable: v.baselineAvailable,
		Delta:             v.Delta(),
		Count:             v.count,
		Policy:            v.policy,
		Messages:          v.Messages(),
	}
}

// MarshalJSON implements json.Marshaler.
func (v GateVerdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Report())
}
