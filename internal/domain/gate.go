package domain

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	m "suitegate.dev/pkg/suitegate/internal/model"
	"suitegate.dev/pkg/suitegate/pkg"
)

// Gate combines identifier-level and count-level comparison into a verdict.
type Gate interface {
	// Evaluate compares current against baseline. It returns either a
	// complete verdict or a *model.DataError, never both.
	Evaluate(current m.Snapshot, baseline m.Baseline, policy m.TolerancePolicy) (m.GateVerdict, error)
}

type gate struct {
	classifier Classifier
	judge      CountJudge
}

// NewGate builds a Gate from its two sub-components.
func NewGate(classifier Classifier, judge CountJudge) Gate {
	return &gate{classifier: classifier, judge: judge}
}

func (g *gate) Evaluate(current m.Snapshot, baseline m.Baseline, policy m.TolerancePolicy) (m.GateVerdict, error) {
	if err := ValidatePolicy(policy); err != nil {
		slog.Error("Invalid tolerance policy", "policy", policy, "error", err)
		return m.GateVerdict{}, err
	}

	if err := validateInputs(current, baseline); err != nil {
		slog.Error("Rejected snapshots", "ref", baseline.Ref, "error", err)
		return m.GateVerdict{}, err
	}

	delta, err := g.classifier.ClassifySnapshots(current, baseline.Snapshot)
	if err != nil {
		return m.GateVerdict{}, err
	}

	var count m.CountJudgement
	if baseline.Available() {
		count = g.judge.Judge(current.Counters, baseline.Snapshot.Counters, policy)
	} else {
		count = m.CountJudgement{
			Verdict: m.Acceptable,
			Warning: fmt.Sprintf("no baseline recorded for %s; every current failure counts as regressed", baseline.Ref),
		}
	}

	verdict := m.NewGateVerdict(baseline.Ref, current.RunID, delta, count, policy, baseline.Available(), buildMessages(delta, count, policy))

	slog.Info("Gate evaluated",
		"ref", baseline.Ref, "green", verdict.Green(),
		"regressed", len(delta.Regressed), "fixed", len(delta.Fixed), "still_failing", len(delta.StillFailing),
		"count_verdict", count.Verdict)

	return verdict, nil
}

// validateInputs checks both snapshots and their agreement with the ref.
func validateInputs(current m.Snapshot, baseline m.Baseline) error {
	problems := snapshotProblems(current)

	if current.Suite != "" && baseline.Ref.Suite != "" && current.Suite != baseline.Ref.Suite {
		problems = multierror.Append(problems,
			fmt.Errorf("current snapshot is for suite %q but baseline ref is %s", current.Suite, baseline.Ref))
	}

	if baseline.Available() {
		for _, problem := range snapshotProblems(*baseline.Snapshot).WrappedErrors() {
			problems = multierror.Append(problems, fmt.Errorf("baseline: %w", problem))
		}

		if baseline.Snapshot.Suite != "" && baseline.Snapshot.Suite != baseline.Ref.Suite {
			problems = multierror.Append(problems,
				fmt.Errorf("baseline snapshot is for suite %q but was stored under %s", baseline.Snapshot.Suite, baseline.Ref))
		}
	}

	if err := problems.ErrorOrNil(); err != nil {
		return m.NewDataError(current.Suite, err)
	}

	return nil
}

// buildMessages renders findings in a fixed order: regressed ids, fixed ids,
// warnings, then one count summary line.
func buildMessages(delta m.ClassifiedDelta, count m.CountJudgement, policy m.TolerancePolicy) []string {
	messages := make([]string, 0, len(delta.Regressed)+len(delta.Fixed)+2)

	for _, id := range delta.Regressed {
		messages = append(messages, fmt.Sprintf("regressed: %s", id))
	}

	vanished := pkg.NewSet(delta.Vanished...)

	for _, id := range delta.Fixed {
		if vanished.Contains(id) {
			messages = append(messages, fmt.Sprintf("fixed: %s (not present in current run)", id))
			continue
		}

		messages = append(messages, fmt.Sprintf("fixed: %s", id))
	}

	if count.Warning != "" {
		messages = append(messages, "warning: "+count.Warning)
	}

	return append(messages, countSummary(count, policy))
}

func countSummary(count m.CountJudgement, policy m.TolerancePolicy) string {
	if !count.Evaluated {
		return fmt.Sprintf("counts: %s (not evaluated)", count.Verdict)
	}

	return fmt.Sprintf("counts: %s (failed %d -> %d, net new failures %d, tolerated %d, allow equal %t)",
		count.Verdict, count.BaselineFailed, count.CurrentFailed, count.NetNewFailures,
		policy.MaxNewFailures, policy.AllowEqual)
}
