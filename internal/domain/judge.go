package domain

import (
	"fmt"
	"log/slog"

	m "suitegate.dev/pkg/suitegate/internal/model"
)

// CountJudge decides whether aggregate counters regressed.
type CountJudge interface {
	Judge(current, baseline *m.Counters, policy m.TolerancePolicy) m.CountJudgement
}

type countRegressionJudge struct{}

// NewCountJudge returns the tolerance-based count judge.
func NewCountJudge() CountJudge {
	return &countRegressionJudge{}
}

// Judge compares failure counts. Missing counters on either side degrade to
// an unevaluated Acceptable judgement carrying a warning.
func (j *countRegressionJudge) Judge(current, baseline *m.Counters, policy m.TolerancePolicy) m.CountJudgement {
	if current == nil || baseline == nil {
		warning := fmt.Sprintf("%v in %s snapshot; comparing identifiers only", m.ErrMissingCounters, missingSide(current, baseline))
		slog.Warn("Count judgement skipped", "reason", warning)

		return m.CountJudgement{Verdict: m.Acceptable, Warning: warning}
	}

	judgement := m.CountJudgement{
		Verdict:        m.Acceptable,
		NetNewFailures: max(0, current.Failed-baseline.Failed),
		CurrentFailed:  current.Failed,
		BaselineFailed: baseline.Failed,
		Evaluated:      true,
	}

	switch {
	case current.Failed < baseline.Failed:
		// fewer failures always pass
	case judgement.NetNewFailures > policy.MaxNewFailures:
		judgement.Verdict = m.Regressed
	case current.Failed == baseline.Failed && !policy.AllowEqual:
		judgement.Verdict = m.Regressed
	}

	slog.Debug("Judged counters",
		"current_failed", current.Failed, "baseline_failed", baseline.Failed,
		"net_new_failures", judgement.NetNewFailures, "verdict", judgement.Verdict)

	return judgement
}

func missingSide(current, baseline *m.Counters) string {
	switch {
	case current == nil && baseline == nil:
		return "current and baseline"
	case current == nil:
		return "current"
	default:
		return "baseline"
	}
}
