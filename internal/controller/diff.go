package controller

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	m "suitegate.dev/pkg/suitegate/internal/model"
	"suitegate.dev/pkg/suitegate/pkg"
)

// failingDiff renders the baseline and current failing lists as a unified
// diff: removed lines are fixed tests, added lines are regressions.
func failingDiff(verdict m.GateVerdict) (string, error) {
	delta := verdict.Delta()

	still := pkg.NewSet(delta.StillFailing...)
	baseline := diffLines(pkg.NewSet(delta.Fixed...).Union(still))
	current := diffLines(pkg.NewSet(delta.Regressed...).Union(still))

	if len(baseline) == 0 && len(current) == 0 {
		return "", nil
	}

	diff := difflib.UnifiedDiff{
		A:        baseline,
		B:        current,
		FromFile: "baseline " + verdict.Ref().Key(),
		ToFile:   "current " + verdict.RunID(),
		Context:  1,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("render failing diff: %w", err)
	}

	return text, nil
}

func diffLines(ids pkg.Set[m.TestID]) []string {
	lines := make([]string, 0, ids.Len())
	for _, id := range ids.Sorted() {
		lines = append(lines, string(id)+"\n")
	}

	return lines
}
