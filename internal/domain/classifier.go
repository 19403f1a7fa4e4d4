package domain

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	m "suitegate.dev/pkg/suitegate/internal/model"
	"suitegate.dev/pkg/suitegate/pkg"
)

// Classifier compares the failing identifiers of two runs.
type Classifier interface {
	// Classify buckets failing identifiers into regressed, fixed and still
	// failing. Both inputs must be free of duplicates.
	Classify(current, baseline []m.TestID) (m.ClassifiedDelta, error)
	// ClassifySnapshots classifies the failing sets of two snapshots. A nil
	// baseline means none was recorded, so every current failure regresses.
	ClassifySnapshots(current m.Snapshot, baseline *m.Snapshot) (m.ClassifiedDelta, error)
}

type setDiffClassifier struct{}

// NewClassifier returns the set-difference classifier.
func NewClassifier() Classifier {
	return &setDiffClassifier{}
}

func (c *setDiffClassifier) Classify(current, baseline []m.TestID) (m.ClassifiedDelta, error) {
	var problems *multierror.Error

	for _, dup := range pkg.Duplicates(current) {
		problems = multierror.Append(problems, fmt.Errorf("duplicate test id %q in current failing set", dup))
	}

	for _, dup := range pkg.Duplicates(baseline) {
		problems = multierror.Append(problems, fmt.Errorf("duplicate test id %q in baseline failing set", dup))
	}

	if err := problems.ErrorOrNil(); err != nil {
		slog.Error("Rejected failing sets with duplicates", "error", err)
		return m.ClassifiedDelta{}, m.NewDataError("", err)
	}

	currentSet := pkg.NewSet(current...)
	baselineSet := pkg.NewSet(baseline...)

	delta := m.ClassifiedDelta{
		Regressed:    currentSet.Difference(baselineSet).Sorted(),
		Fixed:        baselineSet.Difference(currentSet).Sorted(),
		StillFailing: currentSet.Intersect(baselineSet).Sorted(),
	}

	slog.Debug("Classified failing sets",
		"current", len(current), "baseline", len(baseline),
		"regressed", len(delta.Regressed), "fixed", len(delta.Fixed), "still_failing", len(delta.StillFailing))

	return delta, nil
}

func (c *setDiffClassifier) ClassifySnapshots(current m.Snapshot, baseline *m.Snapshot) (m.ClassifiedDelta, error) {
	var baselineFailing []m.TestID
	if baseline != nil {
		baselineFailing = baseline.Failing()
	}

	delta, err := c.Classify(current.Failing(), baselineFailing)
	if err != nil {
		return m.ClassifiedDelta{}, err
	}

	seen := pkg.NewSet(current.IDs()...)
	delta.Vanished = pkg.NewSet(delta.Fixed...).Difference(seen).Sorted()

	return delta, nil
}
