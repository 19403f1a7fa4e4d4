package adapter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	m "suitegate.dev/pkg/suitegate/internal/model"
)

// SnapshotParser turns one suite's native output into a Snapshot. Parsers
// never run suites; they only read what a run left behind.
type SnapshotParser interface {
	// Name is the format name the parser is registered under.
	Name() string
	// Parse reads a complete log. The returned snapshot has no suite name;
	// callers stamp it.
	Parse(r io.Reader) (m.Snapshot, error)
}

// ParserRegistry looks parsers up by format name.
type ParserRegistry struct {
	parsers map[string]SnapshotParser
}

// NewParserRegistry registers the given parsers.
func NewParserRegistry(parsers ...SnapshotParser) *ParserRegistry {
	registry := &ParserRegistry{parsers: make(map[string]SnapshotParser, len(parsers))}
	for _, parser := range parsers {
		registry.parsers[parser.Name()] = parser
	}

	return registry
}

// DefaultParserRegistry knows every built-in format.
func DefaultParserRegistry() *ParserRegistry {
	return NewParserRegistry(
		NewGNUParser(),
		NewBFSParser(),
		NewGoTestParser(),
		NewSnapshotCodec(FormatJSON),
		NewSnapshotCodec(FormatYAML),
	)
}

// Lookup returns the parser for format.
func (r *ParserRegistry) Lookup(format string) (SnapshotParser, error) {
	parser, ok := r.parsers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("unknown snapshot format %q (known: %s)", format, strings.Join(r.Formats(), ", "))
	}

	return parser, nil
}

// Formats lists the registered format names, sorted.
func (r *ParserRegistry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// outcomeCollector accumulates outcomes in first-seen order.
type outcomeCollector struct {
	index    map[m.TestID]int
	outcomes []m.Outcome
}

func newOutcomeCollector() *outcomeCollector {
	return &outcomeCollector{index: make(map[m.TestID]int)}
}

// record adds an outcome. Reporting a known id again is fine only with the
// same status.
func (c *outcomeCollector) record(id m.TestID, status m.Status) error {
	if i, ok := c.index[id]; ok && c.outcomes[i].Status != status {
		return fmt.Errorf("test %q reported as both %s and %s", id, c.outcomes[i].Status, status)
	}

	c.set(id, status)

	return nil
}

// set adds an outcome or replaces the status of a known id.
func (c *outcomeCollector) set(id m.TestID, status m.Status) {
	if i, ok := c.index[id]; ok {
		c.outcomes[i].Status = status
		return
	}

	c.index[id] = len(c.outcomes)
	c.outcomes = append(c.outcomes, m.Outcome{ID: id, Status: status})
}

func (c *outcomeCollector) result() []m.Outcome {
	if c.outcomes == nil {
		return []m.Outcome{}
	}

	return c.outcomes
}

// checkCounters reports a disagreement between a log's summary and the
// outcomes listed in the same log. Logs may list only part of the run
// (test-suite.log and quiet tests.sh output name just the failures), so
// no status may be listed more often than the summary counts it.
func checkCounters(format string, reported m.Counters, outcomes []m.Outcome) error {
	if sum := reported.Passed + reported.Failed + reported.Skipped; sum != reported.Total {
		return m.NewDataError("", fmt.Errorf("%s summary total %d does not match its parts (%d)", format, reported.Total, sum))
	}

	derived := m.CountersFromOutcomes(outcomes)
	if derived.Passed <= reported.Passed && derived.Failed <= reported.Failed && derived.Skipped <= reported.Skipped {
		return nil
	}

	return m.NewDataError("", fmt.Errorf("%s summary reports %+v but the log lists %+v", format, reported, derived))
}
