package adapter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	m "suitegate.dev/pkg/suitegate/internal/model"
	"suitegate.dev/pkg/suitegate/pkg"
)

// FormatGoTest is the registry name of the `go test -json` parser.
const FormatGoTest = "gotest"

// testEvent is one line of `go test -json` output. Per test the actions
// arrive as run, output..., optionally pause and cont, then exactly one of
// pass, fail or skip.
type testEvent struct {
	Time    time.Time `json:"Time"`
	Action  string    `json:"Action"`
	Package string    `json:"Package"`
	Test    string    `json:"Test"`
	Elapsed float64   `json:"Elapsed"`
	Output  string    `json:"Output"`
}

// GoTestParser reads a `go test -json` event stream. Test ids are
// "<package>/<test>".
type GoTestParser struct{}

// NewGoTestParser constructs a GoTestParser.
func NewGoTestParser() *GoTestParser {
	return &GoTestParser{}
}

// Name implements SnapshotParser.
func (p *GoTestParser) Name() string {
	return FormatGoTest
}

// Parse implements SnapshotParser. A test run more than once keeps its last
// result, a test that started but never finished is errored, and a package
// that failed without running any test (a build failure) is recorded as an
// errored outcome under the package name.
func (p *GoTestParser) Parse(r io.Reader) (m.Snapshot, error) {
	collector := newOutcomeCollector()
	running := map[m.TestID]bool{}
	packageTests := map[string]int{}
	seenPackages := pkg.NewSet[string]()
	var packages []string
	packageFailed := map[string]bool{}
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		lineNo++

		line := bytes.TrimSpace(scanner.Bytes())
		// go test interleaves plain compiler output with the event stream.
		if len(line) == 0 || line[0] != '{' {
			continue
		}

		var event testEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return m.Snapshot{}, m.NewDataError("", fmt.Errorf("line %d: malformed test event: %w", lineNo, err))
		}

		if seenPackages.Add(event.Package) {
			packages = append(packages, event.Package)
		}

		if event.Test == "" {
			if event.Action == "fail" {
				packageFailed[event.Package] = true
			}

			continue
		}

		id := m.TestID(event.Package + "/" + event.Test)

		switch event.Action {
		case "run":
			running[id] = true
			packageTests[event.Package]++
		case "pass", "fail", "skip":
			delete(running, id)
			collector.set(id, goTestStatus(event.Action))
		}
	}

	if err := scanner.Err(); err != nil {
		return m.Snapshot{}, fmt.Errorf("read go test events: %w", err)
	}

	for _, name := range packages {
		if packageFailed[name] && packageTests[name] == 0 {
			collector.set(m.TestID(name), m.StatusErrored)
		}
	}

	unfinished := make([]m.TestID, 0, len(running))
	for id := range running {
		unfinished = append(unfinished, id)
	}

	sort.Slice(unfinished, func(i, j int) bool { return unfinished[i] < unfinished[j] })

	for _, id := range unfinished {
		collector.set(id, m.StatusErrored)
	}

	outcomes := collector.result()
	counters := m.CountersFromOutcomes(outcomes)

	return m.Snapshot{Outcomes: outcomes, Counters: &counters}, nil
}

func goTestStatus(action string) m.Status {
	switch action {
	case "pass":
		return m.StatusPassed
	case "skip":
		return m.StatusSkipped
	default:
		return m.StatusFailed
	}
}
