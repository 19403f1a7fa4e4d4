package adapter

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	m "suitegate.dev/pkg/suitegate/internal/model"
)

// FormatGNU is the registry name of the GNU test suite parser.
const FormatGNU = "gnu"

var (
	ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

	gnuResultLine   = regexp.MustCompile(`^(PASS|FAIL|SKIP|XFAIL|XPASS|ERROR|UNRESOLVED|UNTESTED|UNSUPPORTED):\s+(\S.*?)\s*$`)
	gnuAutomakeSum  = regexp.MustCompile(`^#\s+(TOTAL|PASS|SKIP|XFAIL|FAIL|XPASS|ERROR):\s+(\d+)\s*$`)
	gnuDejaGnuSum   = regexp.MustCompile(`^#\s+of\s+(expected passes|unexpected failures|unexpected successes|expected failures|unresolved testcases|untested testcases|unsupported tests)\s+(\d+)\s*$`)
	gnuResultStatus = map[string]m.Status{
		"PASS":        m.StatusPassed,
		"XFAIL":       m.StatusPassed,
		"FAIL":        m.StatusFailed,
		"XPASS":       m.StatusFailed,
		"ERROR":       m.StatusErrored,
		"UNRESOLVED":  m.StatusErrored,
		"SKIP":        m.StatusSkipped,
		"UNTESTED":    m.StatusSkipped,
		"UNSUPPORTED": m.StatusSkipped,
	}
	dejaGnuSumKeys = map[string]string{
		"expected passes":      "PASS",
		"expected failures":    "XFAIL",
		"unexpected failures":  "FAIL",
		"unexpected successes": "XPASS",
		"unresolved testcases": "ERROR",
		"untested testcases":   "SKIP",
		"unsupported tests":    "SKIP",
	}
)

// GNUParser reads `make check` output of Automake and DejaGnu based test
// suites: one "STATUS: name" line per test plus a summary block.
type GNUParser struct{}

// NewGNUParser constructs a GNUParser.
func NewGNUParser() *GNUParser {
	return &GNUParser{}
}

// Name implements SnapshotParser.
func (p *GNUParser) Name() string {
	return FormatGNU
}

// Parse implements SnapshotParser. XFAIL counts as passed and XPASS as
// failed. When a summary is present it must agree with the listed tests.
func (p *GNUParser) Parse(r io.Reader) (m.Snapshot, error) {
	collector := newOutcomeCollector()
	// A recursive make check prints one summary block per directory.
	automake := map[string]int{}
	dejaGnu := map[string]int{}
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNo++
		line := ansiEscape.ReplaceAllString(scanner.Text(), "")

		if match := gnuResultLine.FindStringSubmatch(line); match != nil {
			if err := collector.record(m.TestID(match[2]), gnuResultStatus[match[1]]); err != nil {
				return m.Snapshot{}, m.NewDataError("", fmt.Errorf("line %d: %w", lineNo, err))
			}

			continue
		}

		if match := gnuAutomakeSum.FindStringSubmatch(line); match != nil {
			n, _ := strconv.Atoi(match[2])
			automake[match[1]] += n

			continue
		}

		if match := gnuDejaGnuSum.FindStringSubmatch(line); match != nil {
			n, _ := strconv.Atoi(match[2])
			dejaGnu[dejaGnuSumKeys[match[1]]] += n
		}
	}

	if err := scanner.Err(); err != nil {
		return m.Snapshot{}, fmt.Errorf("read gnu log: %w", err)
	}

	snapshot := m.Snapshot{Outcomes: collector.result()}
	if len(automake) == 0 && len(dejaGnu) == 0 {
		return snapshot, nil
	}

	counters := gnuCounters(automake)
	if len(dejaGnu) > 0 {
		counters = addCounters(counters, gnuCounters(dejaGnu))
	}

	if err := checkCounters(FormatGNU, counters, snapshot.Outcomes); err != nil {
		return m.Snapshot{}, err
	}

	snapshot.Counters = &counters

	return snapshot, nil
}

// gnuCounters folds summary keys into counters. TOTAL, when present, is
// taken as reported so a mismatch with its parts is caught later.
func gnuCounters(summary map[string]int) m.Counters {
	counters := m.Counters{
		Passed:  summary["PASS"] + summary["XFAIL"],
		Failed:  summary["FAIL"] + summary["XPASS"] + summary["ERROR"],
		Skipped: summary["SKIP"],
	}

	if total, ok := summary["TOTAL"]; ok {
		counters.Total = total
	} else {
		counters.Total = counters.Passed + counters.Failed + counters.Skipped
	}

	return counters
}

func addCounters(a, b m.Counters) m.Counters {
	return m.Counters{
		Total:   a.Total + b.Total,
		Passed:  a.Passed + b.Passed,
		Failed:  a.Failed + b.Failed,
		Skipped: a.Skipped + b.Skipped,
	}
}
