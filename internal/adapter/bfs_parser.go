package adapter

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	m "suitegate.dev/pkg/suitegate/internal/model"
)

// FormatBFS is the registry name of the bfs test suite parser.
const FormatBFS = "bfs"

var (
	bfsResultLine  = regexp.MustCompile(`^\[\s*(PASS|FAIL|SKIP)\s*\]\s+(\S.*?)\s*$`)
	bfsSummaryLine = regexp.MustCompile(`^tests (passed|skipped|failed):\s+(\d+)\s*$`)
	bfsStatus      = map[string]m.Status{
		"PASS": m.StatusPassed,
		"FAIL": m.StatusFailed,
		"SKIP": m.StatusSkipped,
	}
)

// BFSParser reads the console output of bfs' tests.sh.
type BFSParser struct{}

// NewBFSParser constructs a BFSParser.
func NewBFSParser() *BFSParser {
	return &BFSParser{}
}

// Name implements SnapshotParser.
func (p *BFSParser) Name() string {
	return FormatBFS
}

// Parse implements SnapshotParser. The progress display rewrites lines with
// carriage returns, so every \r separated segment is considered.
func (p *BFSParser) Parse(r io.Reader) (m.Snapshot, error) {
	collector := newOutcomeCollector()
	summary := map[string]int{}
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNo++

		for _, segment := range strings.Split(ansiEscape.ReplaceAllString(scanner.Text(), ""), "\r") {
			segment = strings.TrimSpace(segment)

			if match := bfsResultLine.FindStringSubmatch(segment); match != nil {
				if err := collector.record(m.TestID(match[2]), bfsStatus[match[1]]); err != nil {
					return m.Snapshot{}, m.NewDataError("", fmt.Errorf("line %d: %w", lineNo, err))
				}

				continue
			}

			if match := bfsSummaryLine.FindStringSubmatch(segment); match != nil {
				n, _ := strconv.Atoi(match[2])
				summary[match[1]] = n
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return m.Snapshot{}, fmt.Errorf("read bfs log: %w", err)
	}

	snapshot := m.Snapshot{Outcomes: collector.result()}
	if len(summary) == 0 {
		return snapshot, nil
	}

	counters := m.Counters{
		Passed:  summary["passed"],
		Failed:  summary["failed"],
		Skipped: summary["skipped"],
	}
	counters.Total = counters.Passed + counters.Failed + counters.Skipped

	// tests.sh names only failures unless run verbosely.
	if err := checkCounters(FormatBFS, counters, snapshot.Outcomes); err != nil {
		return m.Snapshot{}, err
	}

	snapshot.Counters = &counters

	return snapshot, nil
}
