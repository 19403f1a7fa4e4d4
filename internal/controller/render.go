package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

func newTable(buf *bytes.Buffer, header []string, alignment []int) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment(alignment)

	return table
}

func renderVerdict(st styles, verdict m.GateVerdict, withDiff bool) (string, error) {
	var b strings.Builder

	ref := verdict.Ref()
	delta := verdict.Delta()
	count := verdict.Count()

	fmt.Fprintf(&b, "%s\n", st.title.Render(fmt.Sprintf("Gate verdict for %s against %s", verdict.Suite(), ref.Key())))

	if verdict.RunID() != "" {
		fmt.Fprintf(&b, "%s\n", st.faint.Render("run "+verdict.RunID()))
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Finding", "Count"}, []int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.Append([]string{"regressed", strconv.Itoa(len(delta.Regressed))})
	table.Append([]string{"fixed", strconv.Itoa(len(delta.Fixed))})
	table.Append([]string{"still failing", strconv.Itoa(len(delta.StillFailing))})

	if count.Evaluated {
		table.Append([]string{"failed (baseline -> current)", fmt.Sprintf("%d -> %d", count.BaselineFailed, count.CurrentFailed)})
		table.Append([]string{"net new failures", strconv.Itoa(count.NetNewFailures)})
	}

	table.Render()

	fmt.Fprintf(&b, "\n%s\n", tableBuffer.String())

	for _, message := range verdict.Messages() {
		switch {
		case strings.HasPrefix(message, "regressed: "):
			b.WriteString(st.red.Render(message))
		case strings.HasPrefix(message, "warning: "):
			b.WriteString(st.warning.Render(message))
		default:
			b.WriteString(message)
		}

		b.WriteString("\n")
	}

	if withDiff {
		diff, err := failingDiff(verdict)
		if err != nil {
			return "", err
		}

		if diff != "" {
			fmt.Fprintf(&b, "\n%s", diff)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", verdictLine(st, verdict))

	return b.String(), nil
}

func verdictLine(st styles, verdict m.GateVerdict) string {
	if verdict.Green() {
		return st.green.Render(fmt.Sprintf("GREEN: no regressions in %s", verdict.Suite()))
	}

	reasons := make([]string, 0, 2)
	if n := len(verdict.Delta().Regressed); n > 0 {
		reasons = append(reasons, fmt.Sprintf("%d regressed test(s)", n))
	}

	if verdict.Count().Verdict == m.Regressed {
		reasons = append(reasons, fmt.Sprintf("%d net new failure(s)", verdict.Count().NetNewFailures))
	}

	return st.red.Render(fmt.Sprintf("RED: %s in %s", strings.Join(reasons, ", "), verdict.Suite()))
}

func renderSnapshot(st styles, snapshot m.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", st.title.Render("Snapshot of "+displaySuite(snapshot.Suite)))
	fmt.Fprintf(&b, "%s\n\n", st.faint.Render(fmt.Sprintf("run %s, recorded %s", snapshot.RunID, formatTime(snapshot.RecordedAt))))
	b.WriteString(renderStatusTable(snapshot))

	if snapshot.Counters != nil {
		c := snapshot.Counters
		fmt.Fprintf(&b, "reported counters: total %d, passed %d, failed %d, skipped %d\n", c.Total, c.Passed, c.Failed, c.Skipped)
	} else {
		b.WriteString(st.warning.Render("no counters reported"))
		b.WriteString("\n")
	}

	failing := snapshot.Failing()
	if len(failing) > 0 {
		b.WriteString("\nfailing tests:\n")

		for _, id := range failing {
			fmt.Fprintf(&b, "  %s\n", id)
		}
	}

	return b.String()
}

func renderStatusTable(snapshot m.Snapshot) string {
	counts := make(map[m.Status]int, len(m.Statuses))
	for _, outcome := range snapshot.Outcomes {
		counts[outcome.Status]++
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Status", "Tests"}, []int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, status := range m.Statuses {
		table.Append([]string{status.String(), strconv.Itoa(counts[status])})
	}

	table.SetFooter([]string{"Total", strconv.Itoa(len(snapshot.Outcomes))})
	table.Render()

	return tableBuffer.String()
}

func renderBaseline(st styles, baseline m.Baseline) string {
	if !baseline.Available() {
		return st.warning.Render("no baseline recorded for "+baseline.Ref.Key()) + "\n"
	}

	return fmt.Sprintf("%s\n%s", st.title.Render("Baseline "+baseline.Ref.Key()), renderSnapshot(st, *baseline.Snapshot))
}

func renderHistory(st styles, ref m.BaselineRef, records []m.BaselineRecord) string {
	if len(records) == 0 {
		return st.warning.Render("no baselines recorded for "+ref.Key()) + "\n"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", st.title.Render("Baseline history for "+ref.Key()))

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Run", "Recorded", "Failing", "Failed counter"},
		[]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, record := range records {
		failed := "-"
		if record.Counters != nil {
			failed = strconv.Itoa(record.Counters.Failed)
		}

		table.Append([]string{record.RunID, formatTime(record.RecordedAt), strconv.Itoa(record.Failing), failed})
	}

	table.Render()
	b.WriteString(tableBuffer.String())

	return b.String()
}

func renderPromotion(st styles, ref m.BaselineRef, snapshot m.Snapshot) string {
	return st.green.Render(fmt.Sprintf("promoted run %s to baseline %s (%d failing)", snapshot.RunID, ref.Key(), len(snapshot.Failing()))) + "\n"
}

func displaySuite(suite string) string {
	if suite == "" {
		return "(unnamed suite)"
	}

	return suite
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	return t.UTC().Format(time.RFC3339)
}
