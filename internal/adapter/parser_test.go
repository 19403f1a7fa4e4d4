package adapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

const gnuMakeCheck = `make  check-TESTS
PASS: tests/find/depth-d.sh
FAIL: tests/find/name-slash.sh
XFAIL: tests/find/used.sh
` + "\x1b[0;31mXPASS\x1b[m" + `: tests/find/refuse-noop.sh
SKIP: tests/find/exec-plus.sh
ERROR: tests/find/printf_inode.sh
============================================================================
Testsuite summary for GNU findutils 4.10.0
============================================================================
# TOTAL: 6
# PASS:  1
# SKIP:  1
# XFAIL: 1
# FAIL:  1
# XPASS: 1
# ERROR: 1
============================================================================
`

func TestGNUParser_MakeCheck(t *testing.T) {
	snapshot, err := NewGNUParser().Parse(strings.NewReader(gnuMakeCheck))
	require.NoError(t, err)

	assert.Equal(t, []m.Outcome{
		{ID: "tests/find/depth-d.sh", Status: m.StatusPassed},
		{ID: "tests/find/name-slash.sh", Status: m.StatusFailed},
		{ID: "tests/find/used.sh", Status: m.StatusPassed},
		{ID: "tests/find/refuse-noop.sh", Status: m.StatusFailed},
		{ID: "tests/find/exec-plus.sh", Status: m.StatusSkipped},
		{ID: "tests/find/printf_inode.sh", Status: m.StatusErrored},
	}, snapshot.Outcomes)

	require.NotNil(t, snapshot.Counters)
	assert.Equal(t, m.Counters{Total: 6, Passed: 2, Failed: 3, Skipped: 1}, *snapshot.Counters)
	assert.Empty(t, snapshot.Suite)
}

func TestGNUParser_TestSuiteLogListsOnlyFailures(t *testing.T) {
	log := `# TOTAL: 3
# PASS:  2
# FAIL:  1

FAIL: tests/find/name-slash.sh
==============================

find: warning: ...
FAIL tests/find/name-slash.sh (exit status: 1)
`

	snapshot, err := NewGNUParser().Parse(strings.NewReader(log))
	require.NoError(t, err)

	assert.Equal(t, []m.TestID{"tests/find/name-slash.sh"}, snapshot.Failing())
	assert.Equal(t, 1, snapshot.Counters.Failed)
}

func TestGNUParser_DejaGnuSummary(t *testing.T) {
	log := `PASS: find.gnu/access.exp
FAIL: find.gnu/fprint.exp
UNSUPPORTED: find.gnu/inum.exp

		=== find Summary ===

# of expected passes		1
# of unexpected failures	1
# of unsupported tests		1
`

	snapshot, err := NewGNUParser().Parse(strings.NewReader(log))
	require.NoError(t, err)
	assert.Equal(t, m.Counters{Total: 3, Passed: 1, Failed: 1, Skipped: 1}, *snapshot.Counters)
}

func TestGNUParser_RecursiveMakeCheckSumsEverySummary(t *testing.T) {
	log := `Making check in gnulib-tests
PASS: test-stat
FAIL: test-fnmatch
PASS: test-regex
# TOTAL: 3
# PASS:  2
# FAIL:  1
Making check in tests
PASS: tests/find/depth-d.sh
# TOTAL: 1
# PASS:  1
`

	snapshot, err := NewGNUParser().Parse(strings.NewReader(log))
	require.NoError(t, err)
	require.NotNil(t, snapshot.Counters)
	assert.Equal(t, m.Counters{Total: 4, Passed: 3, Failed: 1}, *snapshot.Counters)
	assert.Equal(t, []m.TestID{"test-fnmatch"}, snapshot.Failing())
}

func TestGNUParser_AutomakeAndDejaGnuSummariesCombine(t *testing.T) {
	dejaGnuFirst := `FAIL: find.gnu/fprint.exp
# of unexpected failures	1
PASS: tests/find/depth-d.sh
# TOTAL: 1
# PASS:  1
`
	automakeFirst := `PASS: tests/find/depth-d.sh
# TOTAL: 1
# PASS:  1
FAIL: find.gnu/fprint.exp
# of unexpected failures	1
`

	for name, log := range map[string]string{"dejagnu first": dejaGnuFirst, "automake first": automakeFirst} {
		t.Run(name, func(t *testing.T) {
			snapshot, err := NewGNUParser().Parse(strings.NewReader(log))
			require.NoError(t, err)
			assert.Equal(t, m.Counters{Total: 2, Passed: 1, Failed: 1}, *snapshot.Counters)
		})
	}
}

func TestGNUParser_DataErrors(t *testing.T) {
	tests := []struct {
		name string
		log  string
		want string
	}{
		{
			name: "conflicting statuses",
			log:  "PASS: a\nFAIL: a\n",
			want: `test "a" reported as both passed and failed`,
		},
		{
			name: "summary disagrees with listing",
			log:  "FAIL: a\nFAIL: b\n# TOTAL: 2\n# PASS: 1\n# FAIL: 1\n",
			want: "gnu summary reports",
		},
		{
			name: "total does not add up",
			log:  "# TOTAL: 5\n# PASS: 1\n",
			want: "total 5 does not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGNUParser().Parse(strings.NewReader(tt.log))
			require.ErrorIs(t, err, m.ErrDataError)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGNUParser_RepeatedIdenticalLineIsAccepted(t *testing.T) {
	snapshot, err := NewGNUParser().Parse(strings.NewReader("FAIL: a\nFAIL: a\n"))
	require.NoError(t, err)
	assert.Len(t, snapshot.Outcomes, 1)
	assert.Nil(t, snapshot.Counters)
}

func TestBFSParser(t *testing.T) {
	log := "\x1b[1m[PASS]\x1b[0m posix/basic\n" +
		"[ 12%] posix/name\r[PASS] posix/name\n" +
		"[FAIL] gnu/printf_escapes\n" +
		"[SKIP] bsd/flags\n" +
		"\n" +
		"tests passed: 2\n" +
		"tests skipped: 1\n" +
		"tests failed: 1\n"

	snapshot, err := NewBFSParser().Parse(strings.NewReader(log))
	require.NoError(t, err)

	assert.Equal(t, []m.TestID{"posix/basic", "posix/name", "gnu/printf_escapes", "bsd/flags"}, snapshot.IDs())
	assert.Equal(t, []m.TestID{"gnu/printf_escapes"}, snapshot.Failing())
	assert.Equal(t, m.Counters{Total: 4, Passed: 2, Failed: 1, Skipped: 1}, *snapshot.Counters)
}

func TestBFSParser_QuietRunListsOnlyFailures(t *testing.T) {
	log := "[FAIL] gnu/printf_escapes\ntests passed: 700\ntests skipped: 3\ntests failed: 1\n"

	snapshot, err := NewBFSParser().Parse(strings.NewReader(log))
	require.NoError(t, err)
	assert.Equal(t, 704, snapshot.Counters.Total)
	assert.Equal(t, []m.TestID{"gnu/printf_escapes"}, snapshot.Failing())
}

func TestBFSParser_MoreFailuresThanSummary(t *testing.T) {
	log := "[FAIL] a\n[FAIL] b\ntests passed: 0\ntests failed: 1\n"

	_, err := NewBFSParser().Parse(strings.NewReader(log))
	require.ErrorIs(t, err, m.ErrDataError)
}

const goTestEvents = `{"Action":"start","Package":"example.com/find"}
{"Action":"run","Package":"example.com/find","Test":"TestName"}
{"Action":"output","Package":"example.com/find","Test":"TestName","Output":"=== RUN   TestName\n"}
{"Action":"pass","Package":"example.com/find","Test":"TestName","Elapsed":0.01}
{"Action":"run","Package":"example.com/find","Test":"TestFlaky"}
{"Action":"fail","Package":"example.com/find","Test":"TestFlaky","Elapsed":0.01}
{"Action":"run","Package":"example.com/find","Test":"TestFlaky"}
{"Action":"pause","Package":"example.com/find","Test":"TestFlaky"}
{"Action":"cont","Package":"example.com/find","Test":"TestFlaky"}
{"Action":"pass","Package":"example.com/find","Test":"TestFlaky","Elapsed":0.01}
{"Action":"run","Package":"example.com/find","Test":"TestSkip"}
{"Action":"skip","Package":"example.com/find","Test":"TestSkip","Elapsed":0}
{"Action":"run","Package":"example.com/find","Test":"TestHang"}
{"Action":"fail","Package":"example.com/find","Elapsed":600}
# example.com/broken
broken.go:3:1: syntax error
{"Action":"fail","Package":"example.com/broken","Elapsed":0}
`

func TestGoTestParser(t *testing.T) {
	snapshot, err := NewGoTestParser().Parse(strings.NewReader(goTestEvents))
	require.NoError(t, err)

	assert.Equal(t, []m.Outcome{
		{ID: "example.com/find/TestName", Status: m.StatusPassed},
		{ID: "example.com/find/TestFlaky", Status: m.StatusPassed},
		{ID: "example.com/find/TestSkip", Status: m.StatusSkipped},
		{ID: "example.com/broken", Status: m.StatusErrored},
		{ID: "example.com/find/TestHang", Status: m.StatusErrored},
	}, snapshot.Outcomes)
	assert.Equal(t, m.Counters{Total: 5, Passed: 2, Failed: 2, Skipped: 1}, *snapshot.Counters)
}

func TestGoTestParser_MalformedEvent(t *testing.T) {
	_, err := NewGoTestParser().Parse(strings.NewReader(`{"Action":`))
	require.ErrorIs(t, err, m.ErrDataError)
}

func TestOutcomeCollector(t *testing.T) {
	t.Run("record rejects a conflicting status", func(t *testing.T) {
		collector := newOutcomeCollector()
		require.NoError(t, collector.record("a", m.StatusFailed))
		require.NoError(t, collector.record("a", m.StatusFailed))

		err := collector.record("a", m.StatusPassed)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reported as both")
		assert.Equal(t, []m.Outcome{{ID: "a", Status: m.StatusFailed}}, collector.result())
	})

	t.Run("set keeps the last status in first-seen order", func(t *testing.T) {
		collector := newOutcomeCollector()
		collector.set("a", m.StatusFailed)
		collector.set("b", m.StatusPassed)
		collector.set("a", m.StatusPassed)

		assert.Equal(t, []m.Outcome{
			{ID: "a", Status: m.StatusPassed},
			{ID: "b", Status: m.StatusPassed},
		}, collector.result())
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		assert.NotNil(t, newOutcomeCollector().result())
	})
}

func TestGoTestParser_RerunAcrossPackagesKeepsLastResult(t *testing.T) {
	events := `{"Action":"run","Package":"example.com/a","Test":"TestX"}
{"Action":"fail","Package":"example.com/a","Test":"TestX"}
{"Action":"run","Package":"example.com/b","Test":"TestX"}
{"Action":"pass","Package":"example.com/b","Test":"TestX"}
{"Action":"run","Package":"example.com/a","Test":"TestX"}
{"Action":"pass","Package":"example.com/a","Test":"TestX"}
{"Action":"pass","Package":"example.com/a"}
`

	snapshot, err := NewGoTestParser().Parse(strings.NewReader(events))
	require.NoError(t, err)
	assert.Equal(t, []m.Outcome{
		{ID: "example.com/a/TestX", Status: m.StatusPassed},
		{ID: "example.com/b/TestX", Status: m.StatusPassed},
	}, snapshot.Outcomes)
}

func TestParserRegistry(t *testing.T) {
	registry := DefaultParserRegistry()

	assert.Equal(t, []string{"bfs", "gnu", "gotest", "json", "yaml"}, registry.Formats())

	parser, err := registry.Lookup(" GNU ")
	require.NoError(t, err)
	assert.Equal(t, FormatGNU, parser.Name())

	_, err = registry.Lookup("junit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "known: bfs, gnu, gotest, json, yaml")
}
