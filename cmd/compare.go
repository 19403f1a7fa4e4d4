package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"suitegate.dev/pkg/suitegate/internal/domain"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

const compareLongDescription = `Parse the log of a finished suite run and gate it against the baseline
recorded for --branch and --suite.

The gate is red when a test that passed in the baseline fails now, or when
the failure count grows by more than --max-new-failures. With --promote a
green run becomes the new baseline.`

var compareFormatFlag string
var compareReportFlag string
var compareMetricsFileFlag string
var compareDiffFlag bool
var comparePromoteFlag bool
var compareAllowEqualFlag bool
var compareMaxNewFailuresFlag int
var compareFetchTimeoutFlag time.Duration
var compareFetchRetriesFlag int

// compareCmd represents the compare command.
var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <log>",
		Short: "Gate a suite run against its baseline",
		Long:  compareLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := baselineRef(suiteFlag)
			if err != nil {
				return err
			}

			format, err := resolveFormat(ref.Suite, compareFormatFlag)
			if err != nil {
				return err
			}

			_, err = workflow.Compare(cmd.Context(), domain.CompareArgs{
				Log:         m.Path(args[0]),
				Format:      format,
				Ref:         ref,
				Policy:      policyFromConfig(),
				Report:      m.Path(compareReportFlag),
				MetricsFile: m.Path(compareMetricsFileFlag),
				Diff:        compareDiffFlag,
				Promote:     comparePromoteFlag,
			})

			return err
		},
	}

	configureCompareFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func configureCompareFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&compareFormatFlag, formatFlagName, "f", "", "log format (gnu, bfs, gotest, json, yaml); defaults to suites.<suite>.format")
	cmd.Flags().StringVar(&compareReportFlag, "report", "", "write the verdict as JSON to this file")
	cmd.Flags().StringVar(&compareMetricsFileFlag, "metrics-file", "", "write Prometheus gauges for the verdict to this textfile")
	cmd.Flags().BoolVar(&compareDiffFlag, "diff", false, "show a unified diff of the failing test lists")
	cmd.Flags().BoolVar(&comparePromoteFlag, "promote", false, "record the run as the new baseline when the gate is green")

	cmd.Flags().BoolVar(&compareAllowEqualFlag, allowEqualFlagName, defaultAllowEqual, "accept an unchanged failure count")
	bindFlagToConfig(cmd.Flags().Lookup(allowEqualFlagName), allowEqualConfigKey)

	cmd.Flags().IntVar(&compareMaxNewFailuresFlag, maxNewFailuresFlagName, defaultMaxNewFailures, "number of net new failures tolerated")
	bindFlagToConfig(cmd.Flags().Lookup(maxNewFailuresFlagName), maxNewFailuresConfigKey)

	cmd.Flags().DurationVar(&compareFetchTimeoutFlag, fetchTimeoutFlagName, defaultFetchTimeout, "time allowed for reading the run and loading the baseline")
	bindFlagToConfig(cmd.Flags().Lookup(fetchTimeoutFlagName), fetchTimeoutConfigKey)

	cmd.Flags().IntVar(&compareFetchRetriesFlag, fetchRetriesFlagName, defaultFetchRetries, "retries for a failed baseline load")
	bindFlagToConfig(cmd.Flags().Lookup(fetchRetriesFlagName), fetchRetriesConfigKey)
}
