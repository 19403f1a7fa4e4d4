package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"suitegate.dev/pkg/suitegate/internal/adapter"
	"suitegate.dev/pkg/suitegate/internal/domain"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

const defaultHistoryLimit = 10

var promoteVerdictFlag string
var promoteFormatFlag string
var historyLimitFlag int

// baselineCmd groups the commands that read or write stored baselines.
var baselineCmd = newBaselineCmd()

func newBaselineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "baseline",
		Short: "Inspect and promote stored baselines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newPromoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promote <snapshot>",
		Short: "Record a snapshot as the baseline",
		Long: `Record a snapshot as the baseline for --branch and --suite.

The verdict report written by "compare --report" must be green, must have
been computed for the same branch and suite, and must still describe the
snapshot when it is judged against the baseline stored now.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if promoteVerdictFlag == "" {
				return errors.New("no verdict report given; pass --verdict")
			}

			ref, err := baselineRef(suiteFlag)
			if err != nil {
				return err
			}

			format := promoteFormatFlag
			if format == "" {
				format = adapter.CodecForPath(m.Path(args[0])).Name()
			}

			return workflow.Promote(cmd.Context(), domain.PromoteArgs{
				Snapshot: m.Path(args[0]),
				Format:   format,
				Verdict:  m.Path(promoteVerdictFlag),
				Ref:      ref,
			})
		},
	}

	cmd.Flags().StringVar(&promoteVerdictFlag, "verdict", "", "verdict report written by compare --report")
	cmd.Flags().StringVarP(&promoteFormatFlag, formatFlagName, "f", "", "snapshot format; defaults to json, or yaml for .yaml/.yml files")

	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the baseline recorded for a suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := baselineRef(suiteFlag)
			if err != nil {
				return err
			}

			return workflow.Show(cmd.Context(), ref)
		},
	}
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List promoted baselines, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := baselineRef(suiteFlag)
			if err != nil {
				return err
			}

			return workflow.History(cmd.Context(), ref, historyLimitFlag)
		},
	}

	cmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", defaultHistoryLimit, "number of baselines to list (0 lists all)")

	return cmd
}

func init() {
	baselineCmd.AddCommand(newPromoteCmd(), newShowCmd(), newHistoryCmd())
	rootCmd.AddCommand(baselineCmd)
}
