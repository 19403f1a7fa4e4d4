package cmd

import (
	"github.com/spf13/cobra"
	"suitegate.dev/pkg/suitegate/internal/domain"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

var parseFormatFlag string
var parseOutFlag string

// parseCmd represents the parse command.
var parseCmd = newParseCmd()

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <log>",
		Short: "Normalize a native suite log into a snapshot",
		Long: `Read the log of a finished suite run and print its normalized outcomes.
With --out the snapshot is written as JSON, or YAML for .yaml/.yml paths,
ready for "baseline promote".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(suiteFlag, parseFormatFlag)
			if err != nil {
				return err
			}

			_, err = workflow.Parse(cmd.Context(), domain.ParseArgs{
				Log:    m.Path(args[0]),
				Format: format,
				Suite:  suiteFlag,
				Out:    m.Path(parseOutFlag),
			})

			return err
		},
	}

	cmd.Flags().StringVarP(&parseFormatFlag, formatFlagName, "f", "", "log format (gnu, bfs, gotest, json, yaml); defaults to suites.<suite>.format")
	cmd.Flags().StringVarP(&parseOutFlag, "out", "o", "", "write the snapshot to this file")

	return cmd
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
