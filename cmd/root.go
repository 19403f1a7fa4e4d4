// Package cmd provides the root command and CLI setup for suitegate.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"suitegate.dev/pkg/suitegate/internal/adapter"
	"suitegate.dev/pkg/suitegate/internal/controller"
	"suitegate.dev/pkg/suitegate/internal/domain"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

// Process exit codes.
const (
	exitGreen       = 0
	exitGateFailed  = 1
	exitUnavailable = 2
)

var workflow domain.Workflow
var ui controller.UI

var storeFlag string
var backendFlag string
var branchFlag string
var suiteFlag string
var verboseFlag bool

const rootLongDescription = `Suitegate is a regression gate for conformance test suites run by third
parties (the GNU findutils test suite and the bfs test suite).

It compares the failing tests of the current run against a trusted baseline
and fails when tests regress or the failure count grows beyond the configured
tolerance. Exit codes: 0 green, 1 red gate, 2 comparison could not run.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suitegate",
		Short: "Regression gate for external conformance suites",
		Long:  rootLongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			if configErr != nil {
				return configErr
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if workflow == nil {
				workflow = newWorkflow(cmd)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&storeFlag, storeFlagName, adapter.DefaultStorePath, "baseline store location (directory for file and badger, database file for sqlite)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(storeFlagName), storeConfigKey)

	cmd.PersistentFlags().StringVar(&backendFlag, backendFlagName, defaultBackend, "baseline store backend: file, sqlite or badger")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(backendFlagName), backendConfigKey)

	cmd.PersistentFlags().StringVarP(&branchFlag, branchFlagName, "b", m.DefaultBranch, "reference branch the baseline is recorded for")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(branchFlagName), branchConfigKey)

	cmd.PersistentFlags().StringVarP(&suiteFlag, suiteFlagName, "s", "", "suite name (e.g. gnu, bfs)")

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// newWorkflow wires the production adapters. The baseline store is opened
// per operation so flags parsed after init still apply.
func newWorkflow(cmd *cobra.Command) domain.Workflow {
	if ui == nil {
		ui = controller.NewUI(cmd, true)
	}

	artifacts := adapter.NewLocalArtifactAdapter(adapter.NewLocalFSAdapter(), adapter.DefaultParserRegistry())

	return domain.NewWorkflow(
		artifacts,
		openBaselineStore,
		adapter.NewTextfileExporter(),
		ui,
		domain.NewGate(domain.NewClassifier(), domain.NewCountJudge()),
		domain.WithFetchTimeout(fetchTimeoutFromConfig()),
		domain.WithFetchRetries(fetchRetriesFromConfig()),
	)
}

func openBaselineStore(_ context.Context) (adapter.BaselineStore, error) {
	return adapter.OpenBaselineStore(adapter.StoreConfig{
		Backend: viper.GetString(backendConfigKey),
		Path:    viper.GetString(storeConfigKey),
		Logger:  slog.Default(),
	})
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitGreen
	case errors.Is(err, domain.ErrGateFailed):
		return exitGateFailed
	default:
		return exitUnavailable
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
