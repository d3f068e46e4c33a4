package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "pstats",
		Short:         "Paladins stats CLI (pstats): live match, win rate and last match reports",
		Long:          "pstats queries the Paladins statistics API and renders live match team reports, recent win rates, last match snapshots and per-queue champion stats in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if verbose {
			app.logLevel.SetLevel(zap.DebugLevel)
		}
	}
	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		_ = app.logger.Sync()
		return app.closeLog()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newCurrentCmd(app),
		newWinsCmd(app),
		newLastCmd(app),
		newPlayerCmd(app),
		newQueueCmd(app),
		newSessionCmd(app),
		newCredentialsCmd(app),
		newCallsCmd(app),
	)

	return rootCmd
}
