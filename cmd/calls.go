package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/paladins-stats-cli/internal/adapters/render/report"
	"github.com/spf13/cobra"
)

func newCallsCmd(app *app) *cobra.Command {
	var asJSON bool
	var limit int

	cmd := &cobra.Command{
		Use:   "calls",
		Short: "List the most recent API calls",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.callLog == nil {
				return errors.New("call log is disabled (calllog.path is empty)")
			}

			calls, err := app.callLog.RecentCalls(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list api calls: %w", err)
			}

			if asJSON {
				return writeJSON(cmd, calls)
			}
			return writeRendered(cmd, "api calls", func() (string, error) {
				return report.RenderCalls(calls)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of calls to list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
