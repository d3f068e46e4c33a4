package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/paladins-stats-cli/internal/adapters/render/report"
	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCurrentCmd(app *app) *cobra.Command {
	var asJSON bool
	var export bool

	cmd := &cobra.Command{
		Use:   "current <player>",
		Short: "Report both teams of the player's live match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurrent(cmd, app, args[0], asJSON, export)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&export, "export", false, "Also write the report to a CSV file in export.dir")

	return cmd
}

func runCurrent(cmd *cobra.Command, app *app, player string, asJSON, export bool) error {
	svc, err := app.reportService(cmd.Context())
	if err != nil {
		return err
	}

	var live *domain.LiveMatchReport
	err = fetch(cmd, asJSON, "Fetching live match...", func(ctx context.Context) error {
		result, err := svc.CurrentMatchReports(ctx, player)
		if err != nil {
			return err
		}
		if result == nil {
			return domain.ErrNotInMatch
		}
		live = result
		return nil
	})
	if errors.Is(err, domain.ErrNotInMatch) {
		if asJSON {
			return writeJSON(cmd, nil)
		}
		return writeRendered(cmd, "live match", func() (string, error) {
			return report.RenderLiveMatch(player, nil)
		})
	}
	if err != nil {
		return fmt.Errorf("current match for %s: %w", player, err)
	}

	if asJSON {
		err = writeJSON(cmd, live)
	} else {
		err = writeRendered(cmd, "live match", func() (string, error) {
			return report.RenderLiveMatch(player, live)
		})
	}
	if err != nil || !export {
		return err
	}

	path, err := app.exporter.ExportLiveMatch(*live)
	if err != nil {
		return fmt.Errorf("export live match: %w", err)
	}
	_, err = fmt.Fprintf(cmd.ErrOrStderr(), "exported %s\n", path)
	return err
}

func newWinsCmd(app *app) *cobra.Command {
	var asJSON bool
	var graph bool
	var last int

	cmd := &cobra.Command{
		Use:   "wins <player>",
		Short: "Show the player's win rate over their most recent matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lastN := app.cfg.Report.DefaultMatches
			if cmd.Flags().Changed("last") {
				lastN = last
			}
			if lastN <= 0 || lastN > app.cfg.Report.MaxMatches {
				lastN = app.cfg.Report.MaxMatches
			}

			return runWins(cmd, app, args[0], lastN, graph, asJSON)
		},
	}

	cmd.Flags().IntVarP(&last, "last", "n", 0, "Number of recent matches to consider (default report.default_matches, capped at report.max_matches)")
	cmd.Flags().BoolVar(&graph, "graph", false, "Plot the cumulative win rate")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runWins(cmd *cobra.Command, app *app, player string, lastN int, graph, asJSON bool) error {
	svc, err := app.reportService(cmd.Context())
	if err != nil {
		return err
	}

	var summary domain.WinRateSummary
	err = fetch(cmd, asJSON, "Fetching match history...", func(ctx context.Context) error {
		var err error
		summary, err = svc.WinRate(ctx, player, lastN)
		return err
	})
	if err != nil {
		return fmt.Errorf("win rate for %s: %w", player, err)
	}

	if asJSON {
		return writeJSON(cmd, summary)
	}

	return writeRendered(cmd, "win rate", func() (string, error) {
		return report.RenderWinRate(summary, report.ChartOptions{Graph: graph})
	})
}

func newLastCmd(app *app) *cobra.Command {
	var asJSON bool
	var export bool

	cmd := &cobra.Command{
		Use:   "last <player>",
		Short: "Show a snapshot of the player's most recent match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLast(cmd, app, args[0], asJSON, export)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&export, "export", false, "Also write the snapshot to a CSV file in export.dir")

	return cmd
}

func runLast(cmd *cobra.Command, app *app, player string, asJSON, export bool) error {
	svc, err := app.snapshotService(cmd.Context())
	if err != nil {
		return err
	}

	var snapshot domain.MatchSnapshot
	err = fetch(cmd, asJSON, "Fetching last match...", func(ctx context.Context) error {
		var err error
		snapshot, err = svc.LastMatchSnapshot(ctx, player)
		return err
	})
	if err != nil {
		return fmt.Errorf("last match for %s: %w", player, err)
	}

	if asJSON {
		err = writeJSON(cmd, snapshot)
	} else {
		err = writeRendered(cmd, "snapshot", func() (string, error) {
			return report.RenderSnapshot(snapshot)
		})
	}
	if err != nil || !export {
		return err
	}

	path, err := app.exporter.ExportSnapshot(snapshot)
	if err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}
	_, err = fmt.Fprintf(cmd.ErrOrStderr(), "exported %s\n", path)
	return err
}

func newPlayerCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "player <player>",
		Short: "Show the player's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.statsClient(cmd.Context())
			if err != nil {
				return err
			}

			var player domain.Player
			err = fetch(cmd, asJSON, "Fetching player...", func(ctx context.Context) error {
				var err error
				player, err = client.GetPlayer(ctx, args[0])
				return err
			})
			if err != nil {
				return fmt.Errorf("player %s: %w", args[0], err)
			}

			if asJSON {
				return writeJSON(cmd, player)
			}
			return writeRendered(cmd, "player", func() (string, error) {
				return report.RenderPlayer(player)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newQueueCmd(app *app) *cobra.Command {
	var asJSON bool
	var queueID int64

	cmd := &cobra.Command{
		Use:   "queue <player>",
		Short: "Show the player's per-champion stats in one queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if queueID <= 0 {
				return fmt.Errorf("queue id must be positive, got %d", queueID)
			}

			svc, err := app.reportService(cmd.Context())
			if err != nil {
				return err
			}

			var queue domain.QueueReport
			err = fetch(cmd, asJSON, "Fetching queue stats...", func(ctx context.Context) error {
				var err error
				queue, err = svc.QueueReport(ctx, args[0], queueID)
				return err
			})
			if err != nil {
				return fmt.Errorf("queue %d for %s: %w", queueID, args[0], err)
			}

			if asJSON {
				return writeJSON(cmd, queue)
			}
			return writeRendered(cmd, "queue", func() (string, error) {
				return report.RenderQueue(queue)
			})
		},
	}

	cmd.Flags().Int64Var(&queueID, "queue", 0, "Queue id (e.g. 486 for Ranked)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("queue")

	return cmd
}
