package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect the persisted API session",
	}

	cmd.AddCommand(newSessionTestCmd(app), newSessionCreateCmd(app), newSessionClearCmd(app))

	return cmd
}

func newSessionTestCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Check whether the stored session is still accepted by the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stored, err := app.sessions.Load(cmd.Context())
			if errors.Is(err, domain.ErrSessionNotFound) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "no stored session")
				return err
			}
			if err != nil {
				return fmt.Errorf("load stored session: %w", err)
			}

			client, err := app.statsClient(cmd.Context())
			if err != nil {
				return err
			}

			state := "expired"
			if client.Sessions().TestSession(cmd.Context(), stored.ID) {
				state = "valid"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "stored session is %s (created %s)\n",
				state, stored.CreatedAt.UTC().Format(time.RFC3339))
			return err
		},
	}
}

func newSessionCreateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new API session and store it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.statsClient(cmd.Context())
			if err != nil {
				return err
			}

			if _, err := client.Sessions().CreateSession(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "session created and stored in %s\n", app.sessions.Path())
			return err
		},
	}
}

func newSessionClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.sessions.Clear(cmd.Context())
		},
	}
}
