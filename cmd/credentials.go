package cmd

import (
	"fmt"

	"github.com/bnema/paladins-stats-cli/internal/application"
	"github.com/spf13/cobra"
)

func newCredentialsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credentials",
		Short: "Manage the developer id and auth key",
	}

	cmd.AddCommand(newCredentialsSetCmd(app), newCredentialsShowCmd(app), newCredentialsRemoveCmd(app))

	return cmd
}

func newCredentialsSetCmd(app *app) *cobra.Command {
	var devID string
	var authKey string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the developer id and auth key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.credentials.Set(cmd.Context(), application.SetCredentialsCommand{
				DevID:   devID,
				AuthKey: authKey,
			})
		},
	}

	cmd.Flags().StringVar(&devID, "dev-id", "", "Developer id")
	cmd.Flags().StringVar(&authKey, "auth-key", "", "Auth key")
	_ = cmd.MarkFlagRequired("dev-id")
	_ = cmd.MarkFlagRequired("auth-key")

	return cmd
}

func newCredentialsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved credentials with the auth key masked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := app.credentials.Load(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), creds.String())
			return err
		},
	}
}

func newCredentialsRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove the stored developer id and auth key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.credentials.Remove(cmd.Context())
		},
	}
}
