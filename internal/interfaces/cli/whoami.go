package cli

import (
	"github.com/spf13/cobra"

	"github.com/mydailybill/mdb-admin/internal/application/session"
)

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(app); err != nil {
				return err
			}
			rec := app.Session.Record()
			expiry, ok := session.TokenExpiry(app.Session.Token())
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Session(rec, expiry, ok)
		},
	}
}

// NewRefreshTokenCommand creates the refresh-token command. The new token
// replaces the stored one; the session record is untouched.
func NewRefreshTokenCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh-token",
		Short: "Exchange the stored token for a fresh one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(app); err != nil {
				return err
			}
			token, err := app.API.Auth.RefreshToken(cmd.Context())
			if err != nil {
				return err
			}
			if err := app.Store.Save(token, app.Session.Record()); err != nil {
				return err
			}
			app.Session.Refresh()
			NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Line("Token refreshed.")
			return nil
		},
	}
}
