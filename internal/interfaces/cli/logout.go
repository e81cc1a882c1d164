package cli

import (
	"github.com/spf13/cobra"
)

// LogoutOptions holds flags for the logout command.
type LogoutOptions struct {
	*RootOptions
	Local bool
}

// NewLogoutCommand creates the logout command. Logout always succeeds: the
// remote call is best-effort and local cleanup is authoritative.
func NewLogoutCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	opts := &LogoutOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the session and clear stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Session.Logout(cmd.Context(), opts.Local)
			NewRenderer(cmd.OutOrStdout(), opts.Format).Line("Logged out.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Local, "local", false, "skip the remote logout call, clear local credentials only")

	return cmd
}
