package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// LoginOptions holds flags for the login command.
type LoginOptions struct {
	*RootOptions
	Email    string
	Password string
}

// NewLoginCommand creates the login command.
func NewLoginCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	opts := &LoginOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the super-admin backend",
		Long: `Authenticate with email and password. On success the token and
session record are stored locally and reused by every other command.

Example:
  mdbadmin login --email admin@mydailybill.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(app, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&opts.Password, "password", "", "account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runLogin(app *App, opts *LoginOptions, cmd *cobra.Command) error {
	password := opts.Password
	if password == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Password: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if err := app.Session.Login(cmd.Context(), opts.Email, password); err != nil {
		return err
	}

	r := NewRenderer(cmd.OutOrStdout(), opts.Format)
	rec := app.Session.Record()
	if opts.Format == "json" {
		return r.JSON(map[string]any{
			"name":      rec.Name,
			"userType":  rec.UserType,
			"companies": len(rec.Companies),
		})
	}
	r.Line("Logged in as %s (%s), %d companies", rec.Name, rec.UserType, len(rec.Companies))
	return nil
}
