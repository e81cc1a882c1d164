// Package cli is the command-line surface of the super-admin console. It
// wires the credential store, gateway, facades and session manager into one
// App and exposes every backend operation as a cobra command.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mydailybill/mdb-admin/internal/application/api"
	"github.com/mydailybill/mdb-admin/internal/application/session"
	"github.com/mydailybill/mdb-admin/internal/infrastructure/credstore"
	"github.com/mydailybill/mdb-admin/internal/infrastructure/gateway"
	"github.com/mydailybill/mdb-admin/pkg/config"
	"github.com/mydailybill/mdb-admin/pkg/logger"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// App bundles the wired dependencies every command shares.
type App struct {
	Config  *config.Config
	Log     *logger.Logger
	Store   *credstore.Store
	Gateway *gateway.Client
	API     *api.API
	Session *session.Manager
}

// NewApp wires the full dependency chain: file-backed credential store,
// gateway, facades and session manager. The gateway's auth-invalid hook
// resyncs the manager and tells the user to log in again.
func NewApp(cfg *config.Config, log *logger.Logger) *App {
	store := credstore.New(credstore.NewFileStorage(cfg.Credentials.Path), log)
	gw := gateway.New(gateway.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
	}, store, log)
	facades := api.New(gw, log)
	mgr := session.NewManager(store, facades.Auth, log)

	gw.OnAuthInvalid(func() {
		mgr.Refresh()
		fmt.Fprintln(os.Stderr, "Session expired. Run 'mdbadmin login' to continue.")
	})

	return &App{
		Config:  cfg,
		Log:     log,
		Store:   store,
		Gateway: gw,
		API:     facades,
		Session: mgr,
	}
}

// NewRootCommand creates the root command for the mdbadmin CLI.
func NewRootCommand(app *App) *cobra.Command {
	// Command groups gate on the session in their own PersistentPreRunE;
	// traversal keeps the root's format check and startup restore running
	// ahead of them.
	cobra.EnableTraverseRunHooks = true

	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "mdbadmin",
		Short: "mydailybill super-admin console",
		Long: `Administer the mydailybill billing platform: tenant companies,
subscription plans, platform users, uploads and reports.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			// Startup storage check: settles the session before any command
			// decides whether it may run.
			app.Session.Restore()
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewLoginCommand(app, opts))
	cmd.AddCommand(NewLogoutCommand(app, opts))
	cmd.AddCommand(NewWhoamiCommand(app, opts))
	cmd.AddCommand(NewRefreshTokenCommand(app, opts))
	cmd.AddCommand(NewCompaniesCommand(app, opts))
	cmd.AddCommand(NewPlansCommand(app, opts))
	cmd.AddCommand(NewUsersCommand(app, opts))
	cmd.AddCommand(NewAnalyticsCommand(app, opts))
	cmd.AddCommand(NewUploadCommand(app, opts))
	cmd.AddCommand(NewExportCommand(app, opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// requireSession gates commands that need an authenticated session.
func requireSession(app *App) error {
	if app.Session.Gate() != session.ShowApp {
		return errors.New("not logged in: run 'mdbadmin login' first")
	}
	return nil
}
