package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mydailybill/mdb-admin/internal/domain/entity"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage platform users",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return requireSession(app)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.API.Users.List(cmd.Context())
			if err != nil {
				return err
			}
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Users(users)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.API.Users.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Users([]entity.CompanyUser{*user})
		},
	})

	cmd.AddCommand(newUsersCreateCommand(app, rootOpts))
	cmd.AddCommand(newUsersUpdateCommand(app, rootOpts))
	cmd.AddCommand(newUsersDeleteCommand(app, rootOpts))

	return cmd
}

func newUsersCreateCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create --file user.json",
		Short: "Add a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var user entity.CompanyUser
			if err := readJSONFile(file, &user); err != nil {
				return err
			}
			created, err := app.API.Users.Create(cmd.Context(), user)
			if err != nil {
				return err
			}
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Users([]entity.CompanyUser{*created})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file with the user payload (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newUsersUpdateCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update <id> --file user.json",
		Short: "Replace a user's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var user entity.CompanyUser
			if err := readJSONFile(file, &user); err != nil {
				return err
			}
			updated, err := app.API.Users.Update(cmd.Context(), args[0], user)
			if err != nil {
				return err
			}
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Users([]entity.CompanyUser{*updated})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file with the user payload (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newUsersDeleteCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("deleting user %q is permanent; re-run with --yes to confirm", args[0])
			}
			if err := app.API.Users.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Line("Deleted user %s.", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")

	return cmd
}
