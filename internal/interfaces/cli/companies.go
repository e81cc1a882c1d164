package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mydailybill/mdb-admin/internal/domain/entity"
	"github.com/mydailybill/mdb-admin/internal/domain/listview"
)

// NewCompaniesCommand creates the companies command group.
func NewCompaniesCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Manage tenant companies",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return requireSession(app)
		},
	}

	cmd.AddCommand(newCompaniesListCommand(app, rootOpts))
	cmd.AddCommand(newCompaniesGetCommand(app, rootOpts))
	cmd.AddCommand(newCompaniesCreateCommand(app, rootOpts))
	cmd.AddCommand(newCompaniesUpdateCommand(app, rootOpts))
	cmd.AddCommand(newCompaniesDeleteCommand(app, rootOpts))
	cmd.AddCommand(newCompaniesToggleCommand(app, rootOpts))

	return cmd
}

func newCompaniesListCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		Long: `List tenant companies with the console's filter pipeline: substring
search, status filter and stable sort.

Example:
  mdbadmin companies list --search acme --status active --sort date --order desc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			companies, err := app.API.Companies.List(cmd.Context())
			if err != nil {
				return err
			}
			// Refresh the per-load cache before filtering so the session
			// record mirrors what the server returned.
			app.Session.UpdateCompanies(companies)

			filtered := listview.Apply(companies, cfg, listview.CompanyFields())
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Companies(filtered)
		},
	}
	flags.bind(cmd, listview.CompanySortName, "name|id|date")

	return cmd
}

func newCompaniesGetCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one company with business and user details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			company, err := app.API.Companies.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).CompanyDetail(company)
		},
	}
}

func newCompaniesCreateCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create --file company.json",
		Short: "Register a new tenant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var company entity.Company
			if err := readJSONFile(file, &company); err != nil {
				return err
			}
			created, err := app.API.Companies.Create(cmd.Context(), company)
			if err != nil {
				return err
			}
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).CompanyDetail(created)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file with the company payload (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newCompaniesUpdateCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update <id> --file company.json",
		Short: "Replace a tenant's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var company entity.Company
			if err := readJSONFile(file, &company); err != nil {
				return err
			}
			updated, err := app.API.Companies.Update(cmd.Context(), args[0], company)
			if err != nil {
				return err
			}
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).CompanyDetail(updated)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file with the company payload (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newCompaniesDeleteCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <domain>",
		Short: "Delete a tenant by its domain key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("deleting tenant %q is permanent; re-run with --yes to confirm", args[0])
			}
			if err := app.API.Companies.DeleteByDomain(cmd.Context(), args[0]); err != nil {
				return err
			}
			// Server confirmed; drop the tenant from the cached list.
			kept := make([]entity.Company, 0)
			for _, c := range app.Session.Companies() {
				if c.DomainKey() != args[0] {
					kept = append(kept, c)
				}
			}
			app.Session.UpdateCompanies(kept)

			NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Line("Deleted %s.", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")

	return cmd
}

func newCompaniesToggleCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-status <domain>",
		Short: "Flip a tenant's active status by its domain key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.API.Companies.ToggleStatusByDomain(cmd.Context(), args[0]); err != nil {
				return err
			}
			// Server confirmed; mirror the flip in the cached list.
			companies := app.Session.Companies()
			for i, c := range companies {
				if c.DomainKey() != args[0] {
					continue
				}
				if c.IsActive() {
					companies[i].Status = entity.StatusInactive
				} else {
					companies[i].Status = entity.StatusActive
				}
			}
			app.Session.UpdateCompanies(companies)

			NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Line("Toggled status of %s.", args[0])
			return nil
		},
	}
}

// readJSONFile decodes a JSON payload file into dst, rejecting unknown
// fields so typos surface before the request goes out.
func readJSONFile(path string, dst any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode payload %s: %w", path, err)
	}
	return nil
}
