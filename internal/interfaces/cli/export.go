package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mydailybill/mdb-admin/internal/domain/listview"
	"github.com/mydailybill/mdb-admin/internal/infrastructure/export"
)

// ExportOptions holds flags for the export commands.
type ExportOptions struct {
	*RootOptions
	FileFormat string
	Out        string
}

// NewExportCommand creates the export command group. Exports run the same
// filter pipeline as the listings, so the file matches what the console
// showed.
func NewExportCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export listings as PDF or XLSX",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return requireSession(app)
		},
	}

	cmd.AddCommand(newExportCompaniesCommand(app, rootOpts))
	cmd.AddCommand(newExportPlansCommand(app, rootOpts))

	return cmd
}

func newExportCompaniesCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "companies --out report.pdf",
		Short: "Export the companies listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			companies, err := app.API.Companies.List(cmd.Context())
			if err != nil {
				return err
			}
			filtered := listview.Apply(companies, cfg, listview.CompanyFields())

			var data []byte
			switch opts.FileFormat {
			case "pdf":
				data, err = export.NewPDFExporter().Companies(filtered)
			case "xlsx":
				data, err = export.NewExcelExporter().Companies(filtered)
			default:
				return fmt.Errorf("invalid file format %q: must be pdf or xlsx", opts.FileFormat)
			}
			if err != nil {
				return err
			}
			return writeExport(cmd, opts, data, len(filtered), "companies")
		},
	}
	flags.bind(cmd, listview.CompanySortName, "name|id|date")
	bindExportFlags(cmd, opts)

	return cmd
}

func newExportPlansCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "plans --out report.xlsx",
		Short: "Export the plans listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			plans, err := app.API.Plans.List(cmd.Context())
			if err != nil {
				return err
			}
			filtered := listview.Apply(plans, cfg, listview.PlanFields())

			var data []byte
			switch opts.FileFormat {
			case "pdf":
				data, err = export.NewPDFExporter().Plans(filtered)
			case "xlsx":
				data, err = export.NewExcelExporter().Plans(filtered)
			default:
				return fmt.Errorf("invalid file format %q: must be pdf or xlsx", opts.FileFormat)
			}
			if err != nil {
				return err
			}
			return writeExport(cmd, opts, data, len(filtered), "plans")
		},
	}
	flags.bind(cmd, listview.PlanSortName, "name|price|days")
	bindExportFlags(cmd, opts)

	return cmd
}

func bindExportFlags(cmd *cobra.Command, opts *ExportOptions) {
	cmd.Flags().StringVar(&opts.FileFormat, "file-format", "pdf", "export format (pdf|xlsx)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "output file path (required)")
	_ = cmd.MarkFlagRequired("out")
}

func writeExport(cmd *cobra.Command, opts *ExportOptions, data []byte, count int, what string) error {
	if err := os.WriteFile(opts.Out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.Out, err)
	}
	NewRenderer(cmd.OutOrStdout(), opts.Format).Line("Wrote %d %s to %s.", count, what, opts.Out)
	return nil
}
