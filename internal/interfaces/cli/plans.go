package cli

import (
	"github.com/spf13/cobra"

	"github.com/mydailybill/mdb-admin/internal/domain/entity"
	"github.com/mydailybill/mdb-admin/internal/domain/listview"
)

// NewPlansCommand creates the plans command group.
func NewPlansCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage subscription plans",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return requireSession(app)
		},
	}

	cmd.AddCommand(newPlansListCommand(app, rootOpts))
	cmd.AddCommand(newPlansGetCommand(app, rootOpts))
	cmd.AddCommand(newPlansCreateCommand(app, rootOpts))
	cmd.AddCommand(newPlansUpdateCommand(app, rootOpts))
	cmd.AddCommand(newPlansToggleCommand(app, rootOpts))

	return cmd
}

func newPlansListCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	flags := &listFlags{}
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plans",
		Long: `List subscription plans with search, status filter and sort.

Example:
  mdbadmin plans list --sort price --order desc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			var (
				plans []entity.Plan
				ferr  error
			)
			if activeOnly {
				plans, ferr = app.API.Plans.Active(cmd.Context())
			} else {
				plans, ferr = app.API.Plans.List(cmd.Context())
			}
			if ferr != nil {
				return ferr
			}
			filtered := listview.Apply(plans, cfg, listview.PlanFields())
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Plans(filtered)
		},
	}
	flags.bind(cmd, listview.PlanSortName, "name|price|days")
	cmd.Flags().BoolVar(&activeOnly, "active-only", false, "use the active-plans endpoint")

	return cmd
}

func newPlansGetCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one plan with quotas and features",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.API.Plans.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).PlanDetail(plan)
		},
	}
}

func newPlansCreateCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create --file plan.json",
		Short: "Add a plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var plan entity.Plan
			if err := readJSONFile(file, &plan); err != nil {
				return err
			}
			created, err := app.API.Plans.Create(cmd.Context(), plan)
			if err != nil {
				return err
			}
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).PlanDetail(created)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file with the plan payload (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newPlansUpdateCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update <id> --file plan.json",
		Short: "Replace a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var plan entity.Plan
			if err := readJSONFile(file, &plan); err != nil {
				return err
			}
			updated, err := app.API.Plans.Update(cmd.Context(), args[0], plan)
			if err != nil {
				return err
			}
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).PlanDetail(updated)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file with the plan payload (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newPlansToggleCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-status <id>",
		Short: "Flip a plan's active flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.API.Plans.ToggleStatus(cmd.Context(), args[0]); err != nil {
				return err
			}
			NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Line("Toggled status of plan %s.", args[0])
			return nil
		},
	}
}
