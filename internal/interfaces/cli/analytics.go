package cli

import (
	"github.com/spf13/cobra"
)

// NewAnalyticsCommand creates the analytics command group. The backend's
// payload schemas are still settling, so every subcommand renders the raw
// JSON reply.
func NewAnalyticsCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Platform analytics and dashboard counters",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return requireSession(app)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "overview",
		Short: "Platform-wide analytics overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.API.Analytics.Overview(cmd.Context())
			if err != nil {
				return err
			}
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Raw(data)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.API.Analytics.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Raw(data)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "plans",
		Short: "Per-plan analytics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.API.Analytics.PlanStats(cmd.Context())
			if err != nil {
				return err
			}
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Raw(data)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "company <id>",
		Short: "Analytics for one company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.API.Analytics.CompanyStats(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return NewRenderer(cmd.OutOrStdout(), rootOpts.Format).Raw(data)
		},
	})

	return cmd
}
