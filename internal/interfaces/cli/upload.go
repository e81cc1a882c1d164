package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// UploadOptions holds flags for the upload command.
type UploadOptions struct {
	*RootOptions
	Type string
}

// NewUploadCommand creates the upload command.
func NewUploadCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	opts := &UploadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a file to the backend",
		Args:  cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return requireSession(app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			data, err := app.API.Uploads.UploadFile(cmd.Context(), filepath.Base(args[0]), f, opts.Type)
			if err != nil {
				return err
			}
			return NewRenderer(cmd.OutOrStdout(), opts.Format).Raw(data)
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", "", `upload type tag (defaults to "general")`)

	return cmd
}
