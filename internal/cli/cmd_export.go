package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkuzmenko/wisdomvault/internal/backup"
	"github.com/dkuzmenko/wisdomvault/internal/common"
)

func newExportCmd(app *App) *cobra.Command {
	var includeFiles bool

	cmd := &cobra.Command{
		Use:   "export <dest.zip>",
		Short: "Export the whole dataset to a portable archive",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			picker := backup.PathPicker{}
			if len(args) == 1 {
				picker.Destination = args[0]
			}

			dest, err := app.backupService(picker).Export(cmd.Context(), includeFiles)
			if errors.Is(err, common.ErrCancelled) {
				// Backing out is a normal outcome, not an error.
				fmt.Println("export cancelled")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("exported to %s\n", dest)
			return nil
		},
	}
	cmd.Flags().BoolVar(&includeFiles, "include-files", true, "pack attachment files into the archive")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <src.zip>",
		Short: "Merge a portable archive into the local dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			picker := backup.PathPicker{}
			if len(args) == 1 {
				picker.Source = args[0]
			}

			sum, err := app.backupService(picker).Import(cmd.Context())
			if errors.Is(err, common.ErrCancelled) {
				fmt.Println("import cancelled")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("imported %d records, %d attachments\n", sum.Records, sum.Attachments)
			return nil
		},
	}
}
