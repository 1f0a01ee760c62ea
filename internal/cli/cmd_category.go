package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dkuzmenko/wisdomvault/internal/models"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}
	cmd.AddCommand(newCategoryAddCmd(app))
	cmd.AddCommand(newCategoryListCmd(app))
	cmd.AddCommand(newCategoryRmCmd(app))
	return cmd
}

func newCategoryAddCmd(app *App) *cobra.Command {
	var icon, color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &models.Category{
				Id:        uuid.NewString(),
				Name:      args[0],
				Icon:      icon,
				Color:     color,
				CreatedAt: time.Now().UTC(),
			}
			if err := app.repos.Categories.Upsert(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Printf("created category %s (%s)\n", c.Name, c.Id)
			return nil
		},
	}
	cmd.Flags().StringVar(&icon, "icon", "", "icon name")
	cmd.Flags().StringVar(&color, "color", "", "display color")
	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := app.repos.Categories.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range cats {
				fmt.Printf("%s  %s\n", c.Id, c.Name)
			}
			return nil
		},
	}
}

func newCategoryRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.repos.Categories.DeleteByID(cmd.Context(), args[0])
		},
	}
}
