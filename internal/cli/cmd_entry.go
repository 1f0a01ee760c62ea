package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage entries",
	}
	cmd.AddCommand(newEntryAddCmd(app))
	cmd.AddCommand(newEntryListCmd(app))
	cmd.AddCommand(newEntryShowCmd(app))
	cmd.AddCommand(newEntryRmCmd(app))
	cmd.AddCommand(newEntryAttachCmd(app))
	return cmd
}

func newEntryAddCmd(app *App) *cobra.Command {
	var category, title, description, wisdom, tags string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.entries.Add(cmd.Context(), category, title, description, wisdom, tags)
			if err != nil {
				return err
			}
			fmt.Printf("created entry %s (%s)\n", e.Title, e.Id)
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "category id")
	cmd.Flags().StringVar(&title, "title", "", "entry title")
	cmd.Flags().StringVar(&description, "desc", "", "short description")
	cmd.Flags().StringVar(&wisdom, "wisdom", "", "free-text notes")
	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tags")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newEntryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.repos.Entries.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Printf("%s  %-30s  views:%d  attachments:%d\n",
					e.Id, e.Title, e.ViewCount, len(e.Attachments))
			}
			return nil
		},
	}
}

func newEntryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an entry and bump its view counter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.entries.Show(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("title:  %s\n", e.Title)
			fmt.Printf("desc:   %s\n", e.Description)
			fmt.Printf("wisdom: %s\n", e.Wisdom)
			fmt.Printf("tags:   %s\n", e.Tags)
			fmt.Printf("views:  %d\n", e.ViewCount)
			for _, a := range e.Attachments {
				fmt.Printf("file:   %s (%s)\n", a.FileName, app.files.Resolve(a.FilePath))
			}

			ratings, err := app.repos.Ratings.ListByEntry(cmd.Context(), e.Id)
			if err != nil {
				return err
			}
			if len(ratings) > 0 {
				total := 0
				for _, r := range ratings {
					total += r.Rating
				}
				avg := float64(total) / float64(len(ratings))
				fmt.Printf("rating: %s (%d votes)\n", strconv.FormatFloat(avg, 'f', 1, 64), len(ratings))
			}

			comments, err := app.repos.Comments.ListByEntry(cmd.Context(), e.Id)
			if err != nil {
				return err
			}
			for _, c := range comments {
				fmt.Printf("[%s] %s\n", c.CreatedAt.Format("2006-01-02"), c.Text)
			}
			return nil
		},
	}
}

func newEntryRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an entry with its ratings, comments and attachments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.entries.Delete(cmd.Context(), args[0])
		},
	}
}

func newEntryAttachCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "attach <entry-id> <file>",
		Short: "Attach a file to an entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.entries.Attach(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			stored := e.Attachments[len(e.Attachments)-1]
			fmt.Printf("stored %s as %s\n", stored.FileName, stored.FilePath)
			return nil
		},
	}
}
