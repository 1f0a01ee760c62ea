package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newRateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <entry-id> <1-5>",
		Short: "Rate an entry (one rating per device)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating must be a number: %w", err)
			}
			if _, err := app.entries.Rate(cmd.Context(), args[0], value); err != nil {
				return err
			}
			fmt.Printf("rated %s: %d\n", args[0], value)
			return nil
		},
	}
}

func newCommentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <entry-id> <text...>",
		Short: "Comment on an entry",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			if _, err := app.entries.Comment(cmd.Context(), args[0], text); err != nil {
				return err
			}
			fmt.Println("comment added")
			return nil
		},
	}
}
