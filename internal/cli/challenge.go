package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meur/duelforge/internal/challenge"
)

func newChallengeCmd(current func() *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge [category]",
		Short: "Pick a random challenge",
		Long: `Challenge asks the Bored API for an activity and falls back to a built-in
list when it does not answer. Use --list to see the categories.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current()
			out := cmd.OutOrStdout()

			if list, _ := cmd.Flags().GetBool("list"); list {
				for _, c := range challenge.Categories() {
					fmt.Fprintf(out, "%s  %-14s %s\n", c.Emoji(), c.String(), s.printer.Sprintf(c.Label()))
				}
				return nil
			}

			var category challenge.Category
			if len(args) == 1 {
				c, err := challenge.ParseCategory(args[0])
				if err != nil {
					return err
				}
				category = c
			}

			newRenderer(out, s.printer).challenge(s.sources.Challenges.Get(cmd.Context(), category))
			return nil
		},
	}
	cmd.Flags().Bool("list", false, "List the categories")
	return cmd
}
