package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newCardCmd(current func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "card [id]",
		Short: "Show the full details of a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("card id must be a number, got %q", args[0])
			}
			card, err := current().sources.Cards.CardByID(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("error getting card: %w", err)
			}
			newRenderer(cmd.OutOrStdout(), current().printer).cardDetail(card)
			return nil
		},
	}
}

func newRandomCmd(current func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show a random card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := current().sources.Cards.RandomCard(cmd.Context())
			if err != nil {
				return fmt.Errorf("error getting random card: %w", err)
			}
			newRenderer(cmd.OutOrStdout(), current().printer).cardDetail(card)
			return nil
		},
	}
}

func newArchetypesCmd(current func() *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archetypes",
		Short: "List archetype names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := current().sources.Cards.Archetypes(cmd.Context())
			if err != nil {
				return fmt.Errorf("error listing archetypes: %w", err)
			}

			match, _ := cmd.Flags().GetString("match")
			match = strings.ToLower(match)
			out := cmd.OutOrStdout()
			for _, name := range names {
				if match == "" || strings.Contains(strings.ToLower(name), match) {
					fmt.Fprintln(out, name)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringP("match", "m", "", "Only names containing this text")
	return cmd
}
