package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meur/duelforge/internal/i18n"
	"github.com/meur/duelforge/internal/models"
)

func newBanlistCmd(current func() *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "banlist",
		Short: "Show banlists, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var format models.Format
			if raw, _ := cmd.Flags().GetString("format"); raw != "" {
				f, err := models.ParseFormat(raw)
				if err != nil {
					return err
				}
				format = f
			}

			lists, err := current().sources.Decks.Banlists(cmd.Context(), format)
			if err != nil {
				return fmt.Errorf("error loading banlists: %w", err)
			}

			latest, _ := cmd.Flags().GetBool("latest")
			if latest {
				lists = models.LatestPerFormat(lists)
			}

			r := newRenderer(cmd.OutOrStdout(), current().printer)
			for _, b := range lists {
				r.banlist(b)
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "", "TCG or OCG; both when omitted")
	cmd.Flags().Bool("latest", false, "Only the most recent list of each format")
	return cmd
}

func newDecksCmd(current func() *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decks",
		Short: "Show tournament-topping decks",
		Long: `Decks lists the stored tournament decks, newest first.
With --card only decks running a card whose name contains the text are shown.

Examples:
  duelforge decks
  duelforge decks --card "ash blossom" --full`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current()
			card, _ := cmd.Flags().GetString("card")
			full, _ := cmd.Flags().GetBool("full")

			var decks []models.Deck
			var err error
			if card != "" {
				decks, err = s.sources.Decks.DecksByCard(cmd.Context(), card)
			} else {
				decks, err = s.sources.Decks.TopDecks(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("%s: %w", s.printer.Sprintf(i18n.KeyDecksFailed), err)
			}

			r := newRenderer(cmd.OutOrStdout(), s.printer)
			if len(decks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), s.printer.Sprintf(i18n.KeyNoDecks))
				return nil
			}
			for _, d := range decks {
				r.deck(d, full)
			}
			return nil
		},
	}
	cmd.Flags().StringP("card", "c", "", "Only decks running this card")
	cmd.Flags().Bool("full", false, "Print the full main, extra and side lists")
	return cmd
}
