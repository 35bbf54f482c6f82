package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meur/duelforge/internal/explorer"
	"github.com/meur/duelforge/internal/filter"
	"github.com/meur/duelforge/internal/models"
)

func newSearchCmd(current func() *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [name]",
		Short: "Search cards by name or archetype and filter the results",
		Long: `Search runs a fuzzy name search, or an archetype search with --archetype.
Without a name the first cards of the database are listed.

Filters combine: a card must match every one that is set.

Examples:
  duelforge search dark magician
  duelforge search dragon --attribute LIGHT --level 8
  duelforge search --archetype Tearlament --banlist tcg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current()
			crit, err := criteriaFromFlags(cmd)
			if err != nil {
				return err
			}

			ctrl := explorer.New(s.sources.Cards, s.lang)
			ctrl.SetCriteria(crit)

			archetype, _ := cmd.Flags().GetString("archetype")
			switch {
			case archetype != "":
				err = ctrl.SearchArchetype(cmd.Context(), archetype)
			case len(args) > 0:
				err = ctrl.Search(cmd.Context(), strings.Join(args, " "))
			default:
				err = ctrl.LoadDefault(cmd.Context())
			}

			r := newRenderer(cmd.OutOrStdout(), s.printer)
			if err != nil {
				return errors.New(ctrl.Status().Message)
			}

			cards := ctrl.Cards()
			if len(ctrl.All()) == 0 {
				r.status(ctrl.Status())
				return nil
			}
			r.cardList(cards)
			r.status(explorer.Status{Kind: explorer.StatusInfo, Message: ctrl.ResultCount()})
			return nil
		},
	}

	cmd.Flags().StringP("archetype", "a", "", "Search an archetype instead of a name")
	cmd.Flags().StringP("type", "t", "", `Card type substring, e.g. "Monster", "Spell", "Synchro"`)
	cmd.Flags().String("attribute", "", "Attribute, e.g. LIGHT")
	cmd.Flags().IntP("level", "l", 0, "Level or rank")
	cmd.Flags().String("race", "", "Monster type or spell/trap kind, e.g. Dragon, Quick-Play")
	cmd.Flags().StringP("banlist", "b", "", "Only cards on the TCG or OCG banlist")
	return cmd
}

func criteriaFromFlags(cmd *cobra.Command) (filter.Criteria, error) {
	var c filter.Criteria
	c.Type, _ = cmd.Flags().GetString("type")
	c.Attribute, _ = cmd.Flags().GetString("attribute")
	c.Race, _ = cmd.Flags().GetString("race")

	if cmd.Flags().Changed("level") {
		level, _ := cmd.Flags().GetInt("level")
		c.Level = filter.Level(level)
	}
	if raw, _ := cmd.Flags().GetString("banlist"); raw != "" {
		f, err := models.ParseFormat(raw)
		if err != nil {
			return filter.Criteria{}, err
		}
		c.Banlist = f
	}
	return c, nil
}
