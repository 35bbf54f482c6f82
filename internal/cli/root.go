// Package cli implements the duelforge terminal client.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/meur/duelforge/internal/config"
	"github.com/meur/duelforge/internal/i18n"
	"github.com/meur/duelforge/internal/source"
)

// session is what every command works with once the config is loaded.
type session struct {
	sources *source.Set
	lang    string
	printer *message.Printer
}

type loader func(cmd *cobra.Command) (*session, error)

// NewRootCmd builds the command tree backed by the user's config file.
func NewRootCmd() *cobra.Command {
	return newRootCmd(loadSession)
}

func newRootCmd(load loader) *cobra.Command {
	var sess *session
	current := func() *session { return sess }

	root := &cobra.Command{
		Use:   "duelforge",
		Short: "Yu-Gi-Oh card explorer and challenge picker",
		Long: `duelforge searches the Yu-Gi-Oh card database, shows banlists and
tournament decks, and picks a random challenge when you need something to do.

Settings live in $XDG_CONFIG_HOME/duelforge/config.toml, created on first run.
With source = "direct" the public APIs are queried; with source = "backend"
everything goes through a duelforge server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(cmd)
			if err != nil {
				return err
			}
			sess = s
			return nil
		},
	}

	root.PersistentFlags().String("lang", "", "Message language (en, fr); overrides the config file")
	root.PersistentFlags().String("source", "", `Card source ("direct" or "backend"); overrides the config file`)

	root.AddCommand(
		newSearchCmd(current),
		newCardCmd(current),
		newRandomCmd(current),
		newArchetypesCmd(current),
		newBanlistCmd(current),
		newDecksCmd(current),
		newChallengeCmd(current),
	)
	return root
}

func loadSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		cfg.Language = lang
	}
	if src, _ := cmd.Flags().GetString("source"); src != "" {
		cfg.Source = src
	}

	sources, err := source.New(*cfg)
	if err != nil {
		return nil, err
	}
	return &session{
		sources: sources,
		lang:    cfg.Language,
		printer: i18n.Printer(cfg.Language),
	}, nil
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
