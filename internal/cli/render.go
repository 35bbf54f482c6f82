package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"
	"golang.org/x/text/message"

	"github.com/meur/duelforge/internal/challenge"
	"github.com/meur/duelforge/internal/explorer"
	"github.com/meur/duelforge/internal/models"
)

const defaultWidth = 80

// renderer turns domain values into terminal text. It holds no state
// beyond the output and its width.
type renderer struct {
	w     io.Writer
	p     *message.Printer
	width int
}

func newRenderer(w io.Writer, p *message.Printer) *renderer {
	return &renderer{w: w, p: p, width: outputWidth(w)}
}

// outputWidth is the terminal width when w is a terminal, otherwise 80.
func outputWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

func (r *renderer) println(a ...any) {
	fmt.Fprintln(r.w, a...)
}

func (r *renderer) status(s explorer.Status) {
	switch s.Kind {
	case explorer.StatusError:
		r.println(colorize.RedString("%s", s.Message))
	case explorer.StatusInfo:
		r.println(colorize.HiBlackString("%s", s.Message))
	}
}

func (r *renderer) cardList(cards []models.Card) {
	for _, c := range cards {
		line := colorize.HiWhiteString("%-40s", c.Name) + " " + typeColor(c.Type)("%s", c.Type)
		if c.Attribute != "" {
			line += "  " + c.Attribute
		}
		if c.Level != nil {
			line += fmt.Sprintf("  Lv %d", *c.Level)
		}
		if c.HasStats() {
			line += fmt.Sprintf("  %d/%d", *c.ATK, *c.DEF)
		}
		for _, rec := range c.Banlist {
			line += "  " + colorize.RedString("[%s %s]", rec.Format, models.NormalizeBanStatus(rec.Status))
		}
		r.println(line)
	}
}

func (r *renderer) cardDetail(c *models.Card) {
	r.println()
	r.println(colorize.CyanString("Card: ") + colorize.HiWhiteString("%s", c.Name))
	r.println(colorize.CyanString("ID:   ") + fmt.Sprint(c.ID))
	r.println(colorize.CyanString("Type: ") + typeColor(c.Type)("%s", c.Type))

	var facts []string
	if c.Attribute != "" {
		facts = append(facts, c.Attribute)
	}
	if c.Race != "" {
		facts = append(facts, c.Race)
	}
	if c.Level != nil {
		facts = append(facts, fmt.Sprintf("Level %d", *c.Level))
	}
	if c.HasStats() {
		facts = append(facts, fmt.Sprintf("ATK %d / DEF %d", *c.ATK, *c.DEF))
	}
	if len(facts) > 0 {
		r.println(colorize.CyanString("Info: ") + strings.Join(facts, " · "))
	}
	if c.Archetype != "" {
		r.println(colorize.CyanString("Archetype: ") + c.Archetype)
	}
	for _, rec := range c.Banlist {
		r.println(colorize.CyanString("%s: ", rec.Format) + colorize.RedString("%s", models.NormalizeBanStatus(rec.Status)))
	}

	if c.Desc != "" {
		r.println()
		for _, line := range wrapText(c.Desc, r.width-2) {
			r.println(line)
		}
	}
	if url := c.ImageURL(); url != "" {
		r.println()
		r.println(colorize.HiBlackString("%s", url))
	}
	r.println()
}

func (r *renderer) deck(d models.Deck, full bool) {
	r.println(colorize.HiWhiteString("%s", d.Name))

	var meta []string
	for _, s := range []string{d.Tournament, d.Placement, d.Player, d.Date} {
		if s != "" {
			meta = append(meta, s)
		}
	}
	if len(meta) > 0 {
		r.println("  " + colorize.HiBlackString("%s", strings.Join(meta, " · ")))
	}
	r.println(fmt.Sprintf("  Main %d · Extra %d · Side %d", len(d.MainCards), len(d.ExtraCards), len(d.SideCards)))

	if full {
		for _, part := range []struct {
			name  string
			cards []string
		}{{"Main", d.MainCards}, {"Extra", d.ExtraCards}, {"Side", d.SideCards}} {
			if len(part.cards) == 0 {
				continue
			}
			r.println("  " + colorize.CyanString("%s:", part.name))
			for _, entry := range countCards(part.cards) {
				r.println(fmt.Sprintf("    %dx %s", entry.count, entry.name))
			}
		}
	}
	r.println()
}

type cardCount struct {
	name  string
	count int
}

// countCards groups repeated names, keeping first-seen order.
func countCards(cards []string) []cardCount {
	index := map[string]int{}
	var out []cardCount
	for _, name := range cards {
		if i, ok := index[name]; ok {
			out[i].count++
			continue
		}
		index[name] = len(out)
		out = append(out, cardCount{name: name, count: 1})
	}
	return out
}

func (r *renderer) banlist(b models.Banlist) {
	r.println(colorize.HiWhiteString("%s", b.Name) + "  " + colorize.HiBlackString("%s", b.Date))
	for _, status := range []models.BanStatus{models.StatusForbidden, models.StatusLimited, models.StatusSemiLimited} {
		var names []string
		for _, c := range b.Cards {
			if c.Status == status {
				names = append(names, c.CardName)
			}
		}
		if len(names) == 0 {
			continue
		}
		r.println("  " + statusColor(status)("%s (%d)", status, status.Copies()))
		for _, name := range names {
			r.println("    " + name)
		}
	}
	r.println()
}

func (r *renderer) challenge(ch challenge.Challenge) {
	r.println()
	r.println(fmt.Sprintf("%s  %s", ch.Category.Emoji(), colorize.CyanString("%s", r.p.Sprintf(ch.Category.Label()))))
	for _, line := range wrapText(ch.Activity, r.width-2) {
		r.println(colorize.HiWhiteString("%s", line))
	}
	r.println()
	r.println(fmt.Sprintf("  %-15s %d", r.p.Sprintf("Participants"), ch.ParticipantCount()))
	r.println(fmt.Sprintf("  %-15s %d%%", r.p.Sprintf("Cost"), ch.PricePercent()))
	r.println(fmt.Sprintf("  %-15s %d%%", r.p.Sprintf("Accessibility"), ch.AccessibilityPercent()))
	r.println(fmt.Sprintf("  %-15s %d%%", r.p.Sprintf("Difficulty"), ch.Difficulty()))
	if ch.Link != "" {
		r.println("  " + colorize.HiBlackString("%s", ch.Link))
	}
	if ch.Source == challenge.SourceLocal {
		r.println("  " + colorize.HiBlackString("(offline pick)"))
	}
	r.println()
}

func typeColor(cardType string) func(format string, a ...interface{}) string {
	switch {
	case strings.Contains(cardType, "Spell"):
		return colorize.GreenString
	case strings.Contains(cardType, "Trap"):
		return colorize.MagentaString
	default:
		return colorize.YellowString
	}
}

func statusColor(s models.BanStatus) func(format string, a ...interface{}) string {
	switch s {
	case models.StatusForbidden:
		return colorize.RedString
	case models.StatusLimited:
		return colorize.YellowString
	default:
		return colorize.CyanString
	}
}

// wrapText wraps text to the specified width
func wrapText(text string, width int) []string {
	if width < 20 {
		width = 20
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		currentLine := ""
		for _, word := range strings.Fields(paragraph) {
			if len(currentLine) == 0 {
				currentLine = word
			} else if len(currentLine)+1+len(word) <= width {
				currentLine += " " + word
			} else {
				result = append(result, currentLine)
				currentLine = word
			}
		}
		if currentLine != "" {
			result = append(result, currentLine)
		}
	}
	return result
}
