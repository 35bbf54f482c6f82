package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	colorize "github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/meur/duelforge/internal/config"
	"github.com/meur/duelforge/internal/models"
	"github.com/meur/duelforge/internal/storage"
	"github.com/meur/duelforge/internal/ygoprodeck"
)

var (
	red    = colorize.New(colorize.FgRed).SprintFunc()
	green  = colorize.New(colorize.FgGreen).SprintFunc()
	yellow = colorize.New(colorize.FgYellow).SprintFunc()
	cyan   = colorize.New(colorize.FgCyan).SprintFunc()
)

// stableID keeps re-imports of the same list on the same row.
func stableID(format models.Format, date string) string {
	input := fmt.Sprintf("banlist:%s:%s", format, date)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(input)).String()
}

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("%s", red("✗ Failed to load config: ", err))
	}

	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	formatFlag := flag.String("format", "all", "Banlist format: tcg, ocg or all")
	date := flag.String("date", time.Now().Format("2006-01-02"), "Effective date of the imported list")
	dryRun := flag.Bool("dry-run", false, "Print summary without writing to the database")
	flag.Parse()

	formats := models.Formats()
	if !strings.EqualFold(*formatFlag, "all") {
		f, err := models.ParseFormat(*formatFlag)
		if err != nil {
			log.Fatalf("%s", red("✗ ", err))
		}
		formats = []models.Format{f}
	}

	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("%s", red("✗ Failed to connect to database: ", err))
	}
	defer store.Close()

	client := ygoprodeck.New(cfg.CardDBURL, &http.Client{Timeout: cfg.UpstreamTimeout})
	ctx := context.Background()

	var lists []models.Banlist
	for _, format := range formats {
		list, err := client.CurrentBanlist(ctx, format, *date)
		if err != nil {
			log.Fatalf("%s", red("✗ Failed to fetch banlist: ", err))
		}
		list.ID = stableID(format, *date)

		previous, err := store.GetBanlists(format)
		if err != nil {
			log.Fatalf("%s", red("✗ Failed to read existing banlists: ", err))
		}

		fmt.Println(cyan(fmt.Sprintf("📦 %s: %d cards on the list", format, len(list.Cards))))
		if len(previous) > 0 {
			printDiff(previous[0], list)
		}
		lists = append(lists, list)
	}

	if *dryRun {
		log.Printf("Dry run: would import %d banlist(s)", len(lists))
		return
	}

	if err := store.BulkCreateBanlists(lists); err != nil {
		log.Fatalf("%s", red("✗ Failed to import banlists: ", err))
	}

	fmt.Println(green(fmt.Sprintf("✓ Imported %d banlist(s)", len(lists))))
}

func printDiff(old, current models.Banlist) {
	before := make(map[string]models.BanStatus, len(old.Cards))
	for _, c := range old.Cards {
		before[c.CardName] = c.Status
	}

	changed := 0
	for _, c := range current.Cards {
		prev, ok := before[c.CardName]
		switch {
		case !ok:
			fmt.Println(yellow(fmt.Sprintf("  + %s (%s)", c.CardName, c.Status)))
			changed++
		case prev != c.Status:
			fmt.Println(yellow(fmt.Sprintf("  ~ %s: %s → %s", c.CardName, prev, c.Status)))
			changed++
		}
		delete(before, c.CardName)
	}
	for name, status := range before {
		fmt.Println(yellow(fmt.Sprintf("  - %s (was %s)", name, status)))
		changed++
	}

	if changed == 0 {
		fmt.Printf("  no changes since %s\n", old.Name)
	}
}
