package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/meur/duelforge/internal/config"
	"github.com/meur/duelforge/internal/seed"
	"github.com/meur/duelforge/internal/storage"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	seedsDir := flag.String("seeds", "./seeds", "Seeds directory")
	flag.Parse()

	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	// Seed decks
	decksPath := filepath.Join(*seedsDir, "decks.yaml")
	if decks, err := seed.ParseDeckFile(decksPath); err != nil {
		log.Printf("Warning: failed to read %s: %v", decksPath, err)
	} else if err := store.BulkCreateDecks(decks); err != nil {
		log.Printf("Warning: failed to seed decks: %v", err)
	} else {
		log.Printf("✓ Seeded %d decks from %s", len(decks), decksPath)
	}

	// Seed banlists
	banlistsPath := filepath.Join(*seedsDir, "banlists.yaml")
	if lists, err := seed.ParseBanlistFile(banlistsPath); err != nil {
		log.Printf("Warning: failed to read %s: %v", banlistsPath, err)
	} else if err := store.BulkCreateBanlists(lists); err != nil {
		log.Printf("Warning: failed to seed banlists: %v", err)
	} else {
		log.Printf("✓ Seeded %d banlists from %s", len(lists), banlistsPath)
	}

	log.Println("🌱 Seeding complete!")
}
