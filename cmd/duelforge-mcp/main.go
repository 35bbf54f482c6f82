package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/meur/duelforge/internal/config"
	duelmcp "github.com/meur/duelforge/internal/mcp"
	"github.com/meur/duelforge/internal/source"
)

func main() {
	src := flag.String("source", "", `card source ("direct" or "backend"); overrides the config file`)
	flag.Parse()

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *src != "" {
		cfg.Source = *src
	}

	sources, err := source.New(*cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := server.NewMCPServer("duelforge", "1.0.0")
	duelmcp.RegisterTools(s, sources)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
