package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/meur/duelforge/internal/api"
	"github.com/meur/duelforge/internal/boredapi"
	"github.com/meur/duelforge/internal/challenge"
	"github.com/meur/duelforge/internal/config"
	"github.com/meur/duelforge/internal/storage"
	"github.com/meur/duelforge/internal/timeouts"
	"github.com/meur/duelforge/internal/ygoprodeck"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override the environment
	port := flag.String("port", cfg.Port, "Server port")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize storage
	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	upstream := &http.Client{Timeout: cfg.UpstreamTimeout}
	cards := ygoprodeck.New(cfg.CardDBURL, upstream)
	picker := challenge.NewPicker(
		boredapi.New(cfg.BoredAPIURL, upstream),
		challenge.WithAttempts(cfg.ChallengeAttempts),
		challenge.WithRetryDelay(cfg.ChallengeRetryDelay),
	)

	srv := api.New(store, cards, picker, api.Options{AllowedOrigins: cfg.CORSOrigins})

	// Serve frontend static files when a build is present
	if info, err := os.Stat(cfg.FrontendDir); err == nil && info.IsDir() {
		FileServer(srv.Router(), "/", cfg.FrontendDir)
		log.Printf("📂 Frontend: %s", cfg.FrontendDir)
	}

	httpServer := &http.Server{
		Addr:              ":" + *port,
		Handler:           srv,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("🚀 duelforge API starting on http://localhost:%s", *port)
	log.Printf("📦 Database: %s", *dbPath)
	log.Printf("📚 Card database: %s", cfg.CardDBURL)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
}

// FileServer serves the static frontend under path. Extension-less paths
// that match no file get index.html so client-side routes load the app.
func FileServer(r chi.Router, path string, dir string) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer does not permit URL parameters.")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	path += "*"

	root := http.Dir(dir)
	r.Get(path, func(w http.ResponseWriter, req *http.Request) {
		rctx := chi.RouteContext(req.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		rel := strings.TrimPrefix(req.URL.Path, pathPrefix)

		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err != nil &&
			!strings.Contains(filepath.Base(rel), ".") {
			req.URL.Path = pathPrefix + "/"
		}

		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, req)
	})
}
