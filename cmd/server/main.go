package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meur/gamecollection/internal/api"
	"github.com/meur/gamecollection/internal/catalog"
	"github.com/meur/gamecollection/internal/config"
	"github.com/meur/gamecollection/internal/dataset"
	"github.com/meur/gamecollection/internal/models"
	"github.com/meur/gamecollection/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override the environment
	flag.StringVar(&cfg.Port, "port", cfg.Port, "Server port")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path (empty serves the bundled dataset)")
	flag.StringVar(&cfg.AssetsDir, "assets", cfg.AssetsDir, "Directory with cover images and icons")
	flag.Parse()

	games, err := loadGames(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to load games: %v", err)
	}

	cat, err := catalog.New(games, cfg.CacheSize)
	if err != nil {
		log.Fatalf("Failed to build catalog: %v", err)
	}

	handler := api.New(cat, api.Options{
		AssetBase:      cfg.AssetBase,
		AssetsDir:      cfg.AssetsDir,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("🎮 Game Collection starting on http://localhost:%s", cfg.Port)
		log.Printf("📦 %d games loaded", cat.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown failed: %v", err)
	}
}

// loadGames reads the dataset once at startup. A database that was never
// seeded falls back to the bundled dataset.
func loadGames(dbPath string) ([]models.Game, error) {
	if dbPath == "" {
		log.Printf("📦 Dataset: %s", dataset.EmbeddedSource)
		return dataset.Default()
	}

	store, err := storage.New(dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	imp, err := store.LatestImport()
	if err != nil {
		return nil, err
	}
	if imp == nil {
		log.Printf("Warning: %s has no games, run the seed command; using %s", dbPath, dataset.EmbeddedSource)
		return dataset.Default()
	}

	games, err := store.GetGames()
	if err != nil {
		return nil, err
	}
	if err := dataset.Validate(games); err != nil {
		return nil, err
	}
	log.Printf("📦 Database: %s (import %s from %s)", dbPath, imp.ID, imp.Source)
	return games, nil
}
