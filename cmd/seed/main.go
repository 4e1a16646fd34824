package main

import (
	"flag"
	"log"

	"github.com/meur/gamecollection/internal/dataset"
	"github.com/meur/gamecollection/internal/models"
	"github.com/meur/gamecollection/internal/storage"
)

func main() {
	dbPath := flag.String("db", "./games.db", "SQLite database path")
	dataPath := flag.String("data", "", "Games JSON file (empty imports the bundled dataset)")
	flag.Parse()

	games, source, err := readGames(*dataPath)
	if err != nil {
		log.Fatalf("Failed to read games: %v", err)
	}

	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	imp, err := store.ReplaceGames(source, games)
	if err != nil {
		log.Fatalf("Failed to import games: %v", err)
	}

	log.Printf("✓ Imported %d games from %s", imp.GameCount, imp.Source)
	log.Printf("🌱 Seeding complete! import id %s", imp.ID)
}

func readGames(path string) ([]models.Game, string, error) {
	if path == "" {
		games, err := dataset.Default()
		return games, dataset.EmbeddedSource, err
	}
	games, err := dataset.Load(path)
	return games, path, err
}
