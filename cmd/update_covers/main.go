package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/meur/gamecollection/internal/storage"
)

func main() {
	dbPath := flag.String("db", "./games.db", "SQLite database path")
	coversPath := flag.String("covers", "data/covers.json", "JSON object mapping game id or name to a cover path")
	flag.Parse()

	data, err := os.ReadFile(*coversPath)
	if err != nil {
		log.Fatalf("Failed to read covers: %v", err)
	}

	var covers map[string]string
	if err := json.Unmarshal(data, &covers); err != nil {
		log.Fatalf("Failed to parse covers: %v", err)
	}

	fmt.Printf("Loaded %d covers\n", len(covers))

	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	games, err := store.GetGames()
	if err != nil {
		log.Fatalf("Failed to get games: %v", err)
	}

	byName := make(map[string]int, len(games))
	for _, g := range games {
		byName[g.Name] = g.ID
	}

	updated := 0
	notFound := 0

	for key, cover := range covers {
		id, err := strconv.Atoi(key)
		if err != nil {
			var ok bool
			if id, ok = byName[key]; !ok {
				notFound++
				continue
			}
		}

		found, err := store.UpdateCover(id, cover)
		if err != nil {
			log.Printf("Failed to update %s: %v", key, err)
			continue
		}
		if !found {
			notFound++
			continue
		}
		updated++
	}

	fmt.Printf("Updated: %d games\n", updated)
	fmt.Printf("Not found: %d games\n", notFound)
}
