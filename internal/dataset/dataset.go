// Package dataset loads the bundled game list and checks it before the server uses it.
package dataset

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/meur/gamecollection/internal/models"
)

// EmbeddedSource names the bundled dataset in logs and import records
const EmbeddedSource = "embedded:games.json"

//go:embed games.json
var embedded []byte

// Default returns the bundled dataset
func Default() ([]models.Game, error) {
	games, err := Parse(embedded)
	if err != nil {
		return nil, fmt.Errorf("bundled dataset: %w", err)
	}
	return games, nil
}

// Load reads and validates a dataset file
func Load(path string) ([]models.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	games, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return games, nil
}

// Parse decodes a JSON array of games and validates every record
func Parse(data []byte) ([]models.Game, error) {
	var games []models.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("decode games: %w", err)
	}
	if err := Validate(games); err != nil {
		return nil, err
	}
	return games, nil
}

// Validate checks the assumptions the catalog relies on. All problems are reported together.
func Validate(games []models.Game) error {
	var errs []error
	seen := make(map[int]bool, len(games))

	for i, g := range games {
		if seen[g.ID] {
			errs = append(errs, fmt.Errorf("game %d: duplicate id %d", i, g.ID))
		}
		seen[g.ID] = true

		if strings.TrimSpace(g.Name) == "" {
			errs = append(errs, fmt.Errorf("game %d: name is required", g.ID))
		}
		if !g.Platform.Valid() {
			errs = append(errs, fmt.Errorf("game %d: unknown platform %q", g.ID, g.Platform))
		}

		counts := g.PlayerCount.Counts()
		if len(counts) == 0 {
			errs = append(errs, fmt.Errorf("game %d: player count is empty", g.ID))
		}
		dup := make(map[int]bool, len(counts))
		for _, n := range counts {
			if n < 1 {
				errs = append(errs, fmt.Errorf("game %d: player count %d is not positive", g.ID, n))
			}
			if dup[n] {
				errs = append(errs, fmt.Errorf("game %d: player count %d listed twice", g.ID, n))
			}
			dup[n] = true
		}
	}

	return errors.Join(errs...)
}
