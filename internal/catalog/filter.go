package catalog

import (
	"slices"

	"github.com/meur/gamecollection/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SupportsPlayers reports whether g can be played by count players
func SupportsPlayers(g models.Game, count int) bool {
	return g.PlayerCount.Supports(count)
}

// SupportsPlatform reports whether g is played on platform p. Exact match only.
func SupportsPlatform(g models.Game, p models.Platform) bool {
	return g.Platform == p
}

// newCollator compares names the way a Dutch reader expects, ignoring case,
// accents and width. A Collator is not safe for concurrent use.
func newCollator() *collate.Collator {
	return collate.New(language.Dutch, collate.IgnoreCase, collate.IgnoreDiacritics, collate.IgnoreWidth)
}

// FilterAndSort returns the games matching both the player count and the platform,
// ordered by name. Names that collate equal keep their dataset order. games is not
// modified.
func FilterAndSort(games []models.Game, playerCount int, platform models.Platform) []models.Game {
	matched := make([]models.Game, 0, len(games))
	for _, g := range games {
		if SupportsPlayers(g, playerCount) && SupportsPlatform(g, platform) {
			matched = append(matched, g)
		}
	}

	col := newCollator()
	slices.SortStableFunc(matched, func(a, b models.Game) int {
		return col.CompareString(a.Name, b.Name)
	})
	return matched
}
