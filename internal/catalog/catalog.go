package catalog

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/meur/gamecollection/internal/models"
)

// DefaultCacheSize covers every offered player count on both platforms
const DefaultCacheSize = 8

// Catalog holds the dataset for the lifetime of the process and memoizes the
// filtered view per selection. It is safe for concurrent use.
type Catalog struct {
	games []models.Game
	byID  map[int]int
	cache *lru.Cache[models.Selection, []models.Game]
}

// New creates a Catalog over games. The slice is copied; later changes to it are not seen.
func New(games []models.Game, cacheSize int) (*Catalog, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[models.Selection, []models.Game](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create filter cache: %w", err)
	}

	c := &Catalog{
		games: slices.Clone(games),
		byID:  make(map[int]int, len(games)),
		cache: cache,
	}
	for i, g := range c.games {
		c.byID[g.ID] = i
	}
	return c, nil
}

// Len returns the number of games in the dataset
func (c *Catalog) Len() int {
	return len(c.games)
}

// Games returns the whole dataset in its original order
func (c *Catalog) Games() []models.Game {
	return slices.Clone(c.games)
}

// Game returns a game by ID
func (c *Catalog) Game(id int) (models.Game, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Game{}, false
	}
	return c.games[i], true
}

// Filter returns the visible games for sel. The result is a fresh slice.
func (c *Catalog) Filter(sel models.Selection) []models.Game {
	if cached, ok := c.cache.Get(sel); ok {
		return slices.Clone(cached)
	}
	result := FilterAndSort(c.games, sel.PlayerCount, sel.Platform)
	c.cache.Add(sel, result)
	return slices.Clone(result)
}
