package catalog

import (
	"log"
	"net/url"
	"strconv"

	"github.com/meur/gamecollection/internal/models"
)

// View is one user's look at the catalog: the two selection values and the games
// they leave visible.
type View struct {
	catalog   *Catalog
	selection models.Selection
}

// PlayerOption is one player-count control
type PlayerOption struct {
	Count  int
	Active bool
	Href   string
}

// PlatformOption is one platform control
type PlatformOption struct {
	Platform models.Platform
	Active   bool
	Href     string
}

// NewView starts a view at the default selection
func NewView(c *Catalog) *View {
	return &View{catalog: c, selection: models.DefaultSelection()}
}

// Selection returns the active selection
func (v *View) Selection() models.Selection {
	return v.selection
}

// SelectPlayerCount switches the player count and reports whether it changed
func (v *View) SelectPlayerCount(n int) bool {
	if v.selection.PlayerCount == n {
		return false
	}
	log.Printf("Switching player count: %d", n)
	v.selection.PlayerCount = n
	return true
}

// SelectPlatform switches the platform and reports whether it changed
func (v *View) SelectPlatform(p models.Platform) bool {
	if v.selection.Platform == p {
		return false
	}
	log.Printf("Switching platform: %s", p)
	v.selection.Platform = p
	return true
}

// Games returns the visible games in display order
func (v *View) Games() []models.Game {
	return v.catalog.Filter(v.selection)
}

// PlayerOptions lists the player-count controls. Each href keeps the current platform.
func (v *View) PlayerOptions() []PlayerOption {
	opts := make([]PlayerOption, 0, len(models.OfferedPlayerCounts))
	for _, n := range models.OfferedPlayerCounts {
		opts = append(opts, PlayerOption{
			Count:  n,
			Active: v.selection.PlayerCount == n,
			Href:   Href(models.Selection{PlayerCount: n, Platform: v.selection.Platform}),
		})
	}
	return opts
}

// PlatformOptions lists the platform controls. Each href keeps the current player count.
func (v *View) PlatformOptions() []PlatformOption {
	platforms := models.Platforms()
	opts := make([]PlatformOption, 0, len(platforms))
	for _, p := range platforms {
		opts = append(opts, PlatformOption{
			Platform: p,
			Active:   v.selection.Platform == p,
			Href:     Href(models.Selection{PlayerCount: v.selection.PlayerCount, Platform: p}),
		})
	}
	return opts
}

// Href is the page link that selects sel
func Href(sel models.Selection) string {
	q := url.Values{}
	q.Set("players", strconv.Itoa(sel.PlayerCount))
	q.Set("platform", sel.Platform.Slug())
	return "/?" + q.Encode()
}
