package render

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/meur/gamecollection/internal/catalog"
	"github.com/meur/gamecollection/internal/models"
)

const Title = "Game Collection"

// PageData is everything the catalog page shows
type PageData struct {
	AssetBase string
	Players   []catalog.PlayerOption
	Platforms []catalog.PlatformOption
	Games     []models.Game
}

// NewPageData snapshots a view for rendering
func NewPageData(v *catalog.View, assetBase string) PageData {
	return PageData{
		AssetBase: assetBase,
		Players:   v.PlayerOptions(),
		Platforms: v.PlatformOptions(),
		Games:     v.Games(),
	}
}

// Page renders the full catalog page
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="nl"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		b.WriteString(Title)
		b.WriteString(`</title><link rel="stylesheet" href="`)
		b.WriteString(templ.EscapeString(data.AssetBase + "app.css"))
		b.WriteString(`"></head><body><header><h1 class="title">`)
		b.WriteString(Title)
		b.WriteString(`</h1></header><main><div class="filters">`)
		writePlayerMenu(&b, data.Players)
		b.WriteString(`<p class="player-count">Players</p>`)
		writePlatformToggle(&b, data.Platforms, data.AssetBase)
		b.WriteString(`</div>`)
		writeGrid(&b, data.Games, data.AssetBase)
		b.WriteString(`</main></body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Grid renders only the game tiles
func Grid(games []models.Game, assetBase string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		writeGrid(&b, games, assetBase)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func activeClass(active bool) string {
	if active {
		return "activePlayer"
	}
	return "non-active"
}

func writePlayerMenu(b *strings.Builder, opts []catalog.PlayerOption) {
	b.WriteString(`<menu>`)
	for _, opt := range opts {
		b.WriteString(`<li class="`)
		b.WriteString(activeClass(opt.Active))
		b.WriteString(`"><a href="`)
		b.WriteString(templ.EscapeString(opt.Href))
		b.WriteString(`">`)
		b.WriteString(strconv.Itoa(opt.Count))
		b.WriteString(`</a></li>`)
	}
	b.WriteString(`</menu>`)
}

func writePlatformToggle(b *strings.Builder, opts []catalog.PlatformOption, assetBase string) {
	b.WriteString(`<div class="platform-toggle">`)
	for _, opt := range opts {
		b.WriteString(`<a href="`)
		b.WriteString(templ.EscapeString(opt.Href))
		b.WriteString(`"><img src="`)
		b.WriteString(templ.EscapeString(assetBase + opt.Platform.Icon()))
		b.WriteString(`" alt="`)
		b.WriteString(templ.EscapeString(string(opt.Platform)))
		b.WriteString(`" class="`)
		b.WriteString(activeClass(opt.Active))
		b.WriteString(`"></a>`)
	}
	b.WriteString(`</div>`)
}

func writeGrid(b *strings.Builder, games []models.Game, assetBase string) {
	b.WriteString(`<div class="game-container">`)
	for _, g := range games {
		b.WriteString(`<img src="`)
		b.WriteString(templ.EscapeString(assetBase + g.CoverURL))
		b.WriteString(`" alt="`)
		b.WriteString(templ.EscapeString(g.Name))
		b.WriteString(`" data-key="`)
		b.WriteString(strconv.Itoa(g.ID))
		b.WriteString(`">`)
	}
	b.WriteString(`</div>`)
}
