package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/meur/gamecollection/internal/catalog"
	"github.com/meur/gamecollection/internal/models"
)

func renderString(t *testing.T, data PageData) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Page(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func testView(t *testing.T) *catalog.View {
	t.Helper()
	c, err := catalog.New([]models.Game{
		{ID: 1, Name: "Zwam", PlayerCount: models.Players(4), Platform: models.LocalMultiplayer, CoverURL: "zwam.png"},
		{ID: 2, Name: "Avontuur", PlayerCount: models.PlayerSet(2, 4), Platform: models.LocalMultiplayer, CoverURL: "avontuur.png"},
		{ID: 3, Name: "Boot", PlayerCount: models.Players(4), Platform: models.SeparateDevices, CoverURL: "boot.png"},
		{ID: 4, Name: `Tom & "Jerry"`, PlayerCount: models.Players(2), Platform: models.LocalMultiplayer, CoverURL: "tom.png"},
	}, 0)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	return catalog.NewView(c)
}

func TestPageRendersTilesInOrder(t *testing.T) {
	html := renderString(t, NewPageData(testView(t), "/assets/"))

	if !strings.Contains(html, `<h1 class="title">Game Collection</h1>`) {
		t.Fatal("expected title header")
	}
	avontuur := strings.Index(html, `<img src="/assets/avontuur.png" alt="Avontuur" data-key="2">`)
	zwam := strings.Index(html, `<img src="/assets/zwam.png" alt="Zwam" data-key="1">`)
	if avontuur < 0 || zwam < 0 {
		t.Fatalf("expected both tiles, got %s", html)
	}
	if avontuur > zwam {
		t.Fatal("expected Avontuur before Zwam")
	}
	if strings.Contains(html, `alt="Boot"`) {
		t.Fatal("Boot is a Separate Devices game and should be hidden")
	}
}

func TestPageMarksActiveControls(t *testing.T) {
	html := renderString(t, NewPageData(testView(t), "/assets/"))

	if !strings.Contains(html, `<li class="activePlayer"><a href="/?platform=local-multiplayer&amp;players=4">4</a></li>`) {
		t.Fatalf("expected 4 to be the active player count: %s", html)
	}
	if !strings.Contains(html, `<li class="non-active"><a href="/?platform=local-multiplayer&amp;players=1">1</a></li>`) {
		t.Fatal("expected 1 to be a working, inactive control")
	}
	if !strings.Contains(html, `<img src="/assets/local_multiplayer.png" alt="Local Multiplayer" class="activePlayer">`) {
		t.Fatal("expected local multiplayer icon to be active")
	}
	if !strings.Contains(html, `<img src="/assets/separated_devices.png" alt="Separate Devices" class="non-active">`) {
		t.Fatal("expected separate devices icon to be inactive")
	}
}

func TestPageEscapesNames(t *testing.T) {
	v := testView(t)
	v.SelectPlayerCount(2)
	html := renderString(t, NewPageData(v, "/assets/"))

	if strings.Contains(html, `Tom & "Jerry"`) {
		t.Fatal("expected name to be escaped")
	}
	if !strings.Contains(html, `alt="Tom &amp; &#34;Jerry&#34;"`) {
		t.Fatalf("unexpected escaping: %s", html)
	}
}

func TestGridEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Grid(nil, "/assets/").Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := buf.String(); got != `<div class="game-container"></div>` {
		t.Fatalf("unexpected grid %s", got)
	}
}
