package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meur/gamecollection/internal/models"
)

func TestDefaultDatasetIsValid(t *testing.T) {
	games, err := Default()
	if err != nil {
		t.Fatalf("default dataset: %v", err)
	}
	if len(games) == 0 {
		t.Fatal("expected bundled games")
	}

	platforms := map[models.Platform]int{}
	for _, g := range games {
		platforms[g.Platform]++
	}
	for _, p := range models.Platforms() {
		if platforms[p] == 0 {
			t.Fatalf("expected at least one %s game", p)
		}
	}
}

func TestParseLegacyPlatformSpelling(t *testing.T) {
	games, err := Parse([]byte(`[{"id":1,"name":"Boot","playerCount":4,"platform":"Seperate Devices","coverUrl":"boot.png"}]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if games[0].Platform != models.SeparateDevices {
		t.Fatalf("expected %q, got %q", models.SeparateDevices, games[0].Platform)
	}
}

func TestParseRejectsInvalidRecords(t *testing.T) {
	cases := map[string]string{
		"duplicate id":    `[{"id":1,"name":"A","playerCount":1,"platform":"Local Multiplayer"},{"id":1,"name":"B","playerCount":1,"platform":"Local Multiplayer"}]`,
		"missing name":    `[{"id":1,"playerCount":1,"platform":"Local Multiplayer"}]`,
		"unknown":         `[{"id":1,"name":"A","playerCount":1,"platform":"Couch"}]`,
		"empty count":     `[{"id":1,"name":"A","playerCount":[],"platform":"Local Multiplayer"}]`,
		"missing count":   `[{"id":1,"name":"A","platform":"Local Multiplayer"}]`,
		"duplicate count": `[{"id":1,"name":"A","playerCount":[2,2],"platform":"Local Multiplayer"}]`,
		"zero count":      `[{"id":1,"name":"A","playerCount":0,"platform":"Local Multiplayer"}]`,
		"not json":        `{`,
	}
	for name, data := range cases {
		if _, err := Parse([]byte(data)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	err := Validate([]models.Game{
		{ID: 1, Name: "", PlayerCount: models.Players(2), Platform: models.LocalMultiplayer},
		{ID: 2, Name: "B", PlayerCount: models.Players(2), Platform: "Couch"},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "name is required") || !strings.Contains(err.Error(), "unknown platform") {
		t.Fatalf("expected both problems, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")
	data := `[{"id":7,"name":"Zwam","playerCount":[1,4],"platform":"Local Multiplayer","coverUrl":"zwam.png"}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	games, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(games) != 1 || games[0].ID != 7 || !games[0].PlayerCount.Supports(4) {
		t.Fatalf("unexpected games %+v", games)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
