package models

import "strconv"

// OfferedPlayerCounts are the player counts the page offers as controls
var OfferedPlayerCounts = []int{1, 2, 3, 4}

const (
	DefaultPlayerCount = 4
	DefaultPlatform    = LocalMultiplayer
)

// Selection is the pair of values the catalog is filtered by
type Selection struct {
	PlayerCount int      `json:"playerCount"`
	Platform    Platform `json:"platform"`
}

// DefaultSelection is what a fresh page load shows
func DefaultSelection() Selection {
	return Selection{PlayerCount: DefaultPlayerCount, Platform: DefaultPlatform}
}

// FilterConfig defines a filter option for games
type FilterConfig struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Field   string            `json:"field"`   // Field in Game to filter by
	Type    string            `json:"type"`    // "select" or "toggle"
	Options []string          `json:"options"` // Offered values, in display order
	Default string            `json:"default"`
	IconMap map[string]string `json:"icon_map,omitempty"` // Option -> icon file
}

// Filters describes the controls the catalog page renders
func Filters() []FilterConfig {
	counts := make([]string, 0, len(OfferedPlayerCounts))
	for _, n := range OfferedPlayerCounts {
		counts = append(counts, strconv.Itoa(n))
	}

	platforms := make([]string, 0, 2)
	icons := make(map[string]string, 2)
	for _, p := range Platforms() {
		platforms = append(platforms, string(p))
		icons[string(p)] = p.Icon()
	}

	return []FilterConfig{
		{
			ID:      "players",
			Name:    "Players",
			Field:   "playerCount",
			Type:    "select",
			Options: counts,
			Default: strconv.Itoa(DefaultPlayerCount),
		},
		{
			ID:      "platform",
			Name:    "Platform",
			Field:   "platform",
			Type:    "toggle",
			Options: platforms,
			Default: string(DefaultPlatform),
			IconMap: icons,
		},
	}
}
