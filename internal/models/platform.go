package models

import (
	"encoding/json"
	"fmt"
)

// Platform says how a game is played: on one shared screen or on one device per player
type Platform string

const (
	LocalMultiplayer Platform = "Local Multiplayer"
	SeparateDevices  Platform = "Separate Devices"

	// legacySeparateDevices is the spelling older data files shipped with
	legacySeparateDevices = "Seperate Devices"
)

// Platforms returns every platform in display order
func Platforms() []Platform {
	return []Platform{LocalMultiplayer, SeparateDevices}
}

// ParsePlatform accepts a display name or a URL slug
func ParsePlatform(s string) (Platform, error) {
	switch s {
	case string(LocalMultiplayer), "local-multiplayer":
		return LocalMultiplayer, nil
	case string(SeparateDevices), legacySeparateDevices, "separate-devices":
		return SeparateDevices, nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

// Slug is the URL form used in query strings
func (p Platform) Slug() string {
	switch p {
	case LocalMultiplayer:
		return "local-multiplayer"
	case SeparateDevices:
		return "separate-devices"
	}
	return ""
}

// Icon is the asset file shown on the platform toggle
func (p Platform) Icon() string {
	switch p {
	case LocalMultiplayer:
		return "local_multiplayer.png"
	case SeparateDevices:
		return "separated_devices.png"
	}
	return ""
}

func (p Platform) Valid() bool {
	return p == LocalMultiplayer || p == SeparateDevices
}

// UnmarshalJSON maps the legacy spelling onto SeparateDevices. Anything else is kept
// verbatim so dataset validation can report it.
func (p *Platform) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("platform: %w", err)
	}
	if s == legacySeparateDevices {
		s = string(SeparateDevices)
	}
	*p = Platform(s)
	return nil
}
