package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Game represents one title in the collection
type Game struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	PlayerCount PlayerCount `json:"playerCount"`
	Platform    Platform    `json:"platform"`
	CoverURL    string      `json:"coverUrl"`
}

// PlayerCount is either a single supported count or a set of them.
// The zero value supports nothing.
type PlayerCount struct {
	counts []int
	set    bool
}

// Players returns a PlayerCount supporting exactly n players
func Players(n int) PlayerCount {
	return PlayerCount{counts: []int{n}}
}

// PlayerSet returns a PlayerCount supporting each of the given counts
func PlayerSet(counts ...int) PlayerCount {
	return PlayerCount{counts: slices.Clone(counts), set: true}
}

// Supports reports whether n players can play. Membership, not a range.
func (p PlayerCount) Supports(n int) bool {
	return slices.Contains(p.counts, n)
}

// IsSet reports whether the count was given as a collection
func (p PlayerCount) IsSet() bool {
	return p.set
}

// Counts returns a copy of the supported counts in their original order
func (p PlayerCount) Counts() []int {
	return slices.Clone(p.counts)
}

func (p PlayerCount) String() string {
	if !p.set && len(p.counts) == 1 {
		return fmt.Sprintf("%d", p.counts[0])
	}
	return fmt.Sprintf("%v", p.counts)
}

// MarshalJSON keeps the shape the value was decoded from
func (p PlayerCount) MarshalJSON() ([]byte, error) {
	if !p.set && len(p.counts) == 1 {
		return json.Marshal(p.counts[0])
	}
	if p.counts == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.counts)
}

// UnmarshalJSON accepts a number or an array of numbers
func (p *PlayerCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var counts []int
		if err := json.Unmarshal(data, &counts); err != nil {
			return fmt.Errorf("player count list: %w", err)
		}
		*p = PlayerCount{counts: counts, set: true}
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("player count: %w", err)
	}
	*p = Players(n)
	return nil
}
