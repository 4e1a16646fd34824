package models

import "time"

// Import records one load of a dataset into the database
type Import struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	GameCount int       `json:"game_count"`
	CreatedAt time.Time `json:"created_at"`
}
