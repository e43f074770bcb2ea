package entity

import "time"

// Profile is a game "profile" card: a themed character/mode presented on the
// public site, ordered by Position.
type Profile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Photo       string    `json:"photo"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	PlayTime    string    `json:"play_time"`
	Additional  string    `json:"additional"`
	CanWin      string    `json:"can_win"`
	Position    int       `json:"position"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}
