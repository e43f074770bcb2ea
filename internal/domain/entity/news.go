package entity

import "time"

// News is a post on the public news feed.
type News struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Body      string    `json:"body"`
	Photo     string    `json:"photo"`
	Visible   bool      `json:"visible"` // Hidden posts stay in the store but are not rendered publicly.
	Movie     bool      `json:"movie"`   // Marks the attached media as a video rather than an image.
	CreatedAt time.Time `json:"created_at"`
}
