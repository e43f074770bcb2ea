package entity

// Landing is a banner slide on the marketing landing page.
type Landing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
}
