package entity

import "time"

// Category groups products on the storefront. Products reference a category
// by name, not by id; renaming a category therefore orphans those references.
// That loose coupling comes straight from the data owner and is preserved as-is.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Photo     string    `json:"photo"`
	CreatedAt time.Time `json:"created_at"`
}
