package model

import "fmt"

// VideoTile represents a single placeholder video in the grid
type VideoTile struct {
	ID        string
	Title     string // synthetic title, e.g. "Video 5"
	ViewCount int    // uniform random within the configured bounds
}

// FormatViews returns the view count formatted for display, e.g. "1024 views"
func (vt *VideoTile) FormatViews() string {
	return fmt.Sprintf("%d views", vt.ViewCount)
}

// GetDisplayTitle returns the tile title, falling back to the ID when empty
func (vt *VideoTile) GetDisplayTitle() string {
	if vt.Title != "" {
		return vt.Title
	}
	return vt.ID
}
