package ui

import (
	"fyne.io/fyne/v2"
)

// Panel is the render capability shared by every visual region of the window.
// Render builds the panel's widgets; it is invoked exactly once at startup.
// Content returns the panel's root canvas object for layout composition.
type Panel interface {
	Render()
	Content() fyne.CanvasObject
}

// Searcher is the optional search capability. It is satisfied independently of
// Panel, by explicit delegation rather than a shared base type; only the
// header and the video grid implement it.
type Searcher interface {
	Search(query string)
}
