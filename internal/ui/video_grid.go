package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/tubeview/tubeview/internal/audit"
	"github.com/tubeview/tubeview/internal/feed"
)

// VideoGridPanel renders the fixed matrix of placeholder video tiles. The
// panel owns an arena of tile cards; Rebuild discards the arena and
// repopulates it wholesale from a fresh feed page. It satisfies both Panel
// and Searcher.
type VideoGridPanel struct {
	feed         feed.TileSource
	localization *Localization

	grid  *fyne.Container
	cards []*TileCard

	// audit-wrapped rebuild action, applied once at construction
	rebuildAction func()
}

// NewVideoGridPanel creates the grid panel backed by the given tile source
func NewVideoGridPanel(feedSvc feed.TileSource, localization *Localization) *VideoGridPanel {
	p := &VideoGridPanel{feed: feedSvc, localization: localization}
	p.rebuildAction = audit.Logged(ActionUpdateGrid, p.Rebuild)
	return p
}

// Render initializes the grid container and performs the first rebuild.
// Invoked exactly once at startup.
func (p *VideoGridPanel) Render() {
	p.grid = container.NewGridWithColumns(feed.GridCols)
	p.rebuildAction()
}

// Rebuild discards all attached tile cards and regenerates a full page.
// Structure is idempotent (always exactly Rows×Cols cards afterwards);
// content is not, since view counts are drawn fresh on every call. Safe to
// invoke repeatedly.
func (p *VideoGridPanel) Rebuild() {
	p.cards = p.cards[:0]
	p.grid.RemoveAll()

	for _, tile := range p.feed.GeneratePage() {
		card := NewTileCard(tile)
		p.cards = append(p.cards, card)
		p.grid.Add(card)
	}

	p.grid.Refresh()

	log.Printf("Video grid rebuilt with %d tiles", len(p.cards))
}

// RefreshFeed re-runs the audited rebuild. Used by the View menu.
func (p *VideoGridPanel) RefreshFeed() {
	p.rebuildAction()
}

// Search reports the query against the video feed. The grid performs no real
// filtering.
func (p *VideoGridPanel) Search(query string) {
	log.Printf("Searching videos for query: %s", query)
}

// Cards returns the currently attached tile cards in grid order
func (p *VideoGridPanel) Cards() []*TileCard {
	return p.cards
}

// Content returns the panel's root canvas object
func (p *VideoGridPanel) Content() fyne.CanvasObject {
	return p.grid
}
