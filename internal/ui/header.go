package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/tubeview/tubeview/internal/audit"
)

// HeaderPanel renders the title bar: brand label plus search box and button.
// It satisfies both Panel and Searcher; the search action only reports the
// query on the logging side channel, there is no real search backend.
type HeaderPanel struct {
	localization *Localization

	brand       *canvas.Text
	searchEntry *widget.Entry
	searchBtn   *widget.Button
	content     fyne.CanvasObject

	// audit-wrapped search action, applied once at construction
	searchAction func()
}

// NewHeaderPanel creates the header panel
func NewHeaderPanel(localization *Localization) *HeaderPanel {
	p := &HeaderPanel{localization: localization}
	p.searchAction = audit.Logged(ActionSearch, func() {
		p.Search(p.searchEntry.Text)
	})
	return p
}

// Render builds the header widgets. Invoked exactly once at startup.
func (p *HeaderPanel) Render() {
	p.brand = canvas.NewText(BrandName, color.RGBA{R: 204, G: 24, B: 30, A: 255})
	p.brand.TextStyle = fyne.TextStyle{Bold: true}
	p.brand.TextSize = 18

	p.searchEntry = widget.NewEntry()
	p.searchEntry.SetPlaceHolder(p.localization.GetText(KeySearchHint))
	// Trigger search when user presses Enter in the search field
	p.searchEntry.OnSubmitted = func(string) {
		p.searchAction()
	}

	p.searchBtn = widget.NewButton(p.localization.GetText(KeySearch), p.searchAction)

	p.content = container.NewBorder(nil, nil, container.NewPadded(p.brand), p.searchBtn, p.searchEntry)

	log.Printf("Header panel rendered")
}

// Search reports the current query. May be called with an empty string; it
// never touches any other panel's state.
func (p *HeaderPanel) Search(query string) {
	log.Printf("Searching for: %s", query)
}

// Content returns the panel's root canvas object
func (p *HeaderPanel) Content() fyne.CanvasObject {
	return p.content
}

// refreshTexts updates header texts with the current language
func (p *HeaderPanel) refreshTexts() {
	if p.searchEntry == nil || p.searchBtn == nil {
		return
	}
	p.searchEntry.SetPlaceHolder(p.localization.GetText(KeySearchHint))
	p.searchBtn.SetText(p.localization.GetText(KeySearch))
}
