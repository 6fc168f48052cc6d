package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SidebarPanel renders the fixed vertical navigation list. The buttons carry
// no behavior; pressing them is a no-op.
type SidebarPanel struct {
	localization *Localization

	buttons []*widget.Button
	navKeys []string
	content fyne.CanvasObject
}

// NewSidebarPanel creates the sidebar panel
func NewSidebarPanel(localization *Localization) *SidebarPanel {
	return &SidebarPanel{
		localization: localization,
		navKeys:      []string{KeyHome, KeyTrending, KeySubscriptions, KeyLibrary},
	}
}

// Render builds the navigation buttons. Invoked exactly once at startup.
func (p *SidebarPanel) Render() {
	box := container.NewVBox()

	for _, key := range p.navKeys {
		btn := widget.NewButton(p.localization.GetText(key), func() {})
		p.buttons = append(p.buttons, btn)
		box.Add(btn)
	}

	p.content = box

	log.Printf("Sidebar panel rendered with %d navigation entries", len(p.buttons))
}

// Content returns the panel's root canvas object
func (p *SidebarPanel) Content() fyne.CanvasObject {
	return p.content
}

// refreshTexts updates navigation labels with the current language
func (p *SidebarPanel) refreshTexts() {
	for i, btn := range p.buttons {
		btn.SetText(p.localization.GetText(p.navKeys[i]))
	}
}
