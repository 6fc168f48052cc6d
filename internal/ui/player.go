package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// VideoPlayerPanel renders the placeholder video surface with Play and Pause
// controls. The controls are intentionally inert; there is no playback.
type VideoPlayerPanel struct {
	localization *Localization

	surface  *canvas.Rectangle
	playBtn  *widget.Button
	pauseBtn *widget.Button
	content  fyne.CanvasObject
}

// NewVideoPlayerPanel creates the player panel
func NewVideoPlayerPanel(localization *Localization) *VideoPlayerPanel {
	return &VideoPlayerPanel{localization: localization}
}

// Render builds the placeholder surface and controls. Invoked exactly once at
// startup.
func (p *VideoPlayerPanel) Render() {
	p.surface = canvas.NewRectangle(color.RGBA{R: 32, G: 32, B: 32, A: 255})
	p.surface.SetMinSize(fyne.NewSize(0, PlayerMinHeight))

	placeholder := canvas.NewText(p.localization.GetText(KeyVideoPlayer), color.White)
	placeholder.TextSize = 24
	placeholder.Alignment = fyne.TextAlignCenter

	display := container.NewStack(p.surface, container.NewCenter(placeholder))

	p.playBtn = widget.NewButton(IconPlay+" "+p.localization.GetText(KeyPlay), func() {})
	p.pauseBtn = widget.NewButton(IconPause+" "+p.localization.GetText(KeyPause), func() {})

	controls := container.NewHBox(p.playBtn, p.pauseBtn)

	p.content = container.NewVBox(display, controls)

	log.Printf("Video player panel rendered")
}

// Content returns the panel's root canvas object
func (p *VideoPlayerPanel) Content() fyne.CanvasObject {
	return p.content
}
