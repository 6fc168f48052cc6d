package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/tubeview/tubeview/internal/model"
)

// TileCard is a compact widget for a single placeholder video tile:
// thumbnail block, bold title, view-count caption.
type TileCard struct {
	widget.BaseWidget

	tile *model.VideoTile

	thumbnail  *canvas.Rectangle
	titleLabel *widget.Label
	viewsLabel *widget.Label
}

// NewTileCard creates a new tile card widget
func NewTileCard(tile *model.VideoTile) *TileCard {
	tc := &TileCard{tile: tile}
	tc.ExtendBaseWidget(tc)
	tc.createUI()
	return tc
}

// createUI creates the UI components
func (tc *TileCard) createUI() {
	tc.thumbnail = canvas.NewRectangle(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	tc.thumbnail.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))

	tc.titleLabel = widget.NewLabel(tc.tile.GetDisplayTitle())
	tc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tc.titleLabel.Wrapping = fyne.TextWrapWord
	tc.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tc.viewsLabel = widget.NewLabel(tc.tile.FormatViews())
	tc.viewsLabel.Importance = widget.LowImportance
}

// Tile returns the entity backing this card
func (tc *TileCard) Tile() *model.VideoTile {
	return tc.tile
}

// CreateRenderer creates the widget renderer
func (tc *TileCard) CreateRenderer() fyne.WidgetRenderer {
	layout := container.NewVBox(tc.thumbnail, tc.titleLabel, tc.viewsLabel)
	return widget.NewSimpleRenderer(layout)
}
