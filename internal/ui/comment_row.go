package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/tubeview/tubeview/internal/model"
)

// CommentRow displays one comment entry: bold author label over wrapped text.
type CommentRow struct {
	widget.BaseWidget

	entry *model.CommentEntry

	authorLabel *widget.Label
	textLabel   *widget.Label
}

// NewCommentRow creates a new comment row widget
func NewCommentRow(entry *model.CommentEntry) *CommentRow {
	cr := &CommentRow{entry: entry}
	cr.ExtendBaseWidget(cr)
	cr.createUI()
	return cr
}

// createUI creates the UI components
func (cr *CommentRow) createUI() {
	cr.authorLabel = widget.NewLabel(cr.entry.GetDisplayAuthor())
	cr.authorLabel.TextStyle = fyne.TextStyle{Bold: true}

	cr.textLabel = widget.NewLabel(cr.entry.Text)
	cr.textLabel.Wrapping = fyne.TextWrapWord
}

// Entry returns the entity backing this row
func (cr *CommentRow) Entry() *model.CommentEntry {
	return cr.entry
}

// CreateRenderer creates the widget renderer
func (cr *CommentRow) CreateRenderer() fyne.WidgetRenderer {
	layout := container.NewVBox(cr.authorLabel, cr.textLabel, widget.NewSeparator())
	return widget.NewSimpleRenderer(layout)
}
