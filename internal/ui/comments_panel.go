package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/tubeview/tubeview/internal/audit"
	"github.com/tubeview/tubeview/internal/comments"
	"github.com/tubeview/tubeview/internal/config"
	"github.com/tubeview/tubeview/internal/model"
)

// CommentsPanel renders the comment input, submit control, and the
// append-only comment list. Storage semantics live in the comments service;
// this panel only mirrors appended entries as visual rows.
type CommentsPanel struct {
	store        comments.Store
	settings     *config.Settings
	localization *Localization

	input     *widget.Entry
	submitBtn *widget.Button
	list      *fyne.Container
	content   fyne.CanvasObject

	// audit-wrapped submit action, applied once at construction
	submitAction func()
}

// NewCommentsPanel creates the comments panel backed by the given store
func NewCommentsPanel(store comments.Store, settings *config.Settings, localization *Localization) *CommentsPanel {
	p := &CommentsPanel{
		store:        store,
		settings:     settings,
		localization: localization,
	}
	p.submitAction = audit.Logged(ActionSubmitComment, p.Submit)
	return p
}

// Render builds the input, submit control, and list container, then seeds the
// two fixed sample comments. Invoked exactly once at startup.
func (p *CommentsPanel) Render() {
	heading := widget.NewLabelWithStyle(p.localization.GetText(KeyComments), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	p.input = widget.NewMultiLineEntry()
	p.input.SetPlaceHolder(p.localization.GetText(KeyCommentHint))
	p.input.SetMinRowsVisible(CommentEntryLines)

	p.submitBtn = widget.NewButton(p.localization.GetText(KeySubmitComment), p.submitAction)

	p.list = container.NewVBox()

	p.content = container.NewVBox(heading, p.input, container.NewHBox(p.submitBtn), p.list)

	// Every appended entry renders through the store callback, seeds included
	p.store.SetUpdateCallback(p.onCommentAdded)
	p.store.Seed()

	log.Printf("Comments panel rendered with %d seed entries", p.store.Len())
}

// Submit reads the current input text and delegates trim and blank-no-op
// semantics to the store. The input is cleared only when an entry was
// appended. Safe to invoke repeatedly.
func (p *CommentsPanel) Submit() {
	entry, ok := p.store.Submit(p.input.Text, p.settings.GetCommentAuthor())
	if !ok {
		return
	}

	log.Printf("Comment submitted: id=%s author=%s", entry.ID, entry.Author)
	p.input.SetText("")
}

// AddComment unconditionally appends one entry; the visual row is added by
// the store callback.
func (p *CommentsPanel) AddComment(author, text string) {
	p.store.Add(author, text)
}

// Rows returns the currently attached comment rows in insertion order
func (p *CommentsPanel) Rows() []*CommentRow {
	rows := make([]*CommentRow, 0, len(p.list.Objects))
	for _, obj := range p.list.Objects {
		if row, ok := obj.(*CommentRow); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// Content returns the panel's root canvas object
func (p *CommentsPanel) Content() fyne.CanvasObject {
	return p.content
}

// onCommentAdded renders the visual block for an appended entry
func (p *CommentsPanel) onCommentAdded(entry *model.CommentEntry) {
	p.list.Add(NewCommentRow(entry))
	p.list.Refresh()
}

// refreshTexts updates panel texts with the current language
func (p *CommentsPanel) refreshTexts() {
	if p.input == nil || p.submitBtn == nil {
		return
	}
	p.input.SetPlaceHolder(p.localization.GetText(KeyCommentHint))
	p.submitBtn.SetText(p.localization.GetText(KeySubmitComment))
}
