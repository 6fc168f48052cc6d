package comments

import (
	"github.com/tubeview/tubeview/internal/model"
)

// Store defines the interface for the comment store service.
type Store interface {
	SetUpdateCallback(func(*model.CommentEntry))
	Seed()
	Add(author, text string) *model.CommentEntry
	Submit(raw, author string) (*model.CommentEntry, bool)
	All() []*model.CommentEntry
	Len() int
}
