package model

import (
	"strings"
	"time"
)

// Seed content present in the comment list before any user interaction
const (
	SeedAuthor1 = "User1"
	SeedText1   = "Great video!"

	SeedAuthor2 = "User2"
	SeedText2   = "Very informative, thanks for sharing!"
)

// CommentEntry represents a single comment in the comment list
type CommentEntry struct {
	ID       string
	Author   string
	Text     string
	PostedAt time.Time // when the entry was appended
}

// TrimComment returns the comment text with surrounding whitespace removed
func TrimComment(text string) string {
	return strings.TrimSpace(text)
}

// IsBlankComment reports whether the text is empty after trimming.
// Blank submissions are silently ignored by the comments service.
func IsBlankComment(text string) bool {
	return TrimComment(text) == ""
}

// GetDisplayAuthor returns the author, falling back to "Anonymous" when unset
func (ce *CommentEntry) GetDisplayAuthor() string {
	if ce.Author != "" {
		return ce.Author
	}
	return "Anonymous"
}
