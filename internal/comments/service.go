package comments

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tubeview/tubeview/internal/model"
)

// Comment ID prefix
const (
	CommentIDPrefix = "comment-"
)

// Service holds the append-only comment list
type Service struct {
	entries      []*model.CommentEntry
	entriesMutex sync.RWMutex
	onUpdate     func(*model.CommentEntry) // callback for UI updates
}

// NewService creates a new, empty comment store
func NewService() *Service {
	return &Service{}
}

// SetUpdateCallback sets the callback function invoked for each appended entry
func (s *Service) SetUpdateCallback(callback func(*model.CommentEntry)) {
	s.onUpdate = callback
}

// Seed appends the two fixed sample comments. Intended to be called once at
// panel render time, before any user interaction.
func (s *Service) Seed() {
	s.Add(model.SeedAuthor1, model.SeedText1)
	s.Add(model.SeedAuthor2, model.SeedText2)
}

// Add unconditionally appends one entry and returns it. No validation is
// applied; callers wanting trim/blank semantics go through Submit.
func (s *Service) Add(author, text string) *model.CommentEntry {
	entry := &model.CommentEntry{
		ID:       generateCommentID(),
		Author:   author,
		Text:     text,
		PostedAt: time.Now(),
	}

	s.entriesMutex.Lock()
	s.entries = append(s.entries, entry)
	count := len(s.entries)
	s.entriesMutex.Unlock()

	log.Printf("Comment appended: id=%s author=%s total=%d", entry.ID, entry.Author, count)

	if s.onUpdate != nil {
		s.onUpdate(entry)
	}

	return entry
}

// Submit trims raw input and appends an entry attributed to author. Blank
// input (empty or whitespace-only) is a silent no-op: the returned bool is
// false and the list is left unchanged.
func (s *Service) Submit(raw, author string) (*model.CommentEntry, bool) {
	if model.IsBlankComment(raw) {
		log.Printf("Ignoring blank comment submission")
		return nil, false
	}

	return s.Add(author, model.TrimComment(raw)), true
}

// All returns a snapshot of the entries in insertion order
func (s *Service) All() []*model.CommentEntry {
	s.entriesMutex.RLock()
	defer s.entriesMutex.RUnlock()

	entries := make([]*model.CommentEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Len returns the number of stored entries
func (s *Service) Len() int {
	s.entriesMutex.RLock()
	defer s.entriesMutex.RUnlock()
	return len(s.entries)
}

// generateCommentID generates a unique comment ID using UUID v7 for better uniqueness and time ordering
func generateCommentID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(CommentIDPrefix+"%d", time.Now().UnixNano())
	}
	return CommentIDPrefix + id.String()
}
