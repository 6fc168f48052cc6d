package ui

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/tubeview/tubeview/internal/audit"
	"github.com/tubeview/tubeview/internal/feed"
)

func newTestGrid(t *testing.T) *VideoGridPanel {
	t.Helper()
	test.NewApp()

	panel := NewVideoGridPanel(feed.NewService(nil), NewLocalization())
	panel.Render()
	return panel
}

func TestVideoGridPanel_RenderShape(t *testing.T) {
	panel := newTestGrid(t)

	if len(panel.Cards()) != 9 {
		t.Fatalf("Expected 9 cards after render, got %d", len(panel.Cards()))
	}
	if len(panel.grid.Objects) != 9 {
		t.Errorf("Expected 9 attached objects, got %d", len(panel.grid.Objects))
	}
}

func TestVideoGridPanel_RebuildIsReentrant(t *testing.T) {
	panel := newTestGrid(t)

	// Shape holds no matter how many times the grid is rebuilt
	for i := 0; i < 5; i++ {
		panel.Rebuild()
		if len(panel.Cards()) != 9 {
			t.Fatalf("Rebuild %d: expected 9 cards, got %d", i, len(panel.Cards()))
		}
		if len(panel.grid.Objects) != 9 {
			t.Fatalf("Rebuild %d: expected 9 attached objects, got %d", i, len(panel.grid.Objects))
		}
	}
}

func TestVideoGridPanel_RebuildDiscardsOldCards(t *testing.T) {
	panel := newTestGrid(t)

	before := panel.Cards()[0]
	panel.Rebuild()
	after := panel.Cards()[0]

	if before == after {
		t.Error("Rebuild must discard and regenerate tile cards")
	}
}

func TestVideoGridPanel_ViewCountsInRange(t *testing.T) {
	panel := newTestGrid(t)

	for i := 0; i < 3; i++ {
		panel.Rebuild()
		for _, card := range panel.Cards() {
			count := card.Tile().ViewCount
			if count < feed.MinViewCount || count > feed.MaxViewCount {
				t.Errorf("View count %d outside [%d, %d]", count, feed.MinViewCount, feed.MaxViewCount)
			}
		}
	}
}

func TestVideoGridPanel_TitlesByPosition(t *testing.T) {
	panel := newTestGrid(t)

	expected := []string{
		"Video 1", "Video 2", "Video 3",
		"Video 4", "Video 5", "Video 6",
		"Video 7", "Video 8", "Video 9",
	}
	for i, card := range panel.Cards() {
		if card.Tile().Title != expected[i] {
			t.Errorf("Card %d title = %s, expected %s", i, card.Tile().Title, expected[i])
		}
	}
}

func TestVideoGridPanel_RefreshFeedIsAudited(t *testing.T) {
	panel := newTestGrid(t)

	var buf bytes.Buffer
	audit.SetOutput(&buf)
	defer audit.SetOutput(os.Stderr)

	panel.RefreshFeed()

	if !strings.Contains(buf.String(), "Action logged: update_grid called") {
		t.Errorf("Expected audit line for grid rebuild, got %q", buf.String())
	}
	if len(panel.Cards()) != 9 {
		t.Errorf("Expected 9 cards after audited refresh, got %d", len(panel.Cards()))
	}
}

func TestVideoGridPanel_SearchLogsQuery(t *testing.T) {
	panel := newTestGrid(t)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	panel.Search("cats")

	if !strings.Contains(buf.String(), "Searching videos for query: cats") {
		t.Errorf("Expected search log line, got %q", buf.String())
	}
	if len(panel.Cards()) != 9 {
		t.Error("Search must not change the grid")
	}
}
