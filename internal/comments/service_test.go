package comments

import (
	"testing"

	"github.com/tubeview/tubeview/internal/model"
)

func TestNewService(t *testing.T) {
	service := NewService()

	if service.Len() != 0 {
		t.Errorf("Expected empty store, got %d entries", service.Len())
	}
}

func TestSeed(t *testing.T) {
	service := NewService()
	service.Seed()

	entries := service.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 seed entries, got %d", len(entries))
	}

	if entries[0].Author != "User1" || entries[0].Text != "Great video!" {
		t.Errorf("Unexpected first seed entry: %s / %s", entries[0].Author, entries[0].Text)
	}

	if entries[1].Author != "User2" || entries[1].Text != "Very informative, thanks for sharing!" {
		t.Errorf("Unexpected second seed entry: %s / %s", entries[1].Author, entries[1].Text)
	}
}

func TestAdd(t *testing.T) {
	service := NewService()
	service.Seed()

	entry := service.Add("Alice", "Hi")
	if entry == nil {
		t.Fatal("Expected entry, got nil")
	}

	entries := service.All()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries after add, got %d", len(entries))
	}

	// Seed entries are unchanged and the new entry comes last
	if entries[0].Author != "User1" || entries[1].Author != "User2" {
		t.Error("Seed entries changed after Add")
	}
	if entries[2].Author != "Alice" || entries[2].Text != "Hi" {
		t.Errorf("Expected last entry Alice/Hi, got %s/%s", entries[2].Author, entries[2].Text)
	}
}

func TestSubmit(t *testing.T) {
	service := NewService()
	service.Seed()

	entry, ok := service.Submit("Nice!", "You")
	if !ok {
		t.Fatal("Expected submission to be accepted")
	}

	if entry.Author != "You" || entry.Text != "Nice!" {
		t.Errorf("Expected entry You/Nice!, got %s/%s", entry.Author, entry.Text)
	}

	if service.Len() != 3 {
		t.Errorf("Expected 3 entries after submit, got %d", service.Len())
	}
}

func TestSubmit_TrimsWhitespace(t *testing.T) {
	service := NewService()

	entry, ok := service.Submit("  Nice!  \n", "You")
	if !ok {
		t.Fatal("Expected submission to be accepted")
	}

	if entry.Text != "Nice!" {
		t.Errorf("Expected trimmed text 'Nice!', got %q", entry.Text)
	}
}

func TestSubmit_BlankIsNoOp(t *testing.T) {
	service := NewService()
	service.Seed()

	for _, raw := range []string{"", "   ", "\t\n"} {
		entry, ok := service.Submit(raw, "You")
		if ok {
			t.Errorf("Submit(%q) should be rejected", raw)
		}
		if entry != nil {
			t.Errorf("Submit(%q) should return nil entry", raw)
		}
	}

	if service.Len() != 2 {
		t.Errorf("Blank submissions must not change the list, got %d entries", service.Len())
	}
}

func TestSetUpdateCallback(t *testing.T) {
	service := NewService()

	var received *model.CommentEntry
	service.SetUpdateCallback(func(entry *model.CommentEntry) {
		received = entry
	})

	service.Add("Alice", "Hi")
	if received == nil {
		t.Fatal("Expected update callback to fire")
	}
	if received.Author != "Alice" {
		t.Errorf("Expected callback entry author 'Alice', got '%s'", received.Author)
	}

	// Rejected submissions must not fire the callback
	received = nil
	service.Submit("   ", "You")
	if received != nil {
		t.Error("Blank submission should not fire update callback")
	}
}

func TestGenerateCommentID(t *testing.T) {
	id1 := generateCommentID()
	id2 := generateCommentID()

	if id1 == id2 {
		t.Error("Expected unique comment IDs")
	}
}
