package feed

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tubeview/tubeview/internal/model"
)

// stubIntSource returns a fixed sequence of values, cycling when exhausted.
type stubIntSource struct {
	values []int
	index  int
}

func (s *stubIntSource) IntN(n int) int {
	v := s.values[s.index%len(s.values)]
	s.index++
	return v % n
}

func TestNewService(t *testing.T) {
	service := NewService(nil)

	if service.rng == nil {
		t.Error("Expected nil randomness source to fall back to default")
	}

	if service.PageSize() != GridRows*GridCols {
		t.Errorf("Expected page size %d, got %d", GridRows*GridCols, service.PageSize())
	}
}

func TestGeneratePage_Shape(t *testing.T) {
	service := NewService(nil)

	// The page shape must hold no matter how many times a page is generated
	for i := 0; i < 5; i++ {
		tiles := service.GeneratePage()
		if len(tiles) != 9 {
			t.Fatalf("Generation %d: expected exactly 9 tiles, got %d", i, len(tiles))
		}

		for pos, tile := range tiles {
			expected := fmt.Sprintf(TileTitleFormat, pos+1)
			if tile.Title != expected {
				t.Errorf("Tile %d title = %s, expected %s", pos, tile.Title, expected)
			}
		}
	}
}

func TestGeneratePage_ViewCountBounds(t *testing.T) {
	service := NewService(nil)

	for i := 0; i < 3; i++ {
		for _, tile := range service.GeneratePage() {
			if tile.ViewCount < MinViewCount || tile.ViewCount > MaxViewCount {
				t.Errorf("View count %d outside [%d, %d]", tile.ViewCount, MinViewCount, MaxViewCount)
			}
		}
	}
}

func TestGeneratePage_DeterministicSource(t *testing.T) {
	// With a deterministic source the view counts are exact
	service := NewService(&stubIntSource{values: []int{0, 1, 2, 3, 4, 5, 6, 7, 8}})

	tiles := service.GeneratePage()
	for pos, tile := range tiles {
		expected := MinViewCount + pos
		if tile.ViewCount != expected {
			t.Errorf("Tile %d view count = %d, expected %d", pos, tile.ViewCount, expected)
		}
	}
}

func TestGeneratePage_FreshDraws(t *testing.T) {
	service := NewService(&stubIntSource{values: []int{10, 20}})

	first := service.GeneratePage()
	second := service.GeneratePage()

	// Counts are drawn fresh each call; with this stub the sequence simply
	// continues, so both pages stay in range but are not required to match.
	for i := range first {
		for _, tile := range []*model.VideoTile{first[i], second[i]} {
			if tile.ViewCount < MinViewCount || tile.ViewCount > MaxViewCount {
				t.Errorf("View count %d outside bounds", tile.ViewCount)
			}
		}
	}
}

func TestGeneratePage_UniqueIDs(t *testing.T) {
	service := NewService(nil)

	seen := make(map[string]bool)
	for _, tile := range service.GeneratePage() {
		if tile.ID == "" {
			t.Error("Expected non-empty tile ID")
		}
		if !strings.HasPrefix(tile.ID, TileIDPrefix) {
			t.Errorf("Tile ID %s missing prefix %s", tile.ID, TileIDPrefix)
		}
		if seen[tile.ID] {
			t.Errorf("Duplicate tile ID: %s", tile.ID)
		}
		seen[tile.ID] = true
	}
}

func TestSetUpdateCallback(t *testing.T) {
	service := NewService(nil)

	var received []*model.VideoTile
	service.SetUpdateCallback(func(tiles []*model.VideoTile) {
		received = tiles
	})

	tiles := service.GeneratePage()
	if len(received) != len(tiles) {
		t.Errorf("Expected callback to receive %d tiles, got %d", len(tiles), len(received))
	}
}

func TestGenerateTileID(t *testing.T) {
	id1 := generateTileID()
	id2 := generateTileID()

	if id1 == id2 {
		t.Error("Expected unique tile IDs")
	}
}
