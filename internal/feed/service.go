package feed

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/tubeview/tubeview/internal/model"
)

// Grid dimensions and view count bounds
const (
	GridRows = 3
	GridCols = 3

	MinViewCount = 100
	MaxViewCount = 1_000_000

	// Title format for synthetic tiles
	TileTitleFormat = "Video %d"

	// Tile ID prefix
	TileIDPrefix = "tile-"
)

// mathRandSource adapts math/rand/v2 to IntSource.
type mathRandSource struct{}

func (mathRandSource) IntN(n int) int { return rand.IntN(n) }

// NewRandSource returns the default production randomness source.
func NewRandSource() IntSource {
	return mathRandSource{}
}

// Service generates placeholder tile pages
type Service struct {
	rng      IntSource
	onUpdate func([]*model.VideoTile) // callback for UI updates
}

// NewService creates a new feed service using the given randomness source.
// A nil source falls back to math/rand.
func NewService(rng IntSource) *Service {
	if rng == nil {
		rng = NewRandSource()
	}
	return &Service{rng: rng}
}

// SetUpdateCallback sets the callback function invoked with each generated page
func (s *Service) SetUpdateCallback(callback func([]*model.VideoTile)) {
	s.onUpdate = callback
}

// GeneratePage returns exactly GridRows*GridCols freshly generated tiles.
// Titles follow grid position (row-major, 1-based); view counts are drawn
// fresh on every call, so consecutive pages differ in content but never in
// shape.
func (s *Service) GeneratePage() []*model.VideoTile {
	tiles := make([]*model.VideoTile, 0, GridRows*GridCols)

	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			tiles = append(tiles, &model.VideoTile{
				ID:        generateTileID(),
				Title:     fmt.Sprintf(TileTitleFormat, row*GridCols+col+1),
				ViewCount: MinViewCount + s.rng.IntN(MaxViewCount-MinViewCount+1),
			})
		}
	}

	log.Printf("Generated feed page with %d tiles", len(tiles))

	if s.onUpdate != nil {
		s.onUpdate(tiles)
	}

	return tiles
}

// PageSize returns the number of tiles per generated page
func (s *Service) PageSize() int {
	return GridRows * GridCols
}

// generateTileID generates a unique tile ID using UUID v7 for better uniqueness and time ordering
func generateTileID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TileIDPrefix+"%d", time.Now().UnixNano())
	}
	return TileIDPrefix + id.String()
}
