package feed

import (
	"github.com/tubeview/tubeview/internal/model"
)

// TileSource defines the interface for the feed service.
type TileSource interface {
	SetUpdateCallback(func([]*model.VideoTile))
	GeneratePage() []*model.VideoTile
	PageSize() int
}

// IntSource yields pseudo-random integers in [0, n). The production source is
// math/rand; tests substitute a deterministic one to assert exact view counts.
type IntSource interface {
	IntN(n int) int
}
