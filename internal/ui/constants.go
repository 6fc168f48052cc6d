package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconSearch   = "🔍"
	IconClose    = "×"
)

// Text fragments
const (
	BrandName = "TubeView"
)

// Layout sizing (tiles / panels)
const (
	TileWidth       float32 = 200
	TileHeight      float32 = 150
	ThumbnailWidth  float32 = 180
	ThumbnailHeight float32 = 100

	SidebarWidth      float32 = 150
	PlayerMinHeight   float32 = 240
	CommentRowMinW    float32 = 300
	CommentEntryLines         = 3
)

// Audit action names reported on the logging side channel
const (
	ActionSearch        = "search"
	ActionUpdateGrid    = "update_grid"
	ActionSubmitComment = "submit_comment"
)
