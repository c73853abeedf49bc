package constants

// Terminal projection: one cell covers PixelsPerColumn x PixelsPerRow game pixels,
// rendered as two half-block sub-pixels stacked vertically
const (
	PixelsPerColumn = 10
	PixelsPerRow    = 20
	PixelsPerSubRow = PixelsPerRow / 2
)

// StatusBarHeight is the number of terminal rows below the road
const StatusBarHeight = 1

// Game-over overlay
const (
	GameOverText      = "GAME OVER: %d"
	RestartText       = "Press R to restart"
	RestartPromptGapY = 50 // pixels below the screen centre
	OverlayPaddingX   = 2  // cells either side of overlay text
)

// HalfBlock draws the top sub-pixel as foreground and the bottom as background
const HalfBlock = '▀'
