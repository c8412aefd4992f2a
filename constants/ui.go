package constants

// UI Layout Constants
const (
	// TileWidth is the number of terminal columns per board tile
	TileWidth = 2

	// BoardOffsetX, BoardOffsetY is the screen position of the board border
	BoardOffsetX = 1
	BoardOffsetY = 1

	// StatusLines is the number of rows reserved below the board
	StatusLines = 4
)

// UI Text
const (
	TextPaused       = "PAUSED"
	TextResumeHint   = "Press ENTER to resume"
	TextGameOver     = "GAME OVER"
	TextRestartHint  = "Press SPACE to restart"
	TextStartHint    = "Press an arrow key to start"
	TextTooSmall     = "Terminal too small for the board"
	TextTooSmallHint = "Resize the window or lower -grid"
	TextStartFailed  = "Cannot start the game"
	TextExitHint     = "Press any key to exit"
)

// RequiredScreenSize returns the minimal terminal size that fits a board of gridSize tiles
func RequiredScreenSize(gridSize int) (width, height int) {
	width = BoardOffsetX + gridSize*TileWidth + 2
	height = BoardOffsetY + gridSize + 2 + StatusLines
	return width, height
}
