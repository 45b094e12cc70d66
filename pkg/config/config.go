package config

import "time"

// Board settings
const (
	GridSize = 20 // Cells per side, the board is always square
	InitialX = 10 // Initial snake head column
	InitialY = 10 // Initial snake head row
)

// Food placement settings
const (
	// FoodSampleAttempts bounds random sampling before falling back to
	// enumerating free cells.
	FoodSampleAttempts = 64
	// DenseBoardRatio is the occupancy (snake cells / board cells) at which
	// free cells are enumerated directly instead of sampled.
	DenseBoardRatio = 0.5
)

// Timing settings
const (
	TickInterval = 150 * time.Millisecond // One snake step
	CommandQueue = 64                     // Buffered session commands
)

// Logging defaults
const (
	LogFile       = "snake.log"
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 7
)

// Recording defaults
const (
	RecordDir    = "records"
	RecordBuffer = 1000 // Frames queued before the recorder starts dropping
)

// Web server defaults
const (
	ListenAddr = ":8080"
	StaticDir  = "web/static"
)

// Emoji characters for rendering
const (
	CharEmpty = "  " // Two spaces to match emoji width
	CharWall  = "⬜"
	CharHead  = "🟢"
	CharBody  = "🟩"
	CharFood  = "🔴"
	CharCrash = "💥"
)
