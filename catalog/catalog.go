// Package catalog holds the static descriptor tables that drive asset
// generation. Each descriptor maps to exactly one output file; the tables
// are consumed once per sweep and never mutated.
package catalog

import "time"

// Shape selects the drawing template for an image asset.
type Shape int

const (
	// ShapeBlock is a plain filled rectangle with a vertical gradient.
	ShapeBlock Shape = iota
	// ShapePlayer is a circle-plus-bar character silhouette.
	ShapePlayer
	// ShapeObstacle is an inscribed diamond.
	ShapeObstacle
	// ShapeButton is a rounded rectangle with a centered PLAY label.
	ShapeButton
	// ShapeNote is a circle with a stem.
	ShapeNote
)

func (s Shape) String() string {
	switch s {
	case ShapeBlock:
		return "block"
	case ShapePlayer:
		return "player"
	case ShapeObstacle:
		return "obstacle"
	case ShapeButton:
		return "button"
	case ShapeNote:
		return "note"
	default:
		return "unknown"
	}
}

// ImageAsset describes one placeholder image. Path is relative to the
// images root; entries under ui/ land in the UI subdirectory.
type ImageAsset struct {
	Path   string
	Width  int
	Height int
	Hex    string
	Shape  Shape
}

// AudioAsset describes one placeholder tone. Path is relative to the
// audio root.
type AudioAsset struct {
	Path      string
	Duration  time.Duration
	Frequency float64
}

// Images is the sprite and UI catalog.
var Images = []ImageAsset{
	{Path: "background.png", Width: 1920, Height: 1080, Hex: "#1a1a2e", Shape: ShapeBlock},
	{Path: "player-idle.png", Width: 80, Height: 80, Hex: "#6B46C1", Shape: ShapePlayer},
	{Path: "player-jump.png", Width: 80, Height: 80, Hex: "#8B5CF6", Shape: ShapePlayer},
	{Path: "player-run.png", Width: 640, Height: 80, Hex: "#7C3AED", Shape: ShapePlayer}, // 8 frames x 80px
	{Path: "platform.png", Width: 200, Height: 50, Hex: "#4B5563", Shape: ShapeBlock},
	{Path: "obstacle.png", Width: 60, Height: 60, Hex: "#EF4444", Shape: ShapeObstacle},
	{Path: "obstacle-pulse.png", Width: 240, Height: 60, Hex: "#F87171", Shape: ShapeObstacle}, // 4 frames x 60px
	{Path: "note-collectible.png", Width: 30, Height: 30, Hex: "#F59E0B", Shape: ShapeNote},
	{Path: "particle.png", Width: 10, Height: 10, Hex: "#FFFFFF", Shape: ShapeBlock},

	{Path: "ui/button-play.png", Width: 240, Height: 60, Hex: "#10B981", Shape: ShapeButton},
	{Path: "ui/button-pause.png", Width: 60, Height: 60, Hex: "#F59E0B", Shape: ShapeButton},
	{Path: "ui/button-menu.png", Width: 60, Height: 60, Hex: "#6B7280", Shape: ShapeButton},
	{Path: "ui/harmony-bar.png", Width: 300, Height: 20, Hex: "#059669", Shape: ShapeBlock},
	{Path: "ui/tempo-dial.png", Width: 80, Height: 80, Hex: "#EC4899", Shape: ShapeBlock},
}

// Audio is the tone catalog.
var Audio = []AudioAsset{
	{Path: "demo-track.ogg", Duration: 30 * time.Second, Frequency: 120}, // 120 BPM feel
	{Path: "menu-music.ogg", Duration: 10 * time.Second, Frequency: 220},
	{Path: "jump.ogg", Duration: 200 * time.Millisecond, Frequency: 800},
	{Path: "beat-hit.ogg", Duration: 150 * time.Millisecond, Frequency: 1000},
	{Path: "perfect-hit.ogg", Duration: 200 * time.Millisecond, Frequency: 1200},
	{Path: "collect-note.ogg", Duration: 100 * time.Millisecond, Frequency: 1500},
}

// Levels lists the level definition files to synthesize when absent,
// relative to the levels root.
var Levels = []string{
	"demo-level-2.json",
	"demo-level-3.json",
}
