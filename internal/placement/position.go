// Package placement computes where the widget window opens and asks the
// host to move it there once at startup.
package placement

// Widget footprint in pixels
const (
	WidgetWidth  = 400
	WidgetHeight = 400
)

// Right edge lands at 95% of the screen width, bottom at 80% of the height.
const (
	rightEdgeFraction  = 0.95
	bottomEdgeFraction = 0.80
)

// Geometry is a monitor's size, read once from the host
type Geometry struct {
	Width  float64
	Height float64
}

// Size is a widget footprint
type Size struct {
	Width  float64
	Height float64
}

// Position is a top-left window coordinate in the host's window units
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DefaultWidgetSize returns the 400x400 widget footprint
func DefaultWidgetSize() Size {
	return Size{Width: WidgetWidth, Height: WidgetHeight}
}

// ComputePosition places the widget near the bottom-right of the screen.
// Degenerate geometry is not corrected and may yield negative coordinates.
func ComputePosition(screen Geometry, widget Size) Position {
	// float64() rounds the product before subtracting so no arch fuses it into an FMA
	x := float64(screen.Width*rightEdgeFraction) - widget.Width
	y := float64(screen.Height*bottomEdgeFraction) - widget.Height
	return Position{X: int(x), Y: int(y)}
}
