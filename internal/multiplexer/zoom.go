package multiplexer

import "math"

// Zoom bounds, applied to every terminal surface
const (
	DefaultZoom = 1.0
	MaxZoom     = 2.0
	MinZoom     = 0.5
	ZoomStep    = 0.1
)

// Zoom is the scale factor shared by all surfaces
type Zoom struct {
	level float64
}

// NewZoom returns a zoom at DefaultZoom
func NewZoom() *Zoom {
	return &Zoom{level: DefaultZoom}
}

// Level returns the current factor
func (z *Zoom) Level() float64 {
	return z.level
}

// Percent returns the factor as a whole percentage
func (z *Zoom) Percent() int {
	return int(math.Round(z.level * 100))
}

// In raises the factor by one step
func (z *Zoom) In() float64 {
	return z.Set(z.level + ZoomStep)
}

// Out lowers the factor by one step
func (z *Zoom) Out() float64 {
	return z.Set(z.level - ZoomStep)
}

// Reset restores DefaultZoom
func (z *Zoom) Reset() float64 {
	return z.Set(DefaultZoom)
}

// Set clamps factor to [MinZoom, MaxZoom] and stores it.
// Values are rounded to two decimals so repeated steps do not drift.
func (z *Zoom) Set(factor float64) float64 {
	if math.IsNaN(factor) {
		factor = DefaultZoom
	}
	factor = math.Round(factor*100) / 100
	z.level = math.Max(MinZoom, math.Min(MaxZoom, factor))
	return z.level
}
