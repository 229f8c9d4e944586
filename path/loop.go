package path

import "gonum.org/v1/gonum/spatial/r3"

// defaultLoop is the flight loop: a wobbling horizontal ring with gentle climbs
// Kept mostly level so a world +Y up vector never aligns with travel
var defaultLoop = []r3.Vec{
	{X: 10.14, Y: -1.37, Z: 10.38},
	{X: 2.61, Y: 0.42, Z: 13.92},
	{X: -5.83, Y: 1.97, Z: 12.04},
	{X: -11.46, Y: 1.02, Z: 6.25},
	{X: -12.90, Y: -0.88, Z: -1.73},
	{X: -9.51, Y: -2.14, Z: -8.66},
	{X: -3.04, Y: -0.51, Z: -12.83},
	{X: 4.37, Y: 1.66, Z: -11.42},
	{X: 9.88, Y: 2.31, Z: -6.90},
	{X: 13.21, Y: 0.74, Z: -0.45},
	{X: 14.02, Y: -1.12, Z: 5.18},
}

// DefaultLoop returns a copy of the built-in control points
func DefaultLoop() []r3.Vec {
	return append([]r3.Vec(nil), defaultLoop...)
}
