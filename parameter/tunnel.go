package parameter

// Spline sampling
const (
	// SplineArcDivisions is the number of samples in the arc-length table
	SplineArcDivisions = 1000
)

// Tube mesh, matches the decorative wireframe
const (
	TubeTubularSegments = 222
	TubeRadius          = 0.65
	TubeRadialSegments  = 16
)

// Target boxes
const (
	// BoxCount is the default number of boxes placed along the loop
	BoxCount = 55

	// BoxSize is the edge length of a target box
	BoxSize = 0.075

	// BoxParamJitter randomizes box placement along the loop
	BoxParamJitter = 0.1

	// BoxOffsetBias centers lateral jitter: offset = rand - BoxOffsetBias
	BoxOffsetBias = 0.4

	// BoxHueBase is the hue at loop start; hue = BoxHueBase - p
	BoxHueBase = 0.7
)

// TubeColor is the tube wireframe and impact color
var TubeColor = [3]uint8{0x80, 0x40, 0xff}
