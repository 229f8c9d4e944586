package parameter

// Frame loop and terminal presentation
const (
	// DefaultFPS is the target frame rate of the tick loop
	DefaultFPS = 60

	// HudRows is reserved at the bottom of the screen for status text
	HudRows = 1

	// CellAspect is terminal cell height over width
	CellAspect = 2.0

	// RenderRingStride draws every Nth tube ring
	RenderRingStride = 3

	// RenderFadeDepth is the depth at which the tube fades to background
	RenderFadeDepth = 12.0

	// RenderEdgeClip drops box edges with an endpoint beyond this NDC magnitude
	RenderEdgeClip = 3.0

	// RenderMinFade keeps faded tube dots from vanishing into the background
	RenderMinFade = 0.15

	// AimNudgeStep is the NDC delta applied per arrow key press
	AimNudgeStep = 0.05

	// InputBufferSize is the capacity of the event channel between poller and loop
	InputBufferSize = 64
)

// HudColor is the status line foreground
var HudColor = [3]uint8{0x64, 0x64, 0x6e}

// CrosshairColor is the aim marker foreground
var CrosshairColor = [3]uint8{0xff, 0xff, 0xff}
