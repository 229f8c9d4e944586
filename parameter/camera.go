package parameter

// Camera flight along the tunnel centerline
const (
	// CameraTimeScale slows absolute time before it is mapped onto the loop
	CameraTimeScale = 0.1

	// CameraLoopPeriodMs is the scaled time for one full lap of the path
	CameraLoopPeriodMs = 10000.0

	// CameraLookAhead is the fraction of the loop the camera looks ahead of itself
	// Approximates the travel tangent without a derivative
	CameraLookAhead = 0.03

	// CameraFovY is the vertical field of view in degrees
	CameraFovY = 75.0

	// CameraNear and CameraFar bound the projection depth range
	CameraNear = 0.1
	CameraFar  = 100.0

	// CrosshairDistance is how far in front of the camera the crosshair sits in world units
	CrosshairDistance = 1.0
)
