package parameter

// Projectile travel and explosion tuning
const (
	// ProjectileSpeed is world units advanced per tick while traveling
	ProjectileSpeed = 0.5

	// ProjectileImpactRadius triggers the explosion when distance to impact drops below it
	ProjectileImpactRadius = 0.5

	// ProjectileFadeFactor multiplies opacity each exploding tick
	ProjectileFadeFactor = 0.85

	// ProjectileGrowStep is added to scale each exploding tick
	ProjectileGrowStep = 0.2

	// ProjectileFadeEpsilon ends the explosion once opacity is at or below it
	ProjectileFadeEpsilon = 0.01

	// ProjectileDeadScale is the clamped scale of a finished explosion
	ProjectileDeadScale = 0.01

	// ProjectileSpread is the default aim jitter (0 = pinpoint)
	ProjectileSpread = 0.0
)

// ProjectileColor is the bolt color before impact (0xffcc00)
var ProjectileColor = [3]uint8{0xff, 0xcc, 0x00}
