package audio

import "github.com/lixenwraith/vi-tunnel/hit"

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot    SoundType = iota // Projectile fired
	SoundBoxHit                   // Projectile struck a box
	SoundWallHit                  // Projectile struck the tube wall
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundBoxHit:
		return "box-hit"
	case SoundWallHit:
		return "wall-hit"
	default:
		return "unknown"
	}
}

// ImpactSound picks the impact effect for a target kind
func ImpactSound(kind hit.Kind) SoundType {
	if kind == hit.KindBox {
		return SoundBoxHit
	}
	return SoundWallHit
}
