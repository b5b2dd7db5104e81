package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	Gravity          = 24.0
	TerminalVelocity = -60.0
	JumpVelocity     = 8.5

	// snapDistance is how far above the ground the body may float and still be
	// pulled down onto it. Keeps the avatar glued to the surface on downhill
	// slopes instead of skipping.
	snapDistance = 0.25
)

// HeightSampler answers the ground query for a world-plane coordinate. It must
// be consistent with the surface geometry handed to the renderer.
type HeightSampler interface {
	HeightAt(worldX, worldZ float64) float64
}

// Body is a point body with vertical physics against a heightfield.
type Body struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	OnGround bool
}

// Step integrates gravity over dt and resolves the body against the ground.
// Horizontal velocity is applied as-is; vertical motion is clamped to the
// surface height at the new X,Z.
func (b *Body) Step(dt float64, ground HeightSampler) {
	b.Velocity[1] -= Gravity * dt
	if b.Velocity[1] < TerminalVelocity {
		b.Velocity[1] = TerminalVelocity
	}

	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	groundY := ground.HeightAt(b.Position.X(), b.Position.Z())
	switch {
	case b.Position.Y() <= groundY:
		// Landed (or clipped into a rising slope).
		b.Position[1] = groundY
		b.Velocity[1] = 0
		b.OnGround = true
	case b.OnGround && b.Velocity[1] <= 0 && b.Position.Y()-groundY <= snapDistance:
		// Close enough to the ground while not moving upward: stick.
		b.Position[1] = groundY
		b.Velocity[1] = 0
	default:
		b.OnGround = false
	}
}

// Jump gives the body upward velocity if it is grounded.
func (b *Body) Jump() {
	if !b.OnGround {
		return
	}
	b.Velocity[1] = JumpVelocity
	b.OnGround = false
}

// Finite reports whether the body position contains only finite components.
func (b *Body) Finite() bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(b.Position[i]) || math.IsInf(b.Position[i], 0) {
			return false
		}
	}
	return true
}
