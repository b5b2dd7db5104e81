package sky

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Color anchors for the celestial cycle. Light and sky colors are clamped
// lerps between these; there is nothing else to the "lighting model".
var (
	dayColor   = mgl32.Vec3{0.53, 0.81, 0.92}
	duskColor  = mgl32.Vec3{0.98, 0.55, 0.35}
	nightColor = mgl32.Vec3{0.04, 0.05, 0.10}
)

// Cycle tracks the day/night phase. Phase 0 is midnight, 0.25 sunrise,
// 0.5 noon, 0.75 sunset.
type Cycle struct {
	phase     float64 // in [0,1)
	dayLength float64 // seconds per full cycle
}

// NewCycle creates a cycle with the given day length in seconds, starting at
// mid-morning so a fresh world is lit. Non-positive day lengths are floored so
// Advance can never divide by zero.
func NewCycle(dayLength float64) *Cycle {
	if dayLength <= 0 {
		dayLength = 1
	}
	return &Cycle{phase: 0.35, dayLength: dayLength}
}

// Advance moves the cycle forward by dt seconds, wrapping at a full day.
func (c *Cycle) Advance(dt float64) {
	c.phase += dt / c.dayLength
	c.phase -= math.Floor(c.phase)
}

// Phase returns the current phase in [0,1).
func (c *Cycle) Phase() float64 { return c.phase }

// SetPhase pins the phase, wrapping into [0,1). Used by tests and the admin
// side of the observer protocol.
func (c *Cycle) SetPhase(p float64) {
	c.phase = p - math.Floor(p)
}

// SunElevation returns the sine of the sun's altitude angle: 1 at noon,
// -1 at midnight, 0 at sunrise/sunset.
func (c *Cycle) SunElevation() float64 {
	return math.Sin(2 * math.Pi * (c.phase - 0.25))
}

// SunDirection returns the unit vector pointing from the world toward the sun.
func (c *Cycle) SunDirection() mgl32.Vec3 {
	angle := 2 * math.Pi * (c.phase - 0.25)
	return mgl32.Vec3{float32(math.Cos(angle)), float32(math.Sin(angle)), 0}
}

// SkyColor interpolates the sky color for the current phase. The blend is a
// clamped ramp on sun elevation with a dusk tint near the horizon, so the
// output varies continuously over the whole cycle.
func (c *Cycle) SkyColor() mgl32.Vec3 {
	elev := c.SunElevation()
	day := clamp01((elev + 0.2) / 0.4)
	base := lerpVec(nightColor, dayColor, float32(day))
	dusk := clamp01(1 - math.Abs(elev)/0.15)
	return lerpVec(base, duskColor, float32(dusk*0.6))
}

// AmbientIntensity returns the ambient light level in [0.08, 1].
func (c *Cycle) AmbientIntensity() float64 {
	v := clamp01((c.SunElevation() + 0.3) / 1.3)
	if v < 0.08 {
		v = 0.08
	}
	return v
}

// IsNight reports whether the sun is below the horizon.
func (c *Cycle) IsNight() bool {
	return c.SunElevation() < 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerpVec(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
