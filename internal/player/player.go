package player

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/taharazashaikh97/galli/internal/physics"
)

const (
	EyeHeight = 1.62

	WalkSpeed        = 4.3
	SprintMultiplier = 1.6

	// Horizontal velocity eases toward the wish direction at this rate so
	// stopping and turning feel damped rather than instant.
	accelRate = 10.0
)

// Player is the controlled avatar: a physics body plus look angles and the
// flashlight. One instance per session; no package-level state.
type Player struct {
	Body physics.Body

	Yaw   float64 // degrees, 0 looks along +X
	Pitch float64 // degrees, clamped to [-89, 89]

	IsSprinting bool

	Flashlight Flashlight
}

// New creates a player standing on the ground at the given X,Z.
func New(x, z float64, ground physics.HeightSampler) *Player {
	p := &Player{
		Flashlight: NewFlashlight(),
	}
	p.Body.Position = mgl64.Vec3{x, ground.HeightAt(x, z), z}
	p.Body.OnGround = true
	return p
}

// EyePosition returns the camera anchor for the rendering collaborator.
func (p *Player) EyePosition() mgl64.Vec3 {
	return p.Body.Position.Add(mgl64.Vec3{0, EyeHeight, 0})
}
