package player

import (
	"math"

	"github.com/taharazashaikh97/galli/internal/input"
	"github.com/taharazashaikh97/galli/internal/physics"
	"github.com/taharazashaikh97/galli/internal/profiling"
)

// Update applies one tick of look, movement and flashlight handling, then
// steps the body against the ground.
func (p *Player) Update(dt float64, im *input.Manager, ground physics.HeightSampler) {
	defer profiling.Track("player.Update")()

	p.updateLook(im)

	forward := 0.0
	strafe := 0.0
	if im.IsActive(input.ActionMoveForward) {
		forward++
	}
	if im.IsActive(input.ActionMoveBackward) {
		forward--
	}
	if im.IsActive(input.ActionMoveLeft) {
		strafe--
	}
	if im.IsActive(input.ActionMoveRight) {
		strafe++
	}

	p.IsSprinting = im.IsActive(input.ActionSprint) && forward > 0

	speed := WalkSpeed
	if p.IsSprinting {
		speed *= SprintMultiplier
	}

	// Wish velocity in the horizontal plane, oriented by yaw.
	yawRad := p.Yaw * math.Pi / 180
	frontX, frontZ := math.Cos(yawRad), math.Sin(yawRad)
	strafeX, strafeZ := math.Cos(yawRad+math.Pi/2), math.Sin(yawRad+math.Pi/2)

	wishX := forward*frontX + strafe*strafeX
	wishZ := forward*frontZ + strafe*strafeZ
	if l := math.Hypot(wishX, wishZ); l > 1 {
		wishX /= l
		wishZ /= l
	}

	// Ease current horizontal velocity toward the wish velocity.
	blend := 1 - math.Exp(-accelRate*dt)
	p.Body.Velocity[0] += (wishX*speed - p.Body.Velocity[0]) * blend
	p.Body.Velocity[2] += (wishZ*speed - p.Body.Velocity[2]) * blend

	if im.IsActive(input.ActionJump) {
		p.Body.Jump()
	}

	p.Body.Step(dt, ground)

	if im.JustPressed(input.ActionToggleFlashlight) {
		p.Flashlight.Toggle()
	}
	p.Flashlight.Update(dt)
}

func (p *Player) updateLook(im *input.Manager) {
	yawDelta, pitchDelta := im.LookDelta()
	p.Yaw += yawDelta
	p.Pitch += pitchDelta

	// Constrain pitch
	if p.Pitch > 89.0 {
		p.Pitch = 89.0
	}
	if p.Pitch < -89.0 {
		p.Pitch = -89.0
	}
}
