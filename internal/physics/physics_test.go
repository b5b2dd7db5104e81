package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// flatGround is a constant-height sampler for tests.
type flatGround float64

func (f flatGround) HeightAt(x, z float64) float64 { return float64(f) }

func TestFallAndLand(t *testing.T) {
	b := Body{Position: mgl64.Vec3{0, 10, 0}}
	for i := 0; i < 400; i++ {
		b.Step(0.05, flatGround(0))
	}
	if !b.OnGround {
		t.Fatal("body never landed")
	}
	if b.Position.Y() != 0 {
		t.Errorf("resting Y = %v, want 0 (snapped to ground)", b.Position.Y())
	}
	if b.Velocity.Y() != 0 {
		t.Errorf("resting vertical velocity = %v, want 0", b.Velocity.Y())
	}
}

func TestTerminalVelocity(t *testing.T) {
	b := Body{Position: mgl64.Vec3{0, 1e6, 0}}
	for i := 0; i < 100; i++ {
		b.Step(0.05, flatGround(0))
	}
	if b.Velocity.Y() < TerminalVelocity {
		t.Errorf("velocity %v exceeded terminal velocity %v", b.Velocity.Y(), TerminalVelocity)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	b := Body{Position: mgl64.Vec3{0, 5, 0}}
	b.Jump()
	if b.Velocity.Y() != 0 {
		t.Error("airborne jump changed velocity")
	}

	b.Position[1] = 0
	b.OnGround = true
	b.Jump()
	if b.Velocity.Y() != JumpVelocity {
		t.Errorf("grounded jump velocity = %v, want %v", b.Velocity.Y(), JumpVelocity)
	}
	if b.OnGround {
		t.Error("body still grounded after jumping")
	}
}

func TestJumpArcReturnsToGround(t *testing.T) {
	b := Body{Position: mgl64.Vec3{0, 0, 0}, OnGround: true}
	b.Jump()

	peak := 0.0
	for i := 0; i < 200; i++ {
		b.Step(0.02, flatGround(0))
		if y := b.Position.Y(); y > peak {
			peak = y
		}
		if b.OnGround {
			break
		}
	}
	if !b.OnGround {
		t.Fatal("jump never came back down")
	}
	if peak <= 0.5 {
		t.Errorf("jump peak %v, expected a real arc", peak)
	}
}

func TestGroundSnapOnGentleSlope(t *testing.T) {
	// Walking downhill within the snap distance keeps the body grounded.
	b := Body{Position: mgl64.Vec3{0, 0, 0}, OnGround: true}
	b.Velocity[0] = 2

	ground := func(x float64) float64 { return -0.05 * x }
	for i := 0; i < 50; i++ {
		b.Step(0.05, slopeGround{slope: ground})
		if !b.OnGround {
			t.Fatalf("step %d: lost ground contact on a gentle slope (y=%v)", i, b.Position.Y())
		}
	}
	wantY := ground(b.Position.X())
	if math.Abs(b.Position.Y()-wantY) > 1e-9 {
		t.Errorf("Y = %v, ground is %v", b.Position.Y(), wantY)
	}
}

type slopeGround struct{ slope func(x float64) float64 }

func (s slopeGround) HeightAt(x, z float64) float64 { return s.slope(x) }

func TestFiniteDetectsNaN(t *testing.T) {
	b := Body{Position: mgl64.Vec3{0, 0, 0}}
	if !b.Finite() {
		t.Error("zero body reported non-finite")
	}
	b.Position[1] = math.NaN()
	if b.Finite() {
		t.Error("NaN position reported finite")
	}
	b.Position[1] = math.Inf(1)
	if b.Finite() {
		t.Error("Inf position reported finite")
	}
}
