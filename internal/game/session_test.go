package game

import (
	"math"
	"testing"

	"github.com/taharazashaikh97/galli/internal/config"
	"github.com/taharazashaikh97/galli/internal/input"
	"github.com/taharazashaikh97/galli/internal/world"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewSessionStreamsSpawnArea(t *testing.T) {
	s := newTestSession(t)

	if got := s.World.Store().Count(); got != 25 {
		t.Errorf("spawn area holds %d chunks, want 25", got)
	}
	if !s.World.Store().Has(world.ChunkCoord{}) {
		t.Error("spawn chunk not resident")
	}
	if y := s.Player.Body.Position.Y(); y != s.World.HeightAt(0, 0) {
		t.Errorf("player spawned at Y=%v, ground is %v", y, s.World.HeightAt(0, 0))
	}
	if !s.Player.Body.OnGround {
		t.Error("player spawned airborne")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a := newTestSession(t)
	b := newTestSession(t)

	var fwd input.State
	fwd.Actions[input.ActionMoveForward] = true
	for i := 0; i < 40; i++ {
		if err := a.Update(0.05, fwd); err != nil {
			t.Fatal(err)
		}
	}

	if a.Player.Body.Position.X() <= 0 {
		t.Error("session a did not move")
	}
	if b.Player.Body.Position.X() != 0 || b.Tick != 0 {
		t.Error("updating one session disturbed another")
	}
}

func TestUpdateAdvancesTickAndSky(t *testing.T) {
	s := newTestSession(t)
	phase := s.Sky.Phase()

	for i := 0; i < 10; i++ {
		if err := s.Update(0.05, input.State{}); err != nil {
			t.Fatal(err)
		}
	}
	if s.Tick != 10 {
		t.Errorf("tick counter = %d, want 10", s.Tick)
	}
	want := phase + 10*0.05/s.Settings.DayLength
	if math.Abs(s.Sky.Phase()-want) > 1e-9 {
		t.Errorf("sky phase = %v, want %v", s.Sky.Phase(), want)
	}
}

func TestUpdateStreamsAroundPlayer(t *testing.T) {
	s := newTestSession(t)

	// Teleport far enough that the spawn area is fully out of range, then tick.
	s.Player.Body.Position[0] = 1000
	if err := s.Update(0.05, input.State{}); err != nil {
		t.Fatal(err)
	}

	if got := s.World.Streamer().Center(); got != (world.ChunkCoord{X: 10, Z: 0}) {
		t.Errorf("stream center = %v, want (10,0)", got)
	}
	if s.World.Store().Has(world.ChunkCoord{}) {
		t.Error("spawn chunk survived far beyond the eviction distance")
	}
	if !s.World.Store().Has(world.ChunkCoord{X: 10, Z: 0}) {
		t.Error("chunk under the player not resident")
	}
}

func TestUpdateDrainsFlashlight(t *testing.T) {
	s := newTestSession(t)

	var toggle input.State
	toggle.Actions[input.ActionToggleFlashlight] = true
	if err := s.Update(0.05, toggle); err != nil {
		t.Fatal(err)
	}
	if !s.Player.Flashlight.On {
		t.Fatal("flashlight did not turn on")
	}

	before := s.Player.Flashlight.Battery
	for i := 0; i < 20; i++ {
		if err := s.Update(0.05, input.State{}); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.Player.Flashlight.Battery; got >= before {
		t.Errorf("battery %v did not drain from %v", got, before)
	}
}
