package input

import "testing"

func TestJustPressedEdges(t *testing.T) {
	m := NewManager()

	var held State
	held.Actions[ActionJump] = true

	m.BeginTick(held)
	if !m.IsActive(ActionJump) {
		t.Error("jump not active on press tick")
	}
	if !m.JustPressed(ActionJump) {
		t.Error("press tick not reported as just pressed")
	}

	m.BeginTick(held)
	if m.JustPressed(ActionJump) {
		t.Error("held action reported as just pressed")
	}

	m.BeginTick(State{})
	if m.IsActive(ActionJump) || m.JustPressed(ActionJump) {
		t.Error("released action still reported")
	}

	m.BeginTick(held)
	if !m.JustPressed(ActionJump) {
		t.Error("re-press not detected")
	}
}

func TestLookDeltaPerTick(t *testing.T) {
	m := NewManager()
	m.BeginTick(State{YawDelta: 3, PitchDelta: -1.5})
	yaw, pitch := m.LookDelta()
	if yaw != 3 || pitch != -1.5 {
		t.Errorf("LookDelta = (%v, %v), want (3, -1.5)", yaw, pitch)
	}

	// Deltas are per tick, not accumulated.
	m.BeginTick(State{})
	yaw, pitch = m.LookDelta()
	if yaw != 0 || pitch != 0 {
		t.Errorf("LookDelta = (%v, %v) after empty tick, want zeros", yaw, pitch)
	}
}
