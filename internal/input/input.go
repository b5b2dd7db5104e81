package input

import "sync"

// Action represents a logical game action, not a physical key. The engine
// never reads devices itself; the embedding process (or the observer
// transport) feeds action state in each tick.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionSprint
	ActionToggleFlashlight
	ActionCount // sentinel for array sizing
)

// State carries per-tick input: held actions plus look deltas in degrees.
type State struct {
	Actions    [ActionCount]bool
	YawDelta   float64
	PitchDelta float64
}

// Manager tracks action state across ticks and provides edge detection.
type Manager struct {
	mu sync.RWMutex

	currentState [ActionCount]bool
	prevState    [ActionCount]bool

	yawDelta   float64
	pitchDelta float64
}

// NewManager creates an input manager with everything released.
func NewManager() *Manager {
	return &Manager{}
}

// BeginTick installs the state for the upcoming tick, shifting the previous
// state for edge detection.
func (m *Manager) BeginTick(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prevState = m.currentState
	m.currentState = s.Actions
	m.yawDelta = s.YawDelta
	m.pitchDelta = s.PitchDelta
}

// IsActive reports whether the action is held this tick.
func (m *Manager) IsActive(a Action) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState[a]
}

// JustPressed reports whether the action transitioned to held this tick.
func (m *Manager) JustPressed(a Action) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState[a] && !m.prevState[a]
}

// LookDelta returns this tick's yaw and pitch deltas in degrees.
func (m *Manager) LookDelta() (yaw, pitch float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.yawDelta, m.pitchDelta
}
