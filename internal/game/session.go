package game

import (
	"github.com/taharazashaikh97/galli/internal/config"
	"github.com/taharazashaikh97/galli/internal/input"
	"github.com/taharazashaikh97/galli/internal/player"
	"github.com/taharazashaikh97/galli/internal/profiling"
	"github.com/taharazashaikh97/galli/internal/sky"
	"github.com/taharazashaikh97/galli/internal/world"
)

// Session owns one world instance and everything simulated inside it. All
// mutable state lives here rather than in package globals, so independent
// sessions can run side by side.
type Session struct {
	Settings config.Settings
	World    *world.World
	Player   *player.Player
	Sky      *sky.Cycle
	Input    *input.Manager

	Tick uint64
}

// groundSampler adapts the world's ground query to physics.HeightSampler.
type groundSampler struct{ w *world.World }

func (g groundSampler) HeightAt(x, z float64) float64 { return g.w.HeightAt(x, z) }

// NewSession builds a session from settings: world, sky cycle, input manager,
// and the player spawned on the ground at the origin with its surroundings
// streamed in.
func NewSession(settings config.Settings) (*Session, error) {
	w := world.New(settings)
	if err := w.Tick(0, 0); err != nil {
		return nil, err
	}

	return &Session{
		Settings: settings,
		World:    w,
		Player:   player.New(0, 0, groundSampler{w}),
		Sky:      sky.NewCycle(settings.DayLength),
		Input:    input.NewManager(),
	}, nil
}

// Update runs one cooperative tick: player physics, chunk streaming around
// the new position, then the celestial cycle. Call once per simulation tick;
// ticking faster or slower only changes how promptly chunks appear.
func (s *Session) Update(dt float64, in input.State) error {
	profiling.ResetTick()
	defer profiling.Track("game.Session.Update")()

	s.Input.BeginTick(in)
	s.Player.Update(dt, s.Input, groundSampler{s.World})

	pos := s.Player.Body.Position
	if err := s.World.Tick(pos.X(), pos.Z()); err != nil {
		return err
	}

	s.Sky.Advance(dt)
	s.Tick++
	return nil
}
