package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/taharazashaikh97/galli/internal/profiling"
	"github.com/taharazashaikh97/galli/internal/terrain"
)

// ErrInvalidViewpoint is returned when a tick receives a non-finite viewpoint
// coordinate. Letting NaN through would silently corrupt the chunk key space.
var ErrInvalidViewpoint = errors.New("world: viewpoint coordinate is not finite")

// Streamer keeps the chunk set around a moving viewpoint resident. Driven once
// per simulation tick; generation is synchronous within the tick.
type Streamer struct {
	store      *ChunkStore
	size       float64
	renderDist int // Chebyshev radius of chunks kept resident
	evictDist  int // chunks beyond this radius are released

	center ChunkCoord

	// onLoad fires for chunks created during a tick, after they are resident.
	onLoad func(*Chunk)
}

// NewStreamer creates a streamer over the given store.
func NewStreamer(store *ChunkStore, size float64, renderDist, evictDist int) *Streamer {
	return &Streamer{
		store:      store,
		size:       size,
		renderDist: renderDist,
		evictDist:  evictDist,
	}
}

// SetLoadFunc registers the hook called for each newly generated chunk.
func (s *Streamer) SetLoadFunc(fn func(*Chunk)) {
	s.onLoad = fn
}

// Center returns the chunk coordinate of the last tick's viewpoint.
func (s *Streamer) Center() ChunkCoord {
	return s.center
}

// Tick converts the viewpoint position to a center chunk coordinate, ensures
// every chunk within the render distance (a (2d+1)^2 square), and evicts
// chunks beyond the eviction distance.
func (s *Streamer) Tick(viewX, viewZ float64) error {
	defer profiling.Track("world.Streamer.Tick")()

	if !isFinite(viewX) || !isFinite(viewZ) {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidViewpoint, viewX, viewZ)
	}

	center := ChunkCoord{
		X: terrain.ChunkIndexAt(viewX, s.size),
		Z: terrain.ChunkIndexAt(viewZ, s.size),
	}
	s.center = center

	for dz := -s.renderDist; dz <= s.renderDist; dz++ {
		for dx := -s.renderDist; dx <= s.renderDist; dx++ {
			coord := ChunkCoord{X: center.X + dx, Z: center.Z + dz}
			if s.store.Has(coord) {
				continue
			}
			chunk := s.store.Ensure(coord)
			if s.onLoad != nil {
				s.onLoad(chunk)
			}
		}
	}

	s.store.EvictOutside(center, s.evictDist)
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
