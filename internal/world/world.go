package world

import (
	"github.com/taharazashaikh97/galli/internal/config"
	"github.com/taharazashaikh97/galli/internal/terrain"
)

// World wires the heightfield, classifier, generator, store and streamer into
// one instance. Nothing in here is package-global, so independent worlds can
// coexist (and tests can build throwaway ones).
type World struct {
	settings   config.Settings
	classifier *terrain.Classifier
	field      *terrain.HeightField
	gen        *Generator
	store      *ChunkStore
	streamer   *Streamer
}

// New builds a world from settings.
func New(settings config.Settings) *World {
	classifier := terrain.NewClassifier(settings.BiomeThreshold)
	field := terrain.NewHeightField(classifier)
	gen := NewGenerator(settings.Seed, settings.ChunkSize, settings.GridResolution,
		settings.WaterLevel, settings.RoadMargin, field, classifier)
	store := NewChunkStore(gen)
	streamer := NewStreamer(store, settings.ChunkSize, settings.RenderDistance, settings.EvictDistance())

	return &World{
		settings:   settings,
		classifier: classifier,
		field:      field,
		gen:        gen,
		store:      store,
		streamer:   streamer,
	}
}

// Tick streams chunks around the viewpoint. Call once per simulation tick.
func (w *World) Tick(viewX, viewZ float64) error {
	return w.streamer.Tick(viewX, viewZ)
}

// HeightAt answers the ground query for physics and decoration placement by
// sampling the heightfield directly, consistent with chunk surfaces.
func (w *World) HeightAt(worldX, worldZ float64) float64 {
	return w.field.Elevation(worldX, worldZ)
}

// BiomeAt returns the biome at absolute world coordinates.
func (w *World) BiomeAt(worldX, worldZ float64) *terrain.Biome {
	return w.classifier.Classify(worldX, worldZ)
}

// Store exposes the chunk store to the transport layer.
func (w *World) Store() *ChunkStore { return w.store }

// Streamer exposes the streamer so callers can register load hooks.
func (w *World) Streamer() *Streamer { return w.streamer }

// Settings returns the settings the world was built with.
func (w *World) Settings() config.Settings { return w.settings }
