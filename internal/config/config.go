package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds every tunable of the engine. Loaded from a YAML file at
// startup; zero values are replaced by defaults so a partial file is fine.
type Settings struct {
	Seed int64 `yaml:"seed"`

	// Terrain layout
	ChunkSize      float64 `yaml:"chunk_size"`      // world units per chunk edge
	GridResolution int     `yaml:"grid_resolution"` // subdivisions per chunk edge
	BiomeThreshold float64 `yaml:"biome_threshold"` // worldX distance to biome switch
	WaterLevel     float64 `yaml:"water_level"`
	RoadMargin     float64 `yaml:"road_margin"` // half-width of the corridor at worldX=0

	// Streaming
	RenderDistance int `yaml:"render_distance"` // Chebyshev radius in chunks
	EvictMargin    int `yaml:"evict_margin"`    // extra chunks kept beyond render distance

	// Simulation
	TickRateHz int     `yaml:"tick_rate_hz"`
	DayLength  float64 `yaml:"day_length_sec"`

	// Observer transport
	ListenAddr        string `yaml:"listen_addr"`
	CompressThreshold int    `yaml:"compress_threshold"` // bytes; larger payloads are zstd-compressed
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Seed:              1,
		ChunkSize:         100,
		GridResolution:    20,
		BiomeThreshold:    300,
		WaterLevel:        -4,
		RoadMargin:        8,
		RenderDistance:    2,
		EvictMargin:       1,
		TickRateHz:        20,
		DayLength:         120,
		ListenAddr:        ":8391",
		CompressThreshold: 4096,
	}
}

// Load reads settings from a YAML file, filling unset fields with defaults.
func Load(path string) (Settings, error) {
	s := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("config %s: %w", path, err)
	}
	s.Normalize()
	return s, nil
}

// Normalize clamps values to workable ranges.
func (s *Settings) Normalize() {
	if s.ChunkSize <= 0 {
		s.ChunkSize = Default().ChunkSize
	}
	if s.GridResolution < 1 {
		s.GridResolution = 1
	}
	if s.RenderDistance < 1 {
		s.RenderDistance = 1
	}
	if s.RenderDistance > 8 {
		s.RenderDistance = 8
	}
	if s.EvictMargin < 1 {
		s.EvictMargin = 1
	}
	if s.TickRateHz < 1 {
		s.TickRateHz = 1
	}
	if s.DayLength <= 0 {
		s.DayLength = Default().DayLength
	}
	if s.CompressThreshold <= 0 {
		s.CompressThreshold = Default().CompressThreshold
	}
}

// EvictDistance returns the Chebyshev radius beyond which chunks are released.
func (s Settings) EvictDistance() int {
	return s.RenderDistance + s.EvictMargin
}
