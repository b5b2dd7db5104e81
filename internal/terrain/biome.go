package terrain

import "github.com/go-gl/mathgl/mgl32"

// Biome defines the properties of a terrain region.
type Biome struct {
	ID           int
	Name         string
	SurfaceColor mgl32.Vec3 // base material color for the chunk surface
	HeightScale  float64    // multiplier for the hill term of the heightfield
	TreeDensity  float64    // fraction of the decoration budget spent on trees
	Decorations  int        // decoration placements attempted per chunk
}

var (
	BiomeMeadow = &Biome{
		ID:           1,
		Name:         "Meadow",
		SurfaceColor: mgl32.Vec3{0.36, 0.55, 0.27},
		HeightScale:  1.0,
		TreeDensity:  0.7,
		Decorations:  12,
	}
	BiomeHighlands = &Biome{
		ID:           2,
		Name:         "Highlands",
		SurfaceColor: mgl32.Vec3{0.42, 0.40, 0.32},
		HeightScale:  1.8,
		TreeDensity:  0.3,
		Decorations:  8,
	}
	BiomeSnowfield = &Biome{
		ID:           3,
		Name:         "Snowfield",
		SurfaceColor: mgl32.Vec3{0.88, 0.90, 0.94},
		HeightScale:  1.3,
		TreeDensity:  0.2,
		Decorations:  6,
	}
)

// Biomes lists every biome the classifier can return.
var Biomes = []*Biome{BiomeMeadow, BiomeHighlands, BiomeSnowfield}

// Classifier maps world coordinates to a biome using discrete spatial
// thresholds on the X axis. Crossing a threshold switches biomes outright;
// there is no blending between neighbours.
type Classifier struct {
	snowThreshold float64 // worldX above this is snowfield
	hillThreshold float64 // worldX below the negation of this is highlands
}

// NewClassifier creates a classifier with the given threshold distance on
// either side of the road corridor at worldX=0.
func NewClassifier(threshold float64) *Classifier {
	return &Classifier{snowThreshold: threshold, hillThreshold: threshold}
}

// Classify returns the biome at world X,Z. Pure and deterministic.
func (c *Classifier) Classify(worldX, worldZ float64) *Biome {
	switch {
	case worldX > c.snowThreshold:
		return BiomeSnowfield
	case worldX < -c.hillThreshold:
		return BiomeHighlands
	default:
		return BiomeMeadow
	}
}
