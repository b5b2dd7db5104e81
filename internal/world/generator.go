package world

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/taharazashaikh97/galli/internal/terrain"
)

// Generator builds chunk geometry and decorations by sampling the heightfield
// over a fixed-resolution grid.
type Generator struct {
	seed       int64
	size       float64 // chunk edge length in world units
	res        int     // grid subdivisions per edge
	waterLevel float64
	roadMargin float64 // half-width of the decoration-free corridor at worldX=0

	field      *terrain.HeightField
	classifier *terrain.Classifier
}

// NewGenerator creates a generator for the given chunk layout.
func NewGenerator(seed int64, size float64, res int, waterLevel, roadMargin float64, field *terrain.HeightField, classifier *terrain.Classifier) *Generator {
	return &Generator{
		seed:       seed,
		size:       size,
		res:        res,
		waterLevel: waterLevel,
		roadMargin: roadMargin,
		field:      field,
		classifier: classifier,
	}
}

// Resolution returns the grid subdivisions per chunk edge.
func (g *Generator) Resolution() int { return g.res }

// HeightAt returns the surface elevation at absolute world coordinates.
// This is the ground query used by physics; it is exactly the value chunk
// surfaces are built from, never a ray intersection against geometry.
func (g *Generator) HeightAt(worldX, worldZ float64) float64 {
	return g.field.Elevation(worldX, worldZ)
}

// Build generates the chunk at coord: a (res+1)x(res+1) vertex grid with
// smooth per-vertex normals, the chunk-center biome, and seeded decorations.
// The returned chunk is fully constructed; callers never observe a partial one.
func (g *Generator) Build(coord ChunkCoord) *Chunk {
	res := g.res
	step := g.size / float64(res)

	chunk := &Chunk{
		Coord:   coord,
		Surface: make([]mgl32.Vec3, (res+1)*(res+1)),
		Normals: make([]mgl32.Vec3, (res+1)*(res+1)),
	}

	centerX, centerZ := terrain.LocalToWorld(coord.X, coord.Z, g.size/2, g.size/2, g.size)
	chunk.Biome = g.classifier.Classify(centerX, centerZ)

	minHeight := math.Inf(1)
	for j := 0; j <= res; j++ {
		for i := 0; i <= res; i++ {
			localX := float64(i) * step
			localZ := float64(j) * step
			worldX, worldZ := terrain.LocalToWorld(coord.X, coord.Z, localX, localZ, g.size)

			h := g.field.Elevation(worldX, worldZ)
			if h < minHeight {
				minHeight = h
			}

			idx := j*(res+1) + i
			chunk.Surface[idx] = mgl32.Vec3{float32(localX), float32(h), float32(localZ)}
			n := g.field.Normal(worldX, worldZ)
			chunk.Normals[idx] = mgl32.Vec3{float32(n.X()), float32(n.Y()), float32(n.Z())}
		}
	}

	chunk.Decorations = g.placeDecorations(coord, chunk.Biome, minHeight)
	return chunk
}

// placeDecorations scatters the biome's decoration budget at seeded random
// local offsets, each snapped to the surface height at that point. Trees are
// skipped underwater and inside the road corridor. Regenerating an evicted
// chunk reproduces the exact same placements.
func (g *Generator) placeDecorations(coord ChunkCoord, biome *terrain.Biome, minHeight float64) []Decoration {
	rng := rand.New(rand.NewSource(terrain.ChunkSeed(g.seed, coord.X, coord.Z)))

	var decorations []Decoration
	for n := 0; n < biome.Decorations; n++ {
		localX := rng.Float64() * g.size
		localZ := rng.Float64() * g.size
		kind := DecorationRock
		if rng.Float64() < biome.TreeDensity {
			kind = DecorationTree
		}

		worldX, worldZ := terrain.LocalToWorld(coord.X, coord.Z, localX, localZ, g.size)
		h := g.field.Elevation(worldX, worldZ)
		if h <= g.waterLevel {
			continue
		}
		if kind == DecorationTree && math.Abs(worldX) < g.roadMargin {
			continue
		}

		decorations = append(decorations, Decoration{
			Kind:     kind,
			Position: mgl32.Vec3{float32(localX), float32(h), float32(localZ)},
		})
	}

	if minHeight <= g.waterLevel {
		decorations = append(decorations, Decoration{
			Kind:     DecorationWaterPlane,
			Position: mgl32.Vec3{float32(g.size / 2), float32(g.waterLevel), float32(g.size / 2)},
		})
	}
	return decorations
}
