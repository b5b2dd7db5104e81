package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/taharazashaikh97/galli/internal/terrain"
)

// ChunkCoord identifies a chunk on the infinite XZ grid.
type ChunkCoord struct {
	X, Z int
}

// Chebyshev returns the Chebyshev distance between two chunk coordinates.
func (c ChunkCoord) Chebyshev(o ChunkCoord) int {
	dx := c.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dz := c.Z - o.Z
	if dz < 0 {
		dz = -dz
	}
	if dx > dz {
		return dx
	}
	return dz
}

// DecorationKind tags a placed object for the rendering collaborator.
type DecorationKind int

const (
	DecorationTree DecorationKind = iota
	DecorationRock
	DecorationWaterPlane
)

func (k DecorationKind) String() string {
	switch k {
	case DecorationTree:
		return "tree"
	case DecorationRock:
		return "rock"
	case DecorationWaterPlane:
		return "water"
	default:
		return "unknown"
	}
}

// Decoration is one placed object inside a chunk. Position is chunk-local;
// Y sits on the surface (or at water level for the water plane).
type Decoration struct {
	Kind     DecorationKind
	Position mgl32.Vec3
}

// Chunk is one generated tile of world surface. Immutable after Build; the
// renderer may read it from any goroutine.
type Chunk struct {
	Coord ChunkCoord
	Biome *terrain.Biome

	// Surface is a (res+1)x(res+1) vertex grid in chunk-local space, row-major
	// with X varying fastest. Normals is parallel to Surface.
	Surface []mgl32.Vec3
	Normals []mgl32.Vec3

	Decorations []Decoration
}

// VertexAt returns the surface vertex at grid cell (i, j) for a chunk built
// with the given resolution.
func (c *Chunk) VertexAt(i, j, res int) mgl32.Vec3 {
	return c.Surface[j*(res+1)+i]
}
