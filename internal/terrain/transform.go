package terrain

import "math"

// The chunk-local to world transform lives here and nowhere else. Every caller
// that needs absolute coordinates for a grid sample goes through LocalToWorld,
// so two chunks sharing an edge sample the heightfield at bit-identical world
// coordinates.

// ChunkOrigin returns the world coordinates of a chunk's minimum corner for a
// chunk of the given size.
func ChunkOrigin(cx, cz int, size float64) (worldX, worldZ float64) {
	return float64(cx) * size, float64(cz) * size
}

// LocalToWorld converts a local offset inside chunk (cx, cz) to absolute world
// coordinates. Both axes grow in the positive direction; there is no sign flip
// on Z.
func LocalToWorld(cx, cz int, localX, localZ, size float64) (worldX, worldZ float64) {
	ox, oz := ChunkOrigin(cx, cz, size)
	return ox + localX, oz + localZ
}

// ChunkIndexAt converts a continuous world coordinate to the chunk index whose
// center is nearest, rounding halves away from zero (250 with size 100 maps to
// chunk 3, -250 to chunk -3).
func ChunkIndexAt(world, size float64) int {
	return int(math.Round(world / size))
}

// ChunkSeed derives a per-chunk seed from the world seed and the chunk
// coordinate using a SplitMix64-style mix, stable across runs for the same
// inputs.
func ChunkSeed(worldSeed int64, cx, cz int) int64 {
	v := uint64(worldSeed) ^ (uint64(int64(cx)) * 0x9E3779B97F4A7C15) ^ (uint64(int64(cz)) * 0x6C62272E07BB0142)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return int64(v)
}
