package world

import "sync"

// ChunkStore manages the storage and retrieval of chunks. Generation is
// create-if-absent: a coordinate is built at most once until it is evicted.
type ChunkStore struct {
	chunks   map[ChunkCoord]*Chunk
	mu       sync.RWMutex
	modCount uint64 // increases on any chunk add/remove

	gen *Generator

	// release is invoked for every evicted chunk so the rendering collaborator
	// can free geometry buffers it allocated for it.
	release func(*Chunk)
}

// NewChunkStore creates a store that builds missing chunks with gen.
func NewChunkStore(gen *Generator) *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
		gen:    gen,
	}
}

// SetReleaseFunc registers the hook called for each evicted chunk.
func (cs *ChunkStore) SetReleaseFunc(fn func(*Chunk)) {
	cs.mu.Lock()
	cs.release = fn
	cs.mu.Unlock()
}

// Ensure returns the chunk at coord, generating it on first request.
// Idempotent: repeated calls before eviction return the same chunk identity.
func (cs *ChunkStore) Ensure(coord ChunkCoord) *Chunk {
	cs.mu.RLock()
	chunk, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	if exists {
		return chunk
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	// Double-check: another caller might have built it while we waited.
	if existing, ok := cs.chunks[coord]; ok {
		return existing
	}
	chunk = cs.gen.Build(coord)
	cs.chunks[coord] = chunk
	cs.modCount++
	return chunk
}

// Get returns the chunk at coord without generating, or nil.
func (cs *ChunkStore) Get(coord ChunkCoord) *Chunk {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.chunks[coord]
}

// Has reports whether a chunk exists without creating it.
func (cs *ChunkStore) Has(coord ChunkCoord) bool {
	cs.mu.RLock()
	_, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	return exists
}

// Count returns the number of resident chunks.
func (cs *ChunkStore) Count() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// Coords returns the coordinates of all resident chunks.
func (cs *ChunkStore) Coords() []ChunkCoord {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make([]ChunkCoord, 0, len(cs.chunks))
	for coord := range cs.chunks {
		out = append(out, coord)
	}
	return out
}

// All returns all resident chunks.
func (cs *ChunkStore) All() []*Chunk {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make([]*Chunk, 0, len(cs.chunks))
	for _, ch := range cs.chunks {
		out = append(out, ch)
	}
	return out
}

// EvictOutside removes every chunk whose Chebyshev distance from center
// exceeds radius and runs the release hook for each. Returns the number of
// removed chunks.
func (cs *ChunkStore) EvictOutside(center ChunkCoord, radius int) int {
	cs.mu.Lock()
	var victims []*Chunk
	for coord, chunk := range cs.chunks {
		if coord.Chebyshev(center) > radius {
			delete(cs.chunks, coord)
			cs.modCount++
			victims = append(victims, chunk)
		}
	}
	release := cs.release
	cs.mu.Unlock()

	if release != nil {
		for _, chunk := range victims {
			release(chunk)
		}
	}
	return len(victims)
}

// ModCount returns the current modification count of the chunk map.
func (cs *ChunkStore) ModCount() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.modCount
}
