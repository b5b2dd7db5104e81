package observer

import (
	"encoding/json"

	"github.com/klauspost/compress/zstd"

	"github.com/taharazashaikh97/galli/internal/world"
)

// Wire messages for the observer protocol. Everything is JSON; frames larger
// than the compression threshold are sent zstd-compressed as binary messages,
// smaller ones as plain text frames.

const (
	MsgHello       = "hello"
	MsgState       = "state"
	MsgChunk       = "chunk"
	MsgChunkUnload = "chunk_unload"
	MsgInput       = "input"
	MsgError       = "error"
)

// HelloMsg is sent once after the upgrade so the renderer can size its world.
type HelloMsg struct {
	Type           string  `json:"type"`
	SessionID      string  `json:"session_id"`
	ChunkSize      float64 `json:"chunk_size"`
	GridResolution int     `json:"grid_resolution"`
	WaterLevel     float64 `json:"water_level"`
	RenderDistance int     `json:"render_distance"`
}

// StateMsg carries the per-tick simulation state.
type StateMsg struct {
	Type string `json:"type"`
	Tick uint64 `json:"tick"`

	Position [3]float64 `json:"position"`
	Yaw      float64    `json:"yaw"`
	Pitch    float64    `json:"pitch"`
	OnGround bool       `json:"on_ground"`

	SkyPhase   float64    `json:"sky_phase"`
	SkyColor   [3]float32 `json:"sky_color"`
	SunElev    float64    `json:"sun_elev"`
	Ambient    float64    `json:"ambient"`
	Flashlight bool       `json:"flashlight"`
	Battery    float64    `json:"battery"`
}

// DecorationMsg is one placed object inside a chunk payload.
type DecorationMsg struct {
	Kind     string     `json:"kind"`
	Position [3]float32 `json:"position"`
}

// ChunkMsg hands one chunk's renderable surface to the collaborator: the
// vertex grid, per-vertex normals, a material color and the decoration list.
type ChunkMsg struct {
	Type        string          `json:"type"`
	X           int             `json:"x"`
	Z           int             `json:"z"`
	Biome       string          `json:"biome"`
	Color       [3]float32      `json:"color"`
	Resolution  int             `json:"resolution"`
	Surface     [][3]float32    `json:"surface"`
	Normals     [][3]float32    `json:"normals"`
	Decorations []DecorationMsg `json:"decorations"`
}

// ChunkUnloadMsg tells the renderer to free the chunk's geometry buffers.
type ChunkUnloadMsg struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Z    int    `json:"z"`
}

// InputMsg is the client-to-server direction: held actions and look deltas
// for the next tick.
type InputMsg struct {
	Type       string   `json:"type"`
	Actions    []string `json:"actions"`
	YawDelta   float64  `json:"yaw_delta"`
	PitchDelta float64  `json:"pitch_delta"`
}

// NewChunkMsg converts a generated chunk to its wire form.
func NewChunkMsg(c *world.Chunk, res int) ChunkMsg {
	msg := ChunkMsg{
		Type:       MsgChunk,
		X:          c.Coord.X,
		Z:          c.Coord.Z,
		Biome:      c.Biome.Name,
		Color:      c.Biome.SurfaceColor,
		Resolution: res,
		Surface:    make([][3]float32, len(c.Surface)),
		Normals:    make([][3]float32, len(c.Normals)),
	}
	for i, v := range c.Surface {
		msg.Surface[i] = v
	}
	for i, n := range c.Normals {
		msg.Normals[i] = n
	}
	for _, d := range c.Decorations {
		msg.Decorations = append(msg.Decorations, DecorationMsg{
			Kind:     d.Kind.String(),
			Position: d.Position,
		})
	}
	return msg
}

// frame is one outgoing websocket frame, already encoded.
type frame struct {
	data   []byte
	binary bool
}

// encodeFrame marshals v and compresses it when the payload exceeds the
// threshold. Compressed frames go out as binary messages, plain JSON as text.
func encodeFrame(v any, threshold int, enc *zstd.Encoder) (frame, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return frame{}, err
	}
	if enc != nil && threshold > 0 && len(raw) > threshold {
		return frame{data: enc.EncodeAll(raw, nil), binary: true}, nil
	}
	return frame{data: raw}, nil
}
