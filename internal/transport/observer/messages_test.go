package observer

import (
	"encoding/json"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/taharazashaikh97/galli/internal/terrain"
	"github.com/taharazashaikh97/galli/internal/world"
)

func testEncoder(t *testing.T) *zstd.Encoder {
	t.Helper()
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { enc.Close() })
	return enc
}

func TestEncodeFrameSmallStaysText(t *testing.T) {
	enc := testEncoder(t)
	msg := ChunkUnloadMsg{Type: MsgChunkUnload, X: 1, Z: -2}

	f, err := encodeFrame(msg, 4096, enc)
	if err != nil {
		t.Fatal(err)
	}
	if f.binary {
		t.Error("small payload was compressed")
	}

	var got ChunkUnloadMsg
	if err := json.Unmarshal(f.data, &got); err != nil {
		t.Fatalf("frame is not plain JSON: %v", err)
	}
	if got != msg {
		t.Errorf("decoded %+v, want %+v", got, msg)
	}
}

func TestEncodeFrameLargeCompressedRoundTrip(t *testing.T) {
	enc := testEncoder(t)

	classifier := terrain.NewClassifier(300)
	field := terrain.NewHeightField(classifier)
	gen := world.NewGenerator(7, 100, 20, -4, 8, field, classifier)
	msg := NewChunkMsg(gen.Build(world.ChunkCoord{X: 2, Z: 3}), gen.Resolution())

	f, err := encodeFrame(msg, 512, enc)
	if err != nil {
		t.Fatal(err)
	}
	if !f.binary {
		t.Fatal("large payload was not compressed")
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(f.data, nil)
	if err != nil {
		t.Fatalf("zstd decode: %v", err)
	}
	if len(f.data) >= len(raw) {
		t.Errorf("compressed frame (%d bytes) not smaller than JSON (%d bytes)", len(f.data), len(raw))
	}

	var got ChunkMsg
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got.X != 2 || got.Z != 3 || len(got.Surface) != len(msg.Surface) {
		t.Errorf("round trip lost fields: x=%d z=%d surface=%d", got.X, got.Z, len(got.Surface))
	}
}

func TestEncodeFrameThresholdDisabled(t *testing.T) {
	// Threshold 0 means never compress, whatever the size.
	big := make([]int, 10000)
	f, err := encodeFrame(big, 0, testEncoder(t))
	if err != nil {
		t.Fatal(err)
	}
	if f.binary {
		t.Error("payload compressed with threshold 0")
	}
}

func TestNewChunkMsgFields(t *testing.T) {
	classifier := terrain.NewClassifier(300)
	field := terrain.NewHeightField(classifier)
	gen := world.NewGenerator(7, 100, 20, -4, 8, field, classifier)

	c := gen.Build(world.ChunkCoord{X: -4, Z: 1})
	msg := NewChunkMsg(c, gen.Resolution())

	if msg.Type != MsgChunk || msg.X != -4 || msg.Z != 1 {
		t.Errorf("header = %s (%d,%d)", msg.Type, msg.X, msg.Z)
	}
	if msg.Biome != c.Biome.Name || msg.Color != [3]float32(c.Biome.SurfaceColor) {
		t.Errorf("biome fields = %s %v", msg.Biome, msg.Color)
	}
	if msg.Resolution != 20 || len(msg.Surface) != 21*21 || len(msg.Normals) != 21*21 {
		t.Errorf("geometry sizes = %d/%d/%d", msg.Resolution, len(msg.Surface), len(msg.Normals))
	}
	if len(msg.Decorations) != len(c.Decorations) {
		t.Fatalf("decoration count %d, want %d", len(msg.Decorations), len(c.Decorations))
	}
	for i, d := range c.Decorations {
		if msg.Decorations[i].Kind != d.Kind.String() {
			t.Errorf("decoration %d kind %q, want %q", i, msg.Decorations[i].Kind, d.Kind)
		}
		if msg.Decorations[i].Position != [3]float32(d.Position) {
			t.Errorf("decoration %d moved on the wire", i)
		}
	}
}
