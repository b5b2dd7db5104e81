package observer

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/zstd"

	"github.com/taharazashaikh97/galli/internal/game"
	"github.com/taharazashaikh97/galli/internal/input"
)

const (
	writeTimeout = 5 * time.Second
	readTimeout  = 60 * time.Second
	sendBuffer   = 256
)

// Server exposes a session to external rendering clients over websockets.
// Clients receive chunk geometry and per-tick state; the most recent input
// message from any client drives the avatar next tick (last writer wins).
type Server struct {
	session *game.Session
	log     *log.Logger

	upgrader websocket.Upgrader
	enc      *zstd.Encoder

	mu      sync.Mutex
	clients map[*client]struct{}

	inputMu   sync.Mutex
	lastInput input.State
}

type client struct {
	id  string
	out chan frame
}

// NewServer creates an observer server for the session.
func NewServer(session *game.Session, logger *log.Logger) (*Server, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	return &Server{
		session: session,
		log:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
		enc:     enc,
		clients: make(map[*client]struct{}),
	}, nil
}

// Handler returns the websocket endpoint.
func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		c := &client{
			id:  uuid.NewString(),
			out: make(chan frame, sendBuffer),
		}

		s.mu.Lock()
		s.clients[c] = struct{}{}
		s.mu.Unlock()

		s.log.Printf("observer %s connected from %s", c.id, r.RemoteAddr)
		s.greet(c)

		done := make(chan struct{})

		// Writer goroutine.
		go func() {
			defer close(done)
			for f := range c.out {
				kind := websocket.TextMessage
				if f.binary {
					kind = websocket.BinaryMessage
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteMessage(kind, f.data); err != nil {
					return
				}
			}
		}()

		// Reader loop: input messages steer the avatar.
		for {
			_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
			_, raw, err := conn.ReadMessage()
			if err != nil {
				break
			}
			s.handleInput(raw)
		}

		// Unregister under the lock before closing the channel so no
		// broadcast can send on a closed channel.
		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
		close(c.out)
		<-done
		s.log.Printf("observer %s disconnected", c.id)
	}
}

// greet sends the hello message plus a snapshot of every resident chunk so a
// late-joining renderer starts complete.
func (s *Server) greet(c *client) {
	settings := s.session.Settings
	s.push(c, HelloMsg{
		Type:           MsgHello,
		SessionID:      c.id,
		ChunkSize:      settings.ChunkSize,
		GridResolution: settings.GridResolution,
		WaterLevel:     settings.WaterLevel,
		RenderDistance: settings.RenderDistance,
	})
	for _, chunk := range s.session.World.Store().All() {
		s.push(c, NewChunkMsg(chunk, settings.GridResolution))
	}
}

// BroadcastState publishes the per-tick state to every client.
func (s *Server) BroadcastState() {
	p := s.session.Player
	c := s.session.Sky
	msg := StateMsg{
		Type:       MsgState,
		Tick:       s.session.Tick,
		Position:   p.Body.Position,
		Yaw:        p.Yaw,
		Pitch:      p.Pitch,
		OnGround:   p.Body.OnGround,
		SkyPhase:   c.Phase(),
		SkyColor:   c.SkyColor(),
		SunElev:    c.SunElevation(),
		Ambient:    c.AmbientIntensity(),
		Flashlight: p.Flashlight.On,
		Battery:    p.Flashlight.Battery,
	}
	s.broadcast(msg)
}

// BroadcastChunk publishes a newly generated chunk.
func (s *Server) BroadcastChunk(msg ChunkMsg) {
	s.broadcast(msg)
}

// BroadcastUnload tells renderers to free an evicted chunk's resources.
func (s *Server) BroadcastUnload(x, z int) {
	s.broadcast(ChunkUnloadMsg{Type: MsgChunkUnload, X: x, Z: z})
}

// ConsumeInput returns the most recent input state received from any client.
func (s *Server) ConsumeInput() input.State {
	s.inputMu.Lock()
	defer s.inputMu.Unlock()
	st := s.lastInput
	// Look deltas are per-tick impulses, not held state.
	s.lastInput.YawDelta = 0
	s.lastInput.PitchDelta = 0
	return st
}

func (s *Server) broadcast(v any) {
	f, err := encodeFrame(v, s.session.Settings.CompressThreshold, s.enc)
	if err != nil {
		s.log.Printf("observer: encode: %v", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.out <- f:
		default:
			// Slow client: drop the frame rather than stall the tick loop.
		}
	}
}

func (s *Server) push(c *client, v any) {
	f, err := encodeFrame(v, s.session.Settings.CompressThreshold, s.enc)
	if err != nil {
		s.log.Printf("observer: encode: %v", err)
		return
	}
	select {
	case c.out <- f:
	default:
	}
}
