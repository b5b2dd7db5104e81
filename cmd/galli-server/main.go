package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taharazashaikh97/galli/internal/config"
	"github.com/taharazashaikh97/galli/internal/game"
	"github.com/taharazashaikh97/galli/internal/profiling"
	"github.com/taharazashaikh97/galli/internal/transport/observer"
	"github.com/taharazashaikh97/galli/internal/world"
)

func main() {
	cfgPath := flag.String("config", "", "path to a YAML settings file")
	flag.Parse()

	logger := log.New(os.Stdout, "galli ", log.LstdFlags)

	settings := config.Default()
	if *cfgPath != "" {
		var err error
		settings, err = config.Load(*cfgPath)
		if err != nil {
			logger.Fatalf("load config: %v", err)
		}
	}

	sess, err := game.NewSession(settings)
	if err != nil {
		logger.Fatalf("create session: %v", err)
	}

	srv, err := observer.NewServer(sess, logger)
	if err != nil {
		logger.Fatalf("create observer server: %v", err)
	}

	// Hand freshly generated chunks and evictions to connected renderers.
	sess.World.Streamer().SetLoadFunc(func(c *world.Chunk) {
		srv.BroadcastChunk(observer.NewChunkMsg(c, settings.GridResolution))
	})
	sess.World.Store().SetReleaseFunc(func(c *world.Chunk) {
		srv.BroadcastUnload(c.Coord.X, c.Coord.Z)
	})

	mux := http.NewServeMux()
	mux.Handle("/observe", srv.Handler())
	httpSrv := &http.Server{Addr: settings.ListenAddr, Handler: mux}

	go func() {
		logger.Printf("observer endpoint on ws://%s/observe", settings.ListenAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dt := 1.0 / float64(settings.TickRateHz)
	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	logger.Printf("world seed %d, chunk size %.0f, render distance %d",
		settings.Seed, settings.ChunkSize, settings.RenderDistance)

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			_ = httpSrv.Shutdown(shutdownCtx)
			logger.Println("shut down")
			return
		case <-ticker.C:
			if err := sess.Update(dt, srv.ConsumeInput()); err != nil {
				logger.Printf("tick %d: %v", sess.Tick, err)
				continue
			}
			srv.BroadcastState()
			if sess.Tick%uint64(30*settings.TickRateHz) == 0 {
				logger.Printf("tick %d hotspots: %s", sess.Tick, profiling.TopN(3))
			}
		}
	}
}
