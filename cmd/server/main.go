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

	"redlight/internal/config"
	"redlight/internal/room"
	"redlight/internal/sim"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	addr := flag.String("addr", settings.Addr, "server listen address")
	tickHz := flag.Int("tick", settings.TickHz, "simulation ticks per second")
	broadcastHz := flag.Int("broadcast", settings.BroadcastHz, "state broadcasts per second")
	static := flag.String("static", settings.StaticDir, "directory served at /")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game, err := room.New(room.Options{
		TickHz:      *tickHz,
		BroadcastHz: *broadcastHz,
		ViewWidth:   float64(settings.ViewWidth),
		ViewHeight:  float64(settings.ViewHeight),
		Config:      sim.DefaultConfig(),
	})
	if err != nil {
		log.Fatalf("room: %v", err)
	}
	go game.Run(ctx)

	mux := http.NewServeMux()
	mux.Handle("/ws", newHub(ctx, game).handler())
	mux.Handle("/", http.FileServer(http.Dir(*static)))
	srv := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("serving session %s on http://localhost%v (tick=%dHz broadcast=%dHz)", game.SessionID, *addr, *tickHz, *broadcastHz)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
