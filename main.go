package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/chalkboard/cliparse"
	"github.com/danielhkuo/chalkboard/middleware"
	"github.com/danielhkuo/chalkboard/registry"
	"github.com/danielhkuo/chalkboard/router"
	"github.com/danielhkuo/chalkboard/store"
)

func main() {
	// Optional .env for local development; absence is fine
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the snapshot store
	st, err := store.Open(cfg)
	if err != nil {
		slog.Error("store open failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// Build the registry and rehydrate it. A failed load is logged and
	// swallowed: the server starts empty rather than not at all.
	reg := registry.New()
	snap, err := st.Load()
	if err != nil {
		slog.Warn("snapshot load failed, starting empty", "error", err)
	} else {
		reg.Restore(snap)
	}

	// Background tasks: persistence bridge and eviction sweep
	ctx, cancel := context.WithCancel(context.Background())
	persister := store.NewPersister(reg, st, cfg.PersistInterval)
	sweeper := registry.NewSweeper(reg, cfg.SweepInterval, persister.MarkDirty)
	go persister.Run(ctx)
	go sweeper.Run(ctx)

	// Create router
	mux := router.NewRouter(reg, persister.MarkDirty)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "store", cfg.StoreType)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}

	// Stop background tasks and flush one last snapshot
	cancel()
	persister.Flush()
}
