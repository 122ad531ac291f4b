// Command officesim runs the office simulation with its HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/talgya/cubicle/internal/agents"
	"github.com/talgya/cubicle/internal/api"
	"github.com/talgya/cubicle/internal/catalog"
	"github.com/talgya/cubicle/internal/config"
	"github.com/talgya/cubicle/internal/economy"
	"github.com/talgya/cubicle/internal/engine"
	"github.com/talgya/cubicle/internal/persistence"
)

func main() {
	configPath := flag.String("config", "officesim.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	slog.Info("Cubicle / office simulation starting")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	slog.Info("random source", "kind", cfg.Random, "seed", seed)

	// ── Database ──────────────────────────────────────────────────────
	if err := ensureDBDir(cfg.DBPath); err != nil {
		slog.Error("failed to create database directory", "error", err)
		os.Exit(1)
	}
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Action catalog ───────────────────────────────────────────────
	cat, err := loadCatalog(cfg.CatalogPath, db)
	if err != nil {
		slog.Error("failed to load action catalog", "error", err)
		os.Exit(1)
	}
	if doc, err := cat.YAML(); err != nil {
		slog.Error("encode catalog failed", "error", err)
	} else if err := db.SaveCatalog(doc); err != nil {
		slog.Error("save catalog failed", "error", err)
	}

	// ── Load or spawn the office ─────────────────────────────────────
	sim := engine.NewSimulation(nil, cat)
	if db.HasWorldState() {
		slog.Info("found saved world state, loading...")
		w, err := db.LoadWorldState()
		if err != nil {
			slog.Error("failed to load world state", "error", err)
			os.Exit(1)
		}
		sim.Restore(w)
	} else {
		slog.Info("no saved state found, hiring a new office...")
		roster := agents.NewSpawner(seed).SpawnPopulation(cfg.Staff)
		sim = engine.NewSimulation(roster, cat)
		for _, c := range roster {
			slog.Debug("staff", "id", c.ID, "name", c.Name, "role", c.Role, "level", c.Level, "traits", c.Traits)
		}
		if err := db.SaveWorldState(sim.State()); err != nil {
			slog.Error("initial save failed", "error", err)
		}
	}
	sim.Tuning = cfg.Tuning
	sim.Rand = cfg.Source(seed)
	market := economy.NewMarket(seed)
	sim.Market = market

	state := sim.State()
	slog.Info("office ready",
		"characters", len(state.Characters),
		"tick", state.Tick,
		"sim_time", engine.SimTime(state.Tick),
	)

	// ── Engine & API ─────────────────────────────────────────────────
	eng := engine.NewEngine(sim)
	eng.Interval = cfg.Interval
	eng.SetSpeed(cfg.Speed)

	if cfg.AdminKey == "" {
		slog.Warn("OFFICESIM_ADMIN_KEY not set, admin POST endpoints will be disabled")
	}
	server := api.NewServer(sim, eng)
	server.DB = db
	server.Market = market
	server.Port = cfg.Port
	server.AdminKey = cfg.AdminKey
	server.CORSOrigins = cfg.CORSOrigins

	eng.OnTick = func(w *engine.WorldState) {
		server.Broadcast(w)
		if w.Tick%engine.TicksPerQuarter != 0 {
			return
		}
		// Quarterly save and snapshot.
		if err := db.SaveWorldState(w); err != nil {
			slog.Error("quarterly save failed", "error", err)
		}
		if err := db.SaveSnapshot(w); err != nil {
			slog.Error("snapshot failed", "error", err)
		}
		if n, err := db.PruneSnapshots(cfg.Snapshots); err != nil {
			slog.Error("prune snapshots failed", "error", err)
		} else if n > 0 {
			slog.Info("pruned snapshots", "removed", n)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server.Start(ctx)

	fmt.Printf("\nCubicle is open: %d employees on the floor.\n", len(state.Characters))
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", cfg.Port)
	if state.Tick > 0 {
		fmt.Printf("Resuming from tick %d (%s)\n", state.Tick, engine.SimTime(state.Tick))
	}
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	eng.Run(ctx)

	// Final save on shutdown.
	slog.Info("final save...")
	if err := db.SaveWorldState(sim.State()); err != nil {
		slog.Error("final save failed", "error", err)
	}

	fmt.Println("Simulation stopped. Office state saved.")
}

// ensureDBDir creates the directory holding the database file.
func ensureDBDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}

// loadCatalog prefers the configured file, then the copy stored with the
// world, then the built-in catalog.
func loadCatalog(path string, db *persistence.DB) (*catalog.Catalog, error) {
	reg := catalog.NewRegistry()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		cat, err := catalog.Parse(data, reg)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		slog.Info("action catalog loaded", "path", path, "actions", cat.Len())
		return cat, nil
	}

	doc, err := db.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load stored catalog: %w", err)
	}
	if doc != nil {
		cat, err := catalog.Parse(doc, reg)
		if err != nil {
			slog.Warn("stored catalog unreadable, using built-in", "error", err)
			return catalog.Default(), nil
		}
		slog.Info("action catalog restored", "actions", cat.Len())
		return cat, nil
	}

	return catalog.Default(), nil
}
