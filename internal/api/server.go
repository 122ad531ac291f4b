// Package api provides the HTTP API for watching and steering the office.
// GET endpoints are public. Player commands are public but rate limited.
// Admin endpoints (speed, snapshots, restore) require a bearer token.
package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/talgya/cubicle/internal/agents"
	"github.com/talgya/cubicle/internal/economy"
	"github.com/talgya/cubicle/internal/engine"
	"github.com/talgya/cubicle/internal/office"
	"github.com/talgya/cubicle/internal/persistence"
)

// Server serves the office state over HTTP.
type Server struct {
	Sim         *engine.Simulation
	Eng         *engine.Engine
	DB          *persistence.DB // Optional; snapshot endpoints need it
	Market      *economy.Market // Optional
	Port        int
	AdminKey    string   // Bearer token for admin endpoints. Empty = admin disabled.
	CORSOrigins []string // Extra allowed origins besides localhost dev servers

	hub      *Hub
	commands *RateLimiter
}

// NewServer creates a server for sim driven by eng.
func NewServer(sim *engine.Simulation, eng *engine.Engine) *Server {
	return &Server{
		Sim:      sim,
		Eng:      eng,
		hub:      NewHub(),
		commands: NewRateLimiter(120, time.Minute),
	}
}

// Broadcast pushes a world snapshot to every stream subscriber.
func (s *Server) Broadcast(w *engine.WorldState) {
	s.hub.Broadcast(w)
}

// Handler builds the routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", getOnly(s.handleStatus))
	mux.HandleFunc("/api/v1/characters", getOnly(s.handleCharacters))
	mux.HandleFunc("/api/v1/character/", getOnly(s.handleCharacter))
	mux.HandleFunc("/api/v1/logs", getOnly(s.handleLogs))
	mux.HandleFunc("/api/v1/actions", getOnly(s.handleActions))
	mux.HandleFunc("/api/v1/stats", getOnly(s.handleStats))
	mux.HandleFunc("/api/v1/market", getOnly(s.handleMarket))
	mux.HandleFunc("/api/v1/zones", getOnly(s.handleZones))
	mux.HandleFunc("/api/v1/stream", s.handleStream)

	// Player commands.
	mux.HandleFunc("/api/v1/move", postOnly(RateLimitMiddleware(s.commands, s.handleMove)))
	mux.HandleFunc("/api/v1/interact", postOnly(RateLimitMiddleware(s.commands, s.handleInteract)))

	// Admin endpoints.
	mux.HandleFunc("/api/v1/speed", s.adminOnly(s.handleSpeed))
	mux.HandleFunc("/api/v1/snapshots", s.adminOnly(s.handleSnapshots))
	mux.HandleFunc("/api/v1/snapshots/", postOnly(s.adminOnly(s.handleRestore)))

	return corsMiddleware(s.CORSOrigins, mux)
}

// Start serves the API in a goroutine until ctx is cancelled.
func (s *Server) Start(ctx context.Context) {
	addr := fmt.Sprintf(":%d", s.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.hub.Close()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP shutdown error", "error", err)
		}
	}()
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Localhost dev servers are always allowed.
func corsMiddleware(origins []string, next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:4173": true,
		"http://localhost:3000": true,
	}
	for _, origin := range origins {
		allowedOrigins[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func postOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly guards POST requests with the admin bearer token.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if s.AdminKey == "" {
				http.Error(w, "admin endpoints disabled (no OFFICESIM_ADMIN_KEY set)", http.StatusForbidden)
				return
			}
			if !s.checkBearerToken(r) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	state := s.Sim.State()
	stats := s.Sim.CurrentStats()
	status := map[string]any{
		"name":           "Cubicle",
		"tick":           state.Tick,
		"sim_time":       engine.SimTime(state.Tick),
		"week":           state.Week,
		"quarter":        state.Quarter,
		"speed":          s.Eng.Speed(),
		"manager_active": state.ManagerActive,
		"manager_timer":  state.ManagerTimer,
		"alive":          stats.Alive,
		"dead":           stats.Dead,
		"characters":     len(state.Characters),
	}
	writeJSON(w, status)
}

type characterSummary struct {
	ID       agents.CharacterID `json:"id"`
	Name     string             `json:"name"`
	Role     string             `json:"role"`
	IsPlayer bool               `json:"is_player,omitempty"`
	State    agents.State       `json:"state"`
	ActionID string             `json:"action_id,omitempty"`
	Location office.Zone        `json:"location"`
	Position office.Coord       `json:"position"`
	Needs    agents.Needs       `json:"needs"`
	Thought  string             `json:"thought"`
}

// handleCharacters lists the roster in traversal order, optionally filtered
// by ?state=IDLE|MOVING|PERFORMING|BREAKDOWN|DEAD.
func (s *Server) handleCharacters(w http.ResponseWriter, r *http.Request) {
	var filter *agents.State
	if q := r.URL.Query().Get("state"); q != "" {
		var st agents.State
		if err := st.UnmarshalText([]byte(strings.ToUpper(q))); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		filter = &st
	}

	state := s.Sim.State()
	out := make([]characterSummary, 0, len(state.Characters))
	for _, c := range state.Characters {
		if filter != nil && c.State != *filter {
			continue
		}
		out = append(out, characterSummary{
			ID:       c.ID,
			Name:     c.Name,
			Role:     c.Role,
			IsPlayer: c.IsPlayer,
			State:    c.State,
			ActionID: c.ActionID,
			Location: c.Location,
			Position: c.Position,
			Needs:    c.Needs,
			Thought:  c.Thought,
		})
	}
	writeJSON(w, out)
}

func (s *Server) handleCharacter(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/character/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "missing character id", http.StatusBadRequest)
		return
	}
	c := s.Sim.State().Character(agents.CharacterID(id))
	if c == nil {
		http.Error(w, "character not found", http.StatusNotFound)
		return
	}
	writeJSON(w, c)
}

// handleLogs returns the event log newest first. Supports ?limit= and
// ?category=.
func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	limit := engine.DefaultLogCapacity
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	category := engine.Category(r.URL.Query().Get("category"))

	logs := make([]engine.LogEntry, 0, limit)
	for _, e := range s.Sim.State().Logs {
		if len(logs) == limit {
			break
		}
		if category != "" && e.Category != category {
			continue
		}
		logs = append(logs, e)
	}
	writeJSON(w, logs)
}

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.Catalog.Export())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.CurrentStats())
}

func (s *Server) handleMarket(w http.ResponseWriter, r *http.Request) {
	if s.Market == nil {
		http.Error(w, "market not available", http.StatusServiceUnavailable)
		return
	}
	tick := s.Sim.CurrentTick()
	writeJSON(w, map[string]any{
		"tick":  tick,
		"seed":  s.Market.Seed(),
		"index": s.Market.Index(tick),
		"trend": s.Market.Trend(tick),
	})
}

type zoneInfo struct {
	Name     string       `json:"name"`
	Position office.Coord `json:"position"`
	ActionID string       `json:"action_id,omitempty"` // What a move order here performs
	Action   string       `json:"action,omitempty"`
}

// handleZones lists every zone with its coordinate and the action a move
// order to it starts.
func (s *Server) handleZones(w http.ResponseWriter, r *http.Request) {
	layout := s.Sim.State().Locations
	out := make([]zoneInfo, 0, office.NumZones)
	for _, z := range office.Zones() {
		info := zoneInfo{Name: z.String(), Position: layout[z]}
		if def, ok := s.Sim.Catalog.ForZone(z); ok {
			info.ActionID = def.ID
			info.Action = def.Label
		}
		out = append(out, info)
	}
	writeJSON(w, out)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Zone string `json:"zone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	zone, ok := office.ParseZone(req.Zone)
	if !ok {
		http.Error(w, fmt.Sprintf("unknown zone %q", req.Zone), http.StatusBadRequest)
		return
	}
	if err := s.Sim.CommandMove(zone); err != nil {
		writeCommandError(w, err)
		return
	}
	s.writePlayer(w)
}

func (s *Server) handleInteract(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Target string `json:"target"`
		Kind   string `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	kind, err := engine.ParseInteraction(req.Kind)
	if err != nil {
		writeCommandError(w, err)
		return
	}
	if err := s.Sim.CommandInteract(agents.CharacterID(req.Target), kind); err != nil {
		writeCommandError(w, err)
		return
	}
	s.writePlayer(w)
}

func (s *Server) writePlayer(w http.ResponseWriter) {
	writeJSONStatus(w, http.StatusAccepted, s.Sim.State().Player())
}

// writeCommandError maps a command rejection to an HTTP status.
func writeCommandError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrNoPlayer), errors.Is(err, engine.ErrUnknownTarget):
		status = http.StatusNotFound
	case errors.Is(err, engine.ErrPlayerUnavailable):
		status = http.StatusConflict
	case errors.Is(err, engine.ErrNoAction):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, engine.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, engine.ErrInvalidInteraction):
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		var req struct {
			Speed float64 `json:"speed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Speed < 0 || req.Speed > 1000 {
			http.Error(w, "speed must be 0-1000", http.StatusBadRequest)
			return
		}
		s.Eng.SetSpeed(req.Speed)
		slog.Info("speed changed", "speed", req.Speed)
	}

	writeJSON(w, map[string]float64{"speed": s.Eng.Speed()})
}

// handleSnapshots lists stored snapshots (GET) or takes one now (POST).
func (s *Server) handleSnapshots(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "no database configured", http.StatusServiceUnavailable)
		return
	}
	if r.Method == http.MethodPost {
		state := s.Sim.State()
		if err := s.DB.SaveSnapshot(state); err != nil {
			slog.Error("snapshot failed", "error", err)
			http.Error(w, "snapshot failed", http.StatusInternalServerError)
			return
		}
		slog.Info("snapshot taken", "tick", state.Tick)
	}

	infos, err := s.DB.Snapshots()
	if err != nil {
		http.Error(w, "list snapshots failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, infos)
}

// handleRestore replaces the running world with the snapshot at
// /api/v1/snapshots/{tick} and saves it as the current state.
func (s *Server) handleRestore(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "no database configured", http.StatusServiceUnavailable)
		return
	}
	tick, err := strconv.ParseUint(strings.TrimPrefix(r.URL.Path, "/api/v1/snapshots/"), 10, 64)
	if err != nil {
		http.Error(w, "invalid snapshot tick", http.StatusBadRequest)
		return
	}
	snap, err := s.DB.LoadSnapshot(tick)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "snapshot not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("load snapshot failed", "tick", tick, "error", err)
		http.Error(w, "load snapshot failed", http.StatusInternalServerError)
		return
	}

	s.Sim.Restore(snap)
	state := s.Sim.State()
	if err := s.DB.SaveWorldState(state); err != nil {
		slog.Error("save restored world failed", "error", err)
	}
	s.hub.Broadcast(state)
	slog.Info("snapshot restored", "tick", tick)

	writeJSON(w, map[string]any{
		"tick":     state.Tick,
		"sim_time": engine.SimTime(state.Tick),
	})
}

func writeJSON(w http.ResponseWriter, data any) {
	writeJSONStatus(w, http.StatusOK, data)
}

func writeJSONStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
