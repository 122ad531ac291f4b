// Package persistence provides SQLite-based storage for the office world:
// characters, the event log, world metadata, the action catalog document,
// and compressed snapshots.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/cubicle/internal/agents"
	"github.com/talgya/cubicle/internal/engine"
	"github.com/talgya/cubicle/internal/office"
)

// Meta keys.
const (
	metaTick          = "last_tick"
	metaWeek          = "week"
	metaQuarter       = "quarter"
	metaManagerActive = "manager_active"
	metaManagerTimer  = "manager_timer"
	metaLocations     = "locations_json"
	metaCatalog       = "catalog_yaml"
)

// ErrNoWorld is returned when loading from a database that was never saved to.
var ErrNoWorld = errors.New("no saved world")

// DB wraps a SQLite connection for world state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS characters (
		id TEXT PRIMARY KEY,
		ordinal INTEGER NOT NULL,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		is_player INTEGER NOT NULL,
		state TEXT NOT NULL,
		savings INTEGER NOT NULL,
		data_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS logs (
		id TEXT PRIMARY KEY,
		ordinal INTEGER NOT NULL,
		tick INTEGER NOT NULL,
		message TEXT NOT NULL,
		category TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS world_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS snapshots (
		tick INTEGER PRIMARY KEY,
		week INTEGER NOT NULL,
		quarter INTEGER NOT NULL,
		data BLOB NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_characters_ordinal ON characters(ordinal);
	CREATE INDEX IF NOT EXISTS idx_logs_ordinal ON logs(ordinal);
	`
	_, err := db.conn.Exec(schema)
	return err
}

type characterRow struct {
	ID       string `db:"id"`
	Ordinal  int    `db:"ordinal"`
	Name     string `db:"name"`
	Role     string `db:"role"`
	IsPlayer bool   `db:"is_player"`
	State    string `db:"state"`
	Savings  int64  `db:"savings"`
	DataJSON string `db:"data_json"`
}

// SaveCharacters writes the roster to the database (full replace), keeping
// traversal order.
func (db *DB) SaveCharacters(chars []*agents.Character) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM characters"); err != nil {
		return err
	}

	stmt, err := tx.PrepareNamed(`INSERT INTO characters
		(id, ordinal, name, role, is_player, state, savings, data_json)
		VALUES (:id, :ordinal, :name, :role, :is_player, :state, :savings, :data_json)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, c := range chars {
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("encode character %s: %w", c.ID, err)
		}
		row := characterRow{
			ID:       string(c.ID),
			Ordinal:  i,
			Name:     c.Name,
			Role:     c.Role,
			IsPlayer: c.IsPlayer,
			State:    c.State.String(),
			Savings:  c.Savings,
			DataJSON: string(data),
		}
		if _, err := stmt.Exec(row); err != nil {
			return fmt.Errorf("insert character %s: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

// LoadCharacters reads the roster in traversal order.
func (db *DB) LoadCharacters() ([]*agents.Character, error) {
	var rows []characterRow
	if err := db.conn.Select(&rows, "SELECT * FROM characters ORDER BY ordinal"); err != nil {
		return nil, err
	}
	chars := make([]*agents.Character, 0, len(rows))
	for _, r := range rows {
		var c agents.Character
		if err := json.Unmarshal([]byte(r.DataJSON), &c); err != nil {
			return nil, fmt.Errorf("decode character %s: %w", r.ID, err)
		}
		chars = append(chars, &c)
	}
	return chars, nil
}

// SaveLogs replaces the stored event log. Entries are kept newest first.
func (db *DB) SaveLogs(logs []engine.LogEntry) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM logs"); err != nil {
		return err
	}
	for i, e := range logs {
		_, err := tx.Exec(
			"INSERT INTO logs (id, ordinal, tick, message, category) VALUES (?, ?, ?, ?, ?)",
			e.ID, i, e.Tick, e.Message, string(e.Category),
		)
		if err != nil {
			return fmt.Errorf("insert log %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

// RecentLogs returns up to limit stored log entries, newest first. A negative
// limit returns all of them.
func (db *DB) RecentLogs(limit int) ([]engine.LogEntry, error) {
	var logs []engine.LogEntry
	err := db.conn.Select(&logs,
		"SELECT id, tick, message, category FROM logs ORDER BY ordinal LIMIT ?",
		limit,
	)
	return logs, err
}

// SaveMeta stores a key-value pair in world metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO world_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM world_meta WHERE key = ?", key)
	return value, err
}

// HasWorldState reports whether a world has been saved.
func (db *DB) HasWorldState() bool {
	_, err := db.GetMeta(metaTick)
	return err == nil
}

// SaveWorldState performs a full save of the world.
func (db *DB) SaveWorldState(w *engine.WorldState) error {
	slog.Info("saving world state", "tick", w.Tick, "characters", len(w.Characters), "logs", len(w.Logs))

	if err := db.SaveCharacters(w.Characters); err != nil {
		return fmt.Errorf("save characters: %w", err)
	}
	if err := db.SaveLogs(w.Logs); err != nil {
		return fmt.Errorf("save logs: %w", err)
	}

	locations, err := json.Marshal(w.Locations)
	if err != nil {
		return fmt.Errorf("encode locations: %w", err)
	}
	meta := map[string]string{
		metaWeek:          strconv.Itoa(w.Week),
		metaQuarter:       strconv.Itoa(w.Quarter),
		metaManagerActive: strconv.FormatBool(w.ManagerActive),
		metaManagerTimer:  strconv.Itoa(w.ManagerTimer),
		metaLocations:     string(locations),
	}
	for k, v := range meta {
		if err := db.SaveMeta(k, v); err != nil {
			return fmt.Errorf("save meta %s: %w", k, err)
		}
	}
	// The tick goes last: its presence marks a complete save.
	if err := db.SaveMeta(metaTick, strconv.FormatUint(w.Tick, 10)); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}

	slog.Info("world state saved")
	return nil
}

// LoadWorldState reads back the last full save.
func (db *DB) LoadWorldState() (*engine.WorldState, error) {
	tickStr, err := db.GetMeta(metaTick)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoWorld
	}
	if err != nil {
		return nil, fmt.Errorf("load tick: %w", err)
	}

	w := &engine.WorldState{Locations: office.DefaultLayout()}
	if w.Tick, err = strconv.ParseUint(tickStr, 10, 64); err != nil {
		return nil, fmt.Errorf("parse tick: %w", err)
	}
	if w.Week, err = db.metaInt(metaWeek); err != nil {
		return nil, err
	}
	if w.Quarter, err = db.metaInt(metaQuarter); err != nil {
		return nil, err
	}
	if w.ManagerTimer, err = db.metaInt(metaManagerTimer); err != nil {
		return nil, err
	}
	active, err := db.GetMeta(metaManagerActive)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", metaManagerActive, err)
	}
	w.ManagerActive = active == "true"

	if raw, err := db.GetMeta(metaLocations); err == nil {
		var layout office.Layout
		if err := json.Unmarshal([]byte(raw), &layout); err != nil {
			return nil, fmt.Errorf("decode locations: %w", err)
		}
		w.Locations = layout
	}

	if w.Characters, err = db.LoadCharacters(); err != nil {
		return nil, fmt.Errorf("load characters: %w", err)
	}
	if w.Logs, err = db.RecentLogs(-1); err != nil {
		return nil, fmt.Errorf("load logs: %w", err)
	}
	return w, nil
}

func (db *DB) metaInt(key string) (int, error) {
	raw, err := db.GetMeta(key)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", key, err)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

// SaveCatalog stores the action catalog document.
func (db *DB) SaveCatalog(doc []byte) error {
	return db.SaveMeta(metaCatalog, string(doc))
}

// LoadCatalog returns the stored catalog document, or nil if none was saved.
func (db *DB) LoadCatalog() ([]byte, error) {
	doc, err := db.GetMeta(metaCatalog)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc), nil
}
