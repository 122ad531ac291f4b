package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/talgya/cubicle/internal/engine"
)

// SnapshotInfo describes a stored snapshot without its payload.
type SnapshotInfo struct {
	Tick    uint64 `db:"tick" json:"tick"`
	Week    int    `db:"week" json:"week"`
	Quarter int    `db:"quarter" json:"quarter"`
	Size    int    `db:"size" json:"size"` // Compressed bytes
}

// SaveSnapshot stores a zstd-compressed copy of the world keyed by tick.
func (db *DB) SaveSnapshot(w *engine.WorldState) error {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := json.NewEncoder(enc).Encode(w); err != nil {
		enc.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}

	_, err = db.conn.Exec(
		"INSERT OR REPLACE INTO snapshots (tick, week, quarter, data) VALUES (?, ?, ?, ?)",
		w.Tick, w.Week, w.Quarter, buf.Bytes(),
	)
	return err
}

// LoadSnapshot reads the snapshot stored at tick.
func (db *DB) LoadSnapshot(tick uint64) (*engine.WorldState, error) {
	var blob []byte
	if err := db.conn.Get(&blob, "SELECT data FROM snapshots WHERE tick = ?", tick); err != nil {
		return nil, fmt.Errorf("snapshot %d: %w", tick, err)
	}

	dec, err := zstd.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var w engine.WorldState
	if err := json.NewDecoder(dec).Decode(&w); err != nil {
		return nil, fmt.Errorf("decode snapshot %d: %w", tick, err)
	}
	return &w, nil
}

// Snapshots lists stored snapshots, newest first.
func (db *DB) Snapshots() ([]SnapshotInfo, error) {
	var infos []SnapshotInfo
	err := db.conn.Select(&infos,
		"SELECT tick, week, quarter, length(data) AS size FROM snapshots ORDER BY tick DESC")
	return infos, err
}

// PruneSnapshots keeps only the newest keep snapshots.
func (db *DB) PruneSnapshots(keep int) (int64, error) {
	res, err := db.conn.Exec(
		"DELETE FROM snapshots WHERE tick NOT IN (SELECT tick FROM snapshots ORDER BY tick DESC LIMIT ?)",
		keep,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
