// Package persistence stores survival state in SQLite between runs.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/appengine-ltd/easy-hunger/internal/config"
	"github.com/appengine-ltd/easy-hunger/internal/items"
	"github.com/appengine-ltd/easy-hunger/internal/survival"
	"github.com/appengine-ltd/easy-hunger/internal/world"
)

// ErrNoMeta is returned by GetMeta for a key that was never saved.
var ErrNoMeta = errors.New("meta key not found")

// DB wraps a SQLite connection.
type DB struct {
	conn *sqlx.DB
	log  *slog.Logger
}

// Open opens or creates a SQLite database at path, creating its directory.
func Open(path string, log *slog.Logger) (*DB, error) {
	if log == nil {
		log = slog.Default()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn, log: log}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		hunger REAL NOT NULL,
		max_hunger REAL NOT NULL,
		thirst REAL NOT NULL,
		max_thirst REAL NOT NULL,
		pos_x REAL NOT NULL,
		pos_y REAL NOT NULL,
		pos_z REAL NOT NULL,
		yaw REAL NOT NULL,
		pitch REAL NOT NULL,
		active_slot INTEGER NOT NULL,
		hotbar_json TEXT NOT NULL,
		saved_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS active_effects (
		player_id TEXT NOT NULL,
		effect_id TEXT NOT NULL,
		remaining_ms INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_active_effects_player ON active_effects(player_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// PlayerRow is one row of the players table.
type PlayerRow struct {
	ID         string  `db:"id"`
	Name       string  `db:"name"`
	Hunger     float64 `db:"hunger"`
	MaxHunger  float64 `db:"max_hunger"`
	Thirst     float64 `db:"thirst"`
	MaxThirst  float64 `db:"max_thirst"`
	PosX       float64 `db:"pos_x"`
	PosY       float64 `db:"pos_y"`
	PosZ       float64 `db:"pos_z"`
	Yaw        float64 `db:"yaw"`
	Pitch      float64 `db:"pitch"`
	ActiveSlot int     `db:"active_slot"`
	HotbarJSON string  `db:"hotbar_json"`
	SavedAt    int64   `db:"saved_at"`
}

// EffectRow is one active effect of a saved player. Effects are stored by
// id because definition indexes can change between runs.
type EffectRow struct {
	PlayerID    string `db:"player_id"`
	EffectID    string `db:"effect_id"`
	RemainingMS int64  `db:"remaining_ms"`
}

type hotbarSlot struct {
	Slot  int         `json:"slot"`
	Stack items.Stack `json:"stack"`
}

// SavePlayers replaces every saved player with the players in store.
func (db *DB) SavePlayers(store *survival.Store) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM players"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM active_effects"); err != nil {
		return err
	}

	now := time.Now().Unix()
	var saveErr error
	store.Each(func(e *survival.Entity) {
		if saveErr != nil || !e.Player {
			return
		}
		row, err := playerRow(e, now)
		if err != nil {
			saveErr = err
			return
		}
		if _, err := tx.NamedExec(`INSERT INTO players
			(id, name, hunger, max_hunger, thirst, max_thirst, pos_x, pos_y, pos_z,
			 yaw, pitch, active_slot, hotbar_json, saved_at)
			VALUES (:id, :name, :hunger, :max_hunger, :thirst, :max_thirst, :pos_x, :pos_y, :pos_z,
			 :yaw, :pitch, :active_slot, :hotbar_json, :saved_at)`, row); err != nil {
			saveErr = fmt.Errorf("insert player %s: %w", e.ID, err)
			return
		}
		if e.Effects == nil {
			return
		}
		for _, a := range e.Effects.Active() {
			if _, err := tx.Exec(
				"INSERT INTO active_effects (player_id, effect_id, remaining_ms) VALUES (?, ?, ?)",
				row.ID, a.ID(), a.Remaining().Milliseconds(),
			); err != nil {
				saveErr = fmt.Errorf("insert effect %s for %s: %w", a.ID(), e.ID, err)
				return
			}
		}
	})
	if saveErr != nil {
		return saveErr
	}
	return tx.Commit()
}

func playerRow(e *survival.Entity, now int64) (PlayerRow, error) {
	row := PlayerRow{ID: e.ID.String(), Name: e.Name, ActiveSlot: e.ActiveSlot, SavedAt: now}
	if e.Hunger != nil {
		row.Hunger, row.MaxHunger = float64(e.Hunger.Level), float64(e.Hunger.Max)
	}
	if e.Thirst != nil {
		row.Thirst, row.MaxThirst = float64(e.Thirst.Level), float64(e.Thirst.Max)
	}
	if e.Transform != nil {
		p := e.Transform.Position
		row.PosX, row.PosY, row.PosZ = p.X, p.Y, p.Z
	}
	if e.HeadRotation != nil {
		row.Yaw, row.Pitch = e.HeadRotation.Yaw, e.HeadRotation.Pitch
	}

	var slots []hotbarSlot
	if e.Hotbar != nil {
		for i := 0; i < e.Hotbar.Size(); i++ {
			if s, ok := e.Hotbar.Stack(i); ok {
				slots = append(slots, hotbarSlot{Slot: i, Stack: *s})
			}
		}
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return PlayerRow{}, fmt.Errorf("encode hotbar of %s: %w", e.ID, err)
	}
	row.HotbarJSON = string(data)
	return row, nil
}

func (db *DB) Players() ([]PlayerRow, error) {
	var rows []PlayerRow
	err := db.conn.Select(&rows, "SELECT * FROM players ORDER BY name, id")
	return rows, err
}

func (db *DB) Effects(playerID string) ([]EffectRow, error) {
	var rows []EffectRow
	err := db.conn.Select(&rows,
		"SELECT player_id, effect_id, remaining_ms FROM active_effects WHERE player_id = ? ORDER BY rowid",
		playerID,
	)
	return rows, err
}

// LoadPlayers rebuilds saved players into store. A player already in the
// store has its state overwritten; others are created. Effects whose id is
// no longer registered are dropped.
func (db *DB) LoadPlayers(store *survival.Store, effects *survival.EffectRegistry, cfg config.ModConfig) (int, error) {
	rows, err := db.Players()
	if err != nil {
		return 0, fmt.Errorf("load players: %w", err)
	}

	for _, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			return 0, fmt.Errorf("player %q: %w", row.ID, err)
		}
		e, ok := store.Get(id)
		if !ok {
			e = survival.NewPlayer(row.Name, world.Vec3{}, cfg)
			e.ID = id
			if err := store.Add(e); err != nil {
				return 0, err
			}
		}
		if err := restorePlayer(e, row); err != nil {
			return 0, err
		}

		saved, err := db.Effects(row.ID)
		if err != nil {
			return 0, fmt.Errorf("load effects of %s: %w", row.ID, err)
		}
		e.Effects = survival.NewEffectController()
		for _, s := range saved {
			def, ok := effects.Get(s.EffectID)
			if !ok {
				db.log.Warn("dropping unknown saved effect", "player", row.Name, "effect", s.EffectID)
				continue
			}
			e.Effects.Restore(def.ID, def.Index, time.Duration(s.RemainingMS)*time.Millisecond)
		}
	}
	return len(rows), nil
}

func restorePlayer(e *survival.Entity, row PlayerRow) error {
	e.Name = row.Name
	e.Player = true
	e.Hunger = survival.NewHunger(float32(row.MaxHunger))
	e.Hunger.Level = float32(row.Hunger)
	e.Thirst = survival.NewThirst(float32(row.MaxThirst))
	e.Thirst.Level = float32(row.Thirst)
	e.Transform = &survival.Transform{Position: world.Vec3{X: row.PosX, Y: row.PosY, Z: row.PosZ}}
	e.HeadRotation = &survival.HeadRotation{Yaw: row.Yaw, Pitch: row.Pitch}
	e.ActiveSlot = row.ActiveSlot

	var slots []hotbarSlot
	if err := json.Unmarshal([]byte(row.HotbarJSON), &slots); err != nil {
		return fmt.Errorf("decode hotbar of %s: %w", row.ID, err)
	}
	e.Hotbar = items.NewSlotContainer(survival.HotbarSize)
	for _, s := range slots {
		if err := e.Hotbar.Put(s.Slot, s.Stack); err != nil {
			return fmt.Errorf("hotbar slot %d of %s: %w", s.Slot, row.ID, err)
		}
	}
	return nil
}

func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoMeta
	}
	return value, err
}

// SaveState saves every player and the engine tick.
func (db *DB) SaveState(store *survival.Store, tick uint64) error {
	db.log.Info("saving survival state", "players", store.Len(), "tick", tick)

	if err := db.SavePlayers(store); err != nil {
		return fmt.Errorf("save players: %w", err)
	}
	if err := db.SaveMeta("last_tick", strconv.FormatUint(tick, 10)); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}
	return nil
}

// LastTick returns the saved engine tick, or 0 for a fresh database.
func (db *DB) LastTick() (uint64, error) {
	v, err := db.GetMeta("last_tick")
	if errors.Is(err, ErrNoMeta) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(v, 10, 64)
}
