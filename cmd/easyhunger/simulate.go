package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/appengine-ltd/easy-hunger/internal/engine"
	"github.com/appengine-ltd/easy-hunger/internal/hud"
	"github.com/appengine-ltd/easy-hunger/internal/mod"
	"github.com/appengine-ltd/easy-hunger/internal/persistence"
	"github.com/appengine-ltd/easy-hunger/internal/survival"
	"github.com/appengine-ltd/easy-hunger/internal/world"
)

type simulateOptions struct {
	players  int
	duration time.Duration
	interval time.Duration
	seed     int64
	realtime bool
	speed    float64
	dbPath   string
	noSave   bool
	fresh    bool
	hudLog   bool
}

func newSimulateCmd(g *globals) *cobra.Command {
	opts := simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run bot players through a generated world",
		Long: `Runs the drain and well-fed systems for a group of bot players who wander
a generated world, eat and drink when they need to and refill waterskins at
water. State is saved to SQLite and resumed on the next run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, g, opts)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&opts.players, "players", "p", 4, "number of bot players")
	f.DurationVarP(&opts.duration, "duration", "d", 30*time.Minute, "game time to simulate")
	f.DurationVar(&opts.interval, "interval", 200*time.Millisecond, "game time per tick")
	f.Int64Var(&opts.seed, "seed", 0, "world seed; 0 reuses the saved seed or picks one")
	f.BoolVar(&opts.realtime, "realtime", false, "run on the wall clock until interrupted")
	f.Float64Var(&opts.speed, "speed", 1, "wall-clock speed multiplier with --realtime")
	f.StringVar(&opts.dbPath, "db", g.env.DBPath, "SQLite database path (EASYHUNGER_DB)")
	f.BoolVar(&opts.noSave, "no-save", false, "do not read or write the database")
	f.BoolVar(&opts.fresh, "fresh", false, "ignore saved players")
	f.BoolVar(&opts.hudLog, "hud-log", false, "log every HUD update at debug level")
	return cmd
}

func runSimulate(cmd *cobra.Command, g *globals, opts simulateOptions) error {
	if opts.interval <= 0 {
		return fmt.Errorf("--interval must be positive, got %s", opts.interval)
	}
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	log := g.log

	var db *persistence.DB
	if !opts.noSave {
		db, err = persistence.Open(opts.dbPath, log)
		if err != nil {
			return err
		}
		defer db.Close()
		log.Info("database opened", "path", opts.dbPath)
	}

	seed, err := resolveSeed(db, opts)
	if err != nil {
		return err
	}
	gen := world.DefaultGenConfig()
	gen.Seed = seed
	w := world.Generate(gen)
	seed = w.Config().Seed
	log.Info("world generated", "seed", seed, "radius", gen.Radius, "sea_level", gen.SeaLevel)

	var extra hud.Notifier
	if opts.hudLog {
		extra = hud.LogNotifier{Log: log.With("component", "hud")}
	}
	m := mod.New(cfg, mod.Options{World: w, HUD: extra, Log: log})
	bots := mod.NewBots(m, seed)

	var startTick uint64
	if db != nil && !opts.fresh {
		n, err := db.LoadPlayers(m.Store, m.Effects, cfg.Mod)
		if err != nil {
			return err
		}
		m.Store.Each(func(e *survival.Entity) {
			m.Publish(e)
			bots.Adopt(e)
		})
		if startTick, err = db.LastTick(); err != nil {
			return err
		}
		if n > 0 {
			log.Info("restored players", "players", n, "tick", startTick)
		}
	}
	if missing := opts.players - m.Store.Len(); missing > 0 {
		if _, err := bots.Spawn(missing); err != nil {
			return err
		}
	}

	eng := engine.NewEngine(log)
	eng.Tick = startTick
	eng.Interval = opts.interval
	eng.Speed = opts.speed
	eng.OnTick = func(_ uint64, dt float32) {
		m.Tick(dt)
		bots.Tick(dt)
	}
	if db != nil {
		perMinute := uint64(time.Minute / opts.interval)
		eng.Every(max(perMinute, 1)*5, func(tick uint64) {
			if err := db.SaveState(m.Store, tick); err != nil {
				log.Error("autosave failed", "error", err)
			}
		})
	}

	started := time.Now()
	if opts.realtime {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := eng.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	} else {
		eng.Advance(opts.duration)
	}

	if db != nil {
		if err := db.SaveState(m.Store, eng.Tick); err != nil {
			return err
		}
		if err := db.SaveMeta("seed", strconv.FormatInt(seed, 10)); err != nil {
			return err
		}
	}

	printSummary(cmd, m, bots, eng, time.Since(started))
	return nil
}

func resolveSeed(db *persistence.DB, opts simulateOptions) (int64, error) {
	if opts.seed != 0 || db == nil || opts.fresh {
		return opts.seed, nil
	}
	v, err := db.GetMeta("seed")
	if errors.Is(err, persistence.ErrNoMeta) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}

func printSummary(cmd *cobra.Command, m *mod.Mod, bots *mod.Bots, eng *engine.Engine, wall time.Duration) {
	out := cmd.OutOrStdout()
	title := color.New(color.FgCyan, color.Bold)
	title.Fprintf(out, "\nSimulated %s of game time (%s ticks) in %s\n",
		eng.Elapsed().Round(time.Second), humanize.Comma(int64(eng.Tick)), wall.Round(time.Millisecond))

	table := tablewriter.NewTable(out,
		tablewriter.WithHeader([]string{"Player", "Biome", "Zone", "Hunger", "Thirst", "Effects", "Meals", "Drinks", "Refills", "Walked"}),
	)
	threshold := m.Config.Mod.WellFedThreshold
	m.Store.Each(func(e *survival.Entity) {
		stats, _ := bots.Stats(e.ID)
		var effects []string
		if e.Effects != nil {
			for _, a := range e.Effects.Active() {
				effects = append(effects, a.ID())
			}
		}
		_ = table.Append([]string{
			e.Name,
			orDash(m.Biome(e)),
			orDash(m.Zone(e)),
			meterCell(e.Hunger.Level, threshold),
			meterCell(e.Thirst.Level, threshold),
			orDash(strings.Join(effects, ", ")),
			strconv.Itoa(stats.Meals),
			strconv.Itoa(stats.Drinks),
			strconv.Itoa(stats.Refills),
			humanize.Commaf(float64(int(stats.Distance))) + " m",
		})
	})
	_ = table.Render()
}

// meterCell colours a level green when well fed and red when critical.
func meterCell(level, threshold float32) string {
	s := fmt.Sprintf("%.1f", level)
	switch {
	case level >= threshold:
		return color.GreenString(s)
	case level < threshold/3:
		return color.RedString(s)
	default:
		return s
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
