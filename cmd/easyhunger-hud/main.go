//go:build cgo

// Command easyhunger-hud runs the bot simulation in real time and shows
// every player's hunger and thirst HUD in a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/appengine-ltd/easy-hunger/internal/config"
	"github.com/appengine-ltd/easy-hunger/internal/engine"
	"github.com/appengine-ltd/easy-hunger/internal/hud/overlay"
	"github.com/appengine-ltd/easy-hunger/internal/mod"
	"github.com/appengine-ltd/easy-hunger/internal/world"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		players     int
		seed        int64
		speed       float64
	)
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.IntVar(&players, "players", 6, "number of bot players")
	flag.Int64Var(&seed, "seed", 0, "world seed; 0 picks one")
	flag.Float64Var(&speed, "speed", 20, "game time multiplier")
	flag.Parse()

	if showVersion {
		fmt.Printf("easyhunger-hud %s (%s) %s\n", version, commit, date)
		return
	}

	if err := run(players, seed, speed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(players int, seed int64, speed float64) error {
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(env.LogLevel)); err != nil {
		return fmt.Errorf("log level %q: %w", env.LogLevel, err)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(log)

	cfg, err := config.Load(env.ConfigDir)
	if err != nil {
		return err
	}
	env.Apply(&cfg)

	gen := world.DefaultGenConfig()
	gen.Seed = seed
	w := world.Generate(gen)

	m := mod.New(cfg, mod.Options{World: w, Log: log})
	bots := mod.NewBots(m, w.Config().Seed)
	if _, err := bots.Spawn(players); err != nil {
		return err
	}

	eng := engine.NewEngine(log)
	eng.Interval = 200 * time.Millisecond
	eng.Speed = speed
	eng.OnTick = func(_ uint64, dt float32) {
		m.Tick(dt)
		bots.Tick(dt)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- eng.Run(ctx) }()

	view := overlay.New(m.Board, overlay.Config{
		Title:     fmt.Sprintf("easy hunger - seed %d", w.Config().Seed),
		MaxHunger: cfg.Mod.MaxHunger,
		MaxThirst: cfg.Mod.MaxThirst,
		WellFed:   cfg.Mod.WellFedThreshold,
	})
	viewErr := view.Run(ctx)
	cancel()
	if err := <-done; err != nil {
		return err
	}
	return viewErr
}
