// Package engine provides the fixed-interval tick loop that drives the
// survival systems.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Engine advances game time in fixed steps. Every step delivers Interval of
// game time to OnTick as the frame delta, regardless of Speed; Speed only
// changes how fast steps happen on the wall clock.
type Engine struct {
	Tick     uint64        // steps taken so far, never reset
	Speed    float64       // 1.0 = real time, 0 = paused
	Interval time.Duration // game time per step

	OnTick func(tick uint64, dt float32)

	log    *slog.Logger
	every  []schedule
	mu     sync.Mutex
	cancel context.CancelFunc
}

type schedule struct {
	n  uint64
	fn func(tick uint64)
}

func NewEngine(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		Speed:    1.0,
		Interval: 200 * time.Millisecond,
		log:      log,
	}
}

// Every runs fn after each n-th step, after OnTick.
func (e *Engine) Every(n uint64, fn func(tick uint64)) {
	if n == 0 || fn == nil {
		return
	}
	e.every = append(e.every, schedule{n: n, fn: fn})
}

// Elapsed is the game time simulated so far.
func (e *Engine) Elapsed() time.Duration {
	return time.Duration(e.Tick) * e.Interval
}

// Run steps the engine in real time until ctx is cancelled or Stop is
// called.
func (e *Engine) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	e.mu.Lock()
	e.cancel = cancel
	e.mu.Unlock()
	defer cancel()

	e.log.Info("engine started", "tick", e.Tick, "speed", e.Speed, "interval", e.Interval)
	defer func() { e.log.Info("engine stopped", "tick", e.Tick) }()

	for {
		wait := 100 * time.Millisecond
		if e.Speed > 0 {
			start := time.Now()
			e.Step()
			wait = time.Duration(float64(e.Interval)/e.Speed) - time.Since(start)
		}

		timer := time.NewTimer(max(wait, 0))
		select {
		case <-ctx.Done():
			timer.Stop()
			if err := context.Cause(ctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		case <-timer.C:
		}
	}
}

// Stop ends a running Run loop. It is safe to call from any goroutine.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
	}
}

// Step advances the engine by one tick.
func (e *Engine) Step() {
	e.Tick++
	if e.OnTick != nil {
		e.OnTick(e.Tick, float32(e.Interval.Seconds()))
	}
	for _, s := range e.every {
		if e.Tick%s.n == 0 {
			s.fn(e.Tick)
		}
	}
}

// Advance steps without sleeping until d of game time has passed and
// returns the number of steps taken.
func (e *Engine) Advance(d time.Duration) int {
	if e.Interval <= 0 {
		return 0
	}
	steps := int(d / e.Interval)
	for i := 0; i < steps; i++ {
		e.Step()
	}
	return steps
}
