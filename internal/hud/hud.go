// Package hud carries hunger and thirst readouts to whatever draws them.
// Updates are fire-and-forget; a notifier never reports failure back.
package hud

import (
	"log/slog"

	"github.com/google/uuid"
)

type Notifier interface {
	UpdateHungerLevel(player uuid.UUID, level float32)
	UpdateHungerPreview(player uuid.UUID, amount float32)
	UpdateThirstLevel(player uuid.UUID, level float32)
	UpdateThirstPreview(player uuid.UUID, amount float32)
}

type Nop struct{}

func (Nop) UpdateHungerLevel(uuid.UUID, float32)   {}
func (Nop) UpdateHungerPreview(uuid.UUID, float32) {}
func (Nop) UpdateThirstLevel(uuid.UUID, float32)   {}
func (Nop) UpdateThirstPreview(uuid.UUID, float32) {}

// Multi fans every update out to each notifier in order.
type Multi []Notifier

func (m Multi) UpdateHungerLevel(p uuid.UUID, v float32) {
	for _, n := range m {
		n.UpdateHungerLevel(p, v)
	}
}

func (m Multi) UpdateHungerPreview(p uuid.UUID, v float32) {
	for _, n := range m {
		n.UpdateHungerPreview(p, v)
	}
}

func (m Multi) UpdateThirstLevel(p uuid.UUID, v float32) {
	for _, n := range m {
		n.UpdateThirstLevel(p, v)
	}
}

func (m Multi) UpdateThirstPreview(p uuid.UUID, v float32) {
	for _, n := range m {
		n.UpdateThirstPreview(p, v)
	}
}

// LogNotifier writes HUD traffic to a structured logger at debug level.
type LogNotifier struct {
	Log *slog.Logger
}

func (l LogNotifier) UpdateHungerLevel(p uuid.UUID, v float32) {
	l.emit("hunger level", p, v)
}

func (l LogNotifier) UpdateHungerPreview(p uuid.UUID, v float32) {
	l.emit("hunger preview", p, v)
}

func (l LogNotifier) UpdateThirstLevel(p uuid.UUID, v float32) {
	l.emit("thirst level", p, v)
}

func (l LogNotifier) UpdateThirstPreview(p uuid.UUID, v float32) {
	l.emit("thirst preview", p, v)
}

func (l LogNotifier) emit(msg string, p uuid.UUID, v float32) {
	log := l.Log
	if log == nil {
		log = slog.Default()
	}
	log.Debug("hud: "+msg, "player", p, "value", v)
}
