package hud

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Readout is the HUD state of one player.
type Readout struct {
	Player        uuid.UUID
	Name          string
	Hunger        float32
	HungerPreview float32
	Thirst        float32
	ThirstPreview float32
	Updated       time.Time
}

// Board keeps the latest readout per player. It is written from the tick
// goroutine and read by renderers, so access is guarded.
type Board struct {
	mu       sync.RWMutex
	readouts map[uuid.UUID]*Readout
	now      func() time.Time
}

func NewBoard() *Board {
	return &Board{readouts: map[uuid.UUID]*Readout{}, now: time.Now}
}

func (b *Board) SetName(p uuid.UUID, name string) {
	b.update(p, func(r *Readout) { r.Name = name })
}

func (b *Board) Forget(p uuid.UUID) {
	b.mu.Lock()
	delete(b.readouts, p)
	b.mu.Unlock()
}

func (b *Board) UpdateHungerLevel(p uuid.UUID, v float32) {
	b.update(p, func(r *Readout) { r.Hunger = v })
}

func (b *Board) UpdateHungerPreview(p uuid.UUID, v float32) {
	b.update(p, func(r *Readout) { r.HungerPreview = v })
}

func (b *Board) UpdateThirstLevel(p uuid.UUID, v float32) {
	b.update(p, func(r *Readout) { r.Thirst = v })
}

func (b *Board) UpdateThirstPreview(p uuid.UUID, v float32) {
	b.update(p, func(r *Readout) { r.ThirstPreview = v })
}

func (b *Board) Get(p uuid.UUID) (Readout, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r, ok := b.readouts[p]
	if !ok {
		return Readout{}, false
	}
	return *r, true
}

// Snapshot returns copies of all readouts ordered by name, then id.
func (b *Board) Snapshot() []Readout {
	b.mu.RLock()
	out := make([]Readout, 0, len(b.readouts))
	for _, r := range b.readouts {
		out = append(out, *r)
	}
	b.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].Player.String() < out[j].Player.String()
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (b *Board) update(p uuid.UUID, fn func(*Readout)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.readouts[p]
	if !ok {
		r = &Readout{Player: p}
		b.readouts[p] = r
	}
	fn(r)
	r.Updated = b.now()
}
