package hud

import (
	"math"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestBoardTracksLevelsAndPreviews(t *testing.T) {
	b := NewBoard()
	p := uuid.New()

	b.SetName(p, "Rowan")
	b.UpdateHungerLevel(p, 80)
	b.UpdateHungerPreview(p, 25)
	b.UpdateThirstLevel(p, 40)
	b.UpdateThirstPreview(p, 15)

	r, ok := b.Get(p)
	if !ok {
		t.Fatalf("expected readout")
	}
	if r.Name != "Rowan" || r.Hunger != 80 || r.HungerPreview != 25 || r.Thirst != 40 || r.ThirstPreview != 15 {
		t.Fatalf("unexpected readout %+v", r)
	}
	if r.Updated.IsZero() {
		t.Fatalf("expected update time")
	}

	b.UpdateThirstPreview(p, 0)
	if r, _ := b.Get(p); r.ThirstPreview != 0 {
		t.Fatalf("expected preview cleared, got %v", r.ThirstPreview)
	}
}

func TestBoardSnapshotOrderedByName(t *testing.T) {
	b := NewBoard()
	names := []string{"Sage", "Avery", "Kai"}
	for _, n := range names {
		b.SetName(uuid.New(), n)
	}
	snap := b.Snapshot()
	if len(snap) != 3 || snap[0].Name != "Avery" || snap[2].Name != "Sage" {
		t.Fatalf("unexpected snapshot order %+v", snap)
	}
}

func TestBoardConcurrentWritersAndReaders(t *testing.T) {
	b := NewBoard()
	p := uuid.New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(v float32) {
			defer wg.Done()
			b.UpdateHungerLevel(p, v)
		}(float32(i))
		go func() {
			defer wg.Done()
			_ = b.Snapshot()
		}()
	}
	wg.Wait()
	if _, ok := b.Get(p); !ok {
		t.Fatalf("expected readout after concurrent updates")
	}
}

func TestMultiFansOut(t *testing.T) {
	a, c := NewBoard(), NewBoard()
	p := uuid.New()
	Multi{a, Nop{}, c}.UpdateThirstLevel(p, 12)
	for _, b := range []*Board{a, c} {
		if r, ok := b.Get(p); !ok || r.Thirst != 12 {
			t.Fatalf("expected fan-out to each board, got %+v", r)
		}
	}
}

func TestBarForClipsPreview(t *testing.T) {
	tests := []struct {
		level, preview, max float32
		want                Bar
	}{
		{level: 50, preview: 20, max: 100, want: Bar{Level: 0.5, Preview: 0.2}},
		{level: 90, preview: 25, max: 100, want: Bar{Level: 0.9, Preview: 0.1}},
		{level: 120, preview: 5, max: 100, want: Bar{Level: 1, Preview: 0}},
		{level: 10, preview: -5, max: 100, want: Bar{Level: 0.1, Preview: 0}},
		{level: 10, preview: 5, max: 0, want: Bar{}},
	}
	for _, tc := range tests {
		got := BarFor(tc.level, tc.preview, tc.max)
		if math.Abs(float64(got.Level-tc.want.Level)) > 1e-6 || math.Abs(float64(got.Preview-tc.want.Preview)) > 1e-6 {
			t.Fatalf("BarFor(%v, %v, %v)=%+v want=%+v", tc.level, tc.preview, tc.max, got, tc.want)
		}
	}
}
