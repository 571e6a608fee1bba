package survival

// Hunger is the food meter of an entity. Level runs from 0 (starving) to Max.
type Hunger struct {
	Level float32
	Max   float32

	drainElapsed   float32
	wellFedElapsed float32
}

func NewHunger(max float32) *Hunger {
	return &Hunger{Level: max, Max: max}
}

// Feed raises the level by amount, capped at Max.
func (h *Hunger) Feed(amount float32) {
	h.Level = clampFloat32(h.Level+amount, 0, h.Max)
}

func (h *Hunger) Drain(amount float32) {
	h.Level = clampFloat32(h.Level-amount, 0, h.Max)
}

func (h *Hunger) IsFull() bool {
	return h.Level >= h.Max
}

func (h *Hunger) AddWellFedElapsed(dt float32) {
	h.wellFedElapsed += dt
}

func (h *Hunger) WellFedElapsed() float32 {
	return h.wellFedElapsed
}

func (h *Hunger) ResetWellFedElapsed() {
	h.wellFedElapsed = 0
}

// Thirst is the water meter of an entity.
type Thirst struct {
	Level float32
	Max   float32

	drainElapsed float32
}

func NewThirst(max float32) *Thirst {
	return &Thirst{Level: max, Max: max}
}

func (t *Thirst) Drink(amount float32) {
	t.Level = clampFloat32(t.Level+amount, 0, t.Max)
}

func (t *Thirst) Drain(amount float32) {
	t.Level = clampFloat32(t.Level-amount, 0, t.Max)
}

func (t *Thirst) IsFull() bool {
	return t.Level >= t.Max
}

// gate accumulates dt and reports whether a full interval has passed,
// resetting the accumulator when it has.
func gate(elapsed *float32, dt, interval float32) bool {
	*elapsed += dt
	if *elapsed < interval {
		return false
	}
	*elapsed = 0
	return true
}

func clampFloat32(v, minV, maxV float32) float32 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
