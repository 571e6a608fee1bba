package hud

// Bar is the share of a meter that is filled and the share a pending
// restore would add, both in 0..1.
type Bar struct {
	Level   float32
	Preview float32
}

// BarFor lays out a meter. The preview never runs past the end of the bar.
func BarFor(level, preview, max float32) Bar {
	if max <= 0 {
		return Bar{}
	}
	l := clamp01(level / max)
	p := clamp01(preview / max)
	if l+p > 1 {
		p = 1 - l
	}
	return Bar{Level: l, Preview: p}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
