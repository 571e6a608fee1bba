package world

import "math"

// IterateFromTo walks every block cell the segment from->to passes through,
// in order, until visit returns false. It uses grid traversal rather than
// fixed-step sampling so thin diagonal crossings are not skipped.
func IterateFromTo(from, to Vec3, visit func(x, y, z int) bool) {
	x, y, z := blockCoord(from.X), blockCoord(from.Y), blockCoord(from.Z)
	endX, endY, endZ := blockCoord(to.X), blockCoord(to.Y), blockCoord(to.Z)

	dir := Vec3{X: to.X - from.X, Y: to.Y - from.Y, Z: to.Z - from.Z}
	stepX, tMaxX, tDeltaX := axisStep(from.X, dir.X)
	stepY, tMaxY, tDeltaY := axisStep(from.Y, dir.Y)
	stepZ, tMaxZ, tDeltaZ := axisStep(from.Z, dir.Z)

	// A segment can cross at most this many cells.
	limit := absInt(endX-x) + absInt(endY-y) + absInt(endZ-z) + 1
	for i := 0; i < limit; i++ {
		if !visit(x, y, z) {
			return
		}
		if x == endX && y == endY && z == endZ {
			return
		}
		switch {
		case tMaxX <= tMaxY && tMaxX <= tMaxZ:
			x += stepX
			tMaxX += tDeltaX
		case tMaxY <= tMaxZ:
			y += stepY
			tMaxY += tDeltaY
		default:
			z += stepZ
			tMaxZ += tDeltaZ
		}
	}
}

func axisStep(origin, delta float64) (step int, tMax, tDelta float64) {
	switch {
	case delta > 0:
		next := math.Floor(origin) + 1
		return 1, (next - origin) / delta, 1 / delta
	case delta < 0:
		prev := math.Floor(origin)
		return -1, (origin - prev) / -delta, 1 / -delta
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
