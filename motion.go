package pulse

import "math"

// Percent returns the loop phase of frame f for a loop of duration frames.
// The result is always in [0, 1) and Percent(f) == Percent(f+duration).
// A non-positive duration yields 0.
func Percent(frame, duration int) float64 {
	if duration <= 0 {
		return 0
	}
	m := ((frame % duration) + duration) % duration
	return float64(m) / float64(duration)
}

// Ease is the displacement easing curve t^5. It is 0 at 0, 1 at 1, and
// keeps the sign of t.
func Ease(t float64) float64 {
	t2 := t * t
	return t2 * t2 * t
}

// DistSq returns the squared Euclidean distance between (x1, y1) and (x2, y2).
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between (x1, y1) and (x2, y2).
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistSq(x1, y1, x2, y2))
}

// Wave returns the traveling-wave intensity for a cell at relative distance
// pixelDist from the center at loop phase percent.
//
// With TrigAbs the result is in [0, 1], with TrigSigned in [-1, 1].
func Wave(pixelDist, percent, omega float64, mode TrigMode) float64 {
	phi := pixelDist * math.Pi
	w := math.Cos(-phi + omega*percent)
	if mode == TrigAbs {
		return math.Abs(w)
	}
	return w
}
