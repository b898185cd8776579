package spatial

import "math"

// Speed computes the per-sample movement speed of a position trace: the
// Euclidean distance to the next sample divided by the interval to it.
// The final sample gets 0, matching its zero duration in Occupancy, and
// so does any sample with a zero interval (a repeated timestamp).
//
// The result has the trace's length, so it plugs directly into
// OccupancyOptions.Speed for stationary-period filtering.
func Speed(tr *Trace) []float64 {
	n := tr.Len()
	speed := make([]float64, n)
	for i := 0; i < n-1; i++ {
		dt := tr.times[i+1] - tr.times[i]
		if dt == 0 {
			continue
		}
		dx := tr.x[i+1] - tr.x[i]
		dy := tr.y[i+1] - tr.y[i]
		speed[i] = math.Hypot(dx, dy) / dt
	}

	return speed
}
