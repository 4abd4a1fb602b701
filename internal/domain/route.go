package domain

// MaxOrderCount is the largest order count accepted for one stop.
const MaxOrderCount = 100000

// Represents a single stop in a route: a position and the orders delivered there.
// The order count travels with the stop, so removing a stop never misaligns counts.
type Stop struct {
	PositionID string
	OrderCount int
}

// Route is the ordered sequence of stops a driver will visit. Duplicates are allowed.
type Route struct {
	Stops []Stop
}

func (r *Route) Len() int { return len(r.Stops) }

// Append a stop with no orders.
func (r *Route) Add(positionID string) {
	r.Stops = append(r.Stops, Stop{PositionID: positionID})
}

// Remove the stop at index; later stops shift down by one.
func (r *Route) RemoveAt(index int) error {
	if index < 0 || index >= len(r.Stops) {
		return ErrStopIndexOutOfRange
	}
	r.Stops = append(r.Stops[:index], r.Stops[index+1:]...)
	return nil
}

func (r *Route) SetOrderCount(index, count int) error {
	if index < 0 || index >= len(r.Stops) {
		return ErrStopIndexOutOfRange
	}
	r.Stops[index].OrderCount = count
	return nil
}

// Snapshot returns a copy of the stops safe to hand to callers.
func (r *Route) Snapshot() []Stop {
	out := make([]Stop, len(r.Stops))
	copy(out, r.Stops)
	return out
}

// Drop all stops.
func (r *Route) Clear() {
	r.Stops = nil
}
