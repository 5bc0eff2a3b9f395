package domain

// ValueRange is an ordered pair (Min, Max) with Min <= Max, used throughout
// the solver for time windows, arrival/departure/waiting windows, and cumul
// bounds reported by the routing engine.
type ValueRange struct {
	Min int64
	Max int64
}

// NewValueRange normalizes min/max, swapping them if max < min, per the
// spec's constructor invariant.
func NewValueRange(min, max int64) ValueRange {
	if max < min {
		min, max = max, min
	}
	return ValueRange{Min: min, Max: max}
}

// Length returns Max - Min.
func (r ValueRange) Length() int64 {
	return r.Max - r.Min
}

// ContainsScalar reports whether v falls within [Min, Max] inclusive.
func (r ValueRange) ContainsScalar(v int64) bool {
	return v >= r.Min && v <= r.Max
}

// Contains reports whether other is fully enclosed by r.
func (r ValueRange) Contains(other ValueRange) bool {
	return other.Min >= r.Min && other.Max <= r.Max
}

// Intersect returns the tightest range consistent with both r and other:
// [max(r.Min, other.Min), min(r.Max, other.Max)]. Used by the output
// factory to merge co-located stop windows.
func (r ValueRange) Intersect(other ValueRange) ValueRange {
	min := r.Min
	if other.Min > min {
		min = other.Min
	}
	max := r.Max
	if other.Max < max {
		max = other.Max
	}
	return ValueRange{Min: min, Max: max}
}

// Shift returns r translated by delta on both ends, used to turn a time
// window into arrival/departure windows after adding handling time.
func (r ValueRange) Shift(delta int64) ValueRange {
	return ValueRange{Min: r.Min + delta, Max: r.Max + delta}
}
