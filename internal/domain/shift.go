package domain

// BreakOption distinguishes a break a vehicle must take from one it may
// skip.
type BreakOption int

const (
	// Mandatory breaks must be scheduled within their allowed window.
	Mandatory BreakOption = iota
	// Optional breaks may be skipped entirely.
	Optional
)

// Break is a pause a vehicle may (Mandatory: must) take during a shift.
type Break struct {
	AllowedTimeWindow ValueRange
	Duration          int64
	Option            BreakOption
	Location          *LocationID
}

// NewBreak constructs a Break, clamping Duration to
// [0, AllowedTimeWindow.Length()] per the spec invariant.
func NewBreak(window ValueRange, duration int64, option BreakOption, location *LocationID) Break {
	if duration < 0 {
		duration = 0
	}
	if max := window.Length(); duration > max {
		duration = max
	}
	return Break{
		AllowedTimeWindow: window,
		Duration:          duration,
		Option:            option,
		Location:          location,
	}
}

// Shift is a time window, a start/end location pair, and the breaks and
// cost overrides that apply while a vehicle operates within it.
type Shift struct {
	ShiftTimeWindow ValueRange
	StartLocation   *LocationID
	EndLocation     *LocationID
	Breaks          []Break

	// Cost overrides. nil means "use the parent vehicle's value / zero".
	FixedCost       *int64
	BaseCost        *int64
	DistanceCost    *int64
	TimeCost        *int64
	WaitingTimeCost *int64
	MaxDuration     *int64
	MaxDistance     *int64
}

// NewShift retains only the breaks whose AllowedTimeWindow is enclosed by
// the shift's own time window, per the spec invariant.
func NewShift(window ValueRange, start, end *LocationID, breaks []Break, opts ShiftCostOverrides) Shift {
	kept := make([]Break, 0, len(breaks))
	for _, b := range breaks {
		if window.Contains(b.AllowedTimeWindow) {
			kept = append(kept, b)
		}
	}
	return Shift{
		ShiftTimeWindow: window,
		StartLocation:   start,
		EndLocation:     end,
		Breaks:          kept,
		FixedCost:       opts.FixedCost,
		BaseCost:        opts.BaseCost,
		DistanceCost:    opts.DistanceCost,
		TimeCost:        opts.TimeCost,
		WaitingTimeCost: opts.WaitingTimeCost,
		MaxDuration:     opts.MaxDuration,
		MaxDistance:     opts.MaxDistance,
	}
}

// ShiftCostOverrides groups the optional per-shift cost fields so
// NewShift's signature does not balloon every time one is added.
type ShiftCostOverrides struct {
	FixedCost       *int64
	BaseCost        *int64
	DistanceCost    *int64
	TimeCost        *int64
	WaitingTimeCost *int64
	MaxDuration     *int64
	MaxDistance     *int64
}
