package domain

// DefaultLongLayoverMinutes is the gap length at which a layover is
// flagged as long when the caller does not configure a threshold.
const DefaultLongLayoverMinutes = 240

// LayoverInfo describes the gap between two adjacent segments of a leg.
type LayoverInfo struct {
	// Airport is where the connection happens (previous segment's
	// destination).
	Airport string

	// GapMinutes is the wait between arrival and the next departure.
	GapMinutes int

	// Overnight is true when the gap crosses a calendar-date boundary
	// at the layover airport.
	Overnight bool

	// Long is true when the gap reaches the configured threshold, for
	// warning purposes even when the layover is not overnight.
	Long bool
}

// ComputeLayovers derives the layovers within one leg. The result has
// exactly len(leg)-1 entries; single-segment legs produce none.
//
// A negative gap means the segments were never properly normalized and
// surfaces as MalformedSegmentError rather than being clamped.
func ComputeLayovers(leg []SegmentRecord, longThresholdMinutes int) ([]LayoverInfo, error) {
	if longThresholdMinutes <= 0 {
		longThresholdMinutes = DefaultLongLayoverMinutes
	}
	if len(leg) < 2 {
		return nil, nil
	}

	layovers := make([]LayoverInfo, 0, len(leg)-1)
	for i := 1; i < len(leg); i++ {
		prev, next := leg[i-1], leg[i]

		gap := int(next.Departure.Sub(prev.Arrival).Minutes())
		if gap < 0 {
			return nil, &MalformedSegmentError{
				Index:  i,
				Field:  "departure_time",
				Reason: "departs before the previous segment arrives",
			}
		}

		py, pm, pd := prev.Arrival.Date()
		ny, nm, nd := next.Departure.Date()
		overnight := py != ny || pm != nm || pd != nd

		layovers = append(layovers, LayoverInfo{
			Airport:    prev.Destination,
			GapMinutes: gap,
			Overnight:  overnight,
			Long:       gap >= longThresholdMinutes,
		})
	}
	return layovers, nil
}
