package domain

// Partition splits a time-ordered segment sequence into an outbound leg
// and an optional return leg.
//
// The split is determined structurally, by airport-chain connectivity,
// never by segment count or time gaps: real itineraries range from 1 to
// 6+ segments per leg and outbound/return connection counts are often
// asymmetric, so a midpoint split would be wrong.
//
// One-way trips keep every segment in the outbound leg. Round trips are
// scanned for indices whose destination matches the trip destination;
// among those, the latest index whose suffix is a contiguous chain
// returning to the trip origin wins. This covers itineraries where the
// destination airport also appears mid-chain as a technical stop.
//
// Order is never permuted: outbound followed by the return leg always
// reproduces the input sequence exactly.
func Partition(segments []SegmentRecord, trip TripRequest) (outbound, ret []SegmentRecord, err error) {
	if len(segments) == 0 {
		return nil, nil, &PartitionError{
			Origin:      trip.Origin,
			Destination: trip.Destination,
			Reason:      "no segments",
		}
	}

	if !trip.RoundTrip() {
		if !isChain(segments) {
			return nil, nil, &PartitionError{
				Origin:      trip.Origin,
				Destination: trip.Destination,
				Reason:      "segments do not form a contiguous chain",
			}
		}
		return segments, nil, nil
	}

	// Round trip: the return suffix must be non-empty, so the split
	// index stops one short of the final segment. Scanning backwards
	// implements the latest-valid-split preference.
	for i := len(segments) - 2; i >= 0; i-- {
		if segments[i].Destination != trip.Destination {
			continue
		}
		out := segments[:i+1]
		back := segments[i+1:]
		if !validOutbound(out, trip) {
			continue
		}
		if !validReturn(back, trip) {
			continue
		}
		return out, back, nil
	}

	return nil, nil, &PartitionError{
		Origin:      trip.Origin,
		Destination: trip.Destination,
		Reason:      "no destination-reaching split yields two contiguous chains",
	}
}

// isChain reports whether each segment departs from the airport the
// previous one arrived at.
func isChain(leg []SegmentRecord) bool {
	for i := 1; i < len(leg); i++ {
		if leg[i].Origin != leg[i-1].Destination {
			return false
		}
	}
	return true
}

// validOutbound checks the outbound prefix: contiguous, starting at the
// trip origin and ending at the trip destination.
func validOutbound(leg []SegmentRecord, trip TripRequest) bool {
	if len(leg) == 0 {
		return false
	}
	if leg[0].Origin != trip.Origin {
		return false
	}
	if leg[len(leg)-1].Destination != trip.Destination {
		return false
	}
	return isChain(leg)
}

// validReturn checks the return suffix: contiguous, starting at the trip
// destination and returning to the trip origin.
func validReturn(leg []SegmentRecord, trip TripRequest) bool {
	if len(leg) == 0 {
		return false
	}
	if leg[0].Origin != trip.Destination {
		return false
	}
	if leg[len(leg)-1].Destination != trip.Origin {
		return false
	}
	return isChain(leg)
}
