package domain

// Itinerary is the core's structured output: the partitioned legs, the
// layovers inside each, and per-leg totals. All slices keep the order of
// the original input; the concatenation of Outbound and Return is the
// input sequence exactly.
type Itinerary struct {
	Outbound []SegmentRecord
	Return   []SegmentRecord

	OutboundLayovers []LayoverInfo
	ReturnLayovers   []LayoverInfo

	// OutboundMinutes and ReturnMinutes are exact integer sums of
	// segment durations plus layover gaps for each leg.
	OutboundMinutes int
	ReturnMinutes   int
}

// OneWay reports whether the itinerary has no return leg.
func (it Itinerary) OneWay() bool {
	return len(it.Return) == 0
}

// BuildItinerary composes partitioned legs and their layovers into the
// final value. Totals use exact integer arithmetic, no rounding.
func BuildItinerary(outbound, ret []SegmentRecord, outboundLayovers, returnLayovers []LayoverInfo) Itinerary {
	return Itinerary{
		Outbound:         outbound,
		Return:           ret,
		OutboundLayovers: outboundLayovers,
		ReturnLayovers:   returnLayovers,
		OutboundMinutes:  legMinutes(outbound, outboundLayovers),
		ReturnMinutes:    legMinutes(ret, returnLayovers),
	}
}

func legMinutes(leg []SegmentRecord, layovers []LayoverInfo) int {
	total := 0
	for _, seg := range leg {
		total += seg.DurationMinutes
	}
	for _, lay := range layovers {
		total += lay.GapMinutes
	}
	return total
}
