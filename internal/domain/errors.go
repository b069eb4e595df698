package domain

import "fmt"

// MalformedSegmentError reports a segment that cannot enter the core:
// a required field is missing, a timestamp is unparsable, or analysis
// found a negative inter-segment gap. One malformed segment invalidates
// the whole itinerary; the caller decides whether to skip it or surface
// the raw provider data instead.
type MalformedSegmentError struct {
	// Index is the position of the offending segment in the input list.
	Index int
	// Field names the field at fault (origin, departure_time, ...).
	Field string
	// Reason is a short human-readable explanation.
	Reason string
}

func (e *MalformedSegmentError) Error() string {
	return fmt.Sprintf("malformed segment %d: %s: %s", e.Index, e.Field, e.Reason)
}

// PartitionError reports that an ordered segment list cannot be split
// into valid outbound/return legs for the given trip request. Rendering
// is refused rather than guessed.
type PartitionError struct {
	Origin      string
	Destination string
	Reason      string
}

func (e *PartitionError) Error() string {
	return fmt.Sprintf("cannot partition itinerary %s->%s: %s", e.Origin, e.Destination, e.Reason)
}
