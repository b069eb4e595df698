package domain

import "time"

// SegmentRecord is one flown leg, validated and immutable once it leaves
// the normalization boundary. All partitioning, layover analysis and
// rendering operate on this shape and never on raw provider records.
type SegmentRecord struct {
	// Carrier is the IATA carrier code extracted from the flight number.
	// Example: AA
	Carrier string

	// Airline is the carrier's display name, if the provider supplied one.
	Airline string

	// FlightNumber is the full designator. Example: "AA 2417"
	FlightNumber string

	// Origin and Destination are upper-case IATA airport codes.
	Origin      string
	Destination string

	// Departure and Arrival are airport-local timestamps.
	Departure time.Time
	Arrival   time.Time

	// Aircraft is the equipment type, optional.
	Aircraft string

	// Amenities are provider-supplied tags (wifi, power, legroom...).
	Amenities []string

	// OftenDelayed is the provider's historical-delay flag for this
	// flight. It is merged into warnings by the annotator.
	OftenDelayed bool

	// DurationMinutes is the scheduled block time in minutes.
	DurationMinutes int
}

// Route renders the segment's airport pair. Example: "AUS-DFW"
func (s SegmentRecord) Route() string {
	return s.Origin + "-" + s.Destination
}
