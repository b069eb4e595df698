package domain

import (
	"fmt"
	"time"
)

// TripType tells the partition engine whether a return leg is expected.
type TripType string

const (
	TripTypeOneWay    TripType = "one_way"
	TripTypeRoundTrip TripType = "round_trip"
)

// TripRequest is the search intent a caller hands to the core.
//
// It is owned by the caller and read-only here: nothing in this package
// mutates it. Airport codes are expected to be upper-case IATA codes;
// the normalization boundary takes care of that before the core runs.
type TripRequest struct {
	// Origin is the IATA code of the trip's starting airport.
	// Example: AUS
	Origin string

	// Destination is the IATA code of the trip's destination airport.
	Destination string

	// OutboundDate is the requested departure date.
	OutboundDate time.Time

	// ReturnDate is the requested return date.
	// Zero for one-way trips.
	ReturnDate time.Time

	// TripType is one_way or round_trip.
	TripType TripType
}

// Validate checks the request is internally consistent.
// It does not enforce date validity beyond basic ordering.
func (t TripRequest) Validate() error {
	if t.Origin == "" {
		return fmt.Errorf("trip request: origin is required")
	}
	if t.Destination == "" {
		return fmt.Errorf("trip request: destination is required")
	}
	switch t.TripType {
	case TripTypeOneWay:
		// Return date (if any) is ignored for one-way trips.
	case TripTypeRoundTrip:
		if t.ReturnDate.IsZero() {
			return fmt.Errorf("trip request: return date is required for round trips")
		}
		if t.ReturnDate.Before(t.OutboundDate) {
			return fmt.Errorf("trip request: return date precedes outbound date")
		}
	default:
		return fmt.Errorf("trip request: unknown trip type %q", t.TripType)
	}
	if t.OutboundDate.IsZero() {
		return fmt.Errorf("trip request: outbound date is required")
	}
	return nil
}

// RoundTrip reports whether a return leg is expected.
func (t TripRequest) RoundTrip() bool {
	return t.TripType == TripTypeRoundTrip
}
