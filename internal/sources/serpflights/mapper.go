package serpflights

import (
	"strings"
	"time"

	"github.com/skyfold/flightdeck/internal/domain"
)

// segmentTimeLayout is the provider's local-timestamp format.
const segmentTimeLayout = "2006-01-02 15:04"

// Mapper is the normalization boundary: it converts provider-shaped
// flight options into strict domain.SegmentRecord lists. All field
// validation happens here, never deeper in the pipeline; one invalid
// segment invalidates the whole option.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// NormalizeOption validates and coerces every segment of one flight
// option. It fails with *domain.MalformedSegmentError on the first
// missing required field or unparsable timestamp.
func (m *Mapper) NormalizeOption(opt FlightOption) ([]domain.SegmentRecord, error) {
	if len(opt.Flights) == 0 {
		return nil, &domain.MalformedSegmentError{Index: 0, Field: "flights", Reason: "option has no segments"}
	}

	segments := make([]domain.SegmentRecord, 0, len(opt.Flights))
	for i, raw := range opt.Flights {
		seg, err := m.normalizeSegment(i, raw)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func (m *Mapper) normalizeSegment(index int, raw FlightSegment) (domain.SegmentRecord, error) {
	var zero domain.SegmentRecord

	origin := strings.ToUpper(strings.TrimSpace(raw.DepartureAirport.ID))
	if origin == "" {
		return zero, &domain.MalformedSegmentError{Index: index, Field: "departure_airport", Reason: "missing airport code"}
	}
	destination := strings.ToUpper(strings.TrimSpace(raw.ArrivalAirport.ID))
	if destination == "" {
		return zero, &domain.MalformedSegmentError{Index: index, Field: "arrival_airport", Reason: "missing airport code"}
	}

	flightNumber := strings.TrimSpace(raw.FlightNumber)
	if flightNumber == "" {
		return zero, &domain.MalformedSegmentError{Index: index, Field: "flight_number", Reason: "missing"}
	}

	departure, err := parseSegmentTime(raw.DepartureAirport.Time)
	if err != nil {
		return zero, &domain.MalformedSegmentError{Index: index, Field: "departure_time", Reason: err.Error()}
	}
	arrival, err := parseSegmentTime(raw.ArrivalAirport.Time)
	if err != nil {
		return zero, &domain.MalformedSegmentError{Index: index, Field: "arrival_time", Reason: err.Error()}
	}

	duration := raw.Duration
	if duration <= 0 {
		// Some providers omit per-segment durations; fall back to the
		// timestamp delta. Overnight legs across timezones can make
		// this inexact, but it keeps totals well defined.
		duration = int(arrival.Sub(departure).Minutes())
		if duration < 0 {
			return zero, &domain.MalformedSegmentError{Index: index, Field: "arrival_time", Reason: "precedes departure time"}
		}
	}

	return domain.SegmentRecord{
		Carrier:         carrierCode(flightNumber),
		Airline:         strings.TrimSpace(raw.Airline),
		FlightNumber:    flightNumber,
		Origin:          origin,
		Destination:     destination,
		Departure:       departure,
		Arrival:         arrival,
		Aircraft:        strings.TrimSpace(raw.Airplane),
		Amenities:       raw.Extensions,
		OftenDelayed:    raw.OftenDelayed,
		DurationMinutes: duration,
	}, nil
}

func parseSegmentTime(s string) (time.Time, error) {
	return time.Parse(segmentTimeLayout, strings.TrimSpace(s))
}

// carrierCode extracts the IATA carrier prefix from a flight designator.
// Example: "AA 2417" -> "AA"
func carrierCode(flightNumber string) string {
	if i := strings.IndexByte(flightNumber, ' '); i > 0 {
		return strings.ToUpper(flightNumber[:i])
	}
	return strings.ToUpper(flightNumber)
}
