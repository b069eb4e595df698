package render

import (
	"strings"
	"testing"
	"time"

	"github.com/skyfold/flightdeck/internal/domain"
)

func testItinerary(t *testing.T) (domain.TripRequest, domain.Itinerary, []domain.Annotation, []domain.Annotation) {
	t.Helper()

	trip := domain.TripRequest{
		Origin:       "AUS",
		Destination:  "JFK",
		OutboundDate: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		ReturnDate:   time.Date(2025, 7, 22, 0, 0, 0, 0, time.UTC),
		TripType:     domain.TripTypeRoundTrip,
	}

	out := []domain.SegmentRecord{
		{
			Carrier: "AA", Airline: "American", FlightNumber: "AA 2417",
			Origin: "AUS", Destination: "DFW",
			Departure:       time.Date(2025, 7, 15, 6, 30, 0, 0, time.UTC),
			Arrival:         time.Date(2025, 7, 15, 7, 45, 0, 0, time.UTC),
			Aircraft:        "Boeing 737",
			DurationMinutes: 75,
		},
		{
			Carrier: "AA", Airline: "American", FlightNumber: "AA 180",
			Origin: "DFW", Destination: "JFK",
			Departure:       time.Date(2025, 7, 15, 9, 0, 0, 0, time.UTC),
			Arrival:         time.Date(2025, 7, 15, 13, 30, 0, 0, time.UTC),
			DurationMinutes: 270,
		},
	}
	back := []domain.SegmentRecord{
		{
			Carrier: "AA", Airline: "American", FlightNumber: "AA 55",
			Origin: "JFK", Destination: "AUS",
			Departure:       time.Date(2025, 7, 22, 10, 0, 0, 0, time.UTC),
			Arrival:         time.Date(2025, 7, 22, 13, 0, 0, 0, time.UTC),
			DurationMinutes: 180,
		},
	}
	outLay := []domain.LayoverInfo{{Airport: "DFW", GapMinutes: 75}}

	it := domain.BuildItinerary(out, back, outLay, nil)
	outAnn := []domain.Annotation{
		{Amenities: []string{"Wi-Fi", "In-seat power"}},
		{Warnings: []string{"often delayed by over 30 minutes"}},
	}
	return trip, it, outAnn, []domain.Annotation{{}}
}

func TestReportLayout(t *testing.T) {
	trip, it, outAnn, retAnn := testItinerary(t)
	report := Report(trip, it, outAnn, retAnn)

	wants := []string{
		"=== OUTBOUND  AUS -> JFK ===",
		"=== RETURN  JFK -> AUS ===",
		"[1] American AA 2417  AUS -> DFW",
		"    Depart:   2025-07-15 06:30",
		"    Arrive:   2025-07-15 07:45",
		"    Aircraft: Boeing 737",
		"    Amenities: Wi-Fi, In-seat power",
		"    Warning: often delayed by over 30 minutes",
		"    -- layover at DFW: 1h 15m",
		"Total duration: 7h\n",
		"Total duration: 3h\n",
	}
	for _, want := range wants {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q\nreport:\n%s", want, report)
		}
	}
}

func TestReportDeterministic(t *testing.T) {
	trip, it, outAnn, retAnn := testItinerary(t)
	first := Report(trip, it, outAnn, retAnn)
	second := Report(trip, it, outAnn, retAnn)
	if first != second {
		t.Error("identical inputs produced different reports")
	}
}

func TestReportOneWay(t *testing.T) {
	trip, it, outAnn, _ := testItinerary(t)
	trip.TripType = domain.TripTypeOneWay
	it = domain.BuildItinerary(it.Outbound, nil, it.OutboundLayovers, nil)

	report := Report(trip, it, outAnn, nil)
	if strings.Contains(report, "RETURN") {
		t.Errorf("one-way report contains a return block:\n%s", report)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{75, "1h 15m"},
		{420, "7h"},
	}
	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
