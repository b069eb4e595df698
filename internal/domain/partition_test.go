package domain

import (
	"errors"
	"testing"
	"time"
)

// seg builds a segment for tests; times are spaced an hour apart so the
// global departure ordering holds.
func seg(origin, destination string, hour int) SegmentRecord {
	base := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	return SegmentRecord{
		Carrier:         "AA",
		FlightNumber:    "AA 100",
		Origin:          origin,
		Destination:     destination,
		Departure:       base.Add(time.Duration(hour) * time.Hour),
		Arrival:         base.Add(time.Duration(hour) * time.Hour).Add(50 * time.Minute),
		DurationMinutes: 50,
	}
}

func chain(hops ...string) []SegmentRecord {
	segments := make([]SegmentRecord, 0, len(hops)-1)
	for i := 1; i < len(hops); i++ {
		segments = append(segments, seg(hops[i-1], hops[i], i*2))
	}
	return segments
}

func roundTrip(origin, destination string) TripRequest {
	return TripRequest{
		Origin:       origin,
		Destination:  destination,
		OutboundDate: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		ReturnDate:   time.Date(2025, 7, 22, 0, 0, 0, 0, time.UTC),
		TripType:     TripTypeRoundTrip,
	}
}

func routes(leg []SegmentRecord) []string {
	out := make([]string, len(leg))
	for i, s := range leg {
		out[i] = s.Route()
	}
	return out
}

func routesEqual(got []string, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestPartitionOneWay(t *testing.T) {
	segments := chain("AUS", "DFW", "JFK")
	trip := TripRequest{
		Origin:       "AUS",
		Destination:  "JFK",
		OutboundDate: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		TripType:     TripTypeOneWay,
	}

	outbound, ret, err := Partition(segments, trip)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}
	if len(ret) != 0 {
		t.Errorf("return leg = %v, want empty", routes(ret))
	}
	if !routesEqual(routes(outbound), []string{"AUS-DFW", "DFW-JFK"}) {
		t.Errorf("outbound = %v, want all segments unchanged", routes(outbound))
	}
}

func TestPartitionRoundTrip(t *testing.T) {
	tests := []struct {
		name         string
		segments     []SegmentRecord
		trip         TripRequest
		wantOutbound []string
		wantReturn   []string
	}{
		{
			name:         "symmetric connections",
			segments:     chain("AUS", "DFW", "JFK", "LAX", "AUS"),
			trip:         roundTrip("AUS", "JFK"),
			wantOutbound: []string{"AUS-DFW", "DFW-JFK"},
			wantReturn:   []string{"JFK-LAX", "LAX-AUS"},
		},
		{
			name:         "asymmetric legs: 1 out, 3 back",
			segments:     chain("AUS", "JFK", "ATL", "DFW", "AUS"),
			trip:         roundTrip("AUS", "JFK"),
			wantOutbound: []string{"AUS-JFK"},
			wantReturn:   []string{"JFK-ATL", "ATL-DFW", "DFW-AUS"},
		},
		{
			name:         "nonstop both ways",
			segments:     chain("AUS", "JFK", "AUS"),
			trip:         roundTrip("AUS", "JFK"),
			wantOutbound: []string{"AUS-JFK"},
			wantReturn:   []string{"JFK-AUS"},
		},
		{
			// The destination appears twice: once as a technical stop on
			// the outbound chain, once as the real turn-around point.
			// The latest valid split wins.
			name:         "technical stop at destination",
			segments:     chain("AUS", "JFK", "BOS", "JFK", "AUS"),
			trip:         roundTrip("AUS", "JFK"),
			wantOutbound: []string{"AUS-JFK", "JFK-BOS", "BOS-JFK"},
			wantReturn:   []string{"JFK-AUS"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outbound, ret, err := Partition(tt.segments, tt.trip)
			if err != nil {
				t.Fatalf("Partition() error = %v", err)
			}
			if !routesEqual(routes(outbound), tt.wantOutbound) {
				t.Errorf("outbound = %v, want %v", routes(outbound), tt.wantOutbound)
			}
			if !routesEqual(routes(ret), tt.wantReturn) {
				t.Errorf("return = %v, want %v", routes(ret), tt.wantReturn)
			}

			// Concatenation must reproduce the input exactly.
			combined := append(append([]SegmentRecord{}, outbound...), ret...)
			if len(combined) != len(tt.segments) {
				t.Fatalf("outbound ++ return has %d segments, input had %d", len(combined), len(tt.segments))
			}
			for i := range combined {
				if combined[i].Route() != tt.segments[i].Route() {
					t.Errorf("segment %d = %s, want %s", i, combined[i].Route(), tt.segments[i].Route())
				}
			}
		})
	}
}

func TestPartitionErrors(t *testing.T) {
	tests := []struct {
		name     string
		segments []SegmentRecord
		trip     TripRequest
	}{
		{
			name:     "no segments",
			segments: nil,
			trip:     roundTrip("AUS", "JFK"),
		},
		{
			name:     "round trip never returns to origin",
			segments: chain("AUS", "DFW", "JFK", "LAX"),
			trip:     roundTrip("AUS", "JFK"),
		},
		{
			name:     "round trip never reaches destination",
			segments: chain("AUS", "DFW", "ORD", "AUS"),
			trip:     roundTrip("AUS", "JFK"),
		},
		{
			name: "broken chain on outbound",
			segments: []SegmentRecord{
				seg("AUS", "DFW", 2),
				seg("ORD", "JFK", 4),
				seg("JFK", "AUS", 6),
			},
			trip: roundTrip("AUS", "JFK"),
		},
		{
			name: "broken chain on one-way",
			segments: []SegmentRecord{
				seg("AUS", "DFW", 2),
				seg("ORD", "JFK", 4),
			},
			trip: TripRequest{
				Origin:       "AUS",
				Destination:  "JFK",
				OutboundDate: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
				TripType:     TripTypeOneWay,
			},
		},
		{
			name:     "wrong trip origin",
			segments: chain("DFW", "JFK", "DFW"),
			trip:     roundTrip("AUS", "JFK"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Partition(tt.segments, tt.trip)
			if err == nil {
				t.Fatal("Partition() returned nil error, want PartitionError")
			}
			var perr *PartitionError
			if !errors.As(err, &perr) {
				t.Errorf("error type = %T, want *PartitionError", err)
			}
		})
	}
}
