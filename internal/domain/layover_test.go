package domain

import (
	"errors"
	"testing"
	"time"
)

func segAt(origin, destination string, dep, arr time.Time) SegmentRecord {
	return SegmentRecord{
		Carrier:         "AA",
		FlightNumber:    "AA 100",
		Origin:          origin,
		Destination:     destination,
		Departure:       dep,
		Arrival:         arr,
		DurationMinutes: int(arr.Sub(dep).Minutes()),
	}
}

func at(day, hour, min int) time.Time {
	return time.Date(2025, 7, day, hour, min, 0, 0, time.UTC)
}

func TestComputeLayovers(t *testing.T) {
	tests := []struct {
		name          string
		leg           []SegmentRecord
		threshold     int
		wantGaps      []int
		wantOvernight []bool
		wantLong      []bool
	}{
		{
			name: "50 minute same-day layover",
			leg: []SegmentRecord{
				segAt("AUS", "DFW", at(15, 6, 0), at(15, 7, 0)),
				segAt("DFW", "JFK", at(15, 7, 50), at(15, 11, 30)),
			},
			wantGaps:      []int{50},
			wantOvernight: []bool{false},
			wantLong:      []bool{false},
		},
		{
			// Arrives 23:50, departs 00:40 the next date: a short gap
			// that still counts as overnight.
			name: "midnight-crossing layover",
			leg: []SegmentRecord{
				segAt("AUS", "DFW", at(15, 22, 40), at(15, 23, 50)),
				segAt("DFW", "JFK", at(16, 0, 40), at(16, 4, 10)),
			},
			wantGaps:      []int{50},
			wantOvernight: []bool{true},
			wantLong:      []bool{false},
		},
		{
			name: "long same-day layover at default threshold",
			leg: []SegmentRecord{
				segAt("AUS", "DFW", at(15, 6, 0), at(15, 7, 0)),
				segAt("DFW", "JFK", at(15, 11, 0), at(15, 14, 30)),
			},
			wantGaps:      []int{240},
			wantOvernight: []bool{false},
			wantLong:      []bool{true},
		},
		{
			name: "custom threshold",
			leg: []SegmentRecord{
				segAt("AUS", "DFW", at(15, 6, 0), at(15, 7, 0)),
				segAt("DFW", "JFK", at(15, 9, 0), at(15, 12, 30)),
			},
			threshold:     90,
			wantGaps:      []int{120},
			wantOvernight: []bool{false},
			wantLong:      []bool{true},
		},
		{
			name: "two connections",
			leg: []SegmentRecord{
				segAt("AUS", "DFW", at(15, 6, 0), at(15, 7, 0)),
				segAt("DFW", "ORD", at(15, 8, 0), at(15, 10, 0)),
				segAt("ORD", "JFK", at(15, 10, 45), at(15, 13, 0)),
			},
			wantGaps:      []int{60, 45},
			wantOvernight: []bool{false, false},
			wantLong:      []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layovers, err := ComputeLayovers(tt.leg, tt.threshold)
			if err != nil {
				t.Fatalf("ComputeLayovers() error = %v", err)
			}
			if len(layovers) != len(tt.leg)-1 {
				t.Fatalf("got %d layovers, want %d", len(layovers), len(tt.leg)-1)
			}
			for i, lay := range layovers {
				if lay.Airport != tt.leg[i].Destination {
					t.Errorf("layover %d airport = %s, want %s", i, lay.Airport, tt.leg[i].Destination)
				}
				if lay.GapMinutes != tt.wantGaps[i] {
					t.Errorf("layover %d gap = %d, want %d", i, lay.GapMinutes, tt.wantGaps[i])
				}
				if lay.Overnight != tt.wantOvernight[i] {
					t.Errorf("layover %d overnight = %v, want %v", i, lay.Overnight, tt.wantOvernight[i])
				}
				if lay.Long != tt.wantLong[i] {
					t.Errorf("layover %d long = %v, want %v", i, lay.Long, tt.wantLong[i])
				}
			}
		})
	}
}

func TestComputeLayoversSingleSegment(t *testing.T) {
	leg := []SegmentRecord{segAt("AUS", "JFK", at(15, 6, 0), at(15, 10, 0))}
	layovers, err := ComputeLayovers(leg, 0)
	if err != nil {
		t.Fatalf("ComputeLayovers() error = %v", err)
	}
	if len(layovers) != 0 {
		t.Errorf("got %d layovers for single-segment leg, want 0", len(layovers))
	}
}

func TestComputeLayoversNegativeGap(t *testing.T) {
	leg := []SegmentRecord{
		segAt("AUS", "DFW", at(15, 6, 0), at(15, 8, 0)),
		segAt("DFW", "JFK", at(15, 7, 30), at(15, 11, 0)),
	}
	_, err := ComputeLayovers(leg, 0)
	if err == nil {
		t.Fatal("ComputeLayovers() returned nil error for negative gap")
	}
	var merr *MalformedSegmentError
	if !errors.As(err, &merr) {
		t.Fatalf("error type = %T, want *MalformedSegmentError", err)
	}
	if merr.Index != 1 {
		t.Errorf("error index = %d, want 1", merr.Index)
	}
}
