package index

import (
	"testing"

	"github.com/skyfold/flightdeck/internal/domain"
)

func sampleAdvisories() []domain.RouteAdvisory {
	return []domain.RouteAdvisory{
		{Carrier: "NK", Origin: "AUS", Destination: "DFW", Warning: "frequent evening thunderstorm holds"},
		{Carrier: "NK", Origin: "AUS", Destination: "DFW", Warning: "tight connection banks"},
		{Origin: "EWR", Destination: "SFO", Warning: "ATC congestion on summer afternoons"},
	}
}

func TestAdvisoryIndexLookup(t *testing.T) {
	idx := NewAdvisoryIndex()
	idx.Update(sampleAdvisories())

	if idx.Count() != 3 {
		t.Errorf("Count() = %d, want 3", idx.Count())
	}
	if idx.GetLastReload().IsZero() {
		t.Error("GetLastReload() is zero after update")
	}

	tests := []struct {
		name    string
		carrier string
		origin  string
		dest    string
		want    int
	}{
		{"carrier-specific match", "NK", "AUS", "DFW", 2},
		{"other carrier on same route", "AA", "AUS", "DFW", 0},
		{"any-carrier advisory", "UA", "EWR", "SFO", 1},
		{"unknown route", "NK", "AUS", "JFK", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Warnings(tt.carrier, tt.origin, tt.dest)
			if len(got) != tt.want {
				t.Errorf("Warnings(%s, %s-%s) = %v, want %d entries", tt.carrier, tt.origin, tt.dest, got, tt.want)
			}
		})
	}
}

func TestAdvisoryIndexUpdateReplaces(t *testing.T) {
	idx := NewAdvisoryIndex()
	idx.Update(sampleAdvisories())
	idx.Update([]domain.RouteAdvisory{
		{Carrier: "AA", Origin: "DFW", Destination: "JFK", Warning: "gate changes common"},
	})

	if idx.Count() != 1 {
		t.Errorf("Count() after replace = %d, want 1", idx.Count())
	}
	if got := idx.Warnings("NK", "AUS", "DFW"); len(got) != 0 {
		t.Errorf("stale advisories survived replace: %v", got)
	}
}

func TestAdvisoryIndexReturnsCopy(t *testing.T) {
	idx := NewAdvisoryIndex()
	idx.Update(sampleAdvisories())

	first := idx.Warnings("NK", "AUS", "DFW")
	first[0] = "mutated"

	second := idx.Warnings("NK", "AUS", "DFW")
	if second[0] == "mutated" {
		t.Error("Warnings() exposed internal storage to callers")
	}
}

func TestAdvisoryIndexEmpty(t *testing.T) {
	idx := NewAdvisoryIndex()
	if got := idx.Warnings("AA", "AUS", "DFW"); got != nil {
		t.Errorf("Warnings() on empty index = %v, want nil", got)
	}
}
