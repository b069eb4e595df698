// Package render turns a structured itinerary into the fixed-layout text
// report consumed by CLI and report-saving callers. Rendering is a pure
// function of its inputs: identical inputs produce byte-identical output.
package render

import (
	"fmt"
	"strings"

	"github.com/skyfold/flightdeck/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

// Report renders the full text report for one itinerary. Annotations are
// positional: outAnn[i] belongs to it.Outbound[i], retAnn[i] to
// it.Return[i]. Missing annotations render as empty.
func Report(trip domain.TripRequest, it domain.Itinerary, outAnn, retAnn []domain.Annotation) string {
	var b strings.Builder

	writeLeg(&b, "OUTBOUND", trip.Origin, trip.Destination, it.Outbound, it.OutboundLayovers, outAnn, it.OutboundMinutes)
	if !it.OneWay() {
		b.WriteString("\n")
		writeLeg(&b, "RETURN", trip.Destination, trip.Origin, it.Return, it.ReturnLayovers, retAnn, it.ReturnMinutes)
	}

	return b.String()
}

func writeLeg(b *strings.Builder, marker, from, to string, leg []domain.SegmentRecord, layovers []domain.LayoverInfo, anns []domain.Annotation, totalMinutes int) {
	fmt.Fprintf(b, "=== %s  %s -> %s ===\n", marker, from, to)

	for i, seg := range leg {
		var ann domain.Annotation
		if i < len(anns) {
			ann = anns[i]
		}
		writeSegment(b, i+1, seg, ann)

		if i < len(layovers) {
			writeLayover(b, layovers[i])
		}
	}

	fmt.Fprintf(b, "Total duration: %s\n", FormatMinutes(totalMinutes))
}

func writeSegment(b *strings.Builder, n int, seg domain.SegmentRecord, ann domain.Annotation) {
	name := seg.Airline
	if name == "" {
		name = seg.Carrier
	}
	fmt.Fprintf(b, "[%d] %s %s  %s -> %s\n", n, name, seg.FlightNumber, seg.Origin, seg.Destination)
	fmt.Fprintf(b, "    Depart:   %s\n", seg.Departure.Format(timeLayout))
	fmt.Fprintf(b, "    Arrive:   %s\n", seg.Arrival.Format(timeLayout))
	fmt.Fprintf(b, "    Duration: %s\n", FormatMinutes(seg.DurationMinutes))
	if seg.Aircraft != "" {
		fmt.Fprintf(b, "    Aircraft: %s\n", seg.Aircraft)
	}
	if len(ann.Amenities) > 0 {
		fmt.Fprintf(b, "    Amenities: %s\n", strings.Join(ann.Amenities, ", "))
	}
	for _, warning := range ann.Warnings {
		fmt.Fprintf(b, "    Warning: %s\n", warning)
	}
}

func writeLayover(b *strings.Builder, lay domain.LayoverInfo) {
	fmt.Fprintf(b, "    -- layover at %s: %s", lay.Airport, FormatMinutes(lay.GapMinutes))
	if lay.Overnight {
		b.WriteString(" (overnight)")
	}
	if lay.Long {
		b.WriteString(" (long)")
	}
	b.WriteString("\n")
}

// FormatMinutes renders a minute count as "Xh Ym", collapsing zero parts.
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
