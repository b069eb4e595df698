package domain

// AdvisoryLookup supplies caller-provided heuristic warnings for a
// carrier on a route ("carrier historically delayed on this route").
// The table behind it is built by an external collaborator before the
// core runs; Annotate itself performs no lookup side effects beyond
// reading it.
type AdvisoryLookup interface {
	Warnings(carrier, origin, destination string) []string
}

// Annotation is the presentation metadata attached to one segment.
type Annotation struct {
	// Amenities is the segment's tag set with duplicates removed,
	// first occurrence order preserved.
	Amenities []string

	// Warnings is the ordered list of risk warnings for the segment.
	Warnings []string
}

// Annotate merges the amenity and warning metadata already present on a
// segment with the advisory table. Pure data merge, no I/O.
func Annotate(seg SegmentRecord, advisories AdvisoryLookup) Annotation {
	var ann Annotation

	if len(seg.Amenities) > 0 {
		seen := make(map[string]struct{}, len(seg.Amenities))
		for _, tag := range seg.Amenities {
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			ann.Amenities = append(ann.Amenities, tag)
		}
	}

	if seg.OftenDelayed {
		ann.Warnings = append(ann.Warnings, "often delayed by over 30 minutes")
	}
	if advisories != nil {
		ann.Warnings = append(ann.Warnings, advisories.Warnings(seg.Carrier, seg.Origin, seg.Destination)...)
	}

	return ann
}
