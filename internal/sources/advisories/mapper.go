package advisories

import (
	"strings"

	"github.com/skyfold/flightdeck/internal/domain"
)

// Mapper converts advisory file entries to domain.RouteAdvisory values.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapAdvisories converts a parsed Config to []domain.RouteAdvisory.
// Rows without a route or warning text are skipped; an empty file is
// valid (no advisories configured).
func (m *Mapper) MapAdvisories(config Config) []domain.RouteAdvisory {
	mapped := make([]domain.RouteAdvisory, 0, len(config.Advisories))
	for _, entry := range config.Advisories {
		origin := strings.ToUpper(strings.TrimSpace(entry.Origin))
		destination := strings.ToUpper(strings.TrimSpace(entry.Destination))
		warning := strings.TrimSpace(entry.Warning)
		if origin == "" || destination == "" || warning == "" {
			continue
		}
		mapped = append(mapped, domain.RouteAdvisory{
			Carrier:     strings.ToUpper(strings.TrimSpace(entry.Carrier)),
			Origin:      origin,
			Destination: destination,
			Warning:     warning,
		})
	}
	return mapped
}
