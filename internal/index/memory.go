package index

import (
	"sync"
	"time"

	"github.com/skyfold/flightdeck/internal/domain"
)

// AdvisoryIndex is the in-memory route-advisory lookup table consulted
// by the annotator. It is replaced wholesale on each reload and safe for
// concurrent readers.
type AdvisoryIndex struct {
	mu         sync.RWMutex
	byRoute    map[string][]string // carrier|origin|destination -> warnings
	count      int
	lastReload time.Time
}

// NewAdvisoryIndex creates an empty advisory index.
func NewAdvisoryIndex() *AdvisoryIndex {
	return &AdvisoryIndex{
		byRoute: make(map[string][]string),
	}
}

// Update replaces all advisories in the index.
func (idx *AdvisoryIndex) Update(advisories []domain.RouteAdvisory) {
	byRoute := make(map[string][]string, len(advisories))
	for _, adv := range advisories {
		key := routeKey(adv.Carrier, adv.Origin, adv.Destination)
		byRoute[key] = append(byRoute[key], adv.Warning)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.byRoute = byRoute
	idx.count = len(advisories)
	idx.lastReload = time.Now()
}

// Warnings returns the advisory warnings for a carrier on a route:
// carrier-specific entries first, then any-carrier entries. The result
// is a copy; callers may append to it freely.
func (idx *AdvisoryIndex) Warnings(carrier, origin, destination string) []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	specific := idx.byRoute[routeKey(carrier, origin, destination)]
	generic := idx.byRoute[routeKey("", origin, destination)]
	if len(specific) == 0 && len(generic) == 0 {
		return nil
	}

	warnings := make([]string, 0, len(specific)+len(generic))
	warnings = append(warnings, specific...)
	warnings = append(warnings, generic...)
	return warnings
}

// Count returns the number of advisories in the index.
func (idx *AdvisoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.count
}

// GetLastReload returns the timestamp of the last advisory reload.
func (idx *AdvisoryIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}

func routeKey(carrier, origin, destination string) string {
	return carrier + "|" + origin + "|" + destination
}
