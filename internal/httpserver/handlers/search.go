package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/skyfold/flightdeck/internal/domain"
	"github.com/skyfold/flightdeck/internal/httpserver/deps"
	"github.com/skyfold/flightdeck/internal/logger"
	"github.com/skyfold/flightdeck/internal/render"
	"github.com/skyfold/flightdeck/internal/sources/serpflights"
	redisstore "github.com/skyfold/flightdeck/internal/store/redis"
)

const dateLayout = "2006-01-02"

// Search runs the full itinerary pipeline for one request: provider
// search, segment normalization, leg partitioning, layover analysis,
// annotation, and rendering. Responses are cached by request hash.
func Search(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		trip, filters, format, err := parseSearchRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		d.Logger.Info("search request",
			logger.String("origin", trip.Origin),
			logger.String("destination", trip.Destination),
			logger.String("trip_type", string(trip.TripType)),
			logger.String("format", format))

		hash := requestHash(r, format)

		// Try cache first (best effort)
		if cached, err := store.GetCachedSearch(ctx, hash); err != nil {
			d.Logger.Warn("search cache lookup failed", logger.Error(err))
		} else if cached != nil {
			d.Logger.Debug("search cache hit", logger.String("hash", hash))
			w.Header().Set("Content-Type", contentType(format))
			w.Header().Set("X-Cache", "HIT")
			_, _ = w.Write(cached)
			return
		}

		result, err := d.Provider.Search(ctx, trip, filters)
		if err != nil {
			d.Logger.Error("provider search failed", logger.Error(err))
			writeError(w, http.StatusBadGateway, "flight search provider unavailable")
			return
		}

		options := result.Options()
		if len(options) == 0 {
			writeError(w, http.StatusNotFound, "no flights found for this trip")
			return
		}

		itineraries := buildItineraries(d, trip, options)
		if len(itineraries) == 0 {
			d.Logger.Error("all provider options failed normalization",
				logger.Int("options", len(options)))
			writeError(w, http.StatusBadGateway, "provider returned no usable flights")
			return
		}

		var payload []byte
		if format == "text" {
			payload = []byte(renderText(trip, itineraries))
		} else {
			payload, err = json.Marshal(buildSearchView(trip, itineraries, result.PriceInsights))
			if err != nil {
				d.Logger.Error("failed to encode search response", logger.Error(err))
				writeError(w, http.StatusInternalServerError, "failed to encode response")
				return
			}
		}

		// Cache the rendered payload (best effort)
		if err := store.CacheSearch(ctx, hash, payload, d.SearchCacheTTL); err != nil {
			d.Logger.Warn("failed to cache search response", logger.Error(err))
		}

		w.Header().Set("Content-Type", contentType(format))
		w.Header().Set("X-Cache", "MISS")
		_, _ = w.Write(payload)
	}
}

// analyzedItinerary pairs the partitioned itinerary with its annotations
// and the provider-level metadata the views need.
type analyzedItinerary struct {
	itinerary   domain.Itinerary
	outboundAnn []domain.Annotation
	returnAnn   []domain.Annotation
	price       int
	carbonGrams int
}

// buildItineraries runs each provider option through the analysis
// pipeline. Options that fail normalization or partitioning are skipped
// with a warning; one bad option must not sink the whole response.
func buildItineraries(d deps.Deps, trip domain.TripRequest, options []serpflights.FlightOption) []analyzedItinerary {
	mapper := serpflights.NewMapper()

	var lookup domain.AdvisoryLookup
	if d.Advisories != nil {
		lookup = d.Advisories
	}

	itineraries := make([]analyzedItinerary, 0, len(options))
	for i, opt := range options {
		segments, err := mapper.NormalizeOption(opt)
		if err != nil {
			d.Logger.Warn("skipping unusable flight option",
				logger.Int("option", i), logger.Error(err))
			continue
		}

		outbound, ret, err := domain.Partition(segments, trip)
		if err != nil {
			d.Logger.Warn("skipping option that cannot be partitioned",
				logger.Int("option", i), logger.Error(err))
			continue
		}

		outLayovers, err := domain.ComputeLayovers(outbound, d.LongLayoverMinutes)
		if err != nil {
			d.Logger.Warn("skipping option with malformed outbound leg",
				logger.Int("option", i), logger.Error(err))
			continue
		}
		retLayovers, err := domain.ComputeLayovers(ret, d.LongLayoverMinutes)
		if err != nil {
			d.Logger.Warn("skipping option with malformed return leg",
				logger.Int("option", i), logger.Error(err))
			continue
		}

		it := domain.BuildItinerary(outbound, ret, outLayovers, retLayovers)

		ai := analyzedItinerary{
			itinerary:   it,
			outboundAnn: annotateLeg(outbound, lookup),
			returnAnn:   annotateLeg(ret, lookup),
			price:       opt.Price,
		}
		if opt.CarbonEmissions != nil {
			ai.carbonGrams = opt.CarbonEmissions.ThisFlight
		}
		itineraries = append(itineraries, ai)
	}
	return itineraries
}

func annotateLeg(leg []domain.SegmentRecord, lookup domain.AdvisoryLookup) []domain.Annotation {
	if len(leg) == 0 {
		return nil
	}
	annotations := make([]domain.Annotation, len(leg))
	for i, seg := range leg {
		annotations[i] = domain.Annotate(seg, lookup)
	}
	return annotations
}

func parseSearchRequest(r *http.Request) (domain.TripRequest, serpflights.SearchFilters, string, error) {
	q := r.URL.Query()

	trip := domain.TripRequest{
		Origin:      strings.ToUpper(strings.TrimSpace(q.Get("origin"))),
		Destination: strings.ToUpper(strings.TrimSpace(q.Get("destination"))),
	}

	var filters serpflights.SearchFilters
	format := q.Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "text" {
		return trip, filters, "", fmt.Errorf("unknown format %q (want json or text)", format)
	}

	if trip.Origin == "" || trip.Destination == "" {
		return trip, filters, "", fmt.Errorf("origin and destination are required")
	}

	outbound, err := time.Parse(dateLayout, q.Get("outbound_date"))
	if err != nil {
		return trip, filters, "", fmt.Errorf("invalid outbound_date (want YYYY-MM-DD)")
	}
	trip.OutboundDate = outbound

	if ret := q.Get("return_date"); ret != "" {
		returnDate, err := time.Parse(dateLayout, ret)
		if err != nil {
			return trip, filters, "", fmt.Errorf("invalid return_date (want YYYY-MM-DD)")
		}
		trip.ReturnDate = returnDate
		trip.TripType = domain.TripTypeRoundTrip
	} else {
		trip.TripType = domain.TripTypeOneWay
	}

	if err := trip.Validate(); err != nil {
		return trip, filters, "", err
	}

	filters.TravelClass = q.Get("travel_class")
	filters.Adults = queryInt(q.Get("adults"))
	filters.Children = queryInt(q.Get("children"))
	filters.Infants = queryInt(q.Get("infants"))
	filters.DepartureTimePref = q.Get("departure_time")
	filters.ReturnTimePref = q.Get("return_time")
	filters.MaxPrice = queryInt(q.Get("max_price"))
	filters.MaxDurationMin = queryInt(q.Get("max_duration"))
	filters.MinLayoverMin = queryInt(q.Get("min_layover"))
	filters.MaxLayoverMin = queryInt(q.Get("max_layover"))
	filters.IncludeAirlines = queryList(q.Get("include_airlines"))
	filters.ExcludeAirlines = queryList(q.Get("exclude_airlines"))
	filters.DeepSearch = q.Get("deep_search") == "true"

	return trip, filters, format, nil
}

func queryInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func queryList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// requestHash keys the result cache on the canonical query encoding,
// which url.Values sorts by parameter name.
func requestHash(r *http.Request, format string) string {
	q := r.URL.Query()
	q.Del("format")
	sum := sha256.Sum256([]byte(format + "|" + q.Encode()))
	return hex.EncodeToString(sum[:])
}

func contentType(format string) string {
	if format == "text" {
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

func renderText(trip domain.TripRequest, itineraries []analyzedItinerary) string {
	var b strings.Builder
	for i, ai := range itineraries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Option %d", i+1)
		if ai.price > 0 {
			fmt.Fprintf(&b, "  ($%d)", ai.price)
		}
		b.WriteString("\n")
		b.WriteString(render.Report(trip, ai.itinerary, ai.outboundAnn, ai.returnAnn))
	}
	return b.String()
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
