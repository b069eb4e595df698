package serpflights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/skyfold/flightdeck/internal/domain"
	"github.com/skyfold/flightdeck/internal/utils"
)

const dateLayout = "2006-01-02"

// SearchFilters carries the optional knobs a caller may set on a search.
// Zero values mean "no preference" and are omitted from the request.
type SearchFilters struct {
	TravelClass       string
	Adults            int
	Children          int
	Infants           int
	DepartureTimePref string // morning | afternoon | evening
	ReturnTimePref    string
	MaxPrice          int
	MaxDurationMin    int
	MinLayoverMin     int
	MaxLayoverMin     int
	IncludeAirlines   []string // names or IATA codes
	ExcludeAirlines   []string
	DeepSearch        bool
}

// Client talks to the flight-search provider. It is the only component
// in the repository that performs network I/O; it hands validated raw
// results to the normalization boundary and never retries (upstream
// failure policy belongs to the caller).
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a provider client. timeout bounds each request on
// top of the per-call context.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Search runs one provider search for the given trip and filters. For
// round trips the provider answers with outbound-only options carrying a
// departure_token; Search resolves those tokens into full itineraries
// before returning.
func (c *Client) Search(ctx context.Context, trip domain.TripRequest, filters SearchFilters) (*SearchResponse, error) {
	if err := trip.Validate(); err != nil {
		return nil, err
	}

	result, err := c.do(ctx, c.buildParams(trip, filters))
	if err != nil {
		return nil, err
	}

	if trip.RoundTrip() {
		c.expandReturnOptions(ctx, trip, result)
	}

	return result, nil
}

// expandReturnOptions replaces every tokened outbound-only option with
// the combined outbound+return itineraries fetched through its
// departure_token. Options whose token fetch fails or yields nothing
// are kept untouched.
func (c *Client) expandReturnOptions(ctx context.Context, trip domain.TripRequest, result *SearchResponse) {
	if len(result.BestFlights) == 0 {
		return
	}

	expanded := make([]FlightOption, 0, len(result.BestFlights))
	for _, opt := range result.BestFlights {
		if opt.DepartureToken == "" {
			expanded = append(expanded, opt)
			continue
		}

		returnData, err := c.do(ctx, c.buildReturnParams(trip, opt.DepartureToken))
		if err != nil {
			expanded = append(expanded, opt)
			continue
		}

		combined := combineOptions(opt, returnData.Options())
		if len(combined) == 0 {
			expanded = append(expanded, opt)
			continue
		}
		expanded = append(expanded, combined...)
	}

	result.BestFlights = expanded
	result.OtherFlights = nil
}

// combineOptions merges one outbound option with each fetched return
// option: segments and layovers concatenate, durations add up, and the
// return fetch's price supersedes the outbound-only quote.
func combineOptions(outbound FlightOption, returnOptions []FlightOption) []FlightOption {
	combined := make([]FlightOption, 0, len(returnOptions))
	for _, ret := range returnOptions {
		if len(ret.Flights) == 0 {
			continue
		}

		merged := outbound
		merged.DepartureToken = ""
		merged.Flights = append(append([]FlightSegment{}, outbound.Flights...), ret.Flights...)
		merged.Layovers = append(append([]OptionLayover{}, outbound.Layovers...), ret.Layovers...)
		if outbound.TotalDuration > 0 && ret.TotalDuration > 0 {
			merged.TotalDuration = outbound.TotalDuration + ret.TotalDuration
		}
		if ret.Price > 0 {
			merged.Price = ret.Price
		}
		combined = append(combined, merged)
	}
	return combined
}

func (c *Client) do(ctx context.Context, params url.Values) (*SearchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.URL.RawQuery = params.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("provider error: %s", result.Error)
	}

	return &result, nil
}

func (c *Client) buildParams(trip domain.TripRequest, f SearchFilters) url.Values {
	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("api_key", c.apiKey)
	params.Set("departure_id", trip.Origin)
	params.Set("arrival_id", trip.Destination)
	params.Set("outbound_date", trip.OutboundDate.Format(dateLayout))
	params.Set("currency", "USD")
	params.Set("hl", "en")

	// Provider trip types: 1 = round trip, 2 = one way.
	if trip.RoundTrip() {
		params.Set("type", "1")
		params.Set("return_date", trip.ReturnDate.Format(dateLayout))
	} else {
		params.Set("type", "2")
	}

	params.Set("travel_class", travelClassParam(f.TravelClass))

	if f.Adults > 0 {
		params.Set("adults", strconv.Itoa(f.Adults))
	}
	if f.Children > 0 {
		params.Set("children", strconv.Itoa(f.Children))
	}
	if f.Infants > 0 {
		params.Set("infants_in_seat", strconv.Itoa(f.Infants))
	}

	if r := timeRangeParam(f.DepartureTimePref); r != "" {
		params.Set("outbound_times", r)
	}
	if r := timeRangeParam(f.ReturnTimePref); r != "" && trip.RoundTrip() {
		params.Set("return_times", r)
	}

	if f.MinLayoverMin > 0 && f.MaxLayoverMin > 0 {
		params.Set("layover_duration", fmt.Sprintf("%d,%d", f.MinLayoverMin, f.MaxLayoverMin))
	}
	if f.MaxPrice > 0 {
		params.Set("max_price", strconv.Itoa(f.MaxPrice))
	}
	if f.MaxDurationMin > 0 {
		params.Set("max_duration", strconv.Itoa(f.MaxDurationMin))
	}

	if csv := resolveAirlineList(f.IncludeAirlines); csv != "" {
		params.Set("include_airlines", csv)
	}
	if csv := resolveAirlineList(f.ExcludeAirlines); csv != "" {
		params.Set("exclude_airlines", csv)
	}

	if f.DeepSearch {
		params.Set("deep_search", "true")
	}

	return params
}

// multiCityLeg is the leg shape the provider expects in multi_city_json.
type multiCityLeg struct {
	DepartureID string `json:"departure_id"`
	ArrivalID   string `json:"arrival_id"`
	Date        string `json:"date"`
}

// buildReturnParams builds the follow-up request for one departure_token.
// The provider treats the return fetch as a two-leg multi-city search
// (type 3) pinned to the tokened outbound.
func (c *Client) buildReturnParams(trip domain.TripRequest, token string) url.Values {
	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("api_key", c.apiKey)
	params.Set("departure_token", token)
	params.Set("type", "3")
	params.Set("currency", "USD")
	params.Set("hl", "en")

	legs := []multiCityLeg{
		{DepartureID: trip.Origin, ArrivalID: trip.Destination, Date: trip.OutboundDate.Format(dateLayout)},
		{DepartureID: trip.Destination, ArrivalID: trip.Origin, Date: trip.ReturnDate.Format(dateLayout)},
	}
	if data, err := json.Marshal(legs); err == nil {
		params.Set("multi_city_json", string(data))
	}

	return params
}
