package serpflights

// SearchResponse is the top-level shape of a Google-Flights-style search
// response. Only the fields the pipeline consumes are declared; unknown
// provider fields are ignored by the JSON decoder.
type SearchResponse struct {
	SearchMetadata   SearchMetadata   `json:"search_metadata"`
	SearchParameters SearchParameters `json:"search_parameters"`
	BestFlights      []FlightOption   `json:"best_flights,omitempty"`
	OtherFlights     []FlightOption   `json:"other_flights,omitempty"`
	PriceInsights    *PriceInsights   `json:"price_insights,omitempty"`
	Error            string           `json:"error,omitempty"`
}

// Options returns best and other flight options in provider order.
func (r *SearchResponse) Options() []FlightOption {
	options := make([]FlightOption, 0, len(r.BestFlights)+len(r.OtherFlights))
	options = append(options, r.BestFlights...)
	options = append(options, r.OtherFlights...)
	return options
}

type SearchMetadata struct {
	ID             string  `json:"id"`
	Status         string  `json:"status"`
	TotalTimeTaken float64 `json:"total_time_taken"`
}

type SearchParameters struct {
	DepartureID  string `json:"departure_id"`
	ArrivalID    string `json:"arrival_id"`
	OutboundDate string `json:"outbound_date"`
	ReturnDate   string `json:"return_date,omitempty"`
}

// FlightOption is one bookable result: an ordered list of flown segments
// with provider-derived totals and layovers. The segment list is flat and
// chronological; it does not say where the outbound leg ends, which is
// exactly what the partition engine infers.
type FlightOption struct {
	Flights         []FlightSegment  `json:"flights"`
	Layovers        []OptionLayover  `json:"layovers,omitempty"`
	TotalDuration   int              `json:"total_duration"`
	CarbonEmissions *CarbonEmissions `json:"carbon_emissions,omitempty"`
	Price           int              `json:"price,omitempty"`
	DepartureToken  string           `json:"departure_token,omitempty"`
}

// FlightSegment is one provider-shaped flown leg.
type FlightSegment struct {
	DepartureAirport AirportTime `json:"departure_airport"`
	ArrivalAirport   AirportTime `json:"arrival_airport"`
	Duration         int         `json:"duration"`
	Airplane         string      `json:"airplane,omitempty"`
	Airline          string      `json:"airline,omitempty"`
	AirlineLogo      string      `json:"airline_logo,omitempty"`
	TravelClass      string      `json:"travel_class,omitempty"`
	FlightNumber     string      `json:"flight_number"`
	Extensions       []string    `json:"extensions,omitempty"`
	OftenDelayed     bool        `json:"often_delayed_by_over_30_min,omitempty"`
}

// AirportTime pairs an airport with a local timestamp string
// ("2006-01-02 15:04").
type AirportTime struct {
	Name string `json:"name,omitempty"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

// OptionLayover is the provider's own view of a connection. The core
// recomputes layovers from segment timestamps and treats this as
// informational only.
type OptionLayover struct {
	Duration  int    `json:"duration"`
	Name      string `json:"name,omitempty"`
	ID        string `json:"id"`
	Overnight bool   `json:"overnight,omitempty"`
}

type CarbonEmissions struct {
	ThisFlight        int `json:"this_flight"`
	TypicalForRoute   int `json:"typical_for_this_route"`
	DifferencePercent int `json:"difference_percent"`
}

type PriceInsights struct {
	LowestPrice  int    `json:"lowest_price"`
	PriceLevel   string `json:"price_level,omitempty"`
	TypicalRange []int  `json:"typical_price_range,omitempty"`
}
