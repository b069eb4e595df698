package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/skyfold/flightdeck/internal/domain"
	"github.com/skyfold/flightdeck/internal/render"
	"github.com/skyfold/flightdeck/internal/sources/serpflights"
)

const segmentTimeLayout = "2006-01-02 15:04"

type searchView struct {
	SearchID      string             `json:"search_id"`
	Trip          tripView           `json:"trip"`
	Itineraries   []itineraryView    `json:"itineraries"`
	PriceInsights *priceInsightsView `json:"price_insights,omitempty"`
}

type tripView struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	TripType     string `json:"trip_type"`
	OutboundDate string `json:"outbound_date"`
	ReturnDate   string `json:"return_date,omitempty"`
}

type itineraryView struct {
	Outbound    legView  `json:"outbound"`
	Return      *legView `json:"return,omitempty"`
	PriceUSD    int      `json:"price_usd,omitempty"`
	CarbonGrams int      `json:"carbon_grams,omitempty"`
}

type legView struct {
	Segments      []segmentView `json:"segments"`
	Layovers      []layoverView `json:"layovers,omitempty"`
	TotalMinutes  int           `json:"total_minutes"`
	TotalDuration string        `json:"total_duration"`
}

type segmentView struct {
	Carrier         string   `json:"carrier"`
	Airline         string   `json:"airline,omitempty"`
	FlightNumber    string   `json:"flight_number"`
	Origin          string   `json:"origin"`
	Destination     string   `json:"destination"`
	Departure       string   `json:"departure"`
	Arrival         string   `json:"arrival"`
	DurationMinutes int      `json:"duration_minutes"`
	Aircraft        string   `json:"aircraft,omitempty"`
	Amenities       []string `json:"amenities,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
}

type layoverView struct {
	Airport   string `json:"airport"`
	Minutes   int    `json:"minutes"`
	Overnight bool   `json:"overnight,omitempty"`
	Long      bool   `json:"long,omitempty"`
}

type priceInsightsView struct {
	LowestPrice  int    `json:"lowest_price"`
	PriceLevel   string `json:"price_level,omitempty"`
	TypicalRange []int  `json:"typical_price_range,omitempty"`
}

func buildSearchView(trip domain.TripRequest, itineraries []analyzedItinerary, insights *serpflights.PriceInsights) searchView {
	view := searchView{
		SearchID: uuid.NewString(),
		Trip: tripView{
			Origin:       trip.Origin,
			Destination:  trip.Destination,
			TripType:     string(trip.TripType),
			OutboundDate: trip.OutboundDate.Format(dateLayout),
		},
		Itineraries: make([]itineraryView, 0, len(itineraries)),
	}
	if trip.RoundTrip() {
		view.Trip.ReturnDate = trip.ReturnDate.Format(dateLayout)
	}

	for _, ai := range itineraries {
		iv := itineraryView{
			Outbound: buildLegView(ai.itinerary.Outbound, ai.itinerary.OutboundLayovers,
				ai.itinerary.OutboundMinutes, ai.outboundAnn),
			PriceUSD:    ai.price,
			CarbonGrams: ai.carbonGrams,
		}
		if !ai.itinerary.OneWay() {
			ret := buildLegView(ai.itinerary.Return, ai.itinerary.ReturnLayovers,
				ai.itinerary.ReturnMinutes, ai.returnAnn)
			iv.Return = &ret
		}
		view.Itineraries = append(view.Itineraries, iv)
	}

	if insights != nil {
		view.PriceInsights = &priceInsightsView{
			LowestPrice:  insights.LowestPrice,
			PriceLevel:   insights.PriceLevel,
			TypicalRange: insights.TypicalRange,
		}
	}

	return view
}

func buildLegView(segments []domain.SegmentRecord, layovers []domain.LayoverInfo, totalMinutes int, annotations []domain.Annotation) legView {
	leg := legView{
		Segments:      make([]segmentView, 0, len(segments)),
		TotalMinutes:  totalMinutes,
		TotalDuration: render.FormatMinutes(totalMinutes),
	}

	for i, seg := range segments {
		sv := segmentView{
			Carrier:         seg.Carrier,
			Airline:         seg.Airline,
			FlightNumber:    seg.FlightNumber,
			Origin:          seg.Origin,
			Destination:     seg.Destination,
			Departure:       formatSegmentTime(seg.Departure),
			Arrival:         formatSegmentTime(seg.Arrival),
			DurationMinutes: seg.DurationMinutes,
			Aircraft:        seg.Aircraft,
		}
		if i < len(annotations) {
			sv.Amenities = annotations[i].Amenities
			sv.Warnings = annotations[i].Warnings
		}
		leg.Segments = append(leg.Segments, sv)
	}

	for _, lay := range layovers {
		leg.Layovers = append(leg.Layovers, layoverView{
			Airport:   lay.Airport,
			Minutes:   lay.GapMinutes,
			Overnight: lay.Overnight,
			Long:      lay.Long,
		})
	}

	return leg
}

func formatSegmentTime(t time.Time) string {
	return t.Format(segmentTimeLayout)
}
