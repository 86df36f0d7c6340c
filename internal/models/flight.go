// internal/models/flight.go
package models

// FlightOption holds the details for a single flight option: pricing,
// timing, baggage, cabin class and booking guidance.
type FlightOption struct {
	Airline                   string             `json:"airline"`
	FlightNumbers             []string           `json:"flight_numbers"`
	DepartureTime             string             `json:"departure_time"`
	ArrivalTime               string             `json:"arrival_time"`
	TotalTravelTime           string             `json:"total_travel_time"`
	Stops                     int                `json:"stops"`
	LayoverDetails            []string           `json:"layover_details"`
	AircraftType              string             `json:"aircraft_type,omitempty"`
	TotalPricePerPerson       float64            `json:"total_price_per_person"`
	PriceBreakdown            map[string]float64 `json:"price_breakdown"`
	BaggageAllowance          string             `json:"baggage_allowance,omitempty"`
	SeatSelectionCost         float64            `json:"seat_selection_cost,omitempty"`
	CancellationFees          string             `json:"cancellation_fees,omitempty"`
	CabinClass                string             `json:"cabin_class"`
	InFlightAmenities         []string           `json:"in_flight_amenities"`
	OnTimePerformance         float64            `json:"on_time_performance,omitempty"`
	CustomerRating            float64            `json:"customer_rating,omitempty"`
	AirportTransferInfo       string             `json:"airport_transfer_info,omitempty"`
	VisaRequirements          []string           `json:"visa_requirements"`
	BookingClass              string             `json:"booking_class,omitempty"`
	LoyaltyProgram            string             `json:"loyalty_program,omitempty"`
	RecommendedBookingChannel string             `json:"recommended_booking_channel,omitempty"`
	BookingTiming             string             `json:"booking_timing,omitempty"`
}

func (f *FlightOption) EnsureDefaults() {
	if f.FlightNumbers == nil {
		f.FlightNumbers = []string{}
	}
	if f.LayoverDetails == nil {
		f.LayoverDetails = []string{}
	}
	if f.PriceBreakdown == nil {
		f.PriceBreakdown = map[string]float64{}
	}
	if f.InFlightAmenities == nil {
		f.InFlightAmenities = []string{}
	}
	if f.VisaRequirements == nil {
		f.VisaRequirements = []string{}
	}
}

// FlightSearchResults is the flight search task output: ranked options plus
// pricing analysis and booking guidance.
type FlightSearchResults struct {
	SearchSummary               map[string]string `json:"search_summary"`
	FlightOptions               []FlightOption    `json:"flight_options"`
	Recommendations             map[string]string `json:"recommendations"`
	AlternativeAirports         []string          `json:"alternative_airports"`
	FlexibleDateRecommendations []string          `json:"flexible_date_recommendations"`
	SeasonalConsiderations      []string          `json:"seasonal_considerations"`
	PromotionsAndDeals          []string          `json:"promotions_and_deals"`
	TravelAdvisories            []string          `json:"travel_advisories"`
	BookingTips                 []string          `json:"booking_tips"`
	InsuranceRecommendations    []string          `json:"insurance_recommendations"`
}

func (f *FlightSearchResults) EnsureDefaults() {
	if f.SearchSummary == nil {
		f.SearchSummary = map[string]string{}
	}
	if f.FlightOptions == nil {
		f.FlightOptions = []FlightOption{}
	}
	for i := range f.FlightOptions {
		f.FlightOptions[i].EnsureDefaults()
	}
	if f.Recommendations == nil {
		f.Recommendations = map[string]string{}
	}
	if f.AlternativeAirports == nil {
		f.AlternativeAirports = []string{}
	}
	if f.FlexibleDateRecommendations == nil {
		f.FlexibleDateRecommendations = []string{}
	}
	if f.SeasonalConsiderations == nil {
		f.SeasonalConsiderations = []string{}
	}
	if f.PromotionsAndDeals == nil {
		f.PromotionsAndDeals = []string{}
	}
	if f.TravelAdvisories == nil {
		f.TravelAdvisories = []string{}
	}
	if f.BookingTips == nil {
		f.BookingTips = []string{}
	}
	if f.InsuranceRecommendations == nil {
		f.InsuranceRecommendations = []string{}
	}
}
