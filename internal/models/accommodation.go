// internal/models/accommodation.go
package models

// AccommodationOption holds the details for a single lodging option.
type AccommodationOption struct {
	Name                    string            `json:"name"`
	Type                    string            `json:"type"`
	Location                string            `json:"location"`
	PricePerNight           float64           `json:"price_per_night"`
	TotalPrice              float64           `json:"total_price"`
	Rating                  float64           `json:"rating"`
	Amenities               []string          `json:"amenities"`
	RoomTypes               []string          `json:"room_types"`
	CancellationPolicy      string            `json:"cancellation_policy,omitempty"`
	CheckInTime             string            `json:"check_in_time,omitempty"`
	DistanceFromAttractions map[string]string `json:"distance_from_attractions"`
	TransportationAccess    []string          `json:"transportation_access"`
	ParkingAvailability     string            `json:"parking_availability,omitempty"`
	PetPolicy               string            `json:"pet_policy,omitempty"`
	AccessibilityFeatures   []string          `json:"accessibility_features"`
}

func (a *AccommodationOption) EnsureDefaults() {
	if a.Amenities == nil {
		a.Amenities = []string{}
	}
	if a.RoomTypes == nil {
		a.RoomTypes = []string{}
	}
	if a.DistanceFromAttractions == nil {
		a.DistanceFromAttractions = map[string]string{}
	}
	if a.TransportationAccess == nil {
		a.TransportationAccess = []string{}
	}
	if a.AccessibilityFeatures == nil {
		a.AccessibilityFeatures = []string{}
	}
}

// AccommodationSearchResults is the accommodation search task output.
type AccommodationSearchResults struct {
	SearchSummary          map[string]string     `json:"search_summary"`
	AccommodationOptions   []AccommodationOption `json:"accommodation_options"`
	Recommendations        map[string]string     `json:"recommendations"`
	NeighborhoodGuide      []string              `json:"neighborhood_guide"`
	BookingTips            []string              `json:"booking_tips"`
	SeasonalConsiderations []string              `json:"seasonal_considerations"`
	LocationInsights       []string              `json:"location_insights"`
}

func (a *AccommodationSearchResults) EnsureDefaults() {
	if a.SearchSummary == nil {
		a.SearchSummary = map[string]string{}
	}
	if a.AccommodationOptions == nil {
		a.AccommodationOptions = []AccommodationOption{}
	}
	for i := range a.AccommodationOptions {
		a.AccommodationOptions[i].EnsureDefaults()
	}
	if a.Recommendations == nil {
		a.Recommendations = map[string]string{}
	}
	if a.NeighborhoodGuide == nil {
		a.NeighborhoodGuide = []string{}
	}
	if a.BookingTips == nil {
		a.BookingTips = []string{}
	}
	if a.SeasonalConsiderations == nil {
		a.SeasonalConsiderations = []string{}
	}
	if a.LocationInsights == nil {
		a.LocationInsights = []string{}
	}
}
