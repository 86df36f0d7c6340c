// internal/models/transportation.go
package models

// PublicTransportOption describes a destination's public transit network.
type PublicTransportOption struct {
	TransportType           string                 `json:"transport_type,omitempty"`
	NetworkName             string                 `json:"network_name,omitempty"`
	CoverageArea            string                 `json:"coverage_area,omitempty"`
	OperatingHours          string                 `json:"operating_hours,omitempty"`
	Frequency               string                 `json:"frequency,omitempty"`
	FareStructure           map[string]interface{} `json:"fare_structure"`
	PaymentMethods          []string               `json:"payment_methods"`
	AccessibilityFeatures   []string               `json:"accessibility_features"`
	KeyStations             []string               `json:"key_stations"`
	TouristFriendlyFeatures []string               `json:"tourist_friendly_features"`
	SafetyRating            float64                `json:"safety_rating,omitempty"`
	ReliabilityScore        float64                `json:"reliability_score,omitempty"`
	PeakHours               string                 `json:"peak_hours,omitempty"`
	NightService            string                 `json:"night_service,omitempty"`
	ContactInfo             *ContactInfo           `json:"contact_info,omitempty"`
}

func (p *PublicTransportOption) EnsureDefaults() {
	if p.FareStructure == nil {
		p.FareStructure = map[string]interface{}{}
	}
	if p.PaymentMethods == nil {
		p.PaymentMethods = []string{}
	}
	if p.AccessibilityFeatures == nil {
		p.AccessibilityFeatures = []string{}
	}
	if p.KeyStations == nil {
		p.KeyStations = []string{}
	}
	if p.TouristFriendlyFeatures == nil {
		p.TouristFriendlyFeatures = []string{}
	}
}

// CarRentalOption describes a car rental company and its terms.
type CarRentalOption struct {
	CompanyName           string             `json:"company_name,omitempty"`
	VehicleTypes          []string           `json:"vehicle_types"`
	DailyRates            map[string]float64 `json:"daily_rates"`
	InsuranceOptions      []string           `json:"insurance_options"`
	InsuranceCosts        map[string]float64 `json:"insurance_costs"`
	FuelPolicy            string             `json:"fuel_policy,omitempty"`
	MileageLimits         string             `json:"mileage_limits,omitempty"`
	DrivingRequirements   []string           `json:"driving_requirements"`
	PickupLocations       []string           `json:"pickup_locations"`
	AdditionalFees        []string           `json:"additional_fees"`
	CancellationPolicy    string             `json:"cancellation_policy,omitempty"`
	GPSAvailability       bool               `json:"gps_availability,omitempty"`
	ChildSeatAvailability bool               `json:"child_seat_availability,omitempty"`
	ParkingInformation    string             `json:"parking_information,omitempty"`
	ContactInfo           *ContactInfo       `json:"contact_info,omitempty"`
}

func (c *CarRentalOption) EnsureDefaults() {
	if c.VehicleTypes == nil {
		c.VehicleTypes = []string{}
	}
	if c.DailyRates == nil {
		c.DailyRates = map[string]float64{}
	}
	if c.InsuranceOptions == nil {
		c.InsuranceOptions = []string{}
	}
	if c.InsuranceCosts == nil {
		c.InsuranceCosts = map[string]float64{}
	}
	if c.DrivingRequirements == nil {
		c.DrivingRequirements = []string{}
	}
	if c.PickupLocations == nil {
		c.PickupLocations = []string{}
	}
	if c.AdditionalFees == nil {
		c.AdditionalFees = []string{}
	}
}

// RideSharingOption describes a ride-sharing service's local presence.
type RideSharingOption struct {
	ServiceName           string             `json:"service_name,omitempty"`
	AvailabilityAreas     string             `json:"availability_areas,omitempty"`
	VehicleTypes          []string           `json:"vehicle_types"`
	BaseFares             map[string]float64 `json:"base_fares"`
	PerKmRates            map[string]float64 `json:"per_km_rates"`
	PerMinuteRates        map[string]float64 `json:"per_minute_rates"`
	SurgePricingInfo      string             `json:"surge_pricing_info,omitempty"`
	PaymentMethods        []string           `json:"payment_methods"`
	TippingCulture        string             `json:"tipping_culture,omitempty"`
	SafetyFeatures        []string           `json:"safety_features"`
	AccessibilityFeatures []string           `json:"accessibility_features"`
	LanguageSupport       []string           `json:"language_support"`
	AirportService        bool               `json:"airport_service,omitempty"`
	ContactInfo           *ContactInfo       `json:"contact_info,omitempty"`
}

func (r *RideSharingOption) EnsureDefaults() {
	if r.VehicleTypes == nil {
		r.VehicleTypes = []string{}
	}
	if r.BaseFares == nil {
		r.BaseFares = map[string]float64{}
	}
	if r.PerKmRates == nil {
		r.PerKmRates = map[string]float64{}
	}
	if r.PerMinuteRates == nil {
		r.PerMinuteRates = map[string]float64{}
	}
	if r.PaymentMethods == nil {
		r.PaymentMethods = []string{}
	}
	if r.SafetyFeatures == nil {
		r.SafetyFeatures = []string{}
	}
	if r.AccessibilityFeatures == nil {
		r.AccessibilityFeatures = []string{}
	}
	if r.LanguageSupport == nil {
		r.LanguageSupport = []string{}
	}
}

// TaxiServiceOption describes a traditional taxi provider.
type TaxiServiceOption struct {
	CompanyName           string             `json:"company_name,omitempty"`
	ServiceType           string             `json:"service_type,omitempty"`
	PricingStructure      string             `json:"pricing_structure,omitempty"`
	AirportTransferRates  map[string]float64 `json:"airport_transfer_rates"`
	BookingMethods        []string           `json:"booking_methods"`
	AvailabilityHours     string             `json:"availability_hours,omitempty"`
	VehicleTypes          []string           `json:"vehicle_types"`
	SafetyRating          float64            `json:"safety_rating,omitempty"`
	ReliabilityScore      float64            `json:"reliability_score,omitempty"`
	TippingExpectations   string             `json:"tipping_expectations,omitempty"`
	AccessibilityFeatures []string           `json:"accessibility_features"`
	ContactInfo           *ContactInfo       `json:"contact_info,omitempty"`
}

func (t *TaxiServiceOption) EnsureDefaults() {
	if t.AirportTransferRates == nil {
		t.AirportTransferRates = map[string]float64{}
	}
	if t.BookingMethods == nil {
		t.BookingMethods = []string{}
	}
	if t.VehicleTypes == nil {
		t.VehicleTypes = []string{}
	}
	if t.AccessibilityFeatures == nil {
		t.AccessibilityFeatures = []string{}
	}
}

// AlternativeTransportOption covers walking, cycling, scooters and similar.
type AlternativeTransportOption struct {
	TransportType         string             `json:"transport_type,omitempty"`
	ServiceName           string             `json:"service_name,omitempty"`
	CoverageArea          string             `json:"coverage_area,omitempty"`
	RentalCosts           map[string]float64 `json:"rental_costs"`
	SafetyConsiderations  []string           `json:"safety_considerations"`
	WeatherImpact         string             `json:"weather_impact,omitempty"`
	AccessibilityFeatures []string           `json:"accessibility_features"`
	RecommendedRoutes     []string           `json:"recommended_routes"`
	EquipmentRequirements []string           `json:"equipment_requirements"`
	ContactInfo           *ContactInfo       `json:"contact_info,omitempty"`
}

func (a *AlternativeTransportOption) EnsureDefaults() {
	if a.RentalCosts == nil {
		a.RentalCosts = map[string]float64{}
	}
	if a.SafetyConsiderations == nil {
		a.SafetyConsiderations = []string{}
	}
	if a.AccessibilityFeatures == nil {
		a.AccessibilityFeatures = []string{}
	}
	if a.RecommendedRoutes == nil {
		a.RecommendedRoutes = []string{}
	}
	if a.EquipmentRequirements == nil {
		a.EquipmentRequirements = []string{}
	}
}

// TouristTransportOption covers hop-on-hop-off, tourist passes and guided transport.
type TouristTransportOption struct {
	ServiceName         string             `json:"service_name,omitempty"`
	ServiceType         string             `json:"service_type,omitempty"`
	CoverageInclusions  []string           `json:"coverage_inclusions"`
	DurationOptions     []string           `json:"duration_options"`
	Pricing             map[string]float64 `json:"pricing"`
	RouteInformation    string             `json:"route_information,omitempty"`
	OperatingHours      string             `json:"operating_hours,omitempty"`
	BookingRequirements string             `json:"booking_requirements,omitempty"`
	ValueAssessment     string             `json:"value_assessment,omitempty"`
	ContactInfo         *ContactInfo       `json:"contact_info,omitempty"`
}

func (t *TouristTransportOption) EnsureDefaults() {
	if t.CoverageInclusions == nil {
		t.CoverageInclusions = []string{}
	}
	if t.DurationOptions == nil {
		t.DurationOptions = []string{}
	}
	if t.Pricing == nil {
		t.Pricing = map[string]float64{}
	}
}

// TransportationSearchResults is the local transportation research task output.
type TransportationSearchResults struct {
	SearchSummary             map[string]interface{}       `json:"search_summary"`
	PublicTransportation      *PublicTransportOption       `json:"public_transportation,omitempty"`
	CarRentalOptions          []CarRentalOption            `json:"car_rental_options"`
	RideSharingServices       []RideSharingOption          `json:"ride_sharing_services"`
	TaxiServices              []TaxiServiceOption          `json:"taxi_services"`
	AlternativeTransportation []AlternativeTransportOption `json:"alternative_transportation"`
	TouristTransportation     []TouristTransportOption     `json:"tourist_transportation"`
	Recommendations           map[string]interface{}       `json:"recommendations"`
	CostComparison            map[string]interface{}       `json:"cost_comparison"`
	SafetyAssessment          map[string]interface{}       `json:"safety_assessment"`
	AccessibilityInformation  map[string]interface{}       `json:"accessibility_information"`
	SeasonalConsiderations    []string                     `json:"seasonal_considerations"`
	PracticalTips             []string                     `json:"practical_tips"`
	EmergencyInformation      []string                     `json:"emergency_information"`
	LanguageBarriers          []string                     `json:"language_barriers"`
	MobileAppRecommendations  []string                     `json:"mobile_app_recommendations"`
	PaymentMethodPreferences  []string                     `json:"payment_method_preferences"`
}

func (t *TransportationSearchResults) EnsureDefaults() {
	if t.SearchSummary == nil {
		t.SearchSummary = map[string]interface{}{}
	}
	if t.PublicTransportation != nil {
		t.PublicTransportation.EnsureDefaults()
	}
	if t.CarRentalOptions == nil {
		t.CarRentalOptions = []CarRentalOption{}
	}
	for i := range t.CarRentalOptions {
		t.CarRentalOptions[i].EnsureDefaults()
	}
	if t.RideSharingServices == nil {
		t.RideSharingServices = []RideSharingOption{}
	}
	for i := range t.RideSharingServices {
		t.RideSharingServices[i].EnsureDefaults()
	}
	if t.TaxiServices == nil {
		t.TaxiServices = []TaxiServiceOption{}
	}
	for i := range t.TaxiServices {
		t.TaxiServices[i].EnsureDefaults()
	}
	if t.AlternativeTransportation == nil {
		t.AlternativeTransportation = []AlternativeTransportOption{}
	}
	for i := range t.AlternativeTransportation {
		t.AlternativeTransportation[i].EnsureDefaults()
	}
	if t.TouristTransportation == nil {
		t.TouristTransportation = []TouristTransportOption{}
	}
	for i := range t.TouristTransportation {
		t.TouristTransportation[i].EnsureDefaults()
	}
	if t.Recommendations == nil {
		t.Recommendations = map[string]interface{}{}
	}
	if t.CostComparison == nil {
		t.CostComparison = map[string]interface{}{}
	}
	if t.SafetyAssessment == nil {
		t.SafetyAssessment = map[string]interface{}{}
	}
	if t.AccessibilityInformation == nil {
		t.AccessibilityInformation = map[string]interface{}{}
	}
	if t.SeasonalConsiderations == nil {
		t.SeasonalConsiderations = []string{}
	}
	if t.PracticalTips == nil {
		t.PracticalTips = []string{}
	}
	if t.EmergencyInformation == nil {
		t.EmergencyInformation = []string{}
	}
	if t.LanguageBarriers == nil {
		t.LanguageBarriers = []string{}
	}
	if t.MobileAppRecommendations == nil {
		t.MobileAppRecommendations = []string{}
	}
	if t.PaymentMethodPreferences == nil {
		t.PaymentMethodPreferences = []string{}
	}
}
