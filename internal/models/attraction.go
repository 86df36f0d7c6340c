// internal/models/attraction.go
package models

// CulturalHistoricalAttraction covers museums, landmarks and heritage sites.
type CulturalHistoricalAttraction struct {
	AttractionName         string                 `json:"attraction_name,omitempty"`
	AttractionType         string                 `json:"attraction_type,omitempty"`
	CulturalSignificance   string                 `json:"cultural_significance,omitempty"`
	HistoricalBackground   string                 `json:"historical_background,omitempty"`
	UNESCOStatus           string                 `json:"unesco_status,omitempty"`
	Address                string                 `json:"address,omitempty"`
	VisitorRating          float64                `json:"visitor_rating,omitempty"`
	ReviewCount            int                    `json:"review_count,omitempty"`
	OpeningHours           string                 `json:"opening_hours,omitempty"`
	SeasonalAvailability   string                 `json:"seasonal_availability,omitempty"`
	AdmissionFees          map[string]interface{} `json:"admission_fees"`
	AdvanceBooking         string                 `json:"advance_booking,omitempty"`
	VisitDuration          string                 `json:"visit_duration,omitempty"`
	PeakTimes              string                 `json:"peak_times,omitempty"`
	GuidedTours            []string               `json:"guided_tours"`
	InteractiveElements    []string               `json:"interactive_elements"`
	PhotographyPolicy      string                 `json:"photography_policy,omitempty"`
	AccessibilityFeatures  []string               `json:"accessibility_features"`
	FamilyFriendlyFeatures []string               `json:"family_friendly_features"`
	Amenities              []string               `json:"amenities"`
	ContactInfo            *ContactInfo           `json:"contact_info,omitempty"`
}

func (c *CulturalHistoricalAttraction) EnsureDefaults() {
	if c.AdmissionFees == nil {
		c.AdmissionFees = map[string]interface{}{}
	}
	if c.GuidedTours == nil {
		c.GuidedTours = []string{}
	}
	if c.InteractiveElements == nil {
		c.InteractiveElements = []string{}
	}
	if c.AccessibilityFeatures == nil {
		c.AccessibilityFeatures = []string{}
	}
	if c.FamilyFriendlyFeatures == nil {
		c.FamilyFriendlyFeatures = []string{}
	}
	if c.Amenities == nil {
		c.Amenities = []string{}
	}
}

// NaturalOutdoorAttraction covers parks, beaches and nature reserves.
type NaturalOutdoorAttraction struct {
	AttractionName           string                 `json:"attraction_name,omitempty"`
	AttractionType           string                 `json:"attraction_type,omitempty"`
	NaturalFeatures          []string               `json:"natural_features"`
	ScenicHighlights         []string               `json:"scenic_highlights"`
	Address                  string                 `json:"address,omitempty"`
	VisitorRating            float64                `json:"visitor_rating,omitempty"`
	ReviewCount              int                    `json:"review_count,omitempty"`
	OperatingHours           string                 `json:"operating_hours,omitempty"`
	WeatherConsiderations    string                 `json:"weather_considerations,omitempty"`
	AdmissionFees            map[string]interface{} `json:"admission_fees"`
	HikingTrails             []string               `json:"hiking_trails"`
	OutdoorActivities        []string               `json:"outdoor_activities"`
	WildlifeInformation      string                 `json:"wildlife_information,omitempty"`
	PhotographyOpportunities []string               `json:"photography_opportunities"`
	AccessibilityFeatures    []string               `json:"accessibility_features"`
	FamilyFriendlyFeatures   []string               `json:"family_friendly_features"`
	SafetyInformation        []string               `json:"safety_information"`
	Amenities                []string               `json:"amenities"`
	ContactInfo              *ContactInfo           `json:"contact_info,omitempty"`
}

func (n *NaturalOutdoorAttraction) EnsureDefaults() {
	if n.NaturalFeatures == nil {
		n.NaturalFeatures = []string{}
	}
	if n.ScenicHighlights == nil {
		n.ScenicHighlights = []string{}
	}
	if n.AdmissionFees == nil {
		n.AdmissionFees = map[string]interface{}{}
	}
	if n.HikingTrails == nil {
		n.HikingTrails = []string{}
	}
	if n.OutdoorActivities == nil {
		n.OutdoorActivities = []string{}
	}
	if n.PhotographyOpportunities == nil {
		n.PhotographyOpportunities = []string{}
	}
	if n.AccessibilityFeatures == nil {
		n.AccessibilityFeatures = []string{}
	}
	if n.FamilyFriendlyFeatures == nil {
		n.FamilyFriendlyFeatures = []string{}
	}
	if n.SafetyInformation == nil {
		n.SafetyInformation = []string{}
	}
	if n.Amenities == nil {
		n.Amenities = []string{}
	}
}

// EntertainmentRecreationAttraction covers theme parks, sports venues and shopping.
type EntertainmentRecreationAttraction struct {
	AttractionName          string                 `json:"attraction_name,omitempty"`
	AttractionType          string                 `json:"attraction_type,omitempty"`
	EntertainmentHighlights []string               `json:"entertainment_highlights"`
	Address                 string                 `json:"address,omitempty"`
	VisitorRating           float64                `json:"visitor_rating,omitempty"`
	ReviewCount             int                    `json:"review_count,omitempty"`
	OperatingHours          string                 `json:"operating_hours,omitempty"`
	AdmissionFees           map[string]interface{} `json:"admission_fees"`
	AgeRestrictions         string                 `json:"age_restrictions,omitempty"`
	ThrillLevel             string                 `json:"thrill_level,omitempty"`
	FamilyFriendlyFeatures  []string               `json:"family_friendly_features"`
	AccessibilityFeatures   []string               `json:"accessibility_features"`
	FoodBeverageOptions     []string               `json:"food_beverage_options"`
	ShoppingOptions         []string               `json:"shopping_options"`
	SpecialEvents           []string               `json:"special_events"`
	PeakTimes               string                 `json:"peak_times,omitempty"`
	ContactInfo             *ContactInfo           `json:"contact_info,omitempty"`
}

func (e *EntertainmentRecreationAttraction) EnsureDefaults() {
	if e.EntertainmentHighlights == nil {
		e.EntertainmentHighlights = []string{}
	}
	if e.AdmissionFees == nil {
		e.AdmissionFees = map[string]interface{}{}
	}
	if e.FamilyFriendlyFeatures == nil {
		e.FamilyFriendlyFeatures = []string{}
	}
	if e.AccessibilityFeatures == nil {
		e.AccessibilityFeatures = []string{}
	}
	if e.FoodBeverageOptions == nil {
		e.FoodBeverageOptions = []string{}
	}
	if e.ShoppingOptions == nil {
		e.ShoppingOptions = []string{}
	}
	if e.SpecialEvents == nil {
		e.SpecialEvents = []string{}
	}
}

// LocalExperienceTour covers guided tours, workshops and cultural experiences.
type LocalExperienceTour struct {
	ExperienceName         string                 `json:"experience_name,omitempty"`
	ExperienceType         string                 `json:"experience_type,omitempty"`
	ExperienceDescription  string                 `json:"experience_description,omitempty"`
	CulturalFocus          string                 `json:"cultural_focus,omitempty"`
	MeetingPoint           string                 `json:"meeting_point,omitempty"`
	Duration               string                 `json:"duration,omitempty"`
	GroupSize              string                 `json:"group_size,omitempty"`
	Pricing                map[string]interface{} `json:"pricing"`
	BookingRequirements    string                 `json:"booking_requirements,omitempty"`
	LanguageOptions        []string               `json:"language_options"`
	GuideQualifications    string                 `json:"guide_qualifications,omitempty"`
	InteractiveElements    []string               `json:"interactive_elements"`
	AccessibilityFeatures  []string               `json:"accessibility_features"`
	FamilyFriendlyFeatures []string               `json:"family_friendly_features"`
	WhatToBring            []string               `json:"what_to_bring"`
	CancellationPolicy     string                 `json:"cancellation_policy,omitempty"`
	ContactInfo            *ContactInfo           `json:"contact_info,omitempty"`
}

func (l *LocalExperienceTour) EnsureDefaults() {
	if l.Pricing == nil {
		l.Pricing = map[string]interface{}{}
	}
	if l.LanguageOptions == nil {
		l.LanguageOptions = []string{}
	}
	if l.InteractiveElements == nil {
		l.InteractiveElements = []string{}
	}
	if l.AccessibilityFeatures == nil {
		l.AccessibilityFeatures = []string{}
	}
	if l.FamilyFriendlyFeatures == nil {
		l.FamilyFriendlyFeatures = []string{}
	}
	if l.WhatToBring == nil {
		l.WhatToBring = []string{}
	}
}

// SeasonalSpecialEvent covers festivals and limited-time experiences.
type SeasonalSpecialEvent struct {
	EventName              string                 `json:"event_name,omitempty"`
	EventType              string                 `json:"event_type,omitempty"`
	EventDescription       string                 `json:"event_description,omitempty"`
	Dates                  string                 `json:"dates,omitempty"`
	Location               string                 `json:"location,omitempty"`
	CulturalSignificance   string                 `json:"cultural_significance,omitempty"`
	VisitorRating          float64                `json:"visitor_rating,omitempty"`
	ReviewCount            int                    `json:"review_count,omitempty"`
	AdmissionFees          map[string]interface{} `json:"admission_fees"`
	BookingRequirements    string                 `json:"booking_requirements,omitempty"`
	Highlights             []string               `json:"highlights"`
	Activities             []string               `json:"activities"`
	FamilyFriendlyFeatures []string               `json:"family_friendly_features"`
	AccessibilityFeatures  []string               `json:"accessibility_features"`
	WeatherConsiderations  string                 `json:"weather_considerations,omitempty"`
	CrowdManagement        string                 `json:"crowd_management,omitempty"`
	ContactInfo            *ContactInfo           `json:"contact_info,omitempty"`
}

func (s *SeasonalSpecialEvent) EnsureDefaults() {
	if s.AdmissionFees == nil {
		s.AdmissionFees = map[string]interface{}{}
	}
	if s.Highlights == nil {
		s.Highlights = []string{}
	}
	if s.Activities == nil {
		s.Activities = []string{}
	}
	if s.FamilyFriendlyFeatures == nil {
		s.FamilyFriendlyFeatures = []string{}
	}
	if s.AccessibilityFeatures == nil {
		s.AccessibilityFeatures = []string{}
	}
}

// AttractionSearchResults is the attraction research task output.
type AttractionSearchResults struct {
	SearchSummary                      map[string]interface{}              `json:"search_summary"`
	CulturalHistoricalAttractions      []CulturalHistoricalAttraction      `json:"cultural_historical_attractions"`
	NaturalOutdoorAttractions          []NaturalOutdoorAttraction          `json:"natural_outdoor_attractions"`
	EntertainmentRecreationAttractions []EntertainmentRecreationAttraction `json:"entertainment_recreation_attractions"`
	LocalExperienceTours               []LocalExperienceTour               `json:"local_experience_tours"`
	SeasonalSpecialEvents              []SeasonalSpecialEvent              `json:"seasonal_special_events"`
	Recommendations                    map[string]interface{}              `json:"recommendations"`
	BudgetFriendlyOptions              []string                            `json:"budget_friendly_options"`
	PremiumExperiences                 []string                            `json:"premium_experiences"`
	AccessibilityHighlights            []string                            `json:"accessibility_highlights"`
	FamilyFriendlyHighlights           []string                            `json:"family_friendly_highlights"`
	MustSeeAttractions                 []string                            `json:"must_see_attractions"`
	HiddenGems                         []string                            `json:"hidden_gems"`
	CombinationOpportunities           []string                            `json:"combination_opportunities"`
	SeasonalConsiderations             []string                            `json:"seasonal_considerations"`
	PracticalTips                      []string                            `json:"practical_tips"`
	BookingAdvice                      []string                            `json:"booking_advice"`
	PhotographyTips                    []string                            `json:"photography_tips"`
	LocalCustoms                       []string                            `json:"local_customs"`
	EmergencyInformation               []string                            `json:"emergency_information"`
}

func (a *AttractionSearchResults) EnsureDefaults() {
	if a.SearchSummary == nil {
		a.SearchSummary = map[string]interface{}{}
	}
	if a.CulturalHistoricalAttractions == nil {
		a.CulturalHistoricalAttractions = []CulturalHistoricalAttraction{}
	}
	for i := range a.CulturalHistoricalAttractions {
		a.CulturalHistoricalAttractions[i].EnsureDefaults()
	}
	if a.NaturalOutdoorAttractions == nil {
		a.NaturalOutdoorAttractions = []NaturalOutdoorAttraction{}
	}
	for i := range a.NaturalOutdoorAttractions {
		a.NaturalOutdoorAttractions[i].EnsureDefaults()
	}
	if a.EntertainmentRecreationAttractions == nil {
		a.EntertainmentRecreationAttractions = []EntertainmentRecreationAttraction{}
	}
	for i := range a.EntertainmentRecreationAttractions {
		a.EntertainmentRecreationAttractions[i].EnsureDefaults()
	}
	if a.LocalExperienceTours == nil {
		a.LocalExperienceTours = []LocalExperienceTour{}
	}
	for i := range a.LocalExperienceTours {
		a.LocalExperienceTours[i].EnsureDefaults()
	}
	if a.SeasonalSpecialEvents == nil {
		a.SeasonalSpecialEvents = []SeasonalSpecialEvent{}
	}
	for i := range a.SeasonalSpecialEvents {
		a.SeasonalSpecialEvents[i].EnsureDefaults()
	}
	if a.Recommendations == nil {
		a.Recommendations = map[string]interface{}{}
	}
	if a.BudgetFriendlyOptions == nil {
		a.BudgetFriendlyOptions = []string{}
	}
	if a.PremiumExperiences == nil {
		a.PremiumExperiences = []string{}
	}
	if a.AccessibilityHighlights == nil {
		a.AccessibilityHighlights = []string{}
	}
	if a.FamilyFriendlyHighlights == nil {
		a.FamilyFriendlyHighlights = []string{}
	}
	if a.MustSeeAttractions == nil {
		a.MustSeeAttractions = []string{}
	}
	if a.HiddenGems == nil {
		a.HiddenGems = []string{}
	}
	if a.CombinationOpportunities == nil {
		a.CombinationOpportunities = []string{}
	}
	if a.SeasonalConsiderations == nil {
		a.SeasonalConsiderations = []string{}
	}
	if a.PracticalTips == nil {
		a.PracticalTips = []string{}
	}
	if a.BookingAdvice == nil {
		a.BookingAdvice = []string{}
	}
	if a.PhotographyTips == nil {
		a.PhotographyTips = []string{}
	}
	if a.LocalCustoms == nil {
		a.LocalCustoms = []string{}
	}
	if a.EmergencyInformation == nil {
		a.EmergencyInformation = []string{}
	}
}
