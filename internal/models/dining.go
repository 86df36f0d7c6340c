// internal/models/dining.go
package models

// DiningOption describes a restaurant, cafe or street food spot.
type DiningOption struct {
	Name                  string   `json:"name"`
	Type                  string   `json:"type"`
	Cuisine               string   `json:"cuisine,omitempty"`
	PriceRange            string   `json:"price_range,omitempty"`
	Rating                float64  `json:"rating,omitempty"`
	Address               string   `json:"address,omitempty"`
	DistanceToAttractions string   `json:"distance_to_attractions,omitempty"`
	MenuHighlights        []string `json:"menu_highlights"`
	ReservationRequired   bool     `json:"reservation_required,omitempty"`
	Photos                []string `json:"photos"`
	Reviews               []string `json:"reviews"`
	CovidProtocols        string   `json:"covid_protocols,omitempty"`
	SpecialFeatures       []string `json:"special_features"`
}

func (d *DiningOption) EnsureDefaults() {
	if d.MenuHighlights == nil {
		d.MenuHighlights = []string{}
	}
	if d.Photos == nil {
		d.Photos = []string{}
	}
	if d.Reviews == nil {
		d.Reviews = []string{}
	}
	if d.SpecialFeatures == nil {
		d.SpecialFeatures = []string{}
	}
}

// DiningSearchResults is the dining research task output.
type DiningSearchResults struct {
	Summary            string         `json:"summary"`
	TotalOptionsFound  int            `json:"total_options_found"`
	PriceRange         string         `json:"price_range,omitempty"`
	BestValueOptions   []string       `json:"best_value_options"`
	LocationHighlights []string       `json:"location_highlights"`
	DiningOptions      []DiningOption `json:"dining_options"`
	Recommendations    []string       `json:"recommendations"`
	LocationInsights   []string       `json:"location_insights"`
	ImportantNotes     []string       `json:"important_notes"`
	Photos             []string       `json:"photos"`
	MenuHighlights     []string       `json:"menu_highlights"`
}

func (d *DiningSearchResults) EnsureDefaults() {
	if d.BestValueOptions == nil {
		d.BestValueOptions = []string{}
	}
	if d.LocationHighlights == nil {
		d.LocationHighlights = []string{}
	}
	if d.DiningOptions == nil {
		d.DiningOptions = []DiningOption{}
	}
	for i := range d.DiningOptions {
		d.DiningOptions[i].EnsureDefaults()
	}
	if d.Recommendations == nil {
		d.Recommendations = []string{}
	}
	if d.LocationInsights == nil {
		d.LocationInsights = []string{}
	}
	if d.ImportantNotes == nil {
		d.ImportantNotes = []string{}
	}
	if d.Photos == nil {
		d.Photos = []string{}
	}
	if d.MenuHighlights == nil {
		d.MenuHighlights = []string{}
	}
}
