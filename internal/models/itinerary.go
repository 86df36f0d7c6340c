// internal/models/itinerary.go
package models

// ItineraryActivity is a single scheduled activity within a day plan.
type ItineraryActivity struct {
	Name         string  `json:"name"`
	Type         string  `json:"type,omitempty"`
	StartTime    string  `json:"start_time,omitempty"`
	EndTime      string  `json:"end_time,omitempty"`
	Location     string  `json:"location,omitempty"`
	Cost         float64 `json:"cost,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	Instructions string  `json:"instructions,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// ItineraryDay groups the activities planned for one calendar date.
type ItineraryDay struct {
	Date                string              `json:"date"`
	Activities          []ItineraryActivity `json:"activities"`
	TotalCost           float64             `json:"total_cost,omitempty"`
	Currency            string              `json:"currency,omitempty"`
	SpecialInstructions string              `json:"special_instructions,omitempty"`
}

func (d *ItineraryDay) EnsureDefaults() {
	if d.Activities == nil {
		d.Activities = []ItineraryActivity{}
	}
}

// StructuredItinerary is the day-by-day trip plan produced by the planning stage.
type StructuredItinerary struct {
	TripTitle    string         `json:"trip_title,omitempty"`
	StartDate    string         `json:"start_date,omitempty"`
	EndDate      string         `json:"end_date,omitempty"`
	Days         []ItineraryDay `json:"days"`
	OverallCost  float64        `json:"overall_cost,omitempty"`
	Currency     string         `json:"currency,omitempty"`
	GeneralNotes string         `json:"general_notes,omitempty"`
}

func (s *StructuredItinerary) EnsureDefaults() {
	if s.Days == nil {
		s.Days = []ItineraryDay{}
	}
	for i := range s.Days {
		s.Days[i].EnsureDefaults()
	}
}
