// Package models defines the structured-output contracts produced by the
// trip-planning pipeline. Each type is a flat validation record: fields are
// predominantly optional and list-valued fields always decode to an empty
// ordered sequence, never nil.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// TripRequest carries the user-supplied trip parameters handed to the
// pipeline as a flat input map. Field names keep the external wire spelling
// (including "accomodation") for compatibility with existing callers.
type TripRequest struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Budget          string `json:"budget"`
	Travelers       int    `json:"travelers"`
	TripType        string `json:"trip_type"`
	Accommodation   string `json:"accomodation"`
	Flights         string `json:"flights"`
	UserPreferences string `json:"user_preferences"`
	RecipientEmail  string `json:"recipient_email"`
	Locale          string `json:"locale"`
}

// ToInputs flattens the request into the pipeline input map. The key set
// matches the JSON field set exactly.
func (r TripRequest) ToInputs() map[string]string {
	return map[string]string{
		"origin":           r.Origin,
		"destination":      r.Destination,
		"start_date":       r.StartDate,
		"end_date":         r.EndDate,
		"budget":           r.Budget,
		"travelers":        strconv.Itoa(r.Travelers),
		"trip_type":        r.TripType,
		"accomodation":     r.Accommodation,
		"flights":          r.Flights,
		"user_preferences": r.UserPreferences,
		"recipient_email":  r.RecipientEmail,
		"locale":           r.Locale,
	}
}

// Validate checks the minimal field presence needed to start a run.
func (r TripRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(r.Origin) == "" {
		missing = append(missing, "origin")
	}
	if strings.TrimSpace(r.Destination) == "" {
		missing = append(missing, "destination")
	}
	if strings.TrimSpace(r.StartDate) == "" {
		missing = append(missing, "start_date")
	}
	if strings.TrimSpace(r.EndDate) == "" {
		missing = append(missing, "end_date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// DefaultTripRequest returns the fixed example input used by the CLI run,
// train and test operations.
func DefaultTripRequest() TripRequest {
	return TripRequest{
		Origin:          "Bogota, Colombia",
		Destination:     "Panama City, Panama",
		StartDate:       "11/01/2025",
		EndDate:         "11/15/2025",
		Budget:          "5K USD per person",
		Travelers:       5,
		TripType:        "Vacations",
		Accommodation:   "Hotel",
		Flights:         "economic",
		UserPreferences: "I want to go to a place where I can relax and enjoy the nature",
		RecipientEmail:  "user@example.com",
		Locale:          "en",
	}
}
