// internal/models/validation.go
package models

// ValidationMetric scores one quality dimension of an itinerary.
type ValidationMetric struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Notes string  `json:"notes,omitempty"`
}

// ItineraryIssue flags a problem found during itinerary review.
type ItineraryIssue struct {
	Description    string `json:"description"`
	Severity       string `json:"severity"`
	Recommendation string `json:"recommendation,omitempty"`
}

// ItineraryValidationReport is the quality assessment task output.
type ItineraryValidationReport struct {
	OverallScore               float64            `json:"overall_score"`
	ValidationMetrics          []ValidationMetric `json:"validation_metrics"`
	TravelStyleMatchPercentage float64            `json:"travel_style_match_percentage,omitempty"`
	IssuesFound                []ItineraryIssue   `json:"issues_found"`
	Recommendations            []string           `json:"recommendations"`
	VisualValidationScores     map[string]float64 `json:"visual_validation_scores"`
	QualityMetrics             map[string]float64 `json:"quality_metrics"`
	Notes                      string             `json:"notes,omitempty"`
}

func (r *ItineraryValidationReport) EnsureDefaults() {
	if r.ValidationMetrics == nil {
		r.ValidationMetrics = []ValidationMetric{}
	}
	if r.IssuesFound == nil {
		r.IssuesFound = []ItineraryIssue{}
	}
	if r.Recommendations == nil {
		r.Recommendations = []string{}
	}
	if r.VisualValidationScores == nil {
		r.VisualValidationScores = map[string]float64{}
	}
	if r.QualityMetrics == nil {
		r.QualityMetrics = map[string]float64{}
	}
}
